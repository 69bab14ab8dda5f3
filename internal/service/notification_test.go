package service

import (
	"finedu_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalWith(id uint, title string, status model.GoalStatus, progress float64, target time.Time) model.Goal {
	g := model.Goal{
		Title:      title,
		Status:     status,
		Progress:   progress,
		TargetDate: target,
	}
	g.ID = id
	return g
}

func TestGenerateGoalNotificationsEmpty(t *testing.T) {
	now := time.Now()

	assert.Empty(t, GenerateGoalNotifications(nil, now))
	assert.Empty(t, GenerateGoalNotifications([]model.Goal{}, now))
}

func TestGenerateGoalNotificationsDeadlineApproaching(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	goals := []model.Goal{
		goalWith(1, "Finish budgeting course", model.GoalInProgress, 30, now.Add(48*time.Hour)),
	}

	got := GenerateGoalNotifications(goals, now)

	require.Len(t, got, 1)
	assert.Equal(t, NotificationDeadline, got[0].Type)
	assert.Equal(t, uint(1), got[0].GoalID)
	assert.Contains(t, got[0].Message, "2 day(s)")
	assert.NotEmpty(t, got[0].ID)
}

func TestGenerateGoalNotificationsFarDeadlineSilent(t *testing.T) {
	now := time.Now()
	goals := []model.Goal{
		goalWith(1, "Long-term goal", model.GoalInProgress, 10, now.Add(30*24*time.Hour)),
	}

	assert.Empty(t, GenerateGoalNotifications(goals, now))
}

func TestGenerateGoalNotificationsOverdue(t *testing.T) {
	now := time.Now()
	goals := []model.Goal{
		goalWith(2, "Missed goal", model.GoalPending, 0, now.Add(-24*time.Hour)),
	}

	got := GenerateGoalNotifications(goals, now)

	require.Len(t, got, 1)
	assert.Equal(t, NotificationOverdue, got[0].Type)
}

func TestGenerateGoalNotificationsMilestoneStacksWithDeadline(t *testing.T) {
	now := time.Now()
	goals := []model.Goal{
		goalWith(3, "Halfway goal", model.GoalInProgress, 60, now.Add(24*time.Hour)),
	}

	got := GenerateGoalNotifications(goals, now)

	require.Len(t, got, 2)
	types := []string{got[0].Type, got[1].Type}
	assert.Contains(t, types, NotificationDeadline)
	assert.Contains(t, types, NotificationMilestone)
}

func TestGenerateGoalNotificationsCompletedSuppressesOthers(t *testing.T) {
	now := time.Now()
	goals := []model.Goal{
		goalWith(4, "Done goal", model.GoalCompleted, 100, now.Add(-24*time.Hour)),
		goalWith(5, "Done late", model.GoalCompletedExpired, 100, now.Add(-48*time.Hour)),
	}

	got := GenerateGoalNotifications(goals, now)

	require.Len(t, got, 2)
	for _, n := range got {
		assert.Equal(t, NotificationCompleted, n.Type, "completed goals emit only the completion notice")
	}
}

func TestGenerateGoalNotificationsZeroTargetDateSkipsDeadline(t *testing.T) {
	now := time.Now()
	goals := []model.Goal{
		goalWith(6, "No deadline", model.GoalInProgress, 75, time.Time{}),
	}

	got := GenerateGoalNotifications(goals, now)

	require.Len(t, got, 1)
	assert.Equal(t, NotificationMilestone, got[0].Type)
}
