package service

import (
	"context"
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	NotificationDeadline  = "deadline_approaching"
	NotificationOverdue   = "goal_overdue"
	NotificationMilestone = "goal_milestone"
	NotificationCompleted = "goal_completed"
)

// Notification 从目标记录即时推导的提醒，不落库
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	GoalID    uint      `json:"goalId"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateGoalNotifications 对每个目标按当前时刻推导提醒。
// 纯函数：相同的目标列表和时刻产出相同的提醒集合（ID 除外）。
func GenerateGoalNotifications(goals []model.Goal, now time.Time) []Notification {
	notifications := make([]Notification, 0)

	for _, goal := range goals {
		completed := goal.Status == model.GoalCompleted || goal.Status == model.GoalCompletedExpired

		if completed {
			notifications = append(notifications, Notification{
				ID:        uuid.NewString(),
				Type:      NotificationCompleted,
				Title:     "Goal achieved",
				Message:   fmt.Sprintf("You completed your goal \"%s\". Great work!", goal.Title),
				GoalID:    goal.ID,
				CreatedAt: now,
			})
			continue
		}

		if !goal.TargetDate.IsZero() {
			remaining := goal.TargetDate.Sub(now)
			if remaining < 0 {
				notifications = append(notifications, Notification{
					ID:        uuid.NewString(),
					Type:      NotificationOverdue,
					Title:     "Goal overdue",
					Message:   fmt.Sprintf("Your goal \"%s\" passed its target date. Consider updating it.", goal.Title),
					GoalID:    goal.ID,
					CreatedAt: now,
				})
			} else if remaining <= 3*24*time.Hour {
				notifications = append(notifications, Notification{
					ID:        uuid.NewString(),
					Type:      NotificationDeadline,
					Title:     "Deadline approaching",
					Message:   fmt.Sprintf("Your goal \"%s\" is due in %d day(s).", goal.Title, daysUntil(remaining)),
					GoalID:    goal.ID,
					CreatedAt: now,
				})
			}
		}

		if goal.Progress >= 50 {
			notifications = append(notifications, Notification{
				ID:        uuid.NewString(),
				Type:      NotificationMilestone,
				Title:     "Halfway there",
				Message:   fmt.Sprintf("You're %.0f%% of the way to \"%s\". Keep going!", goal.Progress, goal.Title),
				GoalID:    goal.ID,
				CreatedAt: now,
			})
		}
	}

	return notifications
}

// daysUntil 不足一天按一天计
func daysUntil(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// NotificationService 拉取用户目标并推导提醒
type NotificationService struct {
	GoalRepo *repository.GoalRepository
}

func NewNotificationService(goalRepo *repository.GoalRepository) *NotificationService {
	return &NotificationService{GoalRepo: goalRepo}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID uint) ([]Notification, error) {
	goals, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return GenerateGoalNotifications(goals, time.Now()), nil
}
