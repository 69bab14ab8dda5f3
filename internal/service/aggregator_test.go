package service

import (
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeLessonCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Course{
		{
			ID:    1,
			Title: "Personal Finance Basics",
			Level: catalog.Beginner,
			Lessons: []catalog.Lesson{
				{ID: 1, Title: "What Is Money"},
				{ID: 2, Title: "Income and Expenses"},
				{ID: 3, Title: "Your First Budget"},
			},
		},
	})
}

func passed(lessonIDs ...uint) map[uint]model.LessonProgress {
	now := time.Now()
	m := make(map[uint]model.LessonProgress, len(lessonIDs))
	for _, id := range lessonIDs {
		m[id] = model.LessonProgress{LessonID: id, QuizPassed: true, CompletedAt: &now}
	}
	return m
}

func TestAggregateCourseNoProgress(t *testing.T) {
	cat := threeLessonCatalog()

	view := AggregateCourse(cat, 1, nil, nil)

	assert.Equal(t, 3, view.TotalLessons)
	assert.Equal(t, 0, view.CompletedLessons)
	assert.Equal(t, 0, view.ProgressPercentage)
	assert.False(t, view.CourseCompleted)

	require.Len(t, view.Lessons, 3)
	assert.False(t, view.Lessons[0].Locked, "first lesson is never locked")
	assert.True(t, view.Lessons[1].Locked)
	assert.True(t, view.Lessons[2].Locked)
}

func TestAggregateCourseUnlocksAfterQuizPass(t *testing.T) {
	cat := threeLessonCatalog()

	view := AggregateCourse(cat, 1, passed(1), nil)

	assert.Equal(t, 1, view.CompletedLessons)
	assert.Equal(t, 33, view.ProgressPercentage)
	assert.False(t, view.Lessons[0].Locked)
	assert.False(t, view.Lessons[1].Locked)
	assert.True(t, view.Lessons[2].Locked, "lesson 3 stays locked until lesson 2 is passed")
}

func TestAggregateCourseRoundsHalfUp(t *testing.T) {
	cat := threeLessonCatalog()

	view := AggregateCourse(cat, 1, passed(1, 2), nil)

	// 2/3 = 66.67%，四舍五入到 67 而不是截断到 66
	assert.Equal(t, 67, view.ProgressPercentage)
}

func TestAggregateCourseVideoAloneDoesNotComplete(t *testing.T) {
	cat := threeLessonCatalog()
	now := time.Now()
	lessons := map[uint]model.LessonProgress{
		1: {LessonID: 1, VideoWatched: true, VideoProgress: 100, VideoCompletedAt: &now},
	}

	view := AggregateCourse(cat, 1, lessons, nil)

	assert.Equal(t, 0, view.CompletedLessons, "quiz pass is the only completion signal")
	assert.False(t, view.Lessons[0].Completed)
	assert.True(t, view.Lessons[0].VideoCompleted)
	assert.True(t, view.Lessons[1].Locked)
}

func TestAggregateCourseCompletedLessonNeverLocks(t *testing.T) {
	cat := threeLessonCatalog()

	// 第3课已完成但第2课未通过：第3课不回锁，第2课保持解锁
	view := AggregateCourse(cat, 1, passed(1, 3), nil)

	assert.False(t, view.Lessons[1].Locked)
	assert.False(t, view.Lessons[2].Locked)
	assert.True(t, view.Lessons[2].Completed)
	assert.Equal(t, 2, view.CompletedLessons)
}

func TestAggregateCourseFullCompletion(t *testing.T) {
	cat := threeLessonCatalog()
	now := time.Now()
	cp := &model.CourseProgress{CourseID: 1, ProgressPercentage: 100, CompletedAt: &now}

	view := AggregateCourse(cat, 1, passed(1, 2, 3), cp)

	assert.Equal(t, 100, view.ProgressPercentage)
	assert.True(t, view.CourseCompleted)
	require.NotNil(t, view.CourseCompletedAt)
	assert.Equal(t, now.Unix(), view.CourseCompletedAt.Unix())
}

func TestAggregateCourseUnknownCourseReturnsZeroedView(t *testing.T) {
	cat := threeLessonCatalog()

	view := AggregateCourse(cat, 999, nil, nil)

	assert.Equal(t, uint(999), view.CourseID)
	assert.Equal(t, 0, view.TotalLessons)
	assert.Equal(t, 0, view.ProgressPercentage)
	assert.False(t, view.CourseCompleted)
	assert.Empty(t, view.Lessons)
}

func TestAggregateCourseZeroLessonCourse(t *testing.T) {
	cat := catalog.New([]catalog.Course{{ID: 7, Title: "Empty", Level: catalog.Beginner}})

	view := AggregateCourse(cat, 7, nil, nil)

	assert.Equal(t, 0, view.ProgressPercentage, "zero lessons must not divide by zero")
	assert.False(t, view.CourseCompleted, "a course with no lessons is never completed")
}

func TestAggregateAllCoversWholeCatalog(t *testing.T) {
	cat := catalog.New([]catalog.Course{
		{ID: 1, Title: "A", Level: catalog.Beginner, Lessons: []catalog.Lesson{{ID: 1}, {ID: 2}}},
		{ID: 2, Title: "B", Level: catalog.Intermediate, Lessons: []catalog.Lesson{{ID: 1}}},
	})
	now := time.Now()
	snap := ProgressSnapshot{
		Lessons: map[uint]map[uint]model.LessonProgress{
			1: passed(1, 2),
		},
		Courses: map[uint]model.CourseProgress{
			1: {CourseID: 1, ProgressPercentage: 100, CompletedAt: &now},
		},
	}

	views := AggregateAll(cat, snap)

	require.Len(t, views, 2)
	assert.Equal(t, 100, views[0].ProgressPercentage)
	assert.NotNil(t, views[0].CourseCompletedAt)
	assert.Equal(t, 0, views[1].ProgressPercentage)
	assert.Nil(t, views[1].CourseCompletedAt)
}

func TestAggregateIsIdempotent(t *testing.T) {
	cat := threeLessonCatalog()
	lessons := passed(1, 2)

	first := AggregateCourse(cat, 1, lessons, nil)
	second := AggregateCourse(cat, 1, lessons, nil)

	assert.Equal(t, first, second)
}

func TestRoundPercent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 进位
		{5, 7, 71},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, roundPercent(c.completed, c.total), "%d/%d", c.completed, c.total)
	}
}
