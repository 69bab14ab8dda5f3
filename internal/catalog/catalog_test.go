package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	cat := New([]Course{
		{ID: 10, Title: "A", Level: Beginner, Lessons: []Lesson{{ID: 1, Title: "L1"}}},
		{ID: 20, Title: "B", Level: Intermediate},
	})

	require.Equal(t, 2, cat.Len())

	course, ok := cat.Course(10)
	require.True(t, ok)
	assert.Equal(t, "A", course.Title)

	_, ok = cat.Course(99)
	assert.False(t, ok)

	assert.Equal(t, 0, cat.IndexOf(10))
	assert.Equal(t, 1, cat.IndexOf(20))
	assert.Equal(t, -1, cat.IndexOf(99))
}

func TestCatalogLessonLookup(t *testing.T) {
	cat := New([]Course{
		{ID: 1, Title: "A", Lessons: []Lesson{{ID: 1, Title: "L1"}, {ID: 2, Title: "L2"}}},
	})

	lesson, ok := cat.Lesson(1, 2)
	require.True(t, ok)
	assert.Equal(t, "L2", lesson.Title)

	_, ok = cat.Lesson(1, 5)
	assert.False(t, ok)

	_, ok = cat.Lesson(9, 1)
	assert.False(t, ok)
}

func TestDefaultCatalogOrdering(t *testing.T) {
	cat := Default()

	require.Greater(t, cat.Len(), 0)

	// 目录顺序即先修顺序，初级课程在前
	courses := cat.Courses()
	assert.Equal(t, "Personal Finance Basics", courses[0].Title)
	assert.Equal(t, Beginner, courses[0].Level)

	seen := make(map[uint]bool)
	for _, c := range courses {
		assert.False(t, seen[c.ID], "duplicate course id %d", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Lessons, "course %q has no lessons", c.Title)

		lessonSeen := make(map[uint]bool)
		for _, l := range c.Lessons {
			assert.False(t, lessonSeen[l.ID], "course %q duplicate lesson id %d", c.Title, l.ID)
			lessonSeen[l.ID] = true
		}
	}
}
