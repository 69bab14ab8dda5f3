package util

import "errors"

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrLessonLocked     = errors.New("lesson is locked, complete previous quizzes first")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrBookmarkExists   = errors.New("course already bookmarked")
	ErrPermissionDenied = errors.New("permission denied")
)
