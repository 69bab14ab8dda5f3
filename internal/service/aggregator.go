package service

import (
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"time"
)

// LessonView 课时的聚合视图（不落库，每次读取时重算）
type LessonView struct {
	ID             uint       `json:"id"`
	Title          string     `json:"title"`
	Completed      bool       `json:"completed"`
	Locked         bool       `json:"locked"`
	VideoProgress  int        `json:"videoProgress"`
	VideoCompleted bool       `json:"videoCompleted"`
	QuizPassed     bool       `json:"quizPassed"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// CourseView 课程的聚合视图。ProgressPercentage 始终由课时记录重算，
// CourseCompletedAt 来自持久化的 CourseProgress 记录。
type CourseView struct {
	CourseID           uint          `json:"courseId"`
	Title              string        `json:"title"`
	Level              catalog.Level `json:"level"`
	TotalLessons       int           `json:"totalLessons"`
	CompletedLessons   int           `json:"completedLessons"`
	ProgressPercentage int           `json:"progressPercentage"`
	CourseCompleted    bool          `json:"courseCompleted"`
	CourseCompletedAt  *time.Time    `json:"courseCompletedAt,omitempty"`
	Lessons            []LessonView  `json:"lessons,omitempty"`
}

// ProgressSnapshot 用户全部进度的一次性快照：
// Lessons 按 课程ID -> 课时ID 索引，Courses 按 课程ID 索引。
// 缺失的记录等价于零值进度。
type ProgressSnapshot struct {
	Lessons map[uint]map[uint]model.LessonProgress
	Courses map[uint]model.CourseProgress
}

// AggregateCourse 把目录结构和该用户在单门课程上的进度记录合并成聚合视图。
// 纯函数，不做任何 I/O。未知课程ID返回 TotalLessons=0 的零值视图而不是错误。
//
// 完成规则：QuizPassed 为课时完成的唯一权威信号。
// 解锁规则：第一课永远解锁；之后的课时在其之前所有课时 QuizPassed 时解锁；
// 已完成的课时无论前置状态如何都不会上锁。
func AggregateCourse(cat *catalog.Catalog, courseID uint, lessons map[uint]model.LessonProgress, cp *model.CourseProgress) CourseView {
	course, ok := cat.Course(courseID)
	if !ok {
		return CourseView{CourseID: courseID}
	}

	view := CourseView{
		CourseID:     course.ID,
		Title:        course.Title,
		Level:        course.Level,
		TotalLessons: len(course.Lessons),
		Lessons:      make([]LessonView, 0, len(course.Lessons)),
	}

	allPreviousPassed := true
	for i, lesson := range course.Lessons {
		lp := lessons[lesson.ID]

		completed := lp.QuizPassed
		locked := i > 0 && !allPreviousPassed && !completed

		if completed {
			view.CompletedLessons++
		}

		view.Lessons = append(view.Lessons, LessonView{
			ID:             lesson.ID,
			Title:          lesson.Title,
			Completed:      completed,
			Locked:         locked,
			VideoProgress:  lp.VideoProgress,
			VideoCompleted: lp.VideoWatched,
			QuizPassed:     lp.QuizPassed,
			CompletedAt:    lp.CompletedAt,
		})

		if !lp.QuizPassed {
			allPreviousPassed = false
		}
	}

	view.ProgressPercentage = roundPercent(view.CompletedLessons, view.TotalLessons)
	view.CourseCompleted = view.TotalLessons > 0 && view.CompletedLessons == view.TotalLessons
	if cp != nil {
		view.CourseCompletedAt = cp.CompletedAt
	}

	return view
}

// AggregateAll 对目录中的每门课程跑一遍聚合。输入是批量取好的快照，
// 循环内不再有任何数据访问。
func AggregateAll(cat *catalog.Catalog, snap ProgressSnapshot) []CourseView {
	views := make([]CourseView, 0, cat.Len())
	for _, course := range cat.Courses() {
		var cp *model.CourseProgress
		if record, ok := snap.Courses[course.ID]; ok {
			record := record
			cp = &record
		}
		views = append(views, AggregateCourse(cat, course.ID, snap.Lessons[course.ID], cp))
	}
	return views
}

// roundPercent 四舍五入（0.5进位）的完成百分比，total 为 0 时返回 0
func roundPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}
