package model

import "time"

// LessonProgress 按 用户+课程+课时 维度持久化的学习记录。
// QuizPassed 是课时完成的权威信号：测验通过即视为完成，与视频观看状态无关。
type LessonProgress struct {
	BaseModel
	UserID           uint       `gorm:"uniqueIndex:idx_user_course_lesson;type:bigint unsigned" json:"userId"`
	CourseID         uint       `gorm:"uniqueIndex:idx_user_course_lesson;type:bigint unsigned" json:"courseId"`
	LessonID         uint       `gorm:"uniqueIndex:idx_user_course_lesson;type:bigint unsigned" json:"lessonId"`
	VideoWatched     bool       `gorm:"default:false" json:"videoWatched"`
	QuizPassed       bool       `gorm:"default:false" json:"quizPassed"`
	VideoProgress    int        `gorm:"default:0" json:"videoProgressPercentage"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	VideoCompletedAt *time.Time `json:"videoCompletedAt,omitempty"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// CourseProgress 按 用户+课程 维度持久化的课程汇总记录，
// 在每次测验提交后由服务端重算并写回。
type CourseProgress struct {
	BaseModel
	UserID             uint       `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"userId"`
	CourseID           uint       `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"courseId"`
	ProgressPercentage int        `gorm:"default:0" json:"progressPercentage"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
