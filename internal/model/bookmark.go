package model

// Bookmark 课程收藏，同一用户对同一课程只保留一条
type Bookmark struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_course_bookmark;type:bigint unsigned" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course_bookmark;type:bigint unsigned" json:"courseId"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
