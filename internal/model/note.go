package model

// Note 学习笔记，挂在课程的某个课时下
type Note struct {
	BaseModel
	UserID   uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	CourseID uint   `gorm:"index;type:bigint unsigned" json:"courseId"`
	LessonID uint   `gorm:"type:bigint unsigned" json:"lessonId"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Note) TableName() string {
	return "notes"
}
