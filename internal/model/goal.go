package model

import "time"

type GoalStatus string

const (
	GoalPending           GoalStatus = "pending"
	GoalInProgress        GoalStatus = "in_progress"
	GoalCompleted         GoalStatus = "completed"
	GoalPendingExpired    GoalStatus = "pending_expired"
	GoalInProgressExpired GoalStatus = "in_progress_expired"
	GoalCompletedExpired  GoalStatus = "completed_expired"
)

type GoalType string

const (
	GoalShortTerm GoalType = "short_term"
	GoalLongTerm  GoalType = "long_term"
)

type Goal struct {
	BaseModel
	UserID      uint       `gorm:"index;type:bigint unsigned" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      GoalStatus `gorm:"type:enum('pending','in_progress','completed','pending_expired','in_progress_expired','completed_expired');default:'pending'" json:"status"`
	Current     int        `gorm:"default:0" json:"current"`
	Target      int        `gorm:"not null" json:"target"`
	Progress    float64    `gorm:"default:0" json:"progress"`
	TargetDate  time.Time  `gorm:"type:datetime" json:"targetDate"`
	GoalType    GoalType   `gorm:"type:enum('short_term','long_term');default:'short_term'" json:"goalType"`
	CourseID    uint       `gorm:"index;type:bigint unsigned" json:"courseId"`
	CourseTitle string     `gorm:"size:255" json:"courseTitle"`
}

func (Goal) TableName() string {
	return "goals"
}
