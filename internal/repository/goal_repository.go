package repository

import (
	"finedu_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// GoalRepository 处理学习目标的数据访问

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.Goal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) Update(goal *model.Goal) error {
	return r.DB.Model(&model.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"title":        goal.Title,
			"description":  goal.Description,
			"status":       goal.Status,
			"current":      goal.Current,
			"target":       goal.Target,
			"progress":     goal.Progress,
			"target_date":  goal.TargetDate,
			"goal_type":    goal.GoalType,
			"course_id":    goal.CourseID,
			"course_title": goal.CourseTitle,
			"updated_at":   time.Now(),
		}).Error
}

func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Goal{}, id).Error
}

func (r *GoalRepository) FindByUserID(userID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("user_id = ?", userID).Order("target_date").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindByUserIDAndGoalType(userID uint, goalType model.GoalType) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.DB.Where("user_id = ? AND goal_type = ?", userID, goalType).Order("target_date").Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) FindByIDAndUserID(id, userID uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&goal).Error
	return &goal, err
}
