package service

import (
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"finedu_backend/internal/util"
	"time"
)

// GoalService 处理学习目标的业务逻辑。
// 绑定课程的目标进度从聚合后的课程视图同步，不单独计数。
type GoalService struct {
	Catalog      *catalog.Catalog
	GoalRepo     *repository.GoalRepository
	ProgressRepo *repository.ProgressRepository
}

func NewGoalService(
	cat *catalog.Catalog,
	goalRepo *repository.GoalRepository,
	progressRepo *repository.ProgressRepository,
) *GoalService {
	return &GoalService{
		Catalog:      cat,
		GoalRepo:     goalRepo,
		ProgressRepo: progressRepo,
	}
}

// CreateGoalRequest 创建学习目标的请求结构
type CreateGoalRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"max=1000"`
	TargetDate  time.Time `json:"targetDate" binding:"required"`
	GoalType    string    `json:"goalType" binding:"required,oneof=short_term long_term"`
	CourseID    uint      `json:"courseId" binding:"required"`
}

// UpdateGoalRequest 更新学习目标的请求结构
type UpdateGoalRequest struct {
	Title       string    `json:"title" binding:"max=255"`
	Description string    `json:"description" binding:"max=1000"`
	TargetDate  time.Time `json:"targetDate"`
	GoalType    string    `json:"goalType" binding:"omitempty,oneof=short_term long_term"`
	CourseID    uint      `json:"courseId"`
}

// CreateGoal 创建新的学习目标
func (s *GoalService) CreateGoal(userID uint, req CreateGoalRequest) (*model.Goal, error) {
	course, ok := s.Catalog.Course(req.CourseID)
	if !ok {
		return nil, util.ErrCourseNotFound
	}

	goal := &model.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      model.GoalPending,
		Current:     0,
		Target:      100,
		Progress:    0,
		TargetDate:  req.TargetDate,
		GoalType:    model.GoalType(req.GoalType),
		CourseID:    req.CourseID,
		CourseTitle: course.Title,
	}

	return goal, s.GoalRepo.Create(goal)
}

// GetUserGoals 获取用户的所有学习目标
func (s *GoalService) GetUserGoals(userID uint) ([]model.Goal, error) {
	goals, err := s.GoalRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		s.updateGoalStatusAndProgress(&goals[i], userID)
	}

	return goals, nil
}

// GetUserGoalsByType 获取用户特定类型的学习目标
func (s *GoalService) GetUserGoalsByType(userID uint, goalType model.GoalType) ([]model.Goal, error) {
	goals, err := s.GoalRepo.FindByUserIDAndGoalType(userID, goalType)
	if err != nil {
		return nil, err
	}

	for i := range goals {
		s.updateGoalStatusAndProgress(&goals[i], userID)
	}

	return goals, nil
}

// GetGoalByID 获取特定ID的学习目标
func (s *GoalService) GetGoalByID(userID, goalID uint) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}

	s.updateGoalStatusAndProgress(goal, userID)

	return goal, nil
}

// UpdateGoal 更新学习目标
func (s *GoalService) UpdateGoal(userID, goalID uint, req UpdateGoalRequest) (*model.Goal, error) {
	goal, err := s.GoalRepo.FindByIDAndUserID(goalID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		goal.Title = req.Title
	}
	if req.Description != "" {
		goal.Description = req.Description
	}
	if !req.TargetDate.IsZero() {
		goal.TargetDate = req.TargetDate
	}
	if req.GoalType != "" {
		goal.GoalType = model.GoalType(req.GoalType)
	}
	if req.CourseID > 0 {
		course, ok := s.Catalog.Course(req.CourseID)
		if !ok {
			return nil, util.ErrCourseNotFound
		}
		goal.CourseID = req.CourseID
		goal.CourseTitle = course.Title
	}

	s.updateGoalStatusAndProgress(goal, userID)

	return goal, s.GoalRepo.Update(goal)
}

// DeleteGoal 删除学习目标
func (s *GoalService) DeleteGoal(userID, goalID uint) error {
	// 验证目标是否属于用户
	if _, err := s.GoalRepo.FindByIDAndUserID(goalID, userID); err != nil {
		return err
	}

	return s.GoalRepo.Delete(goalID)
}

// updateGoalStatusAndProgress 用绑定课程的聚合进度刷新目标状态
func (s *GoalService) updateGoalStatusAndProgress(goal *model.Goal, userID uint) {
	lessons, err := s.ProgressRepo.LessonProgressByCourse(userID, goal.CourseID)
	if err != nil {
		return
	}
	cp, err := s.ProgressRepo.FindCourseProgress(userID, goal.CourseID)
	if err != nil {
		return
	}

	view := AggregateCourse(s.Catalog, goal.CourseID, lessons, cp)

	goal.Progress = float64(view.ProgressPercentage)
	goal.Current = view.ProgressPercentage

	isCompleted := view.CourseCompletedAt != nil
	isExpired := !time.Now().Before(goal.TargetDate)

	if isCompleted {
		if isExpired {
			goal.Status = model.GoalCompletedExpired
		} else {
			goal.Status = model.GoalCompleted
		}
	} else if view.ProgressPercentage > 0 {
		if isExpired {
			goal.Status = model.GoalInProgressExpired
		} else {
			goal.Status = model.GoalInProgress
		}
	} else {
		if isExpired {
			goal.Status = model.GoalPendingExpired
		} else {
			goal.Status = model.GoalPending
		}
	}

	s.GoalRepo.Update(goal)
}
