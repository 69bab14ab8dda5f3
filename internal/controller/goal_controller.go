package controller

import (
	"errors"
	"finedu_backend/internal/model"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalController 处理学习目标的API请求

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

// @Summary 创建学习目标
// @Description 创建绑定某门课程的学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param goal body service.CreateGoalRequest true "学习目标信息"
// @Success 201 {object} util.Response
// @Router /api/goals [post]
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.CreateGoal(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.BadRequest(ctx, "unknown course")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 获取所有学习目标
// @Description 获取用户的所有学习目标，可按类型过滤
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type query string false "目标类型" Enums(short_term, long_term)
// @Success 200 {object} util.Response
// @Router /api/goals [get]
func (c *GoalController) GetUserGoals(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalType := ctx.Query("type")

	var (
		goals []model.Goal
		err   error
	)
	if goalType != "" {
		if goalType != string(model.GoalShortTerm) && goalType != string(model.GoalLongTerm) {
			util.BadRequest(ctx, "invalid goal type")
			return
		}
		goals, err = c.GoalService.GetUserGoalsByType(user.UserID, model.GoalType(goalType))
	} else {
		goals, err = c.GoalService.GetUserGoals(user.UserID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// @Summary 获取学习目标详情
// @Description 获取指定学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [get]
func (c *GoalController) GetGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, ok := idParam(ctx)
	if !ok {
		return
	}

	goal, err := c.GoalService.GetGoalByID(user.UserID, goalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 更新学习目标
// @Description 更新指定学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Param goal body service.UpdateGoalRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [put]
func (c *GoalController) UpdateGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.UpdateGoal(user.UserID, goalID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrCourseNotFound):
			util.BadRequest(ctx, "unknown course")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, goal)
}

// @Summary 删除学习目标
// @Description 删除指定学习目标
// @Tags 学习目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	goalID, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.GoalService.DeleteGoal(user.UserID, goalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": goalID})
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}
