package controller

import (
	"errors"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController 处理用户信息的API请求

type UserController struct {
	AchievementService *service.AchievementService
}

func NewUserController(achievementService *service.AchievementService) *UserController {
	return &UserController{AchievementService: achievementService}
}

// @Summary 获取用户统计
// @Description 获取当前用户的经验值、等级和勋章数
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/users/me/stats [get]
func (c *UserController) GetStats(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.AchievementService.GetUserStats(user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
