package controller

import (
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AchievementController 处理勋章与排行榜的API请求

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary 获取勋章列表
// @Description 获取用户获得的全部勋章
// @Tags 成就
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetAchievements(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}

// @Summary 获取排行榜
// @Description 按经验值获取排行榜
// @Tags 成就
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回条数，缺省10"
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *AchievementController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			util.BadRequest(ctx, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := c.AchievementService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
