package controller

import (
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RecommendationController 处理课程推荐的API请求

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 获取课程推荐
// @Description 获取按相关度排序的课程推荐列表
// @Tags 推荐
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "返回条数，缺省为配置的top-N"
// @Success 200 {object} util.Response
// @Router /api/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			util.BadRequest(ctx, "invalid limit")
			return
		}
		limit = parsed
	}

	bundle, err := c.RecommendationService.GetBundle(ctx, user.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bundle.Recommendations)
}

// @Summary 获取学习路径
// @Description 获取个性化学习路径：已完成数和接下来的课程
// @Tags 推荐
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/recommendations/path [get]
func (c *RecommendationController) GetLearningPath(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bundle, err := c.RecommendationService.GetBundle(ctx, user.UserID, 0)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bundle.Path)
}

// @Summary 获取技能进度
// @Description 获取按主题汇总的技能掌握度
// @Tags 推荐
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/recommendations/skills [get]
func (c *RecommendationController) GetSkills(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bundle, err := c.RecommendationService.GetBundle(ctx, user.UserID, 0)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bundle.Skills)
}
