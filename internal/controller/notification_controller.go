package controller

import (
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// NotificationController 处理目标提醒的API请求

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// @Summary 获取提醒
// @Description 根据用户的学习目标即时推导截止日期与里程碑提醒
// @Tags 提醒
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/notifications [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	notifications, err := c.NotificationService.GetNotifications(ctx, user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, notifications)
}
