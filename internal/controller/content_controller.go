package controller

import (
	"errors"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController 处理课时媒体上传的API请求（仅管理员）

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary 上传课时视频
// @Description 上传指定课时的视频文件并生成缩略图
// @Tags 内容管理
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "课程ID"
// @Param lessonId path int true "课时ID"
// @Param file formData file true "视频文件"
// @Success 201 {object} util.Response
// @Router /api/admin/courses/{id}/lessons/{lessonId}/video [post]
func (c *ContentController) UploadLessonVideo(ctx *gin.Context) {
	courseID, lessonID, ok := lessonParams(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing video file")
		return
	}

	media, err := c.ContentService.UploadLessonVideo(ctx, courseID, lessonID, file)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, media)
}
