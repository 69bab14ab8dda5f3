package controller

import (
	"errors"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CourseController 处理课程与进度的API请求

type CourseController struct {
	ProgressService *service.ProgressService
}

func NewCourseController(progressService *service.ProgressService) *CourseController {
	return &CourseController{ProgressService: progressService}
}

// @Summary 获取课程总览
// @Description 获取全部课程及当前用户的聚合进度
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.ProgressService.GetCourseOverview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, views)
}

// @Summary 获取课程详情
// @Description 获取单门课程的课时列表、解锁状态和完成进度
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	view, err := c.ProgressService.GetCourse(user.UserID, uint(courseID))
	if err != nil {
		if errors.Is(err, util.ErrCourseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// VideoProgressRequest 视频进度上报
type VideoProgressRequest struct {
	Percentage int `json:"percentage" binding:"min=0,max=100"`
}

// @Summary 上报视频进度
// @Description 记录课时视频的观看百分比
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "课程ID"
// @Param lessonId path int true "课时ID"
// @Param progress body VideoProgressRequest true "观看百分比"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId}/video-progress [post]
func (c *CourseController) RecordVideoProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, lessonID, ok := lessonParams(ctx)
	if !ok {
		return
	}

	var req VideoProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lp, err := c.ProgressService.RecordVideoProgress(ctx, user.UserID, courseID, lessonID, req.Percentage)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, lp)
}

// QuizSubmissionRequest 测验结果提交
type QuizSubmissionRequest struct {
	Passed bool `json:"passed"`
}

// @Summary 提交测验结果
// @Description 提交课时测验结果，通过即完成该课时并刷新课程进度
// @Tags 课程
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "课程ID"
// @Param lessonId path int true "课时ID"
// @Param result body QuizSubmissionRequest true "测验结果"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId}/quiz [post]
func (c *CourseController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, lessonID, ok := lessonParams(ctx)
	if !ok {
		return
	}

	var req QuizSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.ProgressService.SubmitQuiz(ctx, user.UserID, courseID, lessonID, req.Passed)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound), errors.Is(err, util.ErrLessonNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrLessonLocked):
			util.BadRequest(ctx, "lesson is locked")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, view)
}

func lessonParams(ctx *gin.Context) (uint, uint, bool) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return 0, 0, false
	}
	lessonID, err := strconv.ParseUint(ctx.Param("lessonId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return 0, 0, false
	}
	return uint(courseID), uint(lessonID), true
}
