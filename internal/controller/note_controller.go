package controller

import (
	"errors"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// NoteController 处理课时笔记的API请求

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// @Summary 创建笔记
// @Description 为指定课时创建笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body service.CreateNoteRequest true "笔记内容"
// @Success 201 {object} util.Response
// @Router /api/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.CreateNote(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrLessonNotFound) {
			util.BadRequest(ctx, "unknown lesson")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, note)
}

// @Summary 获取笔记列表
// @Description 获取用户的笔记，可按课程过滤
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "课程ID"
// @Success 200 {object} util.Response
// @Router /api/notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var courseID uint
	if raw := ctx.Query("courseId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid course id")
			return
		}
		courseID = uint(parsed)
	}

	notes, err := c.NoteService.GetNotes(user.UserID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, notes)
}

// @Summary 更新笔记
// @Description 更新指定笔记内容
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "笔记ID"
// @Param note body service.UpdateNoteRequest true "笔记内容"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	noteID, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.UpdateNote(user.UserID, noteID, req)
	if err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, note)
}

// @Summary 删除笔记
// @Description 删除指定笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "笔记ID"
// @Success 200 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	noteID, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.NoteService.DeleteNote(user.UserID, noteID); err != nil {
		if errors.Is(err, util.ErrNoteNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": noteID})
}
