package controller

import (
	"errors"
	"finedu_backend/internal/service"
	"finedu_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookmarkController 处理课程收藏的API请求

type BookmarkController struct {
	BookmarkService *service.BookmarkService
}

func NewBookmarkController(bookmarkService *service.BookmarkService) *BookmarkController {
	return &BookmarkController{BookmarkService: bookmarkService}
}

// @Summary 收藏课程
// @Description 收藏指定课程，重复收藏返回错误
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookmark body service.CreateBookmarkRequest true "课程信息"
// @Success 201 {object} util.Response
// @Router /api/bookmarks [post]
func (c *BookmarkController) CreateBookmark(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateBookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	bookmark, err := c.BookmarkService.CreateBookmark(user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCourseNotFound):
			util.BadRequest(ctx, "unknown course")
		case errors.Is(err, util.ErrBookmarkExists):
			util.BadRequest(ctx, "course already bookmarked")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, bookmark)
}

// @Summary 获取收藏列表
// @Description 获取用户收藏的全部课程
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/bookmarks [get]
func (c *BookmarkController) GetBookmarks(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bookmarks, err := c.BookmarkService.GetBookmarks(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bookmarks)
}

// @Summary 取消收藏
// @Description 删除指定收藏
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收藏ID"
// @Success 200 {object} util.Response
// @Router /api/bookmarks/{id} [delete]
func (c *BookmarkController) DeleteBookmark(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	bookmarkID, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.BookmarkService.DeleteBookmark(user.UserID, bookmarkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": bookmarkID})
}
