package service

import (
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"finedu_backend/internal/util"
)

// BookmarkService 课程收藏，同一课程每用户最多一条
type BookmarkService struct {
	Catalog      *catalog.Catalog
	BookmarkRepo *repository.BookmarkRepository
}

func NewBookmarkService(cat *catalog.Catalog, bookmarkRepo *repository.BookmarkRepository) *BookmarkService {
	return &BookmarkService{Catalog: cat, BookmarkRepo: bookmarkRepo}
}

type CreateBookmarkRequest struct {
	CourseID uint `json:"courseId" binding:"required"`
}

func (s *BookmarkService) CreateBookmark(userID uint, req CreateBookmarkRequest) (*model.Bookmark, error) {
	if _, ok := s.Catalog.Course(req.CourseID); !ok {
		return nil, util.ErrCourseNotFound
	}

	exists, err := s.BookmarkRepo.ExistsByUserAndCourse(userID, req.CourseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrBookmarkExists
	}

	bookmark := &model.Bookmark{UserID: userID, CourseID: req.CourseID}
	return bookmark, s.BookmarkRepo.Create(bookmark)
}

func (s *BookmarkService) GetBookmarks(userID uint) ([]model.Bookmark, error) {
	return s.BookmarkRepo.FindByUserID(userID)
}

func (s *BookmarkService) DeleteBookmark(userID, bookmarkID uint) error {
	if _, err := s.BookmarkRepo.FindByIDAndUserID(bookmarkID, userID); err != nil {
		return err
	}
	return s.BookmarkRepo.Delete(bookmarkID)
}
