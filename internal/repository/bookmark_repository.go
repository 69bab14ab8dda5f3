package repository

import (
	"errors"
	"finedu_backend/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

func (r *BookmarkRepository) Create(bookmark *model.Bookmark) error {
	return r.DB.Create(bookmark).Error
}

func (r *BookmarkRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Bookmark{}, id).Error
}

func (r *BookmarkRepository) FindByIDAndUserID(id, userID uint) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&bookmark).Error
	return &bookmark, err
}

func (r *BookmarkRepository) FindByUserID(userID uint) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookmarks).Error
	return bookmarks, err
}

func (r *BookmarkRepository) ExistsByUserAndCourse(userID, courseID uint) (bool, error) {
	var bookmark model.Bookmark
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&bookmark).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
