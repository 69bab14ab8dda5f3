package repository

import (
	"finedu_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) Save(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Note{}, id).Error
}

func (r *NoteRepository) FindByIDAndUserID(id, userID uint) (*model.Note, error) {
	var note model.Note
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&note).Error
	return &note, err
}

// FindByUser courseID 为 0 时返回用户的所有笔记
func (r *NoteRepository) FindByUser(userID, courseID uint) ([]model.Note, error) {
	var notes []model.Note
	query := r.DB.Where("user_id = ?", userID)
	if courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}
	err := query.Order("created_at DESC").Find(&notes).Error
	return notes, err
}
