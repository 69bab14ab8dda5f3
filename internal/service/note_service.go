package service

import (
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"finedu_backend/internal/util"
)

// NoteService 课时笔记
type NoteService struct {
	Catalog  *catalog.Catalog
	NoteRepo *repository.NoteRepository
}

func NewNoteService(cat *catalog.Catalog, noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{Catalog: cat, NoteRepo: noteRepo}
}

type CreateNoteRequest struct {
	CourseID uint   `json:"courseId" binding:"required"`
	LessonID uint   `json:"lessonId" binding:"required"`
	Content  string `json:"content" binding:"required,max=10000"`
}

type UpdateNoteRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

func (s *NoteService) CreateNote(userID uint, req CreateNoteRequest) (*model.Note, error) {
	if _, ok := s.Catalog.Lesson(req.CourseID, req.LessonID); !ok {
		return nil, util.ErrLessonNotFound
	}

	note := &model.Note{
		UserID:   userID,
		CourseID: req.CourseID,
		LessonID: req.LessonID,
		Content:  req.Content,
	}
	return note, s.NoteRepo.Create(note)
}

func (s *NoteService) GetNotes(userID, courseID uint) ([]model.Note, error) {
	return s.NoteRepo.FindByUser(userID, courseID)
}

func (s *NoteService) UpdateNote(userID, noteID uint, req UpdateNoteRequest) (*model.Note, error) {
	note, err := s.NoteRepo.FindByIDAndUserID(noteID, userID)
	if err != nil {
		return nil, util.ErrNoteNotFound
	}

	note.Content = req.Content
	return note, s.NoteRepo.Save(note)
}

func (s *NoteService) DeleteNote(userID, noteID uint) error {
	if _, err := s.NoteRepo.FindByIDAndUserID(noteID, userID); err != nil {
		return util.ErrNoteNotFound
	}
	return s.NoteRepo.Delete(noteID)
}
