package repository

import (
	"errors"
	"finedu_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

// ProgressRepository 进度存取。读取端一律把"查无记录"当成零值进度，不报错。
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// SnapshotByUser 一次性取出用户的全部课时与课程进度，
// 按 课程ID -> 课时ID 建索引。避免在目录循环里逐课程查询。
func (r *ProgressRepository) SnapshotByUser(userID uint) (map[uint]map[uint]model.LessonProgress, map[uint]model.CourseProgress, error) {
	var lessonRecords []model.LessonProgress
	if err := r.DB.Where("user_id = ?", userID).Find(&lessonRecords).Error; err != nil {
		return nil, nil, err
	}

	lessons := make(map[uint]map[uint]model.LessonProgress)
	for _, lp := range lessonRecords {
		if lessons[lp.CourseID] == nil {
			lessons[lp.CourseID] = make(map[uint]model.LessonProgress)
		}
		lessons[lp.CourseID][lp.LessonID] = lp
	}

	var courseRecords []model.CourseProgress
	if err := r.DB.Where("user_id = ?", userID).Find(&courseRecords).Error; err != nil {
		return nil, nil, err
	}

	courses := make(map[uint]model.CourseProgress, len(courseRecords))
	for _, cp := range courseRecords {
		courses[cp.CourseID] = cp
	}

	return lessons, courses, nil
}

// LessonProgressByCourse 取单门课程的课时进度，按课时ID建索引
func (r *ProgressRepository) LessonProgressByCourse(userID, courseID uint) (map[uint]model.LessonProgress, error) {
	var records []model.LessonProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).Find(&records).Error
	if err != nil {
		return nil, err
	}

	byLesson := make(map[uint]model.LessonProgress, len(records))
	for _, lp := range records {
		byLesson[lp.LessonID] = lp
	}
	return byLesson, nil
}

// FindCourseProgress 无记录时返回 (nil, nil)
func (r *ProgressRepository) FindCourseProgress(userID, courseID uint) (*model.CourseProgress, error) {
	var cp model.CourseProgress
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// FindLessonProgress 无记录时返回 (nil, nil)
func (r *ProgressRepository) FindLessonProgress(userID, courseID, lessonID uint) (*model.LessonProgress, error) {
	var lp model.LessonProgress
	err := r.DB.Where("user_id = ? AND course_id = ? AND lesson_id = ?", userID, courseID, lessonID).First(&lp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lp, nil
}

func (r *ProgressRepository) SaveLessonProgress(lp *model.LessonProgress) error {
	if lp.ID == 0 {
		return r.DB.Create(lp).Error
	}
	return r.DB.Model(&model.LessonProgress{}).
		Where("id = ?", lp.ID).
		Updates(map[string]interface{}{
			"video_watched":      lp.VideoWatched,
			"quiz_passed":        lp.QuizPassed,
			"video_progress":     lp.VideoProgress,
			"completed_at":       lp.CompletedAt,
			"video_completed_at": lp.VideoCompletedAt,
			"updated_at":         time.Now(),
		}).Error
}

// UpsertCourseProgress 按 用户+课程 覆盖写入汇总记录
func (r *ProgressRepository) UpsertCourseProgress(cp *model.CourseProgress) error {
	existing, err := r.FindCourseProgress(cp.UserID, cp.CourseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.DB.Create(cp).Error
	}

	cp.ID = existing.ID
	return r.DB.Model(&model.CourseProgress{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"progress_percentage": cp.ProgressPercentage,
			"completed_at":        cp.CompletedAt,
			"updated_at":          time.Now(),
		}).Error
}
