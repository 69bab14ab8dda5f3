package service

import (
	"context"
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"finedu_backend/internal/util"
	"finedu_backend/pkg/monitoring"
	"time"
)

// ProgressService 负责进度的读取聚合与写入。
// 读取端把批量快照交给纯聚合函数；写入端更新课时记录后
// 重算并回写课程汇总。
type ProgressService struct {
	Catalog      *catalog.Catalog
	ProgressRepo *repository.ProgressRepository
	UserRepo     *repository.UserRepository
	Notifier     Notifier
	Cache        *RecommendationService
	Achievements *AchievementService
}

func NewProgressService(
	cat *catalog.Catalog,
	progressRepo *repository.ProgressRepository,
	userRepo *repository.UserRepository,
	notifier Notifier,
	cache *RecommendationService,
	achievements *AchievementService,
) *ProgressService {
	return &ProgressService{
		Catalog:      cat,
		ProgressRepo: progressRepo,
		UserRepo:     userRepo,
		Notifier:     notifier,
		Cache:        cache,
		Achievements: achievements,
	}
}

// GetCourseOverview 返回用户在全部课程上的聚合视图，一次批量查询
func (s *ProgressService) GetCourseOverview(userID uint) ([]CourseView, error) {
	lessons, courses, err := s.ProgressRepo.SnapshotByUser(userID)
	if err != nil {
		return nil, err
	}
	return AggregateAll(s.Catalog, ProgressSnapshot{Lessons: lessons, Courses: courses}), nil
}

// GetCourse 返回单门课程的聚合视图，含课时列表
func (s *ProgressService) GetCourse(userID, courseID uint) (CourseView, error) {
	if _, ok := s.Catalog.Course(courseID); !ok {
		return CourseView{CourseID: courseID}, util.ErrCourseNotFound
	}

	lessons, err := s.ProgressRepo.LessonProgressByCourse(userID, courseID)
	if err != nil {
		return CourseView{CourseID: courseID}, err
	}

	cp, err := s.ProgressRepo.FindCourseProgress(userID, courseID)
	if err != nil {
		return CourseView{CourseID: courseID}, err
	}

	return AggregateCourse(s.Catalog, courseID, lessons, cp), nil
}

// RecordVideoProgress 记录视频观看百分比，夹取到 [0,100]。
// 到达 100 视为看完，但课时完成仍以测验为准。
func (s *ProgressService) RecordVideoProgress(ctx context.Context, userID, courseID, lessonID uint, percentage int) (*model.LessonProgress, error) {
	if _, ok := s.Catalog.Lesson(courseID, lessonID); !ok {
		return nil, util.ErrLessonNotFound
	}

	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	lp, err := s.ProgressRepo.FindLessonProgress(userID, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if lp == nil {
		lp = &model.LessonProgress{UserID: userID, CourseID: courseID, LessonID: lessonID}
	}

	// 进度只前进不后退
	if percentage > lp.VideoProgress {
		lp.VideoProgress = percentage
	}
	if lp.VideoProgress >= 100 && !lp.VideoWatched {
		lp.VideoWatched = true
		now := time.Now()
		lp.VideoCompletedAt = &now
	}

	if err := s.ProgressRepo.SaveLessonProgress(lp); err != nil {
		return nil, err
	}

	s.Cache.InvalidateUser(ctx, userID)
	return lp, nil
}

// SubmitQuiz 提交测验结果。测验通过是课时完成的唯一权威信号：
// 通过即写入 QuizPassed 与完成时间，然后重算课程汇总并回写。
// 未解锁的课时拒绝提交。
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, courseID, lessonID uint, passed bool) (CourseView, error) {
	course, ok := s.Catalog.Course(courseID)
	if !ok {
		return CourseView{CourseID: courseID}, util.ErrCourseNotFound
	}
	if _, ok := s.Catalog.Lesson(courseID, lessonID); !ok {
		return CourseView{CourseID: courseID}, util.ErrLessonNotFound
	}

	lessons, err := s.ProgressRepo.LessonProgressByCourse(userID, courseID)
	if err != nil {
		return CourseView{CourseID: courseID}, err
	}

	cp, err := s.ProgressRepo.FindCourseProgress(userID, courseID)
	if err != nil {
		return CourseView{CourseID: courseID}, err
	}

	before := AggregateCourse(s.Catalog, courseID, lessons, cp)
	for _, lv := range before.Lessons {
		if lv.ID == lessonID && lv.Locked {
			return before, util.ErrLessonLocked
		}
	}

	lp, err := s.ProgressRepo.FindLessonProgress(userID, courseID, lessonID)
	if err != nil {
		return before, err
	}
	if lp == nil {
		lp = &model.LessonProgress{UserID: userID, CourseID: courseID, LessonID: lessonID}
	}

	newlyPassed := false
	if passed {
		monitoring.QuizSubmissions.WithLabelValues("passed").Inc()
		if !lp.QuizPassed {
			lp.QuizPassed = true
			now := time.Now()
			lp.CompletedAt = &now
			newlyPassed = true
		}
	} else {
		monitoring.QuizSubmissions.WithLabelValues("failed").Inc()
	}

	if err := s.ProgressRepo.SaveLessonProgress(lp); err != nil {
		return before, err
	}

	lessons[lessonID] = *lp
	after := AggregateCourse(s.Catalog, courseID, lessons, cp)

	// 回写课程汇总
	record := model.CourseProgress{
		UserID:             userID,
		CourseID:           courseID,
		ProgressPercentage: after.ProgressPercentage,
	}
	if cp != nil {
		record.CompletedAt = cp.CompletedAt
	}

	newlyCompleted := after.CourseCompleted && record.CompletedAt == nil
	if newlyCompleted {
		now := time.Now()
		record.CompletedAt = &now
	}

	if err := s.ProgressRepo.UpsertCourseProgress(&record); err != nil {
		return after, err
	}
	after.CourseCompletedAt = record.CompletedAt

	if newlyPassed {
		s.Notifier.Notify("lesson_completed", map[string]interface{}{
			"userId":   userID,
			"courseId": courseID,
			"lessonId": lessonID,
		})
	}
	if newlyCompleted {
		s.Notifier.Notify("course_completed", map[string]interface{}{
			"userId":      userID,
			"courseId":    courseID,
			"courseTitle": course.Title,
		})
		s.Achievements.AwardCourseCompletion(userID, course.Title)
	}

	s.Cache.InvalidateUser(ctx, userID)
	return after, nil
}
