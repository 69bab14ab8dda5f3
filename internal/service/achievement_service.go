package service

import (
	"finedu_backend/internal/model"
	"finedu_backend/internal/repository"
	"finedu_backend/pkg/logger"

	"go.uber.org/zap"
)

// 每完成一门课程获得的经验值
const xpPerCourse = 100

// AchievementService 勋章与经验值
type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
	}
}

// UserStats 用户经验值概要，等级每200经验升一级
type UserStats struct {
	XP           int `json:"xp"`
	Level        int `json:"level"`
	NextLevelXP  int `json:"nextLevelXp"`
	Achievements int `json:"achievements"`
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
}

func xpLevel(xp int) int {
	return xp / 200
}

// AwardCourseCompletion 课程完成时发放勋章和经验值。
// 失败只记日志，不影响进度写入主流程。
func (s *AchievementService) AwardCourseCompletion(userID uint, courseTitle string) {
	achievement := &model.Achievement{
		UserID:   userID,
		Name:     "Completed: " + courseTitle,
		Icon:     "trophy",
		EarnedXP: xpPerCourse,
	}
	if err := s.AchievementRepo.Create(achievement); err != nil {
		logger.Log.Warn("failed to record achievement",
			zap.Uint("userId", userID), zap.Error(err))
		return
	}
	if err := s.UserRepo.UpdateXP(userID, xpPerCourse); err != nil {
		logger.Log.Warn("failed to award xp",
			zap.Uint("userId", userID), zap.Error(err))
	}
}

func (s *AchievementService) GetUserAchievements(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUserID(userID)
}

func (s *AchievementService) GetUserStats(userID uint) (*UserStats, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	level := xpLevel(user.XP)
	return &UserStats{
		XP:           user.XP,
		Level:        level,
		NextLevelXP:  (level + 1) * 200,
		Achievements: len(achievements),
	}, nil
}

func (s *AchievementService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID: u.ID,
			Name:   u.Name,
			XP:     u.XP,
			Level:  xpLevel(u.XP),
		})
	}
	return entries, nil
}
