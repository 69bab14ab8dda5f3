package service

import (
	"context"
	"encoding/json"
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/config"
	"finedu_backend/internal/repository"
	"finedu_backend/pkg/logger"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecommendationBundle 一次请求返回的完整推荐数据，整体缓存
type RecommendationBundle struct {
	Recommendations []RecommendedCourse `json:"recommendations"`
	Path            LearningPath        `json:"path"`
	Skills          []SkillProgress     `json:"skills"`
}

// RecommendationService 在纯打分函数外面包一层数据获取和 Redis 缓存。
// 缓存未命中或 Redis 不可用时直接现算，失败只记日志不向上抛。
type RecommendationService struct {
	Catalog      *catalog.Catalog
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
	Scoring      ScoringConfig
	CacheTTL     time.Duration
}

func NewRecommendationService(
	cat *catalog.Catalog,
	progressRepo *repository.ProgressRepository,
	redisClient *redis.Client,
	cfg *config.Config,
) *RecommendationService {
	scoring := DefaultScoringConfig()
	if cfg.Recommendation.TopN > 0 {
		scoring.TopN = cfg.Recommendation.TopN
	}
	if len(cfg.Recommendation.FoundationalTitles) > 0 {
		scoring.FoundationalTitles = cfg.Recommendation.FoundationalTitles
	}

	ttl := 10 * time.Minute
	if cfg.Recommendation.CacheTTLMinutes > 0 {
		ttl = time.Duration(cfg.Recommendation.CacheTTLMinutes) * time.Minute
	}

	return &RecommendationService{
		Catalog:      cat,
		ProgressRepo: progressRepo,
		Redis:        redisClient,
		Scoring:      scoring,
		CacheTTL:     ttl,
	}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("recommendations:user:%d", userID)
}

// GetBundle 返回用户的推荐列表、学习路径和技能进度
func (s *RecommendationService) GetBundle(ctx context.Context, userID uint, limit int) (*RecommendationBundle, error) {
	if limit <= 0 && s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey(userID)).Result()
		if err == nil {
			var bundle RecommendationBundle
			if jsonErr := json.Unmarshal([]byte(cached), &bundle); jsonErr == nil {
				return &bundle, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("recommendation cache read failed", zap.Error(err))
		}
	}

	lessons, courses, err := s.ProgressRepo.SnapshotByUser(userID)
	if err != nil {
		return nil, err
	}
	views := AggregateAll(s.Catalog, ProgressSnapshot{Lessons: lessons, Courses: courses})

	bundle := &RecommendationBundle{
		Recommendations: RecommendCourses(views, s.Scoring, limit),
		Path:            BuildLearningPath(views, s.Scoring),
		Skills:          SkillProgression(views, s.Scoring),
	}

	if limit <= 0 && s.Redis != nil {
		if data, jsonErr := json.Marshal(bundle); jsonErr == nil {
			if err := s.Redis.Set(ctx, cacheKey(userID), data, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("recommendation cache write failed", zap.Error(err))
			}
		}
	}

	return bundle, nil
}

// InvalidateUser 在进度写入后清掉缓存，失败只记日志
func (s *RecommendationService) InvalidateUser(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, cacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("recommendation cache invalidation failed",
			zap.Uint("userId", userID), zap.Error(err))
	}
}
