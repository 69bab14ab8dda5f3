package service

import (
	"finedu_backend/internal/catalog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedView(id uint, title string, level catalog.Level) CourseView {
	now := time.Now()
	return CourseView{
		CourseID:           id,
		Title:              title,
		Level:              level,
		TotalLessons:       2,
		CompletedLessons:   2,
		ProgressPercentage: 100,
		CourseCompleted:    true,
		CourseCompletedAt:  &now,
	}
}

func freshView(id uint, title string, level catalog.Level) CourseView {
	return CourseView{CourseID: id, Title: title, Level: level, TotalLessons: 2}
}

func enrolledView(id uint, title string, level catalog.Level, pct int) CourseView {
	return CourseView{
		CourseID:           id,
		Title:              title,
		Level:              level,
		TotalLessons:       2,
		CompletedLessons:   1,
		ProgressPercentage: pct,
	}
}

func bareConfig() ScoringConfig {
	return ScoringConfig{TopN: 6}
}

func TestScoreAllExcludesCompletedCourses(t *testing.T) {
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Intermediate),
	}

	ranked := scoreAll(views, bareConfig())

	require.Len(t, ranked, 1)
	assert.Equal(t, uint(2), ranked[0].CourseID)
}

func TestScoreAllThreeCourseProgression(t *testing.T) {
	// A 全部完成，B 紧随其后，C 的先修(B)未完成
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Intermediate),
		freshView(3, "C", catalog.Advanced),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 2)

	b := ranked[0]
	assert.Equal(t, uint(2), b.CourseID)
	assert.True(t, b.PrerequisitesMet)
	// 自然衔接 +45，中级且已完成≥1门 +15
	assert.Equal(t, 60, b.Score)
	assert.Equal(t, "Natural progression from your completed courses", b.Reason)

	c := ranked[1]
	assert.Equal(t, uint(3), c.CourseID)
	assert.False(t, c.PrerequisitesMet)
	assert.Equal(t, 5, c.Score)
	assert.Equal(t, "Prerequisites required", c.Reason)
}

func TestScoreAllZeroProgressBeginnerStart(t *testing.T) {
	views := []CourseView{
		freshView(1, "Personal Finance Basics", catalog.Beginner),
		freshView(2, "Investment Basics", catalog.Intermediate),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 2)

	first := ranked[0]
	assert.Equal(t, uint(1), first.CourseID)
	// 入门 +40，初级且已完成≤1门 +10
	assert.Equal(t, 50, first.Score)
	assert.Equal(t, "Perfect for getting started", first.Reason)

	// 第2门课先修未满足
	assert.Equal(t, 5, ranked[1].Score)
	assert.False(t, ranked[1].PrerequisitesMet)
}

func TestScoreAllNonBeginnerAtPositionZero(t *testing.T) {
	// 位置0没有先修，但级别不符时拿不到入门加分
	views := []CourseView{
		freshView(1, "Advanced Trading", catalog.Advanced),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].PrerequisitesMet)
	assert.Equal(t, 0, ranked[0].Score)
	assert.Equal(t, "Recommended for you", ranked[0].Reason)
}

func TestScoreAllEnrolledBeatsEverything(t *testing.T) {
	// 已注册(百分比>0)的课程走 +50 分支，即使先修未满足
	views := []CourseView{
		freshView(1, "A", catalog.Advanced),
		freshView(2, "B", catalog.Beginner),
		enrolledView(3, "C", catalog.Advanced, 50),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 3)

	assert.Equal(t, uint(3), ranked[0].CourseID)
	assert.Equal(t, 50, ranked[0].Score)
	assert.Equal(t, "Continue your learning journey", ranked[0].Reason)
	assert.False(t, ranked[0].PrerequisitesMet)
}

func TestScoreAllNaturalProgressionAfterTwoCompleted(t *testing.T) {
	// 1、2 完成后第3门紧邻 lastCompletedIndex，第4门的先修(第3门)未完成
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		completedView(2, "B", catalog.Beginner),
		freshView(3, "C", catalog.Intermediate),
		freshView(4, "D", catalog.Intermediate),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 2)

	c := ranked[0]
	assert.Equal(t, uint(3), c.CourseID)
	// +45 自然衔接 +15 中级加成
	assert.Equal(t, 60, c.Score)

	d := ranked[1]
	assert.Equal(t, uint(4), d.CourseID)
	assert.Equal(t, 5, d.Score)
}

func TestScoreAllGapCourseGetsOnlyLevelBonus(t *testing.T) {
	// 第1、3门完成，第2门留了缺口：先修满足但位于 lastCompletedIndex
	// 之前，主分支都不命中，只拿级别加成
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Intermediate),
		completedView(3, "C", catalog.Intermediate),
		freshView(4, "D", catalog.Advanced),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 2)

	byID := make(map[uint]RecommendedCourse, len(ranked))
	for _, rc := range ranked {
		byID[rc.CourseID] = rc
	}

	b := byID[2]
	assert.True(t, b.PrerequisitesMet)
	// 中级且已完成≥1门 → +15，无主分支得分
	assert.Equal(t, 15, b.Score)
	assert.Equal(t, "Recommended for you", b.Reason)

	d := byID[4]
	assert.True(t, d.PrerequisitesMet, "course 3 completed unlocks course 4")
	// index 3 == lastCompletedIndex(2)+1 → +45，高级且已完成≥2门 → +20
	assert.Equal(t, 65, d.Score)
	assert.Equal(t, "Natural progression from your completed courses", d.Reason)
}

func TestScoreAllFoundationalBonusAppliesToAllBranches(t *testing.T) {
	cfg := ScoringConfig{FoundationalTitles: []string{"Personal Finance Basics", "Budgeting Fundamentals"}, TopN: 6}
	views := []CourseView{
		enrolledView(1, "Personal Finance Basics", catalog.Beginner, 40),
		freshView(2, "Budgeting Fundamentals", catalog.Beginner),
		freshView(3, "Investment Basics", catalog.Intermediate),
	}

	ranked := scoreAll(views, cfg)
	require.Len(t, ranked, 3)

	assert.Equal(t, uint(1), ranked[0].CourseID)
	// +50 已注册 +10 基础课
	assert.Equal(t, 60, ranked[0].Score)

	// 第2门：先修(第1门)未完成 → 固定5 +10 基础课
	var second RecommendedCourse
	for _, rc := range ranked {
		if rc.CourseID == 2 {
			second = rc
		}
	}
	assert.Equal(t, 15, second.Score)
	assert.False(t, second.PrerequisitesMet)
}

func TestScoreAllStableTieBreakPreservesCatalogOrder(t *testing.T) {
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Beginner),
		freshView(3, "C", catalog.Advanced),
		freshView(4, "D", catalog.Advanced),
	}

	ranked := scoreAll(views, bareConfig())
	require.Len(t, ranked, 3)
	// C 和 D 的先修都未满足，同为5分，保持目录顺序
	assert.Equal(t, uint(3), ranked[1].CourseID)
	assert.Equal(t, uint(4), ranked[2].CourseID)
}

func TestRecommendCoursesTruncatesToLimit(t *testing.T) {
	views := make([]CourseView, 0, 8)
	for i := uint(1); i <= 8; i++ {
		views = append(views, freshView(i, "Course", catalog.Beginner))
	}

	assert.Len(t, RecommendCourses(views, bareConfig(), 4), 4)
	assert.Len(t, RecommendCourses(views, bareConfig(), 0), 6, "default top-N is 6")
}

func TestRecommendCoursesDeterministic(t *testing.T) {
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Intermediate),
		freshView(3, "C", catalog.Advanced),
		enrolledView(4, "D", catalog.Beginner, 30),
	}
	cfg := DefaultScoringConfig()

	first := RecommendCourses(views, cfg, 0)
	second := RecommendCourses(views, cfg, 0)

	assert.Equal(t, first, second)
}

func TestBuildLearningPathSkipsUnmetWithoutBackfill(t *testing.T) {
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Intermediate),
		freshView(3, "C", catalog.Advanced),
		freshView(4, "D", catalog.Advanced),
	}

	path := BuildLearningPath(views, bareConfig())

	assert.Equal(t, 1, path.CompletedCount)
	assert.Equal(t, 4, path.TotalPath)
	// 只有 B 的先修满足，C、D 不回填
	require.Len(t, path.Next, 1)
	assert.Equal(t, uint(2), path.Next[0].CourseID)
}

func TestBuildLearningPathCapsAtThree(t *testing.T) {
	// 隔一门完成一门：2、4、6 的先修都满足，7 的先修(6)未完成。
	// 排名里 7 的 5 分高于 2、4 的 0 分，但仍被跳过且不占名额。
	views := []CourseView{
		completedView(1, "A", catalog.Beginner),
		freshView(2, "B", catalog.Beginner),
		completedView(3, "C", catalog.Beginner),
		freshView(4, "D", catalog.Beginner),
		completedView(5, "E", catalog.Beginner),
		freshView(6, "F", catalog.Beginner),
		freshView(7, "G", catalog.Beginner),
	}

	path := BuildLearningPath(views, bareConfig())

	assert.Equal(t, 3, path.CompletedCount)
	assert.Equal(t, 7, path.TotalPath)
	require.Len(t, path.Next, 3)
	// 6 紧邻最后完成的课(+45)排第一，2、4 按目录顺序补齐
	assert.Equal(t, uint(6), path.Next[0].CourseID)
	assert.Equal(t, uint(2), path.Next[1].CourseID)
	assert.Equal(t, uint(4), path.Next[2].CourseID)
}

func TestSkillProgressionAccumulatesFromCompletedTitles(t *testing.T) {
	cfg := DefaultScoringConfig()
	views := []CourseView{
		completedView(1, "Personal Finance Basics", catalog.Beginner),
		completedView(2, "Budgeting Fundamentals", catalog.Beginner),
		freshView(3, "Investment Basics", catalog.Intermediate),
	}

	skills := SkillProgression(views, cfg)
	require.Len(t, skills, 5)

	byName := make(map[string]SkillProgress, len(skills))
	for _, s := range skills {
		byName[s.Skill] = s
	}

	// "Personal Finance Basics" 同时命中 "Personal Finance" 和 "Basics"，只计一次
	lit := byName["Financial Literacy"]
	assert.Equal(t, 25, lit.Points)
	assert.Equal(t, 1, lit.Level)
	assert.Equal(t, "Beginner", lit.LevelName)

	// 未完成的课程不计分
	inv := byName["Investment Knowledge"]
	assert.Equal(t, 0, inv.Points)
	assert.Equal(t, "Novice", inv.LevelName)
}

func TestSkillProgressionCappedProgressUncappedLevel(t *testing.T) {
	cfg := ScoringConfig{
		SkillRules: []SkillRule{{Skill: "Budgeting Skills", Keywords: []string{"Budget"}, Points: 40}},
	}
	views := []CourseView{
		completedView(1, "Budgeting 101", catalog.Beginner),
		completedView(2, "Budgeting 201", catalog.Intermediate),
		completedView(3, "Budget Mastery", catalog.Advanced),
	}

	skills := SkillProgression(views, cfg)
	require.Len(t, skills, 1)

	s := skills[0]
	assert.Equal(t, 120, s.Points)
	assert.Equal(t, 100, s.Progress, "progress is capped at 100")
	assert.Equal(t, 4, s.Level, "level uses uncapped points: floor(120/25)=4")
	assert.Equal(t, "Expert", s.LevelName)
}

func TestSkillProgressionLevelClampedAtExpert(t *testing.T) {
	cfg := ScoringConfig{
		SkillRules: []SkillRule{{Skill: "Financial Planning", Keywords: []string{"Plan"}, Points: 50}},
	}
	views := []CourseView{
		completedView(1, "Plan A", catalog.Beginner),
		completedView(2, "Plan B", catalog.Beginner),
		completedView(3, "Plan C", catalog.Beginner),
	}

	skills := SkillProgression(views, cfg)
	require.Len(t, skills, 1)
	assert.Equal(t, 150, skills[0].Points)
	assert.Equal(t, 4, skills[0].Level, "floor(150/25)=6 clamps to 4")
}

func TestDefaultScoringConfigTables(t *testing.T) {
	cfg := DefaultScoringConfig()

	assert.Equal(t, 6, cfg.TopN)
	assert.Contains(t, cfg.FoundationalTitles, "Personal Finance Basics")
	assert.Contains(t, cfg.FoundationalTitles, "Budgeting Fundamentals")
	require.Len(t, cfg.SkillRules, 5)
}
