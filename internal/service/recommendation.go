package service

import (
	"finedu_backend/internal/catalog"
	"sort"
	"strings"
)

// RecommendedCourse 推荐结果中的一项，Score 越高越靠前
type RecommendedCourse struct {
	CourseID         uint          `json:"courseId"`
	Title            string        `json:"title"`
	Level            catalog.Level `json:"level"`
	Score            int           `json:"score"`
	Reason           string        `json:"reason"`
	PrerequisitesMet bool          `json:"prerequisitesMet"`
}

// LearningPath 个性化学习路径：已完成数、接下来的三门课、目录总数
type LearningPath struct {
	CompletedCount int                 `json:"completedCount"`
	Next           []RecommendedCourse `json:"next"`
	TotalPath      int                 `json:"totalPath"`
}

// SkillProgress 按主题的掌握度估计。
// 注意：Level 用未封顶的累计分除以25计算，Progress 用封顶到100的分数，
// 两者口径不同但都是对外承诺的行为，不要"顺手修掉"。
type SkillProgress struct {
	Skill     string `json:"skill"`
	Points    int    `json:"points"`
	Progress  int    `json:"progress"`
	Level     int    `json:"level"`
	LevelName string `json:"levelName"`
}

// SkillRule 课程标题关键字到技能的映射规则（大小写敏感的子串匹配）
type SkillRule struct {
	Skill    string
	Keywords []string
	Points   int
}

// ScoringConfig 推荐引擎的打分配置表，测试可以替换成fixture
type ScoringConfig struct {
	FoundationalTitles []string
	SkillRules         []SkillRule
	TopN               int
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		FoundationalTitles: []string{
			"Personal Finance Basics",
			"Budgeting Fundamentals",
		},
		SkillRules: []SkillRule{
			{Skill: "Financial Literacy", Keywords: []string{"Personal Finance", "Basics"}, Points: 25},
			{Skill: "Investment Knowledge", Keywords: []string{"Investment", "Stock"}, Points: 30},
			{Skill: "Budgeting Skills", Keywords: []string{"Budget"}, Points: 35},
			{Skill: "Debt Management", Keywords: []string{"Debt", "Credit"}, Points: 30},
			{Skill: "Financial Planning", Keywords: []string{"Planning", "Goal"}, Points: 25},
		},
		TopN: 6,
	}
}

var skillLevelNames = [5]string{"Novice", "Beginner", "Intermediate", "Advanced", "Expert"}

// 打分口径：enrolled = 重算百分比 > 0，completed = 有完成时间戳
func viewCompleted(v CourseView) bool {
	return v.CourseCompletedAt != nil
}

// scoreAll 对全部未完成课程打分并稳定排序（分数降序，同分保持目录顺序）。
// 对固定输入完全确定，不依赖map遍历顺序。
func scoreAll(views []CourseView, cfg ScoringConfig) []RecommendedCourse {
	completedCount := 0
	lastCompletedIndex := -1
	for i, v := range views {
		if viewCompleted(v) {
			completedCount++
			lastCompletedIndex = i
		}
	}

	foundational := make(map[string]bool, len(cfg.FoundationalTitles))
	for _, t := range cfg.FoundationalTitles {
		foundational[t] = true
	}

	ranked := make([]RecommendedCourse, 0, len(views))
	for i, v := range views {
		if viewCompleted(v) {
			// 已完成的课程不参与推荐
			continue
		}

		prereqMet := i == 0 || viewCompleted(views[i-1])

		score := 0
		reason := ""
		switch {
		case v.ProgressPercentage > 0:
			score += 50
			reason = "Continue your learning journey"
		case prereqMet:
			if completedCount == 0 && v.Level == catalog.Beginner {
				score += 40
				reason = "Perfect for getting started"
			} else if completedCount >= 1 {
				if i == lastCompletedIndex+1 {
					score += 45
					reason = "Natural progression from your completed courses"
				} else if i > lastCompletedIndex {
					score += 25
					reason = "Build on your existing knowledge"
				}
			}

			// 级别加成：叠加在上面任一子分支之上，即使没有子分支命中也生效
			switch {
			case v.Level == catalog.Beginner && completedCount <= 1:
				score += 10
			case v.Level == catalog.Intermediate && completedCount >= 1:
				score += 15
			case v.Level == catalog.Advanced && completedCount >= 2:
				score += 20
			}
		default:
			score = 5
			reason = "Prerequisites required"
		}

		// 基础课加成对所有分支生效，包括先修未满足的固定5分
		if foundational[v.Title] {
			score += 10
		}

		if reason == "" {
			reason = "Recommended for you"
		}

		ranked = append(ranked, RecommendedCourse{
			CourseID:         v.CourseID,
			Title:            v.Title,
			Level:            v.Level,
			Score:            score,
			Reason:           reason,
			PrerequisitesMet: prereqMet,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	return ranked
}

// RecommendCourses 返回排好序并截断到 limit 的推荐列表。
// limit <= 0 时使用配置的 TopN（缺省6）。
func RecommendCourses(views []CourseView, cfg ScoringConfig, limit int) []RecommendedCourse {
	if limit <= 0 {
		limit = cfg.TopN
	}
	if limit <= 0 {
		limit = 6
	}

	ranked := scoreAll(views, cfg)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// BuildLearningPath 从完整排名里取前3门先修满足的课作为下一步，
// 先修未满足的课直接跳过，不用更靠后的课回填。
func BuildLearningPath(views []CourseView, cfg ScoringConfig) LearningPath {
	path := LearningPath{
		Next:      make([]RecommendedCourse, 0, 3),
		TotalPath: len(views),
	}

	for _, v := range views {
		if viewCompleted(v) {
			path.CompletedCount++
		}
	}

	for _, rc := range scoreAll(views, cfg) {
		if !rc.PrerequisitesMet {
			continue
		}
		path.Next = append(path.Next, rc)
		if len(path.Next) == 3 {
			break
		}
	}

	return path
}

// SkillProgression 根据已完成课程的标题关键字累计技能分。
// 一门课可以同时给多个技能加分，同一规则在一门课上最多计一次。
func SkillProgression(views []CourseView, cfg ScoringConfig) []SkillProgress {
	out := make([]SkillProgress, 0, len(cfg.SkillRules))
	for _, rule := range cfg.SkillRules {
		points := 0
		for _, v := range views {
			if !viewCompleted(v) {
				continue
			}
			for _, kw := range rule.Keywords {
				if strings.Contains(v.Title, kw) {
					points += rule.Points
					break
				}
			}
		}

		progress := points
		if progress > 100 {
			progress = 100
		}

		// 等级按未封顶的累计分计算
		level := points / 25
		if level > 4 {
			level = 4
		}

		out = append(out, SkillProgress{
			Skill:     rule.Skill,
			Points:    points,
			Progress:  progress,
			Level:     level,
			LevelName: skillLevelNames[level],
		})
	}
	return out
}
