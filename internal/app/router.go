package app

import (
	"finedu_backend/docs"
	"finedu_backend/internal/config"
	"finedu_backend/internal/middleware"
	"finedu_backend/internal/model"
	"finedu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 课程与进度
		authGroup.GET("/courses", c.course.GetCourses)
		authGroup.GET("/courses/:id", c.course.GetCourse)
		authGroup.POST("/courses/:id/lessons/:lessonId/video-progress", c.course.RecordVideoProgress)
		authGroup.POST("/courses/:id/lessons/:lessonId/quiz", c.course.SubmitQuiz)

		// 推荐
		authGroup.GET("/recommendations", c.recommendation.GetRecommendations)
		authGroup.GET("/recommendations/path", c.recommendation.GetLearningPath)
		authGroup.GET("/recommendations/skills", c.recommendation.GetSkills)

		// 提醒
		authGroup.GET("/notifications", c.notification.GetNotifications)

		// 学习目标
		authGroup.POST("/goals", c.goal.CreateGoal)
		authGroup.GET("/goals", c.goal.GetUserGoals)
		authGroup.GET("/goals/:id", c.goal.GetGoal)
		authGroup.PUT("/goals/:id", c.goal.UpdateGoal)
		authGroup.DELETE("/goals/:id", c.goal.DeleteGoal)

		// 笔记
		authGroup.POST("/notes", c.note.CreateNote)
		authGroup.GET("/notes", c.note.GetNotes)
		authGroup.PUT("/notes/:id", c.note.UpdateNote)
		authGroup.DELETE("/notes/:id", c.note.DeleteNote)

		// 收藏
		authGroup.POST("/bookmarks", c.bookmark.CreateBookmark)
		authGroup.GET("/bookmarks", c.bookmark.GetBookmarks)
		authGroup.DELETE("/bookmarks/:id", c.bookmark.DeleteBookmark)

		// 成就
		authGroup.GET("/achievements", c.achievement.GetAchievements)
		authGroup.GET("/leaderboard", c.achievement.GetLeaderboard)
		authGroup.GET("/users/me/stats", c.user.GetStats)
	}

	// 管理员相关接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/courses/:id/lessons/:lessonId/video", c.content.UploadLessonVideo)
	}
}
