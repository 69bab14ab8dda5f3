package app

import (
	"context"
	"finedu_backend/internal/catalog"
	"finedu_backend/internal/config"
	"finedu_backend/internal/controller"
	"finedu_backend/internal/repository"
	"finedu_backend/internal/service"
	"finedu_backend/pkg/configwatcher"
	"finedu_backend/pkg/database"
	"finedu_backend/pkg/logger"
	"finedu_backend/pkg/monitoring"
	"finedu_backend/pkg/security"
	"finedu_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Catalog         *catalog.Catalog
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	progress    *repository.ProgressRepository
	goal        *repository.GoalRepository
	note        *repository.NoteRepository
	bookmark    *repository.BookmarkRepository
	achievement *repository.AchievementRepository
}

type services struct {
	storage        *service.StorageService
	content        *service.ContentService
	recommendation *service.RecommendationService
	achievement    *service.AchievementService
	progress       *service.ProgressService
	goal           *service.GoalService
	notification   *service.NotificationService
	note           *service.NoteService
	bookmark       *service.BookmarkService
}

type controllers struct {
	course         *controller.CourseController
	recommendation *controller.RecommendationController
	notification   *controller.NotificationController
	goal           *controller.GoalController
	note           *controller.NoteController
	bookmark       *controller.BookmarkController
	achievement    *controller.AchievementController
	user           *controller.UserController
	content        *controller.ContentController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		progress:    repository.NewProgressRepository(db),
		goal:        repository.NewGoalRepository(db),
		note:        repository.NewNoteRepository(db),
		bookmark:    repository.NewBookmarkRepository(db),
		achievement: repository.NewAchievementRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.content = service.NewContentService(a.Catalog, s.storage, cfg)
	s.recommendation = service.NewRecommendationService(a.Catalog, repos.progress, rdb, cfg)
	s.achievement = service.NewAchievementService(repos.achievement, repos.user)
	s.progress = service.NewProgressService(
		a.Catalog,
		repos.progress,
		repos.user,
		service.ZapNotifier{},
		s.recommendation,
		s.achievement,
	)
	s.goal = service.NewGoalService(a.Catalog, repos.goal, repos.progress)
	s.notification = service.NewNotificationService(repos.goal)
	s.note = service.NewNoteService(a.Catalog, repos.note)
	s.bookmark = service.NewBookmarkService(a.Catalog, repos.bookmark)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		course:         controller.NewCourseController(s.progress),
		recommendation: controller.NewRecommendationController(s.recommendation),
		notification:   controller.NewNotificationController(s.notification),
		goal:           controller.NewGoalController(s.goal),
		note:           controller.NewNoteController(s.note),
		bookmark:       controller.NewBookmarkController(s.bookmark),
		achievement:    controller.NewAchievementController(s.achievement),
		user:           controller.NewUserController(s.achievement),
		content:        controller.NewContentController(s.content),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: catalog.Default(),
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("finedu-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 配置热加载
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		for _, callback := range app.configCallbacks {
			callback(newCfg)
		}
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
