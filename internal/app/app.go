package app

import (
	"context"
	"coursehub_backend/internal/config"
	"coursehub_backend/internal/controller"
	"coursehub_backend/internal/middleware"
	"coursehub_backend/internal/repository"
	"coursehub_backend/internal/service"
	"coursehub_backend/pkg/configwatcher"
	"coursehub_backend/pkg/database"
	"coursehub_backend/pkg/logger"
	"coursehub_backend/pkg/monitoring"
	"coursehub_backend/pkg/security"
	"coursehub_backend/pkg/tracing"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	tracer          *sdktrace.TracerProvider
	cancel          context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	department *repository.DepartmentRepository
	course     *repository.CourseRepository
	material   *repository.MaterialRepository
	comment    *repository.CommentRepository
	rating     *repository.RatingRepository
	favorite   *repository.FavoriteRepository
	activity   *repository.ActivityLogRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	catalog  *service.CatalogService
	material *service.MaterialService
	feedback *service.FeedbackService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	catalog  *controller.CatalogController
	material *controller.MaterialController
	feedback *controller.FeedbackController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		department: repository.NewDepartmentRepository(db),
		course:     repository.NewCourseRepository(db),
		material:   repository.NewMaterialRepository(db),
		comment:    repository.NewCommentRepository(db),
		rating:     repository.NewRatingRepository(db),
		favorite:   repository.NewFavoriteRepository(db),
		activity:   repository.NewActivityLogRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, files service.FileHost) *services {
	return &services{
		auth:     service.NewAuthService(repos.user, cfg),
		user:     service.NewUserService(repos.user, repos.material, repos.activity),
		catalog:  service.NewCatalogService(repos.department, repos.course),
		material: service.NewMaterialService(repos.department, repos.user, repos.material, files, cfg.Storage.TempDir),
		feedback: service.NewFeedbackService(repos.comment, repos.rating, repos.favorite),
	}
}

func initControllers(s *services, cfg *config.Config, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		user:     controller.NewUserController(s.user),
		catalog:  controller.NewCatalogController(s.catalog),
		material: controller.NewMaterialController(s.material, s.feedback, cfg),
		feedback: controller.NewFeedbackController(s.feedback),
		health:   controller.NewHealthController(db),
	}
}

func setupMiddlewares(ctx context.Context, router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// localServer 由实际落在本地磁盘的文件托管实现
type localServer interface {
	LocalRoot() (string, bool)
}

// NewRouter 组装仓储、服务、控制器和路由。files 为文件托管实现，测试中可替换。
// ctx 取消后停止路由持有的后台任务。
func NewRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, files service.FileHost) *gin.Engine {
	monitoring.Init()

	router := gin.New()
	// 超过 8 MB 的表单部分写入临时文件
	router.MaxMultipartMemory = 8 << 20

	setupMiddlewares(ctx, router, cfg)

	repos := initRepositories(db)
	c := initControllers(initServices(repos, cfg, files), cfg, db)
	registerRoutes(router, c, repos, cfg)

	// 按实际选中的存储决定，配置的存储不可用时会退回本地
	if local, ok := files.(localServer); ok {
		if root, ok := local.LocalRoot(); ok {
			router.Static("/uploads", root)
		}
	}
	return router
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	ctx, cancel := context.WithCancel(context.Background())
	app.cancel = cancel

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	storage := service.NewStorageService(ctx, cfg)
	app.Router = NewRouter(ctx, cfg, db, storage)

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.startBackgroundTasks(ctx)

	return app
}

func (a *App) startBackgroundTasks(ctx context.Context) {
	go database.KeepAlive(ctx, a.DB, time.Duration(a.Config.Database.PingIntervalSeconds)*time.Second)

	if a.Config.FilePath == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.FilePath, func(newCfg *config.Config) {
			for _, callback := range a.configCallbacks {
				callback(newCfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// 停止后台任务
	if a.cancel != nil {
		a.cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
