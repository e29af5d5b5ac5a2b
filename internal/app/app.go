package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"paw_match_backend/internal/config"
	"paw_match_backend/internal/controller"
	"paw_match_backend/internal/repository"
	"paw_match_backend/internal/service"
	"paw_match_backend/pkg/database"
	"paw_match_backend/pkg/logger"
	"paw_match_backend/pkg/monitoring"
	"paw_match_backend/pkg/security"
	"paw_match_backend/pkg/tracing"

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
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	profile  *repository.ProfileRepository
	dog      *repository.DogRepository
	match    *repository.MatchRepository
	message  *repository.MessageRepository
	playdate *repository.PlaydateRepository
	rating   *repository.RatingRepository
}

type services struct {
	auth      *service.AuthService
	profile   *service.ProfileService
	dog       *service.DogService
	ownership *service.OwnershipService
	match     *service.MatchService
	message   *service.MessageService
	playdate  *service.PlaydateService
	rating    *service.RatingService
}

type controllers struct {
	auth     *controller.AuthController
	profile  *controller.ProfileController
	dog      *controller.DogController
	match    *controller.MatchController
	message  *controller.MessageController
	playdate *controller.PlaydateController
	rating   *controller.RatingController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，逐个执行注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		profile:  repository.NewProfileRepository(db),
		dog:      repository.NewDogRepository(db, rdb),
		match:    repository.NewMatchRepository(db),
		message:  repository.NewMessageRepository(db),
		playdate: repository.NewPlaydateRepository(db),
		rating:   repository.NewRatingRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.profile = service.NewProfileService(repos.profile)
	s.dog = service.NewDogService(repos.dog, repos.profile)

	// 所有权解析是匹配、消息、约玩、评价共用的授权契约
	s.ownership = service.NewOwnershipService(repos.dog)

	s.match = service.NewMatchService(repos.match, repos.dog, s.ownership)
	s.message = service.NewMessageService(repos.message, repos.match, s.ownership)
	s.playdate = service.NewPlaydateService(repos.playdate, repos.match, s.ownership)
	s.rating = service.NewRatingService(repos.rating, repos.playdate, s.ownership)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	isRelease := a.Config.Server.Mode == "release"
	return &controllers{
		auth:     controller.NewAuthController(s.auth, isRelease),
		profile:  controller.NewProfileController(s.profile, isRelease),
		dog:      controller.NewDogController(s.dog, isRelease),
		match:    controller.NewMatchController(s.match, isRelease),
		message:  controller.NewMessageController(s.message, isRelease),
		playdate: controller.NewPlaydateController(s.playdate, isRelease),
		rating:   controller.NewRatingController(s.rating, isRelease),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

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
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// debug 模式默认迁移，release 模式需要显式传 -migrate
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("paw-match", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

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
