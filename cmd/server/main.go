package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/robinboard/api/api/swagger"
	"github.com/robinboard/api/internal/handler"
	"github.com/robinboard/api/internal/middleware"
	"github.com/robinboard/api/internal/realtime"
	"github.com/robinboard/api/internal/repository"
	"github.com/robinboard/api/internal/service"
	"github.com/robinboard/api/pkg/cache"
	"github.com/robinboard/api/pkg/config"
	"github.com/robinboard/api/pkg/database"
	"github.com/robinboard/api/pkg/export"
	"github.com/robinboard/api/pkg/logger"
	corsmiddleware "github.com/robinboard/api/pkg/middleware/cors"
	reqidmiddleware "github.com/robinboard/api/pkg/middleware/requestid"
	"github.com/robinboard/api/pkg/storage"
)

// @title RobinBoard API
// @version 1.0.0
// @description Backend for the school digital signage board
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// The board must keep serving its degraded placeholders while the
	// database is down, so a failed ping is not fatal.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Warnw("database unreachable, continuing degraded", "error", err)
		db, err = database.Open(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to open database handle", "error", err)
		}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repository.EnsureSchema(ctx, db); err != nil {
			logr.Sugar().Warnw("schema bootstrap failed", "error", err)
		}
		cancel()
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unreachable, weather caching disabled", "error", err)
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	store, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare uploads directory", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	hub := realtime.NewHub(logr, metricsSvc)
	go hub.Run()

	settingsRepo := repository.NewSettingsRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	settingsSvc := service.NewSettingsService(settingsRepo, hub, logr)
	studentSvc := service.NewStudentService(studentRepo, export.NewPDFExporter(), logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, hub, logr)
	mediaSvc := service.NewMediaService(mediaRepo, store, hub, logr, cfg.Uploads.URLPrefix)
	authSvc := service.NewAuthService(cfg.Auth, logr)
	weatherSvc := service.NewWeatherService(settingsRepo, cacheRepo, cfg.Weather, logr)

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := settingsSvc.EnsureDefaults(startCtx); err != nil {
		logr.Sugar().Warnw("settings defaults not seeded", "error", err)
	}
	cancel()

	validate := validator.New()

	authHandler := handler.NewAuthHandler(authSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	mediaHandler := handler.NewMediaHandler(mediaSvc, validate)
	weatherHandler := handler.NewWeatherHandler(weatherSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.MaxMultipartMemory = cfg.Uploads.MaxUploadB

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/ws", gin.WrapH(hub))
	r.Static(cfg.Uploads.URLPrefix, store.Dir())

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.OptionalAdmin(authSvc))
	{
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/status", authHandler.Status)

		api.GET("/settings", settingsHandler.Get)
		api.GET("/weather", weatherHandler.Current)
		api.GET("/birthdays/today", studentHandler.Birthdays)
		api.GET("/schedule/get", scheduleHandler.Get)
		api.GET("/files", mediaHandler.List)
	}

	admin := r.Group(cfg.APIPrefix)
	admin.Use(middleware.RequireAdmin(authSvc))
	{
		admin.POST("/settings/update", settingsHandler.Update)

		admin.GET("/students", studentHandler.List)
		admin.POST("/students", studentHandler.Create)
		admin.DELETE("/students", studentHandler.Clear)
		admin.DELETE("/students/:id", studentHandler.Delete)
		admin.GET("/students/export", studentHandler.Export)

		admin.POST("/schedule/update", scheduleHandler.Update)

		admin.POST("/upload", mediaHandler.Upload)
		admin.POST("/files/update", mediaHandler.UpdateCaption)
		admin.POST("/files/delete", mediaHandler.Delete)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
