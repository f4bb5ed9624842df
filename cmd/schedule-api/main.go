package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cyclonesb/schedule-builder/api/swagger"
	"github.com/cyclonesb/schedule-builder/internal/catalog"
	"github.com/cyclonesb/schedule-builder/internal/engine"
	"github.com/cyclonesb/schedule-builder/internal/handler"
	"github.com/cyclonesb/schedule-builder/internal/middleware"
	"github.com/cyclonesb/schedule-builder/internal/repository"
	"github.com/cyclonesb/schedule-builder/internal/service"
	"github.com/cyclonesb/schedule-builder/pkg/cache"
	"github.com/cyclonesb/schedule-builder/pkg/config"
	"github.com/cyclonesb/schedule-builder/pkg/jobs"
	"github.com/cyclonesb/schedule-builder/pkg/logger"
	corsmiddleware "github.com/cyclonesb/schedule-builder/pkg/middleware/cors"
	reqidmiddleware "github.com/cyclonesb/schedule-builder/pkg/middleware/requestid"
	"github.com/cyclonesb/schedule-builder/pkg/storage"
)

// @title Schedule Builder API
// @version 1.0.0
// @description Course search, conflict-free schedule generation and export
// @BasePath /api/v1
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// Sessions fall back to per-request state; the API stays usable
		// for stateless catalog lookups.
		logr.Sugar().Warnw("redis unavailable, session persistence disabled", "error", err)
	}

	sessions := repository.NewSessionRepository(redisClient, cfg.Session.TTL, logr)
	defer sessions.Close() //nolint:errcheck

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	catalogClient := catalog.NewClient(cfg.Catalog, logr)
	generator := engine.New(engine.Config{
		MaxSchedules:    cfg.Engine.MaxSchedules,
		BufferMinutes:   cfg.Engine.BufferMinutes,
		MaxCombinations: cfg.Engine.MaxCombinations,
	}, logr)

	courseSvc := service.NewCourseService(catalogClient, sessions, metricsSvc, validate, logr, cfg.Catalog.DefaultPeriod)
	scheduleSvc := service.NewScheduleService(generator, sessions, metricsSvc, validate, logr)

	catalogHandler := handler.NewCatalogHandler(courseSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	var exportHandler *handler.ExportHandler
	if cfg.Exports.Enabled {
		files, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			log.Fatalf("failed to init export storage: %v", err)
		}
		signer := storage.NewDownloadSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

		exportSvc := service.NewExportService(sessions, nil, files, signer, validate, logr, service.ExportConfig{
			APIPrefix: cfg.APIPrefix,
			ResultTTL: cfg.Exports.JobTTL,
		})
		queue := jobs.NewQueue("exports", exportSvc.Process, jobs.QueueConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			Logger:     logr,
		})
		exportSvc.SetQueue(queue)
		queue.Start(ctx)
		defer queue.Stop()

		go func() {
			ticker := time.NewTicker(cfg.Exports.CleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					exportSvc.Cleanup()
				}
			}
		}()

		exportHandler = handler.NewExportHandler(exportSvc)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Session(cfg.Session.CookieName))
	{
		api.GET("/periods", catalogHandler.Periods)
		api.GET("/departments", catalogHandler.Departments)
		api.POST("/period", catalogHandler.SetPeriod)

		api.POST("/courses", courseHandler.Add)
		api.GET("/courses", courseHandler.List)
		api.DELETE("/courses/:courseId", courseHandler.Remove)

		api.POST("/schedules/generate", scheduleHandler.Generate)
		api.GET("/schedules/current", scheduleHandler.Current)
		api.POST("/schedules/next", scheduleHandler.Next)
		api.POST("/schedules/previous", scheduleHandler.Previous)

		if exportHandler != nil {
			api.POST("/exports", exportHandler.Create)
			api.GET("/exports/:id", exportHandler.Status)
			api.GET("/exports/download/:token", exportHandler.Download)
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}
