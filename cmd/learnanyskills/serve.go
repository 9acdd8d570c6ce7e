package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	_ "github.com/learnanyskills/backend/docs"
	"github.com/learnanyskills/backend/internal/config"
	"github.com/learnanyskills/backend/internal/handlers"
	"github.com/learnanyskills/backend/internal/jobs"
	"github.com/learnanyskills/backend/internal/llm"
	"github.com/learnanyskills/backend/internal/logger"
	"github.com/learnanyskills/backend/internal/middleware"
	"github.com/learnanyskills/backend/internal/repositories"
	"github.com/learnanyskills/backend/internal/seed"
	"github.com/learnanyskills/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

// backgroundJobs is the dispatcher used by the services together with its shutdown hook
type backgroundJobs struct {
	dispatcher services.JobDispatcher
	redis      *redis.Client
	shutdown   func(ctx context.Context) error
}

func runServe(ctx context.Context) error {
	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer db.Close()

	log := logger.Logger
	log.Info("Starting LearnAnySkills API")

	if err := runMigrations(db); err != nil {
		log.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	contentRepo := repositories.NewLessonContentRepository(db)
	progressRepo := repositories.NewUserProgressRepository(db)

	if err := seed.Run(ctx, courseRepo, log); err != nil {
		return err
	}

	worker := jobs.NewWorker(contentRepo, progressRepo, log)
	background, err := startBackgroundJobs(ctx, cfg, worker, log)
	if err != nil {
		return err
	}

	// Initialize services
	generator := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenRouter.APIKey,
		Model:   cfg.OpenRouter.Model,
		BaseURL: cfg.OpenRouter.BaseURL,
		Referer: cfg.OpenRouter.Referer,
		Title:   cfg.OpenRouter.Title,
	}, log)
	catalogService := services.NewCatalogService(courseRepo, lessonRepo, log)
	progressService := services.NewProgressService(lessonRepo, progressRepo, log)
	generationService := services.NewGenerationService(lessonRepo, contentRepo, generator, background.dispatcher, log)

	// Initialize handlers
	var redisPinger handlers.RedisPinger
	if background.redis != nil {
		redisPinger = background.redis
	}
	healthHandler := handlers.NewHealthHandler(db, redisPinger, log)
	courseHandler := handlers.NewCourseHandler(catalogService, progressService, log)
	aiHandler := handlers.NewAIHandler(generationService, progressService, log)

	r := newRouter(cfg, log)
	healthHandler.RegisterRoutes(r)
	courseHandler.RegisterRoutes(r)
	aiHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation waits up to a minute on the model
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case runErr = <-serverErr:
		log.Error("Server failed to start", zap.Error(runErr))
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := background.shutdown(shutdownCtx); err != nil {
		log.Error("Background jobs did not drain", zap.Error(err))
	}

	log.Info("Server exited")
	return runErr
}

// newRouter creates the router with the shared middleware stack and Swagger UI
func newRouter(cfg *config.Config, log *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.RecoveryMiddleware(log))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.MaxRequestSize))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// startBackgroundJobs starts the asynq queue when Redis is configured and the in-process pool otherwise
func startBackgroundJobs(ctx context.Context, cfg *config.Config, worker *jobs.Worker, log *zap.Logger) (*backgroundJobs, error) {
	if !cfg.RedisEnabled() {
		local := jobs.NewLocalDispatcher(worker, cfg.Jobs.Workers, cfg.Jobs.QueueSize, log)
		local.Start()
		log.Info("Background jobs running in-process", zap.Int("workers", cfg.Jobs.Workers))
		return &backgroundJobs{dispatcher: local, shutdown: local.Shutdown}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		log.Error("Failed to connect to Redis", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	opt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	client := asynq.NewClient(opt)

	server := jobs.NewServer(opt, cfg.Jobs.Workers, log)
	mux := asynq.NewServeMux()
	worker.Register(mux)
	if err := server.Start(mux); err != nil {
		client.Close()
		rdb.Close()
		return nil, fmt.Errorf("failed to start job worker: %w", err)
	}
	log.Info("Background jobs running on Redis", zap.String("addr", cfg.RedisAddr()))

	return &backgroundJobs{
		dispatcher: jobs.NewAsynqDispatcher(client, log),
		redis:      rdb,
		shutdown: func(ctx context.Context) error {
			server.Shutdown()
			client.Close()
			return rdb.Close()
		},
	}, nil
}
