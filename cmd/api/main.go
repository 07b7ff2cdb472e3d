package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hszk-dev/vidshare/internal/api/handler"
	"github.com/hszk-dev/vidshare/internal/api/middleware"
	"github.com/hszk-dev/vidshare/internal/config"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/domain/validator"
	"github.com/hszk-dev/vidshare/internal/infrastructure/cache"
	"github.com/hszk-dev/vidshare/internal/infrastructure/postgres"
	"github.com/hszk-dev/vidshare/internal/infrastructure/queue"
	"github.com/hszk-dev/vidshare/internal/infrastructure/storage"
	"github.com/hszk-dev/vidshare/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	pgConfig := postgres.DefaultClientConfig(cfg.Database.DSN())
	pgConfig.MaxConns = cfg.Database.MaxConns
	pgConfig.AcquireTimeout = cfg.Database.AcquireTimeout
	pgClient, err := postgres.NewClient(ctx, pgConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pgClient.Close()
	logger.Info("connected to PostgreSQL")

	blobStorage, err := newBlobStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	logger.Info("blob storage ready", slog.String("backend", cfg.Storage.Backend))

	queueClient, err := queue.NewClient(ctx, queue.DefaultClientConfig(cfg.RabbitMQ.URL()))
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer queueClient.Close()
	logger.Info("connected to RabbitMQ")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis")

	db := pgClient.DB()
	userRepo := postgres.NewUserRepository(db)
	videoRepo := postgres.NewVideoRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	likeRepo := postgres.NewLikeRepository(db)

	authSvc := usecase.NewAuthService(userRepo, usecase.AuthServiceConfig{
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	})

	videoSvc := usecase.NewVideoService(videoRepo, blobStorage, queueClient, usecase.VideoServiceConfig{
		UploadRules: validator.UploadRules{
			MaxFileSize:       cfg.Upload.MaxFileSize,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
	})
	videoSvc = usecase.NewCachedVideoService(
		videoSvc,
		cache.NewRedisVideoCache(redisClient),
		usecase.CachedVideoServiceConfig{CacheTTL: cfg.Redis.CacheTTL},
	)

	commentSvc := usecase.NewCommentService(commentRepo, videoRepo)
	likeSvc := usecase.NewLikeService(likeRepo, videoRepo)

	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": pgClient.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	r := setupRouter(logger, cfg, healthHandler, authSvc, videoSvc, commentSvc, likeSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newBlobStorage selects the storage backend once at startup. Everything
// past this point sees only the repository.BlobStorage interface.
func newBlobStorage(ctx context.Context, cfg config.StorageConfig) (repository.BlobStorage, error) {
	switch cfg.Backend {
	case "minio":
		return storage.NewClient(ctx, storage.ClientConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
		})
	case "local":
		return storage.NewLocal(cfg.StagingDir, cfg.DurableDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func setupRouter(
	logger *slog.Logger,
	cfg *config.Config,
	healthHandler *handler.HealthHandler,
	authSvc usecase.AuthService,
	videoSvc usecase.VideoService,
	commentSvc usecase.CommentService,
	likeSvc usecase.LikeService,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	authHandler := handler.NewAuthHandler(authSvc)
	videoHandler := handler.NewVideoHandler(videoSvc, cfg.Upload.MaxFileSize)
	commentHandler := handler.NewCommentHandler(commentSvc)
	likeHandler := handler.NewLikeHandler(likeSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Read endpoints identify the viewer when a token is present so
		// owners can see their private videos; anonymous reads still work.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.Auth.JWTSecret))

			r.Get("/videos/{id}", videoHandler.Get)
			r.Get("/users/{id}/videos", videoHandler.ListByOwner)
			r.Get("/videos/{id}/comments", commentHandler.List)
			r.Get("/videos/{id}/like", likeHandler.Get)
		})

		// Write endpoints require an authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.Auth.JWTSecret))

			r.Post("/videos", videoHandler.Upload)
			r.Patch("/videos/{id}", videoHandler.Update)
			r.Delete("/videos/{id}", videoHandler.Delete)

			r.Post("/videos/{id}/comments", commentHandler.Add)
			r.Delete("/comments/{id}", commentHandler.Delete)

			r.Put("/videos/{id}/like", likeHandler.Toggle)
		})
	})

	return r
}
