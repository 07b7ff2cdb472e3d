package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hszk-dev/vidshare/internal/config"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/infrastructure/queue"
	"github.com/hszk-dev/vidshare/internal/infrastructure/storage"
)

// The worker sweeps files orphaned by failed uploads: staged files whose
// promotion failed and durable files whose metadata write failed. The API
// server publishes a cleanup task for each; the worker removes the file.

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting worker, consuming cleanup tasks")
		err := queueClient.ConsumeCleanupTasks(ctx, func(task repository.CleanupTask) error {
			wg.Add(1)
			defer wg.Done()

			logger.Info("removing orphaned file",
				slog.String("video_id", task.VideoID.String()),
				slog.String("path", task.StagedPath),
				slog.String("reason", task.Reason),
				slog.Int("retry_count", task.RetryCount),
			)

			if task.RetryCount > cfg.Worker.MaxRetries {
				// Give up and leave the orphan for manual inspection.
				// Orphaned files are harmless; failing forever is not.
				logger.Warn("cleanup task exceeded retry budget, dropping",
					slog.String("path", task.StagedPath),
				)
				return nil
			}

			if err := blobStorage.Remove(ctx, task.StagedPath); err != nil {
				logger.Error("failed to remove orphaned file",
					slog.String("path", task.StagedPath),
					slog.String("error", err.Error()),
				)
				return err
			}

			logger.Info("orphaned file removed", slog.String("path", task.StagedPath))
			return nil
		})
		if err != nil && ctx.Err() == nil {
			errCh <- fmt.Errorf("consumer error: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down worker", slog.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Worker.ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("all in-flight tasks completed")
	case <-shutdownCtx.Done():
		logger.Warn("shutdown timeout exceeded, some tasks may not have completed")
	}

	logger.Info("worker stopped")
	return nil
}

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
