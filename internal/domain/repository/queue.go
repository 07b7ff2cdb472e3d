package repository

import (
	"context"

	"github.com/google/uuid"
)

// CleanupTask describes a staged file that was orphaned by a failed or
// cancelled upload and should be removed by the maintenance worker.
type CleanupTask struct {
	VideoID    uuid.UUID `json:"video_id"`
	StagedPath string    `json:"staged_path"`
	Reason     string    `json:"reason"`
	RetryCount int       `json:"retry_count"`
}

// MessageQueue defines the interface for message queue operations.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ).
type MessageQueue interface {
	// PublishCleanupTask sends an orphaned-file cleanup task to the queue.
	// Used by the API server when promotion fails after staging succeeded.
	PublishCleanupTask(ctx context.Context, task CleanupTask) error

	// ConsumeCleanupTasks starts consuming cleanup tasks from the queue.
	// The handler function is called for each received task.
	// Used by the worker service.
	ConsumeCleanupTasks(ctx context.Context, handler func(task CleanupTask) error) error

	// Close gracefully closes the connection to the message queue.
	Close() error
}
