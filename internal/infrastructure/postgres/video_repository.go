package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/infrastructure/metrics"
)

// VideoRepository implements repository.VideoRepository using PostgreSQL.
// The privacy mask lives in the SQL itself so every read path, including
// future ones, resolves private videos only for their owner.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create persists a new video entity.
// A foreign-key violation on the owner means the uploader is not a
// registered user and is reported as ErrUnauthorizedUpload.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, owner_id, title, description, credits, is_public, storage_path, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableVideos).Inc()

	_, err := r.db.Exec(ctx, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.Credits,
		video.IsPublic,
		video.StoragePath,
		video.PublishedAt,
		video.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return repository.ErrDuplicateVideo
			case "23503":
				return repository.ErrUnauthorizedUpload
			}
		}
		return fmt.Errorf("failed to create video: %w", poolErr(err))
	}

	return nil
}

// GetByID retrieves a video by its unique identifier as seen by viewerID.
// Private videos resolve only for their owner; everyone else gets
// ErrVideoNotFound so existence is not leaked.
func (r *VideoRepository) GetByID(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error) {
	const query = `
		SELECT id, owner_id, title, description, credits, is_public, storage_path, published_at, created_at
		FROM videos
		WHERE id = $1 AND (is_public OR owner_id = $2)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableVideos).Inc()

	video, err := scanVideo(r.db.QueryRow(ctx, query, id, viewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", poolErr(err))
	}

	return video, nil
}

// ListByOwner retrieves all videos belonging to a user, newest first.
// Private videos appear only when the viewer is the owner.
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID, viewerID uuid.UUID) ([]*model.Video, error) {
	const query = `
		SELECT id, owner_id, title, description, credits, is_public, storage_path, published_at, created_at
		FROM videos
		WHERE owner_id = $1 AND (is_public OR owner_id = $2)
		ORDER BY published_at DESC
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableVideos).Inc()

	rows, err := r.db.Query(ctx, query, ownerID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos by owner: %w", poolErr(err))
	}
	defer rows.Close()

	var videos []*model.Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

// Update persists changes to the mutable fields of a video.
// The publish timestamp is refreshed to the update time, never left at
// the original creation time.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	const query = `
		UPDATE videos
		SET title = $2, description = $3, credits = $4, is_public = $5, published_at = $6
		WHERE id = $1
	`

	video.PublishedAt = time.Now()

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryUpdate, metrics.TableVideos).Inc()

	tag, err := r.db.Exec(ctx, query,
		video.ID,
		video.Title,
		video.Description,
		video.Credits,
		video.IsPublic,
		video.PublishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", poolErr(err))
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video and cascades to its comments and like relations
// within a single transaction, so a partial deletion is never visible.
func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", poolErr(err))
	}
	defer tx.Rollback(ctx)

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableLikes).Inc()
	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE video_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete likes: %w", err)
	}

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableComments).Inc()
	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE video_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableVideos).Inc()
	tag, err := tx.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrVideoNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit video deletion: %w", err)
	}

	return nil
}

// scanVideo scans a single row into a Video model.
// pgx.Rows satisfies pgx.Row, so this works for both single- and multi-row reads.
func scanVideo(row pgx.Row) (*model.Video, error) {
	var video model.Video

	err := row.Scan(
		&video.ID,
		&video.OwnerID,
		&video.Title,
		&video.Description,
		&video.Credits,
		&video.IsPublic,
		&video.StoragePath,
		&video.PublishedAt,
		&video.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &video, nil
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
