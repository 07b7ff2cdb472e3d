package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
	"github.com/hszk-dev/vidshare/internal/infrastructure/metrics"
)

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db DBTX
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists a new comment entity.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	const query = `
		INSERT INTO comments (id, video_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableComments).Inc()

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.VideoID,
		comment.AuthorID,
		comment.Text,
		comment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return repository.ErrVideoNotFound
		}
		return fmt.Errorf("failed to create comment: %w", poolErr(err))
	}

	return nil
}

// GetByID retrieves a comment by its unique identifier.
func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	const query = `
		SELECT id, video_id, author_id, text, created_at
		FROM comments
		WHERE id = $1
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableComments).Inc()

	comment, err := scanComment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment by ID: %w", poolErr(err))
	}

	return comment, nil
}

// ListByVideo retrieves all comments on a video, oldest first.
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*model.Comment, error) {
	const query = `
		SELECT id, video_id, author_id, text, created_at
		FROM comments
		WHERE video_id = $1
		ORDER BY created_at ASC
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableComments).Inc()

	rows, err := r.db.Query(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by video: %w", poolErr(err))
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryDelete, metrics.TableComments).Inc()

	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", poolErr(err))
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var comment model.Comment

	err := row.Scan(
		&comment.ID,
		&comment.VideoID,
		&comment.AuthorID,
		&comment.Text,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Compile-time verification that CommentRepository implements repository.CommentRepository.
var _ repository.CommentRepository = (*CommentRepository)(nil)
