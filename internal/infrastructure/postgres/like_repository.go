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

// LikeRepository implements repository.LikeRepository using PostgreSQL.
type LikeRepository struct {
	db DBTX
}

// NewLikeRepository creates a new LikeRepository instance.
func NewLikeRepository(db DBTX) *LikeRepository {
	return &LikeRepository{db: db}
}

// toggleQuery implements invert semantics as a single atomic upsert.
// The primary key on (user_id, video_id) guarantees at most one record
// per pair, and the conditional update means a repeat of the current
// disposition lands on none while the opposite one flips in place.
// There is never a delete-then-insert absence window, and concurrent
// toggles on the same pair serialize on the row lock.
const toggleQuery = `
	INSERT INTO likes (user_id, video_id, disposition, updated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, video_id) DO UPDATE
	SET disposition = CASE
		WHEN likes.disposition = EXCLUDED.disposition THEN 'none'
		ELSE EXCLUDED.disposition
	END,
	    updated_at = EXCLUDED.updated_at
	RETURNING disposition
`

// Toggle applies invert semantics for the (user, video) pair and returns
// the resulting disposition.
func (r *LikeRepository) Toggle(ctx context.Context, userID, videoID uuid.UUID, disposition model.Disposition) (model.Disposition, error) {
	if !disposition.IsSubmittable() {
		return model.DispositionNone, model.ErrInvalidDisposition
	}

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQueryInsert, metrics.TableLikes).Inc()

	var result string
	err := r.db.QueryRow(ctx, toggleQuery, userID, videoID, disposition.String(), time.Now()).Scan(&result)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.DispositionNone, repository.ErrVideoNotFound
		}
		return model.DispositionNone, fmt.Errorf("failed to toggle like: %w", poolErr(err))
	}

	return parseDisposition(result)
}

// Get retrieves the current disposition for the pair.
// A missing record reads as none.
func (r *LikeRepository) Get(ctx context.Context, userID, videoID uuid.UUID) (model.Disposition, error) {
	const query = `
		SELECT disposition
		FROM likes
		WHERE user_id = $1 AND video_id = $2
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableLikes).Inc()

	var result string
	err := r.db.QueryRow(ctx, query, userID, videoID).Scan(&result)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DispositionNone, nil
		}
		return model.DispositionNone, fmt.Errorf("failed to get like: %w", poolErr(err))
	}

	return parseDisposition(result)
}

// parseDisposition guards reads against values the CHECK constraint
// should have rejected, so schema drift surfaces as an error instead of
// an unknown state leaking into responses.
func parseDisposition(raw string) (model.Disposition, error) {
	d := model.Disposition(raw)
	if !d.IsValid() {
		return model.DispositionNone, fmt.Errorf("unexpected disposition %q", raw)
	}
	return d, nil
}

// CountByVideo returns the like and dislike totals for a video.
func (r *LikeRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (repository.LikeCounts, error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE disposition = 'like'),
			COUNT(*) FILTER (WHERE disposition = 'dislike')
		FROM likes
		WHERE video_id = $1
	`

	metrics.DBQueriesTotal.WithLabelValues(metrics.DBQuerySelect, metrics.TableLikes).Inc()

	var counts repository.LikeCounts
	err := r.db.QueryRow(ctx, query, videoID).Scan(&counts.Likes, &counts.Dislikes)
	if err != nil {
		return repository.LikeCounts{}, fmt.Errorf("failed to count likes: %w", poolErr(err))
	}

	return counts, nil
}

// Compile-time verification that LikeRepository implements repository.LikeRepository.
var _ repository.LikeRepository = (*LikeRepository)(nil)
