package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

func TestLikeRepository_Toggle(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	tests := []struct {
		name        string
		disposition model.Disposition
		mockFn      func(mock pgxmock.PgxPoolIface)
		want        model.Disposition
		wantErr     error
	}{
		{
			name:        "first like creates the relation",
			disposition: model.DispositionLike,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO likes").
					WithArgs(userID, videoID, "like", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"disposition"}).AddRow("like"))
			},
			want: model.DispositionLike,
		},
		{
			name:        "repeated like inverts to none",
			disposition: model.DispositionLike,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO likes").
					WithArgs(userID, videoID, "like", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"disposition"}).AddRow("none"))
			},
			want: model.DispositionNone,
		},
		{
			name:        "dislike flips an existing like",
			disposition: model.DispositionDislike,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO likes").
					WithArgs(userID, videoID, "dislike", pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"disposition"}).AddRow("dislike"))
			},
			want: model.DispositionDislike,
		},
		{
			name:        "none is rejected before touching the database",
			disposition: model.DispositionNone,
			mockFn:      func(mock pgxmock.PgxPoolIface) {},
			wantErr:     model.ErrInvalidDisposition,
		},
		{
			name:        "unknown video",
			disposition: model.DispositionLike,
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO likes").
					WithArgs(userID, videoID, "like", pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "likes_video_id_fkey"})
			},
			wantErr: repository.ErrVideoNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewLikeRepository(mock)
			got, err := repo.Toggle(context.Background(), userID, videoID, tt.disposition)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Toggle() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Toggle() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Toggle() = %s, want %s", got, tt.want)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestLikeRepository_ToggleRejectsUnknownStoredValue(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO likes").
		WithArgs(userID, videoID, "like", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"disposition"}).AddRow("LIKED"))

	repo := NewLikeRepository(mock)
	if _, err := repo.Toggle(context.Background(), userID, videoID, model.DispositionLike); err == nil {
		t.Error("expected an error for a disposition outside the known states")
	}
}

func TestLikeRepository_Get(t *testing.T) {
	userID := uuid.New()
	videoID := uuid.New()

	tests := []struct {
		name   string
		mockFn func(mock pgxmock.PgxPoolIface)
		want   model.Disposition
	}{
		{
			name: "existing disposition",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT disposition FROM likes").
					WithArgs(userID, videoID).
					WillReturnRows(pgxmock.NewRows([]string{"disposition"}).AddRow("dislike"))
			},
			want: model.DispositionDislike,
		},
		{
			name: "missing record reads as none",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT disposition FROM likes").
					WithArgs(userID, videoID).
					WillReturnError(pgx.ErrNoRows)
			},
			want: model.DispositionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewLikeRepository(mock)
			got, err := repo.Get(context.Background(), userID, videoID)
			if err != nil {
				t.Fatalf("Get() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %s, want %s", got, tt.want)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestLikeRepository_CountByVideo(t *testing.T) {
	videoID := uuid.New()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(videoID).
		WillReturnRows(pgxmock.NewRows([]string{"likes", "dislikes"}).AddRow(int64(7), int64(2)))

	repo := NewLikeRepository(mock)
	counts, err := repo.CountByVideo(context.Background(), videoID)
	if err != nil {
		t.Fatalf("CountByVideo() unexpected error = %v", err)
	}

	if counts.Likes != 7 || counts.Dislikes != 2 {
		t.Errorf("CountByVideo() = %+v, want {Likes:7 Dislikes:2}", counts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
