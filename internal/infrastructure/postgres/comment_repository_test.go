package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

func testComment() *model.Comment {
	return &model.Comment{
		ID:        uuid.New(),
		VideoID:   uuid.New(),
		AuthorID:  uuid.New(),
		Text:      "nice video",
		CreatedAt: time.Now(),
	}
}

func TestCommentRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		mockFn  func(mock pgxmock.PgxPoolIface, comment *model.Comment)
		wantErr error
	}{
		{
			name: "successful creation",
			mockFn: func(mock pgxmock.PgxPoolIface, comment *model.Comment) {
				mock.ExpectExec("INSERT INTO comments").
					WithArgs(
						comment.ID,
						comment.VideoID,
						comment.AuthorID,
						comment.Text,
						pgxmock.AnyArg(),
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: nil,
		},
		{
			name: "unknown video",
			mockFn: func(mock pgxmock.PgxPoolIface, comment *model.Comment) {
				mock.ExpectExec("INSERT INTO comments").
					WithArgs(
						comment.ID,
						comment.VideoID,
						comment.AuthorID,
						comment.Text,
						pgxmock.AnyArg(),
					).
					WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "comments_video_id_fkey"})
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

			comment := testComment()
			tt.mockFn(mock, comment)

			repo := NewCommentRepository(mock)
			err = repo.Create(context.Background(), comment)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Create() unexpected error = %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestCommentRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	commentID := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(commentID).
		WillReturnError(pgx.ErrNoRows)

	repo := NewCommentRepository(mock)
	_, err = repo.GetByID(context.Background(), commentID)

	if !errors.Is(err, repository.ErrCommentNotFound) {
		t.Errorf("GetByID() error = %v, want ErrCommentNotFound", err)
	}
}

func TestCommentRepository_ListByVideo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	videoID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "video_id", "author_id", "text", "created_at"}).
		AddRow(uuid.New(), videoID, uuid.New(), "first", now).
		AddRow(uuid.New(), videoID, uuid.New(), "second", now.Add(time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(videoID).
		WillReturnRows(rows)

	repo := NewCommentRepository(mock)
	comments, err := repo.ListByVideo(context.Background(), videoID)
	if err != nil {
		t.Fatalf("ListByVideo() unexpected error = %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "first" {
		t.Errorf("expected oldest comment first, got %q", comments[0].Text)
	}
}

func TestCommentRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{"successful deletion", 1, nil},
		{"comment not found", 0, repository.ErrCommentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			commentID := uuid.New()
			mock.ExpectExec("DELETE FROM comments").
				WithArgs(commentID).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rows))

			repo := NewCommentRepository(mock)
			err = repo.Delete(context.Background(), commentID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Delete() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Delete() unexpected error = %v", err)
			}
		})
	}
}
