package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/domain/repository"
)

func TestCommentService_Add(t *testing.T) {
	videoID := uuid.New()
	authorID := uuid.New()

	visibleVideo := func(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error) {
		return &model.Video{ID: id, OwnerID: uuid.New(), IsPublic: true}, nil
	}

	tests := []struct {
		name      string
		text      string
		setupMock func(comments *mockCommentRepository, videos *mockVideoRepository)
		wantErr   error
	}{
		{
			name: "successful comment",
			text: "nice video",
			setupMock: func(comments *mockCommentRepository, videos *mockVideoRepository) {
				videos.getByIDFn = visibleVideo
				comments.createFn = func(ctx context.Context, comment *model.Comment) error {
					if comment.VideoID != videoID || comment.AuthorID != authorID {
						t.Error("comment carries wrong identifiers")
					}
					return nil
				}
			},
		},
		{
			name: "invisible video behaves as absent",
			text: "nice video",
			setupMock: func(comments *mockCommentRepository, videos *mockVideoRepository) {
				videos.getByIDFn = func(ctx context.Context, id, viewerID uuid.UUID) (*model.Video, error) {
					return nil, repository.ErrVideoNotFound
				}
				comments.createFn = func(ctx context.Context, comment *model.Comment) error {
					t.Error("Create must not be called for an invisible video")
					return nil
				}
			},
			wantErr: repository.ErrVideoNotFound,
		},
		{
			name: "empty text rejected",
			text: "",
			setupMock: func(comments *mockCommentRepository, videos *mockVideoRepository) {
				videos.getByIDFn = visibleVideo
			},
			wantErr: model.ErrEmptyComment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &mockCommentRepository{}
			videos := &mockVideoRepository{}
			tt.setupMock(comments, videos)

			svc := NewCommentService(comments, videos)

			comment, err := svc.Add(context.Background(), videoID, authorID, tt.text)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if comment.Text != tt.text {
				t.Errorf("text = %q, want %q", comment.Text, tt.text)
			}
		})
	}
}

func TestCommentService_List(t *testing.T) {
	videoID := uuid.New()
	viewerID := uuid.New()

	t.Run("comments on an invisible video are invisible", func(t *testing.T) {
		videos := &mockVideoRepository{
			getByIDFn: func(ctx context.Context, id, vID uuid.UUID) (*model.Video, error) {
				return nil, repository.ErrVideoNotFound
			},
		}
		comments := &mockCommentRepository{
			listByVideoFn: func(ctx context.Context, vID uuid.UUID) ([]*model.Comment, error) {
				t.Error("ListByVideo must not be called for an invisible video")
				return nil, nil
			},
		}

		svc := NewCommentService(comments, videos)

		if _, err := svc.List(context.Background(), videoID, viewerID); !errors.Is(err, repository.ErrVideoNotFound) {
			t.Errorf("List() error = %v, want ErrVideoNotFound", err)
		}
	})

	t.Run("lists comments oldest first", func(t *testing.T) {
		want := []*model.Comment{
			{ID: uuid.New(), VideoID: videoID, Text: "first"},
			{ID: uuid.New(), VideoID: videoID, Text: "second"},
		}
		videos := &mockVideoRepository{
			getByIDFn: func(ctx context.Context, id, vID uuid.UUID) (*model.Video, error) {
				return &model.Video{ID: id, IsPublic: true}, nil
			},
		}
		comments := &mockCommentRepository{
			listByVideoFn: func(ctx context.Context, vID uuid.UUID) ([]*model.Comment, error) {
				return want, nil
			},
		}

		svc := NewCommentService(comments, videos)

		got, err := svc.List(context.Background(), videoID, viewerID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Text != "first" {
			t.Errorf("unexpected listing: %+v", got)
		}
	})
}

func TestCommentService_Delete(t *testing.T) {
	authorID := uuid.New()
	comment := &model.Comment{
		ID:       uuid.New(),
		VideoID:  uuid.New(),
		AuthorID: authorID,
		Text:     "delete me",
	}

	tests := []struct {
		name      string
		actorID   uuid.UUID
		setupMock func(comments *mockCommentRepository)
		wantErr   error
	}{
		{
			name:    "author deletes own comment",
			actorID: authorID,
			setupMock: func(comments *mockCommentRepository) {
				comments.getByIDFn = func(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
					return comment, nil
				}
			},
		},
		{
			name:    "non-author gets forbidden",
			actorID: uuid.New(),
			setupMock: func(comments *mockCommentRepository) {
				comments.getByIDFn = func(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
					return comment, nil
				}
				comments.deleteFn = func(ctx context.Context, id uuid.UUID) error {
					t.Error("Delete must not be called for a non-author")
					return nil
				}
			},
			wantErr: repository.ErrForbidden,
		},
		{
			name:    "missing comment",
			actorID: authorID,
			setupMock: func(comments *mockCommentRepository) {
				comments.getByIDFn = func(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
					return nil, repository.ErrCommentNotFound
				}
			},
			wantErr: repository.ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := &mockCommentRepository{}
			tt.setupMock(comments)

			svc := NewCommentService(comments, &mockVideoRepository{})

			err := svc.Delete(context.Background(), comment.ID, tt.actorID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
