package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/api/middleware"
	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/usecase"
)

type AddCommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	VideoID   string `json:"video_id"`
	AuthorID  string `json:"author_id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	svc usecase.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc usecase.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Add handles POST /v1/videos/{id}/comments
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	comment, err := h.svc.Add(r.Context(), videoID, middleware.GetUserID(r.Context()), req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toCommentResponse(comment))
}

// List handles GET /v1/videos/{id}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	comments, err := h.svc.List(r.Context(), videoID, middleware.GetUserID(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp = append(resp, toCommentResponse(c))
	}
	JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /v1/comments/{id}
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_comment_id", "Comment ID must be a valid UUID")
		return
	}

	if err := h.svc.Delete(r.Context(), commentID, middleware.GetUserID(r.Context())); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		VideoID:   c.VideoID.String(),
		AuthorID:  c.AuthorID.String(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
