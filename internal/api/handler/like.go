package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/api/middleware"
	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/usecase"
)

type ToggleLikeRequest struct {
	Disposition string `json:"disposition"`
}

type LikeStateResponse struct {
	Disposition string `json:"disposition"`
	Likes       int64  `json:"likes"`
	Dislikes    int64  `json:"dislikes"`
}

// LikeHandler handles like-related HTTP requests.
type LikeHandler struct {
	svc usecase.LikeService
}

// NewLikeHandler creates a new LikeHandler.
func NewLikeHandler(svc usecase.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Toggle handles PUT /v1/videos/{id}/like
// Submitting the current disposition clears it; submitting the opposite
// replaces it.
func (h *LikeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	var req ToggleLikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	state, err := h.svc.Toggle(r.Context(), middleware.GetUserID(r.Context()), videoID, model.Disposition(req.Disposition))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toLikeStateResponse(state))
}

// Get handles GET /v1/videos/{id}/like
func (h *LikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	state, err := h.svc.Get(r.Context(), middleware.GetUserID(r.Context()), videoID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toLikeStateResponse(state))
}

func toLikeStateResponse(state *usecase.LikeState) LikeStateResponse {
	return LikeStateResponse{
		Disposition: string(state.Disposition),
		Likes:       state.Counts.Likes,
		Dislikes:    state.Counts.Dislikes,
	}
}
