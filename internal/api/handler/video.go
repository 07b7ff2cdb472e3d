package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/vidshare/internal/api/middleware"
	"github.com/hszk-dev/vidshare/internal/domain/model"
	"github.com/hszk-dev/vidshare/internal/usecase"
)

type UpdateVideoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Credits     *string `json:"credits"`
	IsPublic    *bool   `json:"is_public"`
}

type VideoResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Credits     string `json:"credits,omitempty"`
	IsPublic    bool   `json:"is_public"`
	PublishedAt string `json:"published_at"`
	CreatedAt   string `json:"created_at"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc         usecase.VideoService
	maxFileSize int64
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService, maxFileSize int64) *VideoHandler {
	return &VideoHandler{svc: svc, maxFileSize: maxFileSize}
}

// Upload handles POST /v1/videos
// The request is multipart/form-data with a "file" part and metadata fields.
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.GetUserID(r.Context())

	// A body one byte past the limit means the file part was oversized or
	// the form was malformed, both client errors.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1<<20)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Malformed multipart form or file too large")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		FieldFailure(w, "file", "A video file is required")
		return
	}
	defer file.Close()

	isPublic := true
	if v := r.FormValue("is_public"); v != "" {
		isPublic, err = strconv.ParseBool(v)
		if err != nil {
			FieldFailure(w, "is_public", "is_public must be a boolean")
			return
		}
	}

	video, err := h.svc.Upload(r.Context(), usecase.UploadVideoInput{
		OwnerID:     ownerID,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Credits:     r.FormValue("credits"),
		IsPublic:    isPublic,
		FileName:    header.Filename,
		FileSize:    header.Size,
		File:        file,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusCreated, toVideoResponse(video))
}

// Get handles GET /v1/videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	video, err := h.svc.Get(r.Context(), videoID, middleware.GetUserID(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// ListByOwner handles GET /v1/users/{id}/videos
func (h *VideoHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_user_id", "User ID must be a valid UUID")
		return
	}

	videos, err := h.svc.ListByOwner(r.Context(), ownerID, middleware.GetUserID(r.Context()))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		resp = append(resp, toVideoResponse(v))
	}
	JSON(w, http.StatusOK, resp)
}

// Update handles PATCH /v1/videos/{id}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	var req UpdateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	video, err := h.svc.Update(r.Context(), usecase.UpdateVideoInput{
		VideoID:     videoID,
		ActorID:     middleware.GetUserID(r.Context()),
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// Delete handles DELETE /v1/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	videoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_video_id", "Video ID must be a valid UUID")
		return
	}

	if err := h.svc.Delete(r.Context(), videoID, middleware.GetUserID(r.Context())); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID.String(),
		OwnerID:     v.OwnerID.String(),
		Title:       v.Title,
		Description: v.Description,
		Credits:     v.Credits,
		IsPublic:    v.IsPublic,
		PublishedAt: v.PublishedAt.Format(time.RFC3339),
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}
