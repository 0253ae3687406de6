package handler

import (
	"encoding/json"
	"net/http"

	"brainbloom/internal/api/v1/dto"
	"brainbloom/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// MediaHandler hands out presigned upload URLs for course media.
type MediaHandler struct {
	mediaService service.MediaService
	validate     *validator.Validate
	logger       zerolog.Logger
}

func NewMediaHandler(mediaService service.MediaService, v *validator.Validate, logger zerolog.Logger) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, validate: v, logger: logger}
}

// RegisterRoutes mounts media routes
func (h *MediaHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("POST /media/upload-url", authMw(http.HandlerFunc(h.uploadURL)))
}

func (h *MediaHandler) uploadURL(w http.ResponseWriter, r *http.Request) {
	var req dto.MediaUploadURLRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	url, objectKey, err := h.mediaService.UploadURL(r.Context(), req.Filename)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to generate upload URL")
		http.Error(w, "Failed to generate upload URL", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.MediaUploadURLResponseDTO{UploadURL: url, ObjectKey: objectKey})
}
