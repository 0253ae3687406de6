package handler

import (
	"encoding/json"
	"net/http"

	"brainbloom/internal/api/v1/dto"
	"brainbloom/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	tokenService service.TokenService
	logger       zerolog.Logger
}

func NewAuthHandler(tokenService service.TokenService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{tokenService: tokenService, logger: logger}
}

// RegisterRoutes mounts auth routes
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /jwt", h.issueToken)
}

// issueToken signs the posted identity payload verbatim. There is no
// credential check here; identity is accepted as given at issuance time.
func (h *AuthHandler) issueToken(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.tokenService.Issue(payload)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to issue token")
		http.Error(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}
