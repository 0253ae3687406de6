package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"brainbloom/internal/api/v1/dto"
	"brainbloom/internal/repository"
	"brainbloom/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(userService service.UserService, v *validator.Validate, logger zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, validate: v, logger: logger}
}

// RegisterRoutes mounts user routes
func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("POST /users", h.createUser)
	mux.Handle("GET /users/{email}", authMw(http.HandlerFunc(h.getUserByEmail)))
	mux.Handle("POST /enrolled", authMw(http.HandlerFunc(h.enroll)))
	mux.Handle("PATCH /fav", authMw(http.HandlerFunc(h.toggleFavorite)))
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list users")
		http.Error(w, "Failed to list users: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// createUser saves the sign-up document as-is; profile fields are not
// interpreted here.
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.userService.Create(r.Context(), doc)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create user")
		http.Error(w, "Failed to create user: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *UserHandler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponseDTO{Message: "User not found"})
		default:
			h.logger.Error().Err(err).Str("email", email).Msg("Failed to get user")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) enroll(w http.ResponseWriter, r *http.Request) {
	var req dto.EnrollRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.userService.Enroll(r.Context(), req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyEnrolled):
			writeJSON(w, http.StatusOK, dto.MessageResponseDTO{Error: true, Message: "Already Enrolled!"})
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponseDTO{Message: "User not found"})
		case errors.Is(err, repository.ErrInvalidID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to enroll")
			http.Error(w, "Failed to enroll: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req dto.FavoriteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, removed, err := h.userService.ToggleFavorite(r.Context(), req.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, dto.MessageResponseDTO{Message: "User not found"})
		case errors.Is(err, repository.ErrInvalidID):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to toggle favorite")
			http.Error(w, "Failed to toggle favorite: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if removed {
		writeJSON(w, http.StatusOK, dto.MessageResponseDTO{Error: true, Message: "Remove From Favorite!"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}
