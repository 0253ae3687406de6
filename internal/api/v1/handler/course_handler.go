package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"brainbloom/internal/api/v1/dto"
	"brainbloom/internal/repository"
	"brainbloom/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, v *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: v, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /courses", h.listCourses)
	mux.HandleFunc("GET /courses/search/{searchText}", h.searchCourses)
	mux.Handle("POST /courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("GET /courses/{email}", authMw(http.HandlerFunc(h.listByInstructor)))
	mux.Handle("GET /course/{id}", authMw(http.HandlerFunc(h.getCourse)))
	mux.HandleFunc("PATCH /course/{id}", h.updateStatus)
	mux.Handle("DELETE /deleteCourse/{id}", authMw(http.HandlerFunc(h.deleteCourse)))
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list courses")
		http.Error(w, "Failed to list courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) searchCourses(w http.ResponseWriter, r *http.Request) {
	text := r.PathValue("searchText")

	courses, err := h.courseService.Search(r.Context(), text)
	if err != nil {
		h.logger.Error().Err(err).Str("search_text", text).Msg("Course search failed")
		http.Error(w, "Course search failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

// createCourse saves the course document as-is; descriptive fields are
// not interpreted here.
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.courseService.Create(r.Context(), doc)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to create course")
		http.Error(w, "Failed to create course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CourseHandler) listByInstructor(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	courses, err := h.courseService.ListByInstructorEmail(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Failed to list instructor courses")
		http.Error(w, "Failed to list instructor courses: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	course, err := h.courseService.Get(r.Context(), id)
	if err != nil {
		h.respondCourseError(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// An empty body is a valid no-op update.
	var req dto.CourseStatusUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	course, err := h.courseService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.respondCourseError(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deleted, err := h.courseService.Delete(r.Context(), id)
	if err != nil {
		h.respondCourseError(w, err, id)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeleteResponseDTO{DeletedCount: deleted})
}

func (h *CourseHandler) respondCourseError(w http.ResponseWriter, err error, id string) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		writeJSON(w, http.StatusNotFound, dto.MessageResponseDTO{Message: "Course not found"})
	case errors.Is(err, repository.ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error().Err(err).Str("course_id", id).Msg("Course operation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
