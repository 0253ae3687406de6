package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brainbloom/internal/model"
	"brainbloom/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCourseService struct {
	course  *model.Course
	courses []model.Course
	deleted int64
	err     error

	lastSearchText string
	lastStatus     *string
	statusCalled   bool
}

func (s *stubCourseService) List(_ context.Context) ([]model.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) Get(_ context.Context, _ string) (*model.Course, error) {
	return s.course, s.err
}

func (s *stubCourseService) Create(_ context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	return doc, s.err
}

func (s *stubCourseService) Delete(_ context.Context, _ string) (int64, error) {
	return s.deleted, s.err
}

func (s *stubCourseService) ListByInstructorEmail(_ context.Context, _ string) ([]model.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) Search(_ context.Context, text string) ([]model.Course, error) {
	s.lastSearchText = text
	return s.courses, s.err
}

func (s *stubCourseService) UpdateStatus(_ context.Context, _ string, status *string) (*model.Course, error) {
	s.statusCalled = true
	s.lastStatus = status
	return s.course, s.err
}

func newCourseMux(svc service.CourseService) *http.ServeMux {
	h := NewCourseHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, passthroughAuth)
	return mux
}

func TestListCourses(t *testing.T) {
	mux := newCourseMux(&stubCourseService{courses: []model.Course{{Category: "Programming"}}})

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Programming", body[0]["category"])
}

func TestGetCourseNotFound(t *testing.T) {
	mux := newCourseMux(&stubCourseService{err: service.ErrCourseNotFound})

	req := httptest.NewRequest(http.MethodGet, "/course/66f000000000000000000000", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchCoursesPassesText(t *testing.T) {
	stub := &stubCourseService{courses: []model.Course{}}
	mux := newCourseMux(stub)

	req := httptest.NewRequest(http.MethodGet, "/courses/search/programming", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "programming", stub.lastSearchText)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateStatusWithBody(t *testing.T) {
	stub := &stubCourseService{course: &model.Course{Status: "published"}}
	mux := newCourseMux(stub)

	req := httptest.NewRequest(http.MethodPatch, "/course/66f000000000000000000000", strings.NewReader(`{"status":"published"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.lastStatus)
	assert.Equal(t, "published", *stub.lastStatus)
}

func TestUpdateStatusEmptyBodyIsNoOp(t *testing.T) {
	stub := &stubCourseService{course: &model.Course{Status: "draft"}}
	mux := newCourseMux(stub)

	req := httptest.NewRequest(http.MethodPatch, "/course/66f000000000000000000000", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.statusCalled)
	assert.Nil(t, stub.lastStatus)
}

func TestDeleteCourse(t *testing.T) {
	mux := newCourseMux(&stubCourseService{deleted: 1})

	req := httptest.NewRequest(http.MethodDelete, "/deleteCourse/66f000000000000000000000", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rec.Body.String())
}

func TestDeleteCourseNotFound(t *testing.T) {
	mux := newCourseMux(&stubCourseService{err: service.ErrCourseNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/deleteCourse/66f000000000000000000000", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCoursePassesDocumentThrough(t *testing.T) {
	mux := newCourseMux(&stubCourseService{})

	req := httptest.NewRequest(http.MethodPost, "/courses", strings.NewReader(`{"title":"Intro to Go","category":"Programming"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Intro to Go", body["title"])
}

func TestListByInstructorEmail(t *testing.T) {
	mux := newCourseMux(&stubCourseService{courses: []model.Course{
		{Instructor: model.Instructor{Email: "ada@example.com"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/courses/ada@example.com", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
}
