package service

import (
	"context"
	"testing"

	"brainbloom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseRepo struct {
	course  *model.Course
	courses []model.Course
	deleted int64
	err     error

	lastStatus *string
}

func (f *fakeCourseRepo) ListCourses(_ context.Context) ([]model.Course, error) {
	return f.courses, f.err
}

func (f *fakeCourseRepo) GetCourseByID(_ context.Context, _ string) (*model.Course, error) {
	return f.course, f.err
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	return doc, f.err
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, _ string) (int64, error) {
	return f.deleted, f.err
}

func (f *fakeCourseRepo) ListByInstructorEmail(_ context.Context, _ string) ([]model.Course, error) {
	return f.courses, f.err
}

func (f *fakeCourseRepo) Search(_ context.Context, _ string) ([]model.Course, error) {
	return f.courses, f.err
}

func (f *fakeCourseRepo) UpdateStatus(_ context.Context, _ string, status *string) (*model.Course, error) {
	f.lastStatus = status
	return f.course, f.err
}

func TestCourseServiceGetNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{})

	_, err := svc.Get(context.Background(), "66f000000000000000000000")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseServiceDeleteNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{deleted: 0})

	_, err := svc.Delete(context.Background(), "66f000000000000000000000")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseServiceDelete(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{deleted: 1})

	deleted, err := svc.Delete(context.Background(), "66f000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestCourseServiceUpdateStatusPassesNilThrough(t *testing.T) {
	repo := &fakeCourseRepo{course: &model.Course{Status: "draft"}}
	svc := NewCourseService(repo)

	got, err := svc.UpdateStatus(context.Background(), "66f000000000000000000000", nil)
	require.NoError(t, err)
	assert.Nil(t, repo.lastStatus)
	assert.Equal(t, "draft", got.Status)
}

func TestCourseServiceUpdateStatusNotFound(t *testing.T) {
	svc := NewCourseService(&fakeCourseRepo{})

	status := "published"
	_, err := svc.UpdateStatus(context.Background(), "66f000000000000000000000", &status)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}
