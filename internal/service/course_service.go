package service

import (
	"context"
	"errors"

	"brainbloom/internal/model"
	"brainbloom/internal/repository"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	Get(ctx context.Context, id string) (*model.Course, error)
	Create(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error)
	// Delete removes the course and reports how many documents were
	// deleted. Returns ErrCourseNotFound when nothing matched.
	Delete(ctx context.Context, id string) (int64, error)
	ListByInstructorEmail(ctx context.Context, email string) ([]model.Course, error)
	Search(ctx context.Context, text string) ([]model.Course, error)
	// UpdateStatus sets only the status field; a nil status is a no-op
	// that leaves the course untouched.
	UpdateStatus(ctx context.Context, id string, status *string) (*model.Course, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) CourseService {
	return &courseService{courseRepo: courseRepo}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.ListCourses(ctx)
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	c, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	return s.courseRepo.CreateCourse(ctx, doc)
}

func (s *courseService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.courseRepo.DeleteCourse(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrCourseNotFound
	}
	return deleted, nil
}

func (s *courseService) ListByInstructorEmail(ctx context.Context, email string) ([]model.Course, error) {
	return s.courseRepo.ListByInstructorEmail(ctx, email)
}

func (s *courseService) Search(ctx context.Context, text string) ([]model.Course, error) {
	return s.courseRepo.Search(ctx, text)
}

func (s *courseService) UpdateStatus(ctx context.Context, id string, status *string) (*model.Course, error) {
	c, err := s.courseRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}
