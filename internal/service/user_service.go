package service

import (
	"context"
	"errors"

	"brainbloom/internal/model"
	"brainbloom/internal/repository"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyEnrolled = errors.New("already enrolled")
)

type UserService interface {
	Create(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error)
	List(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Enroll adds courseID to the user's enrollments. Returns
	// ErrAlreadyEnrolled when the course is already present and
	// ErrUserNotFound when the user does not exist.
	Enroll(ctx context.Context, userID, courseID string) (*model.User, error)
	// ToggleFavorite flips courseID in the user's favorites; the bool
	// reports a removal.
	ToggleFavorite(ctx context.Context, userID, courseID string) (*model.User, bool, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, doc map[string]interface{}) (map[string]interface{}, error) {
	return s.userRepo.CreateUser(ctx, doc)
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListUsers(ctx)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) Enroll(ctx context.Context, userID, courseID string) (*model.User, error) {
	u, already, err := s.userRepo.EnrollCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if already {
		return nil, ErrAlreadyEnrolled
	}
	return u, nil
}

func (s *userService) ToggleFavorite(ctx context.Context, userID, courseID string) (*model.User, bool, error) {
	u, removed, err := s.userRepo.ToggleFavorite(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}
	if u == nil {
		return nil, false, ErrUserNotFound
	}
	return u, removed, nil
}
