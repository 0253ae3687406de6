package dto

// EnrollRequestDTO is the body of POST /enrolled.
type EnrollRequestDTO struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}

// FavoriteRequestDTO is the body of PATCH /fav.
type FavoriteRequestDTO struct {
	UserID   string `json:"userId" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}

// MessageResponseDTO carries toggle outcomes and not-found messages.
// Error marks domain outcomes like "Already Enrolled!"; it is not a
// transport-level failure.
type MessageResponseDTO struct {
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message"`
}
