package dto

// CourseStatusUpdateDTO is the body of PATCH /course/{id}. A missing
// status means nothing is updated.
type CourseStatusUpdateDTO struct {
	Status *string `json:"status"`
}

// DeleteResponseDTO mirrors the store's delete acknowledgment.
type DeleteResponseDTO struct {
	DeletedCount int64 `json:"deletedCount"`
}
