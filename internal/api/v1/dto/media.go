package dto

// MediaUploadURLRequestDTO is the body of POST /media/upload-url.
type MediaUploadURLRequestDTO struct {
	Filename string `json:"filename" validate:"required"`
}

// MediaUploadURLResponseDTO carries a presigned PUT URL for a direct
// upload to the media bucket.
type MediaUploadURLResponseDTO struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}
