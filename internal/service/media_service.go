package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MediaService hands out presigned PUT URLs so clients upload course
// media (thumbnails, previews) directly to the bucket.
type MediaService interface {
	UploadURL(ctx context.Context, filename string) (url string, objectKey string, err error)
}

type mediaService struct {
	presignClient *s3.PresignClient
	bucketName    string
	mediaLogger   zerolog.Logger
}

func NewMediaService(s3Client *s3.Client, bucketName string, logger zerolog.Logger) MediaService {
	return &mediaService{
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
		mediaLogger:   logger.With().Str("service", "MediaService").Logger(),
	}
}

func (s *mediaService) UploadURL(ctx context.Context, filename string) (string, string, error) {
	objectKey := mediaObjectKey(filename)
	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.mediaLogger.Error().Err(err).Str("object_key", objectKey).Msg("Failed to generate presigned PUT URL")
		return "", "", fmt.Errorf("failed to generate presigned PUT URL: %w", err)
	}
	return request.URL, objectKey, nil
}

// mediaObjectKey namespaces uploads under courses/ with a fresh id,
// keeping only the original file extension.
func mediaObjectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("courses/%s%s", uuid.NewString(), ext)
}
