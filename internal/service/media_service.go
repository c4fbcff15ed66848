package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"brocoachme/coach-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaUploadTarget is a presigned upload destination handed to the frontend.
// The browser PUTs the file straight to the bucket; the resulting object key
// (or a view URL for it) is then stored on the coach or exercise document.
type MediaUploadTarget struct {
	UploadURL string
	ObjectKey string
}

// MediaService brokers presigned URLs for coach avatars and exercise demo videos.
type MediaService interface {
	CreateUploadURL(ctx context.Context, coachID primitive.ObjectID, fileName, contentType string) (*MediaUploadTarget, error)
	CreateViewURL(ctx context.Context, objectKey string) (string, error)
}

type mediaService struct {
	fileStorage storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(fileStorage storage.FileStorage) MediaService {
	return &mediaService{fileStorage: fileStorage}
}

// CreateUploadURL generates a bucket key scoped to the coach and a presigned
// PUT URL for it.
func (s *mediaService) CreateUploadURL(ctx context.Context, coachID primitive.ObjectID, fileName, contentType string) (*MediaUploadTarget, error) {
	if coachID == primitive.NilObjectID || fileName == "" || contentType == "" {
		return nil, errors.New("coach ID, file name, and content type are required")
	}

	// Random prefix so repeated uploads of the same filename never collide.
	objectKey := fmt.Sprintf("media/%s/%s%s", coachID.Hex(), uuid.NewString(), path.Ext(fileName))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, err
	}

	return &MediaUploadTarget{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
	}, nil
}

// CreateViewURL generates a presigned GET URL for a previously uploaded object.
func (s *mediaService) CreateViewURL(ctx context.Context, objectKey string) (string, error) {
	if objectKey == "" {
		return "", errors.New("object key is required")
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
}
