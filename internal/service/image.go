package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore is the slice of object storage the image service needs.
// config.S3Config satisfies it.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(key string) string
}

// ImageService uploads recipe images and hands back their public URLs.
type ImageService struct {
	store ObjectStore
}

func NewImageService(store ObjectStore) *ImageService {
	return &ImageService{store: store}
}

// UploadRecipeImage stores the uploaded file under a freshly generated key
// that keeps the original extension, and returns the public URL. The key is
// unique, so the store's no-overwrite guard never legitimately fires.
func (s *ImageService) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" {
		ext = "jpg"
	}
	key := fmt.Sprintf("recipes/%s.%s", uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer src.Close()

	if err := s.store.Upload(ctx, key, src, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.store.PublicURL(key), nil
}
