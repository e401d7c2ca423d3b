package storage

import (
	"context"
	"time"
)

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadFile uploads a local file into the destination folder and returns
	// the hosted secure URL.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a previously uploaded file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL constructs a public URL for an uploaded image.
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
