package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService abstracts the third-party image host that booking-form
// photos are proxied to.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
	GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}
