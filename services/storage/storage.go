package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}

// UploadFile uploads a file to Cloudinary into the specified folder and returns the permanent identifier.
func (s *StorageServiceImpl) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	uploadParams := uploader.UploadParams{
		Folder: destFolder,
	}
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploadParams)
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for an uploaded image.
func (s *StorageServiceImpl) GetDownloadURL(ctx context.Context, publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("storage: failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to get URL string: %w", err)
	}
	return url, nil
}

// GetSecureDownloadURL generates a signed, short-lived URL for an authenticated resource.
// It computes a signature using SHA-1 over "expires_at" and "public_id" concatenated with the API secret.
func (s *StorageServiceImpl) GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/image/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, signature, expiresAt, publicID)
	return secureURL, nil
}

// computeSHA1 computes the SHA-1 hash of the input and returns its hex encoding.
func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
