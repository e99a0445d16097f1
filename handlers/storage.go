package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fobworks/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageHandler proxies booking-form photo uploads to the image host.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
}

// UploadPhotoHandler handles POST /api/uploads/photo. The customer attaches
// a picture of their fob so the crew brings the right blank.
func (h *StorageHandler) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type; upload a jpg, png, webp or heic image"})
		return
	}

	// Save under a random name; customer-supplied filenames never touch
	// the filesystem path.
	tempFilePath := filepath.Join(os.TempDir(), uuid.NewString()+ext)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "fobs/photos")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "file uploaded successfully",
		"downloadURL": downloadURL,
	})
}
