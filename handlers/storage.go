package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"beautyconnect/services/storage"
	"beautyconnect/services/user"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles profile image uploads to the external image host.
type StorageHandler struct {
	StorageSvc storage.StorageService
	UserSvc    user.Service
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(storageSvc storage.StorageService, userSvc user.Service) *StorageHandler {
	return &StorageHandler{StorageSvc: storageSvc, UserSvc: userSvc}
}

// UploadProfileImageHandler handles POST /api/storage/profile-image.
func (h *StorageHandler) UploadProfileImageHandler(c *gin.Context) {
	userID, ok := identityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store uploaded file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	url, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "profile-images")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed", "detail": err.Error()})
		return
	}

	if err := h.UserSvc.SetProfileImage(c.Request.Context(), userID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile image", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileImage": url})
}
