package cookieController

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
)

const maxImageSize = 5 << 20 // 5MB

// saveImage stores an uploaded cookie image under UPLOAD_DIR/cookies and
// returns the public /uploads path clients use.
func saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxImageSize {
		return "", apperr.Validation("Image exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpeg", ".jpg", ".png", ".webp":
	default:
		return "", apperr.Validation("Only jpeg, jpg, png and webp images are allowed")
	}

	saveDir := filepath.Join(uploadDir(), "cookies")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", apperr.Storage("Failed to create upload folder", err)
	}

	filename := fmt.Sprintf("cookie-%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", apperr.Storage("Failed to save image", err)
	}

	return fmt.Sprintf("/uploads/cookies/%s", filename), nil
}

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./public/uploads"
}
