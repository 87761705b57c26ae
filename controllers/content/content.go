package contentController

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/store"
)

// GET /api/site-content
func GetSiteContent(contents *store.ContentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := contents.Get()
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

// PUT /admin/site-content
// The admin panel sends the whole document back as a "content" form field,
// with an optional heroImage file replacing the hero background.
func UpdateSiteContent(contents *store.ContentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.PostForm("content")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
			return
		}

		var content models.SiteContent
		if err := json.Unmarshal([]byte(raw), &content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content: " + err.Error()})
			return
		}

		if file, err := c.FormFile("heroImage"); err == nil {
			imagePath, saveErr := saveHeroImage(c, file)
			if saveErr != nil {
				c.JSON(apperr.Status(saveErr), gin.H{"error": apperr.Message(saveErr)})
				return
			}
			content.SetHeroImage(imagePath)
		}

		if err := contents.Replace(content); err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "content": content})
	}
}

func saveHeroImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > 5<<20 {
		return "", apperr.Validation("Image exceeds the 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpeg", ".jpg", ".png", ".webp":
	default:
		return "", apperr.Validation("Only jpeg, jpg, png and webp images are allowed")
	}

	saveDir := os.Getenv("UPLOAD_DIR")
	if saveDir == "" {
		saveDir = "./public/uploads"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", apperr.Storage("Failed to create upload folder", err)
	}

	filename := fmt.Sprintf("hero-%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", apperr.Storage("Failed to save image", err)
	}
	return fmt.Sprintf("/uploads/%s", filename), nil
}
