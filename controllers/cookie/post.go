package cookieController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/store"
)

// CreateCookie creates a new catalog entry from a multipart form, with an
// optional image upload.
func CreateCookie(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		cookie := models.Cookie{
			Name:         name,
			Description:  c.PostForm("description"),
			Category:     c.PostForm("category"),
			Price:        price,
			Ingredients:  splitIngredients(c.PostForm("ingredients")),
			IsBestSeller: c.PostForm("is_best_seller") == "true",
		}

		// Optional image
		if file, err := c.FormFile("image"); err == nil {
			imagePath, saveErr := saveImage(c, file)
			if saveErr != nil {
				c.JSON(apperr.Status(saveErr), gin.H{"error": apperr.Message(saveErr)})
				return
			}
			cookie.Image = imagePath
		}

		created, err := cookies.Create(cookie)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// splitIngredients parses the comma-separated ingredients form field.
func splitIngredients(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
