package cookieController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/store"
)

// UpdateCookie updates an existing cookie by ID. All form fields are
// optional; only the ones present change, plus an optional "image" file.
func UpdateCookie(cookies *store.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd models.CookieUpdate

		// Helper to pick up optional string fields
		setString := func(field string, dst **string) {
			if v, ok := c.GetPostForm(field); ok {
				*dst = &v
			}
		}
		setString("name", &upd.Name)
		setString("description", &upd.Description)
		setString("category", &upd.Category)

		if v, ok := c.GetPostForm("price"); ok {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			upd.Price = &price
		}
		if v, ok := c.GetPostForm("ingredients"); ok {
			ingredients := splitIngredients(v)
			upd.Ingredients = &ingredients
		}
		if v, ok := c.GetPostForm("is_best_seller"); ok {
			isBestSeller := v == "true"
			upd.IsBestSeller = &isBestSeller
		}

		// Handle optional image upload
		if file, err := c.FormFile("image"); err == nil {
			imagePath, saveErr := saveImage(c, file)
			if saveErr != nil {
				c.JSON(apperr.Status(saveErr), gin.H{"error": apperr.Message(saveErr)})
				return
			}
			upd.Image = &imagePath
		}

		updated, err := cookies.Update(c.Param("id"), upd)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
