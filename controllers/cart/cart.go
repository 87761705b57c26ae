package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/cart"
	"github.com/hedibld92/margueritecookie/middleware"
)

type AddItemInput struct {
	CookieID string `json:"cookieId" binding:"required"`
	Quantity *int   `json:"quantity"` // omitted means 1
}

type UpdateItemInput struct {
	// Pointer so an explicit 0 (remove the line) passes binding.
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/cart
func GetCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, err := svc.Fetch(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, crt)
	}
}

// POST /api/cart/add
func AddCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		crt, err := svc.Add(c.Request.Context(), middleware.SessionID(c), input.CookieID, quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, crt)
	}
}

// PUT /api/cart/update/:cookieId
func UpdateCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		crt, err := svc.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("cookieId"), *input.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, crt)
	}
}

// DELETE /api/cart/remove/:cookieId
func RemoveCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, err := svc.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("cookieId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, crt)
	}
}

// POST /api/cart/clear
func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		crt, err := svc.Clear(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, crt)
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}
