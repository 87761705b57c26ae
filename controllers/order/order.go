package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/apperr"
	"github.com/hedibld92/margueritecookie/models"
	"github.com/hedibld92/margueritecookie/store"
)

type PlaceOrderInput struct {
	Items           []models.CartItem      `json:"items" binding:"required,min=1"`
	Total           float64                `json:"total"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/orders
func PlaceOrder(orders *store.OrderStore, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := orders.Place(input.Items, input.Total, input.ShippingAddress)
		hub.Broadcast(Event{Type: EventPlaced, Order: order})
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:id
func GetOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Get(c.Param("id"))
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func ListOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orders.List())
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatus(orders *store.OrderStore, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := orders.SetStatus(c.Param("id"), input.Status)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
			return
		}

		hub.Broadcast(Event{Type: EventStatusChanged, Order: order})
		c.JSON(http.StatusOK, order)
	}
}
