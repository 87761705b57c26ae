package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hedibld92/margueritecookie/cart"
	orderControllers "github.com/hedibld92/margueritecookie/controllers/order"
	"github.com/hedibld92/margueritecookie/session"
	"github.com/hedibld92/margueritecookie/store"
)

// Deps bundles the wired stores and services the route groups need.
type Deps struct {
	Cookies  *store.CookieStore
	Content  *store.ContentStore
	Orders   *store.OrderStore
	Sessions session.Store
	Cart     *cart.Service
	OrderHub *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up the public shop, cart,
// order, auth and admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, d)

	// Public storefront: catalog, site content, checkout
	SetupShopRoutes(r, d)

	// Session cart
	SetupCartRoutes(r, d)

	// Orders
	SetupOrderRoutes(r, d)

	// Admin panel (session-flag or bearer-token protected)
	SetupAdminRoutes(r, d)
}
