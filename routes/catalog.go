package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminControllers "github.com/mercadogo/marketplace-api/controllers/admin"
	cartControllers "github.com/mercadogo/marketplace-api/controllers/cart"
	productControllers "github.com/mercadogo/marketplace-api/controllers/product"
)

// SetupCatalogRoutes registers the public browsing surface; no auth needed.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", productControllers.GetFeaturedProducts(db))
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/categories", productControllers.GetCategories(db))
	r.GET("/banners", adminControllers.GetBanners(db))

	// anonymous carts, scoped by guest_id from POST /auth/guest
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db))
		guestCart.POST("", cartControllers.UpdateGuestCartItem(db))
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db))
	}
}
