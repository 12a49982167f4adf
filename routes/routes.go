package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/config"
	chatControllers "github.com/mercadogo/marketplace-api/controllers/chat"
	orderControllers "github.com/mercadogo/marketplace-api/controllers/order"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupCatalogRoutes(r, db)
	SetupUserRoutes(r, db, cfg)
	SetupAdminRoutes(r, db, cfg)

	// live feeds for the back-office
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
	r.GET("/ws/chat", chatControllers.ChatWebSocketHandler)
}
