package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/config"
	adminControllers "github.com/mercadogo/marketplace-api/controllers/admin"
	cartControllers "github.com/mercadogo/marketplace-api/controllers/cart"
	chatControllers "github.com/mercadogo/marketplace-api/controllers/chat"
	orderControllers "github.com/mercadogo/marketplace-api/controllers/order"
	productControllers "github.com/mercadogo/marketplace-api/controllers/product"
	reportControllers "github.com/mercadogo/marketplace-api/controllers/report"
	userControllers "github.com/mercadogo/marketplace-api/controllers/user"
	"github.com/mercadogo/marketplace-api/middleware"
)

// SetupAdminRoutes registers the back-office endpoints. Everything under
// "/admin" needs a valid token with the admin role; "/integration" is for
// headless tooling and uses the API key instead.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin(db))
	{
		userAdmin := adminGroup.Group("/users")
		{
			userAdmin.GET("", userControllers.GetAllUsers(db))
			userAdmin.DELETE("/:username", userControllers.DeleteUserByUsername(db))
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db, cfg.UploadDir))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db, cfg.UploadDir))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		reportAdmin := adminGroup.Group("/reports")
		{
			reportAdmin.GET("", reportControllers.GetAllReports(db))
			reportAdmin.POST("/:id/respond", reportControllers.RespondReport(db))
		}

		chatAdmin := adminGroup.Group("/chats")
		{
			chatAdmin.GET("", chatControllers.GetAllChats(db))
			chatAdmin.POST("/purge", chatControllers.PurgeJunkMessages(db))
			chatAdmin.POST("/:username", chatControllers.AdminReply(db))
		}

		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", adminControllers.UploadBanner(db, cfg.UploadDir))
			bannerAdmin.DELETE("/:id", adminControllers.DeleteBanner(db, cfg.UploadDir))
		}

		adminGroup.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
	}

	integration := r.Group("/integration")
	integration.Use(middleware.ValidateAPIKey(cfg.AdminAPIKey))
	{
		integration.POST("/products/import-excel", productControllers.ImportProductsFromExcel(db))
		integration.GET("/products/export-excel", productControllers.ExportProductsToExcel(db))
	}
}
