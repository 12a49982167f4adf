package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/config"
	cartControllers "github.com/mercadogo/marketplace-api/controllers/cart"
	chatControllers "github.com/mercadogo/marketplace-api/controllers/chat"
	notificationControllers "github.com/mercadogo/marketplace-api/controllers/notification"
	orderControllers "github.com/mercadogo/marketplace-api/controllers/order"
	reportControllers "github.com/mercadogo/marketplace-api/controllers/report"
	userControllers "github.com/mercadogo/marketplace-api/controllers/user"
	"github.com/mercadogo/marketplace-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints; JWT protected.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.PUT("", userControllers.UpdateUser(db))
		userGroup.DELETE("", userControllers.DeleteAccount(db))

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))
			cartGroup.POST("", cartControllers.AddCartItem(db))
			cartGroup.POST("/merge", cartControllers.MergeGuestCart(db))
			cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(db))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))
		}

		userGroup.GET("/checkout", orderControllers.CheckoutReviewHandler(db))
		userGroup.POST("/checkout", orderControllers.PlaceOrderHandler(db))

		ordersGroup := userGroup.Group("/orders")
		{
			ordersGroup.GET("", orderControllers.GetUserOrdersHandler(db))
			ordersGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			ordersGroup.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(db))
		}

		notifGroup := userGroup.Group("/notifications")
		{
			notifGroup.GET("", notificationControllers.GetNotifications(db))
			notifGroup.GET("/unread-count", notificationControllers.GetUnreadCount(db))
			notifGroup.POST("/:id/read", notificationControllers.MarkNotificationRead(db))
		}

		reportsGroup := userGroup.Group("/reports")
		{
			reportsGroup.GET("", reportControllers.GetUserReports(db))
			reportsGroup.POST("", reportControllers.CreateReport(db))
		}

		pmGroup := userGroup.Group("/payment-methods")
		{
			pmGroup.GET("", userControllers.GetPaymentMethods(db))
			pmGroup.POST("", userControllers.AddPaymentMethod(db))
			pmGroup.DELETE("/:id", userControllers.DeletePaymentMethod(db))
		}

		chatGroup := userGroup.Group("/chat")
		{
			chatGroup.GET("", chatControllers.GetUserChat(db))
			chatGroup.GET("/by-order", chatControllers.GetUserChatsByOrder(db))
			chatGroup.POST("", chatControllers.PostMessage(db))
			chatGroup.POST("/upload", chatControllers.HandleChatImageUpload(cfg.UploadDir))
		}
	}
}
