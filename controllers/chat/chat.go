package chatControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

type PostMessageInput struct {
	Text     string `json:"text" binding:"required"`
	ImageURL string `json:"image_url"`
	OrderID  *uint  `json:"order_id"`
}

// POST /user/chat — user writes to support.
func PostMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		var input PostMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		msg := models.ChatMessage{
			Username: username,
			Sender:   models.ChatSenderUser,
			Text:     input.Text,
			ImageURL: input.ImageURL,
			OrderID:  input.OrderID,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		broadcastChatMessage(msg)
		c.JSON(http.StatusCreated, msg)
	}
}

// GET /user/chat?order_id= — own messages, optionally for one order.
func GetUserChat(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		query := db.Where("username = ?", username).Order("created_at ASC")
		if orderIDStr := c.Query("order_id"); orderIDStr != "" {
			orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id"})
				return
			}
			query = query.Where("order_id = ?", uint(orderID))
		}

		var messages []models.ChatMessage
		if err := query.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// GET /user/chat/by-order — own messages grouped by order id; messages
// without an order are left out, matching the grouped view.
func GetUserChatsByOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		var messages []models.ChatMessage
		if err := db.
			Where("username = ? AND order_id IS NOT NULL", username).
			Order("created_at ASC").
			Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		grouped := make(map[uint][]models.ChatMessage)
		for _, msg := range messages {
			grouped[*msg.OrderID] = append(grouped[*msg.OrderID], msg)
		}
		c.JSON(http.StatusOK, grouped)
	}
}

// GET /admin/chats — every user's conversation, grouped by username.
func GetAllChats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ChatMessage
		if err := db.Order("created_at ASC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chats"})
			return
		}

		grouped := make(map[string][]models.ChatMessage)
		for _, msg := range messages {
			grouped[msg.Username] = append(grouped[msg.Username], msg)
		}
		c.JSON(http.StatusOK, grouped)
	}
}

// POST /admin/chats/:username — admin reply into a user's conversation.
func AdminReply(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var count int64
		db.Model(&models.User{}).Where("username = ?", username).Count(&count)
		if count == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input PostMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
			return
		}

		msg := models.ChatMessage{
			Username: username,
			Sender:   models.ChatSenderAdmin,
			Text:     input.Text,
			ImageURL: input.ImageURL,
			OrderID:  input.OrderID,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		broadcastChatMessage(msg)
		_ = models.AddNotification(db, username, "chat", "Nuevo mensaje de soporte", input.Text)
		c.JSON(http.StatusCreated, msg)
	}
}
