package userControllers

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

type AddPaymentMethodInput struct {
	Label       string `json:"label" binding:"required"`
	Holder      string `json:"holder" binding:"required"`
	CardNumber  string `json:"card_number" binding:"required"`
	ExpiryMonth int    `json:"expiry_month" binding:"required,min=1,max=12"`
	ExpiryYear  int    `json:"expiry_year" binding:"required"`
}

var cardNumberRe = regexp.MustCompile(`^\d{13,19}$`)

// GET /user/payment-methods
func GetPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var methods []models.PaymentMethod
		if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// POST /user/payment-methods — stores label and last four digits only.
func AddPaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input AddPaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		number := strings.ReplaceAll(input.CardNumber, " ", "")
		if !cardNumberRe.MatchString(number) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Card number must be 13-19 digits"})
			return
		}
		if input.ExpiryYear < time.Now().Year() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Card is expired"})
			return
		}

		method := models.PaymentMethod{
			UserID:      userID.(uint),
			Label:       input.Label,
			Holder:      input.Holder,
			CardLast4:   number[len(number)-4:],
			ExpiryMonth: input.ExpiryMonth,
			ExpiryYear:  input.ExpiryYear,
		}
		if err := db.Create(&method).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment method"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// DELETE /user/payment-methods/:id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		id := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.PaymentMethod{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
	}
}
