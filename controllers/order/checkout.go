package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

type checkoutLine struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"image_url"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	LineTotal    float64 `json:"line_total"`
	StockOK      bool    `json:"stock_ok"`
	CurrentStock int     `json:"current_stock"`
}

type checkoutReview struct {
	Items           []checkoutLine         `json:"items"`
	Total           float64                `json:"total"`
	DeliveryAddress string                 `json:"delivery_address"`
	PaymentMethods  []models.PaymentMethod `json:"payment_methods"`
	CanSubmit       bool                   `json:"can_submit"`
}

// GET /user/checkout
//
// Review step: prices come from the cart snapshots, but every line is
// re-checked against live stock so the client can warn before submitting.
// Stock may still change between review and submit; PlaceOrder re-validates.
func CheckoutReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.Preload("PaymentMethods").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", user.ID).First(&cart).Error; err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}

		review := checkoutReview{
			DeliveryAddress: user.DeliveryAddress,
			PaymentMethods:  user.PaymentMethods,
			CanSubmit:       true,
		}
		for _, item := range cart.Items {
			line := checkoutLine{
				ProductID: item.ProductID,
				Name:      item.ProductName,
				ImageURL:  item.ProductImage,
				Price:     item.Price,
				Quantity:  item.Quantity,
				LineTotal: item.Price * float64(item.Quantity),
			}
			var product models.Product
			if err := db.First(&product, item.ProductID).Error; err == nil {
				line.CurrentStock = product.Stock
				line.StockOK = product.Stock >= item.Quantity
			}
			if !line.StockOK {
				review.CanSubmit = false
			}
			review.Total += line.LineTotal
			review.Items = append(review.Items, line)
		}

		c.JSON(http.StatusOK, review)
	}
}
