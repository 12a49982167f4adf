// Package testutil provides shared helpers for controller tests: an
// in-memory database with the full schema and a few request/fixture
// shortcuts.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mercadogo/marketplace-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestDB opens an in-memory SQLite database migrated with the full
// schema. The pool is capped at one connection so every query sees the
// same in-memory store.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.GuestUser{},
		&models.GuestCart{},
		&models.GuestCartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Notification{},
		&models.Report{},
		&models.ReportStatusChange{},
		&models.PaymentMethod{},
		&models.ChatMessage{},
		&models.Banner{},
	))
	return db
}

// CreateUser inserts a user (with an empty cart) and returns it. The
// password for every fixture user is "Password1!".
func CreateUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	// GORM does not save zero-value has-one associations; the cart row
	// needs its own insert.
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)
	return user
}

// CreateProduct inserts a product and returns it.
func CreateProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: "Test",
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// AddCartItem inserts a cart line with the given snapshot price.
func AddCartItem(t *testing.T, db *gorm.DB, user models.User, product models.Product, quantity int, price float64) models.CartItem {
	t.Helper()

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&cart).Error)

	item := models.CartItem{
		CartID:      cart.CartID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       price,
		Quantity:    quantity,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// AsUser fakes the auth middleware for a request.
func AsUser(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("role", user.Role)
		c.Next()
	}
}

// PerformRequest runs a request with an optional JSON body against the
// router and returns the recorder.
func PerformRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
