package cartControllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
	"github.com/mercadogo/marketplace-api/testutil"
)

func newCartRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/user/cart", testutil.AsUser(user))
	g.GET("", GetUserCart(db))
	g.POST("", AddCartItem(db))
	g.POST("/merge", MergeGuestCart(db))
	g.PUT("/:product_id", UpdateCartQuantity(db))
	g.DELETE("/:product_id", DeleteCartItem(db))
	g.DELETE("", ClearUserCart(db))
	return r
}

func pid(p models.Product) string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente1", models.RoleUser)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/cart",
		gin.H{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddCartItemBeyondStockRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente2", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Auriculares", 20.0, 3)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/cart",
		gin.H{"product_id": product.ID, "quantity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Not enough stock")
}

func TestAddCartItemTopUpCapsAtStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente3", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Smartwatch", 45.0, 5)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/cart",
		gin.H{"product_id": product.ID, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	// 3 + 3 exceeds the 5 in stock, so the line is capped
	w = testutil.PerformRequest(t, r, http.MethodPost, "/user/cart",
		gin.H{"product_id": product.ID, "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assert.Equal(t, 5, item.Quantity)
}

func TestAddCartItemSnapshotsPrice(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente4", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Laptop", 1299.99, 10)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/cart",
		gin.H{"product_id": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assert.Equal(t, 1299.99, item.Price)
	assert.Equal(t, "Laptop", item.ProductName)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente5", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Tableta", 349.50, 10)
	testutil.AddCartItem(t, db, user, product, 2, 349.50)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPut, "/user/cart/"+pid(product),
		gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateQuantityCapsAtStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente6", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Smartphone", 899.99, 4)
	testutil.AddCartItem(t, db, user, product, 1, 899.99)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPut, "/user/cart/"+pid(product),
		gin.H{"quantity": 100})
	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assert.Equal(t, 4, item.Quantity)
}

func TestDeleteCartItem(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente7", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Auriculares", 199.99, 50)
	testutil.AddCartItem(t, db, user, product, 1, 199.99)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodDelete, "/user/cart/"+pid(product), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodDelete, "/user/cart/"+pid(product), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCart(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente8", models.RoleUser)
	a := testutil.CreateProduct(t, db, "A", 1.0, 10)
	b := testutil.CreateProduct(t, db, "B", 2.0, 10)
	testutil.AddCartItem(t, db, user, a, 1, 1.0)
	testutil.AddCartItem(t, db, user, b, 2, 2.0)
	r := newCartRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodDelete, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/user/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestMergeGuestCartSumsAndCaps(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "cliente9", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Smartwatch", 249.0, 5)
	testutil.AddCartItem(t, db, user, product, 4, 249.0)

	guestCart := models.GuestCart{GuestID: "guest_abc123"}
	require.NoError(t, db.Create(&guestCart).Error)
	require.NoError(t, db.Create(&models.GuestCartItem{
		CartID:      guestCart.CartID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       249.0,
		Quantity:    3,
	}).Error)

	r := newCartRouter(db, user)
	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/cart/merge",
		gin.H{"guest_id": "guest_abc123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 4 + 3 capped at the 5 in stock
	var item models.CartItem
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&item).Error)
	assert.Equal(t, 5, item.Quantity)

	var guestCarts int64
	db.Model(&models.GuestCart{}).Count(&guestCarts)
	assert.Zero(t, guestCarts)
}
