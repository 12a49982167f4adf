package userControllers

import (
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

func newUserRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/user", testutil.AsUser(user))
	g.GET("", GetUser(db))
	g.PUT("", UpdateUser(db))
	g.DELETE("", DeleteAccount(db))
	g.GET("/payment-methods", GetPaymentMethods(db))
	g.POST("/payment-methods", AddPaymentMethod(db))
	g.DELETE("/payment-methods/:id", DeletePaymentMethod(db))

	admin := r.Group("/admin", testutil.AsUser(user))
	admin.GET("/users", GetAllUsers(db))
	admin.DELETE("/users/:username", DeleteUserByUsername(db))
	return r
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "perfil01", models.RoleUser)
	r := newUserRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPut, "/user",
		gin.H{"delivery_address": "Av. Siempre Viva 742"})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "Av. Siempre Viva 742", fresh.DeliveryAddress)
}

func TestUpdateProfileEmailTakenByOther(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "perfil02", models.RoleUser)
	testutil.CreateUser(t, db, "perfil03", models.RoleUser)
	r := newUserRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPut, "/user",
		gin.H{"email": "perfil03@example.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteUserByUsernameRemovesOnlyThatUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateUser(t, db, "admin001", models.RoleAdmin)
	victim := testutil.CreateUser(t, db, "victima1", models.RoleUser)
	bystander := testutil.CreateUser(t, db, "testigo1", models.RoleUser)
	product := testutil.CreateProduct(t, db, "Laptop", 10.0, 5)
	testutil.AddCartItem(t, db, victim, product, 1, 10.0)
	testutil.AddCartItem(t, db, bystander, product, 1, 10.0)

	r := newUserRouter(db, admin)
	w := testutil.PerformRequest(t, r, http.MethodDelete, "/admin/users/victima1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.User{}).Where("username = ?", "victima1").Count(&count)
	assert.Zero(t, count)

	// the bystander and their cart are untouched
	db.Model(&models.User{}).Where("username = ?", "testigo1").Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.CartItem{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteUserByUsernameMissingIs404(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateUser(t, db, "admin002", models.RoleAdmin)
	r := newUserRouter(db, admin)

	w := testutil.PerformRequest(t, r, http.MethodDelete, "/admin/users/nadie123", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteAccountKeepsOrders(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "saliente1", models.RoleUser)
	require.NoError(t, db.Create(&models.Order{
		OrderRef: "ref-1", UserID: user.ID, Username: user.Username,
		Total: 10, Status: models.OrderStatusCompleted,
	}).Error)

	r := newUserRouter(db, user)
	w := testutil.PerformRequest(t, r, http.MethodDelete, "/user", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// the order history survives under the username snapshot
	var orders int64
	db.Model(&models.Order{}).Where("username = ?", "saliente1").Count(&orders)
	assert.EqualValues(t, 1, orders)
}

func TestAddPaymentMethodStoresLastFourOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "pagador1", models.RoleUser)
	r := newUserRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/payment-methods", gin.H{
		"label": "Visa personal", "holder": "Ana Garcia",
		"card_number": "4111 1111 1111 1234", "expiry_month": 12, "expiry_year": 2030,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var method models.PaymentMethod
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&method).Error)
	assert.Equal(t, "1234", method.CardLast4)
	assert.NotContains(t, w.Body.String(), "4111")
}

func TestAddPaymentMethodRejectsExpiredAndBadNumbers(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "pagador2", models.RoleUser)
	r := newUserRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/payment-methods", gin.H{
		"label": "Vieja", "holder": "Ana", "card_number": "4111111111111234",
		"expiry_month": 1, "expiry_year": 2020,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodPost, "/user/payment-methods", gin.H{
		"label": "Corta", "holder": "Ana", "card_number": "1234",
		"expiry_month": 1, "expiry_year": 2030,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePaymentMethodScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.CreateUser(t, db, "pagador3", models.RoleUser)
	other := testutil.CreateUser(t, db, "pagador4", models.RoleUser)

	method := models.PaymentMethod{UserID: owner.ID, Label: "Visa", Holder: "Ana", CardLast4: "1234", ExpiryMonth: 1, ExpiryYear: 2030}
	require.NoError(t, db.Create(&method).Error)

	stranger := newUserRouter(db, other)
	w := testutil.PerformRequest(t, stranger, http.MethodDelete,
		"/user/payment-methods/"+strconv.FormatUint(uint64(method.ID), 10), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	mine := newUserRouter(db, owner)
	w = testutil.PerformRequest(t, mine, http.MethodDelete,
		"/user/payment-methods/"+strconv.FormatUint(uint64(method.ID), 10), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
