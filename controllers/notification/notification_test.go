package notificationControllers

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

func newNotificationRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/user/notifications", testutil.AsUser(user))
	g.GET("", GetNotifications(db))
	g.GET("/unread-count", GetUnreadCount(db))
	g.POST("/:id/read", MarkNotificationRead(db))
	return r
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "notific1", models.RoleUser)
	require.NoError(t, models.AddNotification(db, user.Username, "order", "Pedido enviado", "Tu pedido va en camino"))
	require.NoError(t, models.AddNotification(db, user.Username, "chat", "Nuevo mensaje", "Hola"))

	r := newNotificationRouter(db, user)
	w := testutil.PerformRequest(t, r, http.MethodGet, "/user/notifications/unread-count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unread_count":2`)

	var first models.Notification
	require.NoError(t, db.Where("username = ?", user.Username).First(&first).Error)

	w = testutil.PerformRequest(t, r, http.MethodPost,
		"/user/notifications/"+strconv.FormatUint(uint64(first.ID), 10)+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/user/notifications/unread-count", nil)
	assert.Contains(t, w.Body.String(), `"unread_count":1`)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.CreateUser(t, db, "notific2", models.RoleUser)
	other := testutil.CreateUser(t, db, "notific3", models.RoleUser)
	require.NoError(t, models.AddNotification(db, owner.Username, "order", "Pedido", "Detalle"))

	var notif models.Notification
	require.NoError(t, db.Where("username = ?", owner.Username).First(&notif).Error)

	r := newNotificationRouter(db, other)
	w := testutil.PerformRequest(t, r, http.MethodPost,
		"/user/notifications/"+strconv.FormatUint(uint64(notif.ID), 10)+"/read", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
