package chatControllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
	"github.com/mercadogo/marketplace-api/testutil"
)

func newChatRouter(db *gorm.DB, user models.User) *gin.Engine {
	r := gin.New()
	g := r.Group("/user/chat", testutil.AsUser(user))
	g.GET("", GetUserChat(db))
	g.GET("/by-order", GetUserChatsByOrder(db))
	g.POST("", PostMessage(db))

	admin := r.Group("/admin/chats", testutil.AsUser(user))
	admin.GET("", GetAllChats(db))
	admin.POST("/purge", PurgeJunkMessages(db))
	admin.POST("/:username", AdminReply(db))
	return r
}

func TestPostAndFetchMessages(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "chatter1", models.RoleUser)
	r := newChatRouter(db, user)

	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/chat",
		gin.H{"text": "Hola, tengo una duda con mi pedido"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/user/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, models.ChatSenderUser, messages[0].Sender)
}

func TestMessagesScopedToOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "chatter2", models.RoleUser)
	r := newChatRouter(db, user)

	orderID := uint(7)
	w := testutil.PerformRequest(t, r, http.MethodPost, "/user/chat",
		gin.H{"text": "Sobre el pedido 7", "order_id": orderID})
	require.Equal(t, http.StatusCreated, w.Code)
	w = testutil.PerformRequest(t, r, http.MethodPost, "/user/chat",
		gin.H{"text": "Mensaje general"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/user/chat?order_id=7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "Sobre el pedido 7", messages[0].Text)

	// grouped view leaves out messages without an order
	w = testutil.PerformRequest(t, r, http.MethodGet, "/user/chat/by-order", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var grouped map[uint][]models.ChatMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grouped))
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[orderID], 1)
}

func TestAdminReplyNotifiesUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateUser(t, db, "admin006", models.RoleAdmin)
	user := testutil.CreateUser(t, db, "chatter3", models.RoleUser)

	r := newChatRouter(db, admin)
	w := testutil.PerformRequest(t, r, http.MethodPost, "/admin/chats/chatter3",
		gin.H{"text": "Tu pedido sale hoy"})
	require.Equal(t, http.StatusCreated, w.Code)

	var msg models.ChatMessage
	require.NoError(t, db.Where("username = ?", user.Username).First(&msg).Error)
	assert.Equal(t, models.ChatSenderAdmin, msg.Sender)

	var notifications int64
	db.Model(&models.Notification{}).Where("username = ?", user.Username).Count(&notifications)
	assert.EqualValues(t, 1, notifications)

	w = testutil.PerformRequest(t, r, http.MethodPost, "/admin/chats/nadie999",
		gin.H{"text": "hola"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPurgeJunkMessages(t *testing.T) {
	db := testutil.NewTestDB(t)
	admin := testutil.CreateUser(t, db, "admin007", models.RoleAdmin)
	user := testutil.CreateUser(t, db, "chatter4", models.RoleUser)

	junk := []string{
		"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.abcdef",
		strings.Repeat("x", 60),
	}
	keep := []string{
		"Hola, mi pedido no ha llegado todavia",
		"Gracias",
	}
	for _, text := range append(junk, keep...) {
		require.NoError(t, db.Create(&models.ChatMessage{
			Username: user.Username, Sender: models.ChatSenderUser, Text: text,
		}).Error)
	}

	r := newChatRouter(db, admin)
	w := testutil.PerformRequest(t, r, http.MethodPost, "/admin/chats/purge", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"purged_count":2`)

	var remaining []models.ChatMessage
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 2)
	for _, msg := range remaining {
		assert.Contains(t, keep, msg.Text)
	}
}

func TestIsJunkMessage(t *testing.T) {
	assert.True(t, isJunkMessage("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9"))
	assert.True(t, isJunkMessage(strings.Repeat("a", 50)))
	assert.False(t, isJunkMessage("Hola, necesito ayuda con mi pedido"))
	assert.False(t, isJunkMessage("Gracias"))
}
