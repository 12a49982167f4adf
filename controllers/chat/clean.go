package chatControllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

// Long runs of token/base64-looking characters with no spaces are pasted
// secrets or junk, not conversation.
var tokenRe = regexp.MustCompile(`^[A-Za-z0-9+/=._-]{30,}$`)

func isJunkMessage(text string) bool {
	if tokenRe.MatchString(text) {
		return true
	}
	return len(text) > 40 && strings.Count(text, " ") < 2
}

// POST /admin/chats/purge — deletes junk messages across all conversations
// and reports how many went.
func PurgeJunkMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ChatMessage
		if err := db.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}

		var junkIDs []uint
		for _, msg := range messages {
			if isJunkMessage(msg.Text) {
				junkIDs = append(junkIDs, msg.ID)
			}
		}

		if len(junkIDs) > 0 {
			if err := db.Delete(&models.ChatMessage{}, junkIDs).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge messages"})
				return
			}
			logrus.WithField("count", len(junkIDs)).Info("purged junk chat messages")
		}

		c.JSON(http.StatusOK, gin.H{"purged_count": len(junkIDs)})
	}
}
