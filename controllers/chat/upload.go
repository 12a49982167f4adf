package chatControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var unsafeFilenameRe = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleChatImageUpload stores a chat attachment and returns its public
// URL; the client then sends a message referencing it.
//
// POST /user/chat/upload
func HandleChatImageUpload(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		cleanName := unsafeFilenameRe.ReplaceAllString(file.Filename, "_")
		filename := fmt.Sprintf("%d_%s", time.Now().Unix(), cleanName)

		saveDir := filepath.Join(uploadDir, "chat")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		savePath := filepath.Join(saveDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save file: %v", err)})
			return
		}

		fileURL := fmt.Sprintf("/uploads/chat/%s", filename)
		logrus.WithFields(logrus.Fields{"file": file.Filename, "url": fileURL}).Info("chat attachment uploaded")

		c.JSON(http.StatusOK, gin.H{
			"file_url": fileURL,
			"message":  "File uploaded successfully",
		})
	}
}
