package productControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

// CreateProduct creates a new product from a multipart form with an
// optional image upload.
//
// POST /admin/products
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be a number greater than zero"})
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock"); stockStr != "" {
			stock, err = strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be a non-negative integer"})
				return
			}
		}

		imageURL := c.PostForm("image_url")
		if file, err := c.FormFile("image"); err == nil {
			savedURL, saveErr := saveProductImage(c, file.Filename, uploadDir)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": saveErr.Error()})
				return
			}
			imageURL = savedURL
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Stock:       stock,
			ImageURL:    imageURL,
			Category:    c.PostForm("category"),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// saveProductImage stores an uploaded image under uploadDir/products and
// returns the public URL path.
func saveProductImage(c *gin.Context, filename, uploadDir string) (string, error) {
	saveDir := filepath.Join(uploadDir, "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %v", err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("failed to read image: %v", err)
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	finalName := fmt.Sprintf("%d_%s%s", timeNowUnixNano(), base, ext)

	savePath := filepath.Join(saveDir, finalName)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		return "", fmt.Errorf("failed to save image: %v", err)
	}
	return fmt.Sprintf("/uploads/products/%s", finalName), nil
}
