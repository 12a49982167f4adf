package productControllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
	"github.com/mercadogo/marketplace-api/testutil"
)

func newCatalogRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.GET("/", GetFeaturedProducts(db))
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.GET("/categories", GetCategories(db))
	return r
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	products := []models.Product{
		{Name: "Laptop Gaming", Description: "Portatil para juegos", Price: 1299.99, Stock: 15, Category: "Electronica"},
		{Name: "Smartphone Pro", Description: "Telefono de gama alta", Price: 899.99, Stock: 25, Category: "Electronica"},
		{Name: "Auriculares Bluetooth", Description: "Sonido inalambrico", Price: 199.99, Stock: 50, Category: "Audio"},
		{Name: "Camiseta", Description: "Algodon", Price: 19.99, Stock: 0, Category: "Ropa"},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func fetchProducts(t *testing.T, r *gin.Engine, path string) []models.Product {
	t.Helper()
	w := testutil.PerformRequest(t, r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	products := fetchProducts(t, r, "/products?search=laptop")
	require.Len(t, products, 1)
	assert.Equal(t, "Laptop Gaming", products[0].Name)

	// description matches too, case-insensitive
	products = fetchProducts(t, r, "/products?search=INALAMBRICO")
	require.Len(t, products, 1)
	assert.Equal(t, "Auriculares Bluetooth", products[0].Name)
}

func TestFilterByCategoryAndPrice(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	products := fetchProducts(t, r, "/products?category=Electronica")
	assert.Len(t, products, 2)

	products = fetchProducts(t, r, "/products?min_price=100&max_price=900")
	require.Len(t, products, 2)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.LessOrEqual(t, p.Price, 900.0)
	}

	w := testutil.PerformRequest(t, r, http.MethodGet, "/products?min_price=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSortWhitelistFallsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	products := fetchProducts(t, r, "/products?sort_by=price&order=asc")
	require.Len(t, products, 4)
	assert.Equal(t, "Camiseta", products[0].Name)

	// unknown column must not reach the ORDER BY
	products = fetchProducts(t, r, "/products?sort_by=;drop&order=asc")
	assert.Len(t, products, 4)
}

func TestGetProductByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	product := testutil.CreateProduct(t, db, "Tableta Grafica", 349.50, 10)
	r := newCatalogRouter(db)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), product.Name)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.PerformRequest(t, r, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeaturedProductsSkipOutOfStock(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	products := fetchProducts(t, r, "/")
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Positive(t, p.Stock)
	}
}

func TestGetCategoriesWithCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	r := newCatalogRouter(db)

	w := testutil.PerformRequest(t, r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []struct {
		Category string `json:"category"`
		Count    int64  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 3)
	assert.Equal(t, "Audio", categories[0].Category)
	assert.EqualValues(t, 1, categories[0].Count)
}

func TestSeedProductsOnlyOnEmptyTable(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, SeedProducts(db))
	var count int64
	db.Model(&models.Product{}).Count(&count)
	require.Positive(t, count)

	// seeding again must not duplicate
	require.NoError(t, SeedProducts(db))
	var again int64
	db.Model(&models.Product{}).Count(&again)
	assert.Equal(t, count, again)
}
