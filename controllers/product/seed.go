package productControllers

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

// SeedProducts fills an empty catalog with a handful of sample products so
// a fresh install has something to browse.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []models.Product{
		{
			Name:        "Laptop Gaming",
			Description: "Potente laptop para gaming con GPU dedicada y pantalla de 144Hz.",
			Price:       1299.99,
			Stock:       15,
			ImageURL:    "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&h=300&fit=crop",
			Category:    "Electrónicos",
		},
		{
			Name:        "Smartphone Pro",
			Description: "Teléfono inteligente de última generación con cámara profesional y batería de larga duración.",
			Price:       899.99,
			Stock:       25,
			ImageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
			Category:    "Electrónicos",
		},
		{
			Name:        "Auriculares Bluetooth",
			Description: "Auriculares inalámbricos con cancelación de ruido activa y sonido de alta fidelidad.",
			Price:       199.99,
			Stock:       50,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
			Category:    "Audio",
		},
		{
			Name:        "Smartwatch Deportivo",
			Description: "Reloj inteligente con monitor de frecuencia cardíaca, GPS y seguimiento de actividad.",
			Price:       249.00,
			Stock:       30,
			ImageURL:    "https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=400&h=300&fit=crop",
			Category:    "Wearables",
		},
		{
			Name:        "Tableta Gráfica",
			Description: "Tableta profesional para diseño gráfico y dibujo digital, con alta precisión.",
			Price:       349.50,
			Stock:       10,
			ImageURL:    "https://images.unsplash.com/photo-1588019777085-f55a109a25b2?w=400&h=300&fit=crop",
			Category:    "Creatividad",
		},
	}
	if err := db.Create(&samples).Error; err != nil {
		return err
	}
	logrus.WithField("count", len(samples)).Info("seeded sample products")
	return nil
}
