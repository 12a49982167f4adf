package reportControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadogo/marketplace-api/models"
)

type CreateReportInput struct {
	Type        string `json:"type" binding:"required"` // Bug, Sugerencia, Problema de Pago, Consulta
	Description string `json:"description" binding:"required"`
}

type RespondReportInput struct {
	Response string `json:"response" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

func mapReportStatus(status string) (models.ReportStatus, error) {
	switch models.ReportStatus(status) {
	case models.ReportStatusOpen, models.ReportStatusInProgress, models.ReportStatusClosed:
		return models.ReportStatus(status), nil
	default:
		return "", errors.New("invalid report status")
	}
}

// POST /user/reports
func CreateReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")

		var input CreateReportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type and description are required"})
			return
		}

		report := models.Report{
			Type:        input.Type,
			Username:    username,
			Status:      models.ReportStatusOpen,
			Description: input.Description,
		}
		if err := db.Create(&report).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
			return
		}
		c.JSON(http.StatusCreated, report)
	}
}

// GET /user/reports
func GetUserReports(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		var reports []models.Report
		if err := db.
			Preload("StatusHistory").
			Where("username = ?", username).
			Order("created_at DESC").
			Find(&reports).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}

// GET /admin/reports — open first, then in progress, then closed; oldest
// first within each bucket so the backlog surfaces.
func GetAllReports(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reports []models.Report
		if err := db.
			Preload("StatusHistory").
			Order("CASE status WHEN 'Abierto' THEN 0 WHEN 'En Progreso' THEN 1 ELSE 2 END, created_at ASC").
			Find(&reports).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}

// POST /admin/reports/:id/respond — sets the response and status, appends a
// history entry and notifies the reporter.
func RespondReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input RespondReportInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "response and status are required"})
			return
		}
		newStatus, err := mapReportStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var report models.Report
		if err := db.First(&report, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&report).Updates(map[string]interface{}{
				"admin_response": input.Response,
				"status":         newStatus,
			}).Error; err != nil {
				return err
			}
			change := models.ReportStatusChange{
				ReportID: report.ID,
				Status:   newStatus,
				Response: input.Response,
			}
			if err := tx.Create(&change).Error; err != nil {
				return err
			}
			return models.AddNotification(tx, report.Username, "report",
				fmt.Sprintf("Respuesta a tu reporte #%d (%s)", report.ID, report.Type),
				fmt.Sprintf("Tu reporte ha sido actualizado a '%s'. Respuesta: %s", newStatus, input.Response))
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to respond to report"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Report updated"})
	}
}
