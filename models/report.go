package models

import "time"

type ReportStatus string

const (
	ReportStatusOpen       ReportStatus = "Abierto"
	ReportStatusInProgress ReportStatus = "En Progreso"
	ReportStatusClosed     ReportStatus = "Cerrado"
)

type Report struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	Type          string               `json:"type"` // Bug, Sugerencia, Problema de Pago, Consulta
	Username      string               `gorm:"index;not null" json:"user"`
	Status        ReportStatus         `gorm:"type:VARCHAR(20);default:'Abierto'" json:"status"`
	Description   string               `json:"description"`
	AdminResponse string               `json:"admin_response"`
	StatusHistory []ReportStatusChange `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE" json:"status_history"`
	CreatedAt     time.Time            `json:"date"`
}

type ReportStatusChange struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	ReportID  uint         `gorm:"index" json:"report_id"`
	Status    ReportStatus `json:"status"`
	Response  string       `json:"response"`
	CreatedAt time.Time    `json:"timestamp"`
}
