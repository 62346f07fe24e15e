package models

import "time"

// Notification is an admin-facing event row, appended when a report is
// created or deleted. ReportID is nullable so the row outlives its report.
type Notification struct {
	ID        uint      `gorm:"column:id_notifikasi;primaryKey" json:"id_notifikasi"`
	ReportID  *uint     `gorm:"column:id_laporan;index" json:"id_laporan"`
	Message   string    `gorm:"column:pesan;size:500;not null" json:"pesan"`
	Read      bool      `gorm:"column:status_baca;not null;default:false" json:"status_baca"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Notification) TableName() string { return "notifikasi" }
