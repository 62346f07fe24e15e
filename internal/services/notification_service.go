package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/dabson254/lapor-hilang/internal/dto"
	"github.com/dabson254/lapor-hilang/internal/models"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Emit appends one admin notification row. No deduplication or batching:
// one row per triggering event.
func (s *NotificationService) Emit(reportID *uint, message string) error {
	n := models.Notification{ReportID: reportID, Message: message}
	if err := s.db.Create(&n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *NotificationService) List(unreadOnly bool) ([]dto.NotificationResponse, error) {
	query := s.db.Model(&models.Notification{}).Order("created_at DESC")
	if unreadOnly {
		query = query.Where("status_baca = ?", false)
	}

	var rows []models.Notification
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, dto.NotificationResponse{
			IDNotifikasi: n.ID,
			IDLaporan:    n.ReportID,
			Pesan:        n.Message,
			StatusBaca:   n.Read,
			CreatedAt:    n.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *NotificationService) MarkRead(id uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id_notifikasi = ?", id).
		Update("status_baca", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
