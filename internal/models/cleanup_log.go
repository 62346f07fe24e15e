package models

import "time"

// CleanupLog is an append-only audit row written for every expiry sweep,
// including runs that matched nothing. TriggeredBy is "startup",
// "scheduled", or the username of the admin who invoked it manually.
type CleanupLog struct {
	ID            uint      `gorm:"column:id_log;primaryKey" json:"id_log"`
	TriggeredBy   string    `gorm:"column:triggered_by;size:100" json:"triggered_by"`
	DaysWindow    int       `gorm:"column:days_window;not null" json:"days_window"`
	AffectedCount int       `gorm:"column:affected_count;not null" json:"affected_count"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CleanupLog) TableName() string { return "cleanup_logs" }
