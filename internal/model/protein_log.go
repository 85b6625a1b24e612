package model

import "time"

// ProteinLog is append-only: rows are inserted by the persist worker and
// never updated or deleted. LoggedAt is assigned by the server at submit
// time, not by the worker.
type ProteinLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	Food     string    `gorm:"size:255;not null" json:"food"`
	Amount   float64   `gorm:"not null" json:"amount"`
	LoggedAt time.Time `gorm:"not null;index" json:"logged_at"`
}
