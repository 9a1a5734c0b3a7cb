package models

import (
	"time"
)

// Status is the moderation state of an image. Only the three values below
// are ever persisted; anything else is rejected at the API boundary.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusTrash    Status = "trash"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusTrash:
		return true
	}
	return false
}

type Image struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Filename     string    `json:"filename" gorm:"uniqueIndex;not null"`
	Status       Status    `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	Price        *float64  `json:"price,omitempty"`
	DateUploaded time.Time `json:"date_uploaded" gorm:"not null;index"`
	// TrashDate is set when the image is trashed and cleared on any
	// transition away from trash.
	TrashDate *time.Time `json:"trash_date,omitempty"`
}
