package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is a stored contact form submission.
type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"size:254;not null"`
	Subject   string    `gorm:"size:200"`
	Service   string    `gorm:"size:64"`
	Message   string    `gorm:"type:text;not null"`
	IP        string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:255"`
	Handled   bool      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

// BeforeCreate assigns a random id to new messages.
func (m *ContactMessage) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}
