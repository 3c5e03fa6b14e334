// Package contact stores and lists contact form submissions.
package contact

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
)

var (
	// ErrMessageNotFound is returned for an unknown message id.
	ErrMessageNotFound = errors.New("contact message not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrMessageNil is returned by Create without a message.
	ErrMessageNil = errors.New("contact message is nil")
)

// DefaultListLimit is used by List when no limit is given.
const DefaultListLimit = 20

// ListOptions narrows List.
type ListOptions struct {
	Limit         int
	UnhandledOnly bool
}

// Counts summarizes the stored messages.
type Counts struct {
	Total     int64
	Unhandled int64
}

// Create stores m and fills its id and creation time.
func Create(db *gorm.DB, m *models.ContactMessage) error {
	if db == nil {
		return ErrDBNil
	}

	if m == nil {
		return ErrMessageNil
	}

	return db.Create(m).Error
}

// Get returns one message.
func Get(db *gorm.DB, id string) (*models.ContactMessage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var m models.ContactMessage
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}

		return nil, err
	}

	return &m, nil
}

// List returns messages newest first.
func List(db *gorm.DB, opts ListOptions) ([]models.ContactMessage, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if opts.Limit <= 0 {
		opts.Limit = DefaultListLimit
	}

	tx := db.Model(&models.ContactMessage{}).Order("created_at DESC").Limit(opts.Limit)
	if opts.UnhandledOnly {
		tx = tx.Where("handled = ?", false)
	}

	var out []models.ContactMessage
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// MarkHandled flags a message as answered.
func MarkHandled(db *gorm.DB, id string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("handled", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

// Count returns total and unhandled message counts.
func Count(db *gorm.DB) (Counts, error) {
	var c Counts

	if db == nil {
		return c, ErrDBNil
	}

	if err := db.Model(&models.ContactMessage{}).Count(&c.Total).Error; err != nil {
		return c, err
	}

	if err := db.Model(&models.ContactMessage{}).Where("handled = ?", false).Count(&c.Unhandled).Error; err != nil {
		return c, err
	}

	return c, nil
}
