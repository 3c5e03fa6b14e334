// Package models contains database model definitions.
package models

import "time"

// Setting is a named value editable from the admin panel.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"unique;size:100;not null"`
	Value     []byte
	UpdatedAt time.Time
}
