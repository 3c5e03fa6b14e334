// Package setting reads and writes the named settings edited in the admin panel.
package setting

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
)

// Names of the settings the site uses.
const (
	// Announcement is the banner text shown on every public page. Empty hides it.
	Announcement = "site.announcement"
	// AnnouncementLevel is the alert style of the banner: info, success or warning.
	AnnouncementLevel = "site.announcement_level"
)

// Alert styles accepted for AnnouncementLevel.
var AnnouncementLevels = []string{"info", "success", "warning"} //nolint:gochecknoglobals

const nameQueryPattern = "name = ?"

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned for operations with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if strings.TrimSpace(name) == "" {
		return ErrSettingNameEmpty
	}

	return nil
}

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	// Find keeps a missing setting out of the query log, First would report it.
	var s models.Setting

	res := db.Where(nameQueryPattern, name).Limit(1).Find(&s)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, ErrSettingNotFound
	}

	return &s, nil
}

// GetAll returns every setting ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Order("name").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Set creates or replaces the value of a setting.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	s := models.Setting{Name: name, Value: value}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&s).Error
	if err != nil {
		return nil, err
	}

	return Get(db, name)
}

// Delete removes a setting by name.
func Delete(db *gorm.DB, name string) error {
	if err := check(db, name); err != nil {
		return err
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// String returns the value of a setting as text, or def when it is not set.
// Lookup failures other than a missing setting are returned with def.
func String(db *gorm.DB, name, def string) (string, error) {
	s, err := Get(db, name)
	if errors.Is(err, ErrSettingNotFound) {
		return def, nil
	}

	if err != nil {
		return def, err
	}

	return string(s.Value), nil
}

// SetString stores text, or deletes the setting when value is blank.
func SetString(db *gorm.DB, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		if err := Delete(db, name); err != nil && !errors.Is(err, ErrSettingNotFound) {
			return err
		}

		return nil
	}

	_, err := Set(db, name, []byte(value))

	return err
}

// ValidLevel reports whether level is one of AnnouncementLevels.
func ValidLevel(level string) bool {
	for _, l := range AnnouncementLevels {
		if l == level {
			return true
		}
	}

	return false
}
