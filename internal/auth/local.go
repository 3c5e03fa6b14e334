package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db  *gorm.DB
	now func() time.Time
}

const whereID = "id = ?"

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db:  db,
		now: time.Now,
	}
}

// Authenticate authenticates a user against the local database and records
// the login time.
func (p *LocalProvider) Authenticate(username, password string) (*models.User, error) {
	var user models.User

	err := p.db.Where("username = ?", strings.TrimSpace(username)).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	now := p.now()
	user.LastLoginAt = &now

	if err = p.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		// the login itself succeeded
		log.Warn().Err(err).Str("user", user.Username).Msg("failed to record login time")
	}

	return &user, nil
}

// CreateUser creates a new active local user.
func (p *LocalProvider) CreateUser(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	var existing models.User

	err := p.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUserNameExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Active:   true,
		Username: username,
		Password: hash,
	}

	if err = p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// EnsureAdmin creates the given account when no user exists yet. It returns
// true when an account was created.
func (p *LocalProvider) EnsureAdmin(username, password string) (bool, error) {
	var count int64
	if err := p.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}

	if count > 0 {
		return false, nil
	}

	if _, err := p.CreateUser(username, password); err != nil {
		return false, err
	}

	log.Info().Str("user", username).Msg("seeded admin account")

	return true, nil
}

// ChangePassword changes a user's password.
func (p *LocalProvider) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyCredentials
	}

	user, err := p.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !user.VerifyPassword(oldPassword) {
		return ErrInvalidOldPassword
	}

	hash, err := models.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("password", hash).Error
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(userID uint64) (*models.User, error) {
	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
