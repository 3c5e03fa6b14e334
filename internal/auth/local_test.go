package auth

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return db
}

func TestEnsureAdminSeedsOnce(t *testing.T) {
	p := NewLocalProvider(newTestDB(t))

	created, err := p.EnsureAdmin("admin", "changeme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = p.EnsureAdmin("other", "secret")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = p.Authenticate("other", "secret")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	p := NewLocalProvider(db)
	fixed := time.Date(2026, time.October, 1, 8, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	u, err := p.CreateUser("alice", "secret")
	require.NoError(t, err)
	assert.True(t, u.Active)
	assert.NotEqual(t, "secret", u.Password)

	got, err := p.Authenticate(" alice ", "secret")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, fixed.Equal(*got.LastLoginAt))

	stored, err := p.GetUserByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)

	_, err = p.Authenticate("alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidPassword)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", u.ID).Update("active", false).Error)

	_, err = p.Authenticate("alice", "secret")
	require.ErrorIs(t, err, ErrUserAccountDisabled)
}

func TestCreateUserErrors(t *testing.T) {
	p := NewLocalProvider(newTestDB(t))

	_, err := p.CreateUser("  ", "x")
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = p.CreateUser("bob", "pw")
	require.NoError(t, err)

	_, err = p.CreateUser("bob", "pw2")
	require.ErrorIs(t, err, ErrUserNameExists)
}

func TestChangePassword(t *testing.T) {
	p := NewLocalProvider(newTestDB(t))

	u, err := p.CreateUser("carol", "old")
	require.NoError(t, err)

	require.ErrorIs(t, p.ChangePassword(u.ID, "nope", "new"), ErrInvalidOldPassword)
	require.NoError(t, p.ChangePassword(u.ID, "old", "new"))

	_, err = p.Authenticate("carol", "new")
	require.NoError(t, err)

	require.ErrorIs(t, p.ChangePassword(999, "old", "new"), ErrUserNotFound)
}
