package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("changeme")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme", hash)

	u := User{Username: "admin", Password: hash}
	assert.True(t, u.VerifyPassword("changeme"))
	assert.False(t, u.VerifyPassword("wrong"))
}

func TestVerifyPasswordWithoutHash(t *testing.T) {
	assert.False(t, (&User{}).VerifyPassword(""))
	assert.False(t, (&User{Password: "not-a-hash"}).VerifyPassword("x"))
}

func TestContactMessageGetsID(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ContactMessage{}))

	m := ContactMessage{Name: "Ada", Email: "ada@example.com", Message: "Hello there, world"}
	require.NoError(t, db.Create(&m).Error)

	_, err = uuid.Parse(m.ID)
	require.NoError(t, err)
	assert.False(t, m.CreatedAt.IsZero())

	fixed := ContactMessage{ID: "fixed", Name: "B", Email: "b@example.com", Message: "Hello there, world"}
	require.NoError(t, db.Create(&fixed).Error)
	assert.Equal(t, "fixed", fixed.ID)
}
