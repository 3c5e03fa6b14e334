package contact

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	return db
}

func seed(t *testing.T, db *gorm.DB, n int) []models.ContactMessage {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]models.ContactMessage, 0, n)

	for i := range n {
		m := models.ContactMessage{
			Name:      "Visitor",
			Email:     "visitor@example.com",
			Message:   "Please get in touch about a project.",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, Create(db, &m))
		out = append(out, m)
	}

	return out
}

func TestCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	msgs := seed(t, db, 1)

	require.NotEmpty(t, msgs[0].ID)

	got, err := Get(db, msgs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "visitor@example.com", got.Email)
	assert.False(t, got.Handled)

	_, err = Get(db, "missing")
	require.ErrorIs(t, err, ErrMessageNotFound)

	require.ErrorIs(t, Create(nil, &models.ContactMessage{}), ErrDBNil)
	require.ErrorIs(t, Create(db, nil), ErrMessageNil)
}

func TestListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	msgs := seed(t, db, 3)

	list, err := List(db, ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, msgs[2].ID, list[0].ID)
	assert.Equal(t, msgs[0].ID, list[2].ID)

	list, err = List(db, ListOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMarkHandledAndCount(t *testing.T) {
	db := setupTestDB(t)
	msgs := seed(t, db, 3)

	c, err := Count(db)
	require.NoError(t, err)
	assert.Equal(t, Counts{Total: 3, Unhandled: 3}, c)

	require.NoError(t, MarkHandled(db, msgs[1].ID))
	require.ErrorIs(t, MarkHandled(db, "missing"), ErrMessageNotFound)

	c, err = Count(db)
	require.NoError(t, err)
	assert.Equal(t, Counts{Total: 3, Unhandled: 2}, c)

	open, err := List(db, ListOptions{UnhandledOnly: true})
	require.NoError(t, err)
	require.Len(t, open, 2)

	for _, m := range open {
		assert.NotEqual(t, msgs[1].ID, m.ID)
	}
}

func TestNilDB(t *testing.T) {
	_, err := List(nil, ListOptions{})
	require.ErrorIs(t, err, ErrDBNil)

	_, err = Count(nil)
	require.ErrorIs(t, err, ErrDBNil)

	require.ErrorIs(t, MarkHandled(nil, "x"), ErrDBNil)
}
