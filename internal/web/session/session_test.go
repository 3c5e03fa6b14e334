package session

import (
	"testing"
	"time"

	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadDelete(t *testing.T) {
	store := memory.New()
	defer store.Close()

	Init(store)

	id, err := GenerateSessionID()
	require.NoError(t, err)
	assert.Len(t, id, 64)

	login := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	in := &Data{UserID: 7, Username: "admin", LoginAt: login}
	require.NoError(t, in.Write(id, time.Minute))

	var out Data
	require.NoError(t, out.Read(id))
	assert.True(t, out.Valid())
	assert.Equal(t, "admin", out.Username)
	assert.True(t, login.Equal(out.LoginAt))

	require.NoError(t, Delete(id))
	require.ErrorIs(t, new(Data).Read(id), ErrNoSession)
	require.ErrorIs(t, new(Data).Read(""), ErrNoSession)
	require.NoError(t, Delete(""))
}

func TestGenerateSessionIDUnique(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)

	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCookies(t *testing.T) {
	c := Cookie("abc", time.Hour, false)
	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.Secure)
	assert.True(t, c.HTTPOnly)

	assert.False(t, Cookie("abc", time.Hour, true).Secure)

	cleared := ClearCookie(false)
	assert.Empty(t, cleared.Value)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestInitPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { Init(nil) })
}
