package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurant-directory/internal/pkg/token"
)

func TestNewManager_EmptySecret(t *testing.T) {
	m, err := token.NewManager("")
	assert.ErrorIs(t, err, token.ErrEmptySecret)
	assert.Nil(t, m)
}

func TestManager_GenerateAndParse(t *testing.T) {
	m, err := token.NewManager("test-secret")
	require.NoError(t, err)

	signed, err := m.Generate("64f1c0ffee", "alice@example.com")
	require.NoError(t, err)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(token.TTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestManager_Parse_Expired(t *testing.T) {
	m, err := token.NewManager("test-secret")
	require.NoError(t, err)

	issued := time.Now().Add(-2 * time.Hour)
	signed, err := m.WithClock(func() time.Time { return issued }).Generate("id", "a@b.c")
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	m1, _ := token.NewManager("secret-one")
	m2, _ := token.NewManager("secret-two")

	signed, err := m1.Generate("id", "a@b.c")
	require.NoError(t, err)

	_, err = m2.Parse(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestManager_Parse_Malformed(t *testing.T) {
	m, _ := token.NewManager("secret")

	for _, s := range []string{"", "abc", "a.b.c"} {
		_, err := m.Parse(s)
		assert.ErrorIs(t, err, token.ErrInvalidToken, s)
	}
}
