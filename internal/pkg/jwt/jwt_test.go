package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidateRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.Generate("admin@example.com", "admin")
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, "admin", claims.Kind)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.Generate("admin@example.com", "admin")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	m := NewManager("test-secret", 60)
	other := NewManager("other-secret", 60)

	token, err := m.Generate("admin@example.com", "admin")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 60)
	_, err := m.Validate("not.a.token")
	assert.Error(t, err)
}
