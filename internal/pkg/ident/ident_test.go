package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgo/atrium/apiserver/internal/apperr"
)

func TestNormalizeStripsHyphensAndLowercases(t *testing.T) {
	got, err := Normalize("550E8400-E29B-41D4-A716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "550e8400e29b41d4a716446655440000", got)
}

func TestNormalizeAcceptsStorageForm(t *testing.T) {
	got, err := Normalize("550e8400e29b41d4a716446655440000")
	require.NoError(t, err)
	assert.Equal(t, "550e8400e29b41d4a716446655440000", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	once, err := Normalize("550E8400-E29B-41D4-A716-446655440000")
	require.NoError(t, err)
	twice, err := Normalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeEquatesBothForms(t *testing.T) {
	canonical, err := Normalize("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	storage, err := Normalize("550e8400e29b41d4a716446655440000")
	require.NoError(t, err)
	assert.Equal(t, canonical, storage)
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "zz0e8400e29b41d4a716446655440000", "550e8400-e29b-41d4-a716", "not-a-uuid"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, apperr.ErrMalformedIdent, "input %q", in)
	}
}

func TestNewIsStorageForm(t *testing.T) {
	id := New()
	require.Len(t, id, 32)
	normalized, err := Normalize(id)
	require.NoError(t, err)
	assert.Equal(t, id, normalized)
}

func TestCanonicalRoundTrip(t *testing.T) {
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", Canonical("550e8400e29b41d4a716446655440000"))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", Canonical("550E8400-E29B-41D4-A716-446655440000"))
}

func TestCanonicalPassesThroughUnparseable(t *testing.T) {
	assert.Equal(t, "garbage", Canonical("garbage"))
}

func TestNormalizeAllDropsBadEntries(t *testing.T) {
	got := NormalizeAll([]string{
		"550e8400-e29b-41d4-a716-446655440000",
		"garbage",
		"650e8400e29b41d4a716446655440000",
	})
	assert.Equal(t, []string{
		"550e8400e29b41d4a716446655440000",
		"650e8400e29b41d4a716446655440000",
	}, got)
}

func TestPosition(t *testing.T) {
	n, ok := Position("3")
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = Position("0")
	assert.False(t, ok)
	_, ok = Position("-1")
	assert.False(t, ok)
	_, ok = Position("abc")
	assert.False(t, ok)
	_, ok = Position("1.5")
	assert.False(t, ok)
}
