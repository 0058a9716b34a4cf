package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScanNil(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestStringListScanEmptyString(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(""))
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestStringListScanJSONNull(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan("null"))
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"a", "b"}
	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestStringListValueNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(v.([]byte)))
}

func TestStringListScanBytes(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["x"]`)))
	assert.Equal(t, StringList{"x"}, l)
}

func TestStringListScanUnsupportedType(t *testing.T) {
	var l StringList
	assert.Error(t, l.Scan(42))
}

func TestJSONMapScanNil(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestJSONMapRoundTrip(t *testing.T) {
	in := JSONMap{"theme": "dark", "limit": float64(5)}
	v, err := in.Value()
	require.NoError(t, err)

	var out JSONMap
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}

func TestJSONMapScanJSONNull(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan("null"))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}
