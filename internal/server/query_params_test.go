package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalBool(t *testing.T) {
	v, err := parseOptionalBool("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalBool(" true ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	_, err = parseOptionalBool("yes")
	assert.Error(t, err)
}

func TestParseOptionalInt(t *testing.T) {
	v, err := parseOptionalInt("  42 ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	v, err = parseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = parseOptionalInt("4.2")
	assert.Error(t, err)
}

func TestParseOptionalFloat64(t *testing.T) {
	v, err := parseOptionalFloat64("12.5")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 12.5, *v)

	_, err = parseOptionalFloat64("abc")
	assert.Error(t, err)
}

func TestParseOptionalTime(t *testing.T) {
	v, err := parseOptionalTime("", false)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parseOptionalTime("2025-07-24T10:30:00Z", false)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, time.Date(2025, 7, 24, 10, 30, 0, 0, time.UTC), *v)

	// A bare date expands to the start of the day...
	v, err = parseOptionalTime("2025-07-24", false)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, time.Date(2025, 7, 24, 0, 0, 0, 0, time.UTC), *v)

	// ...or to its last instant when it closes a range.
	v, err = parseOptionalTime("2025-07-24", true)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, time.Date(2025, 7, 24, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *v)

	_, err = parseOptionalTime("24.07.2025", false)
	assert.Error(t, err)
}
