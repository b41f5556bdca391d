package testutil

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		dateStr  string
		wantHour int
	}{
		{"utc", "2025-12-15T08:00:00Z", 8},
		{"with offset", "2025-12-15T08:00:00+07:00", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(t, tt.dateStr)
			assert.False(t, result.IsZero())
			assert.Equal(t, tt.wantHour, result.Hour())
			assert.Equal(t, time.December, result.Month())
		})
	}
}

func TestPtr(t *testing.T) {
	i := Ptr(42)
	s := Ptr([]string{"AA"})
	b := Ptr(false)

	require.NotNil(t, i)
	assert.Equal(t, 42, *i)
	assert.Equal(t, []string{"AA"}, *s)
	assert.False(t, *b)

	// each call returns a fresh pointer
	assert.NotSame(t, Ptr(1), Ptr(1))
}

func TestFixturePath(t *testing.T) {
	path := FixturePath(t)

	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Contains(t, path, "flight_offers.json")
}

func TestLoadFixture(t *testing.T) {
	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(LoadFixture(t), &body))
	assert.NotEmpty(t, body.Data)
}
