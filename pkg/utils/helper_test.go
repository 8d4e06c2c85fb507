package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 10, ParseInt("-3", 10))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"2025-01-05", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2025-01-05T14:30:00", time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)},
		{"2025-01-05T14:30:00Z", time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC)},
		{"2025-01-05T14:30:00+03:00", time.Date(2025, 1, 5, 11, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, tt.expected.Equal(got), "%s: got %s", tt.in, got)
	}

	_, err := ParseDate("05/01/2025")
	assert.Error(t, err)
}

func TestPagination(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
}
