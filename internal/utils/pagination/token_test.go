package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_ResumesAtCursor(t *testing.T) {
	date := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 3, 9, 15, 0, 42, time.UTC)

	gotDate, gotCreatedAt, err := DecodeToken(EncodeToken(date, createdAt))

	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := map[string]string{
		"not base64":      "%%%",
		"no separator":    base64.StdEncoding.EncodeToString([]byte("2024-05-03T00:00:00Z")),
		"bad date":        base64.StdEncoding.EncodeToString([]byte("yesterday|2024-05-03T00:00:00Z")),
		"bad created at":  base64.StdEncoding.EncodeToString([]byte("2024-05-03T00:00:00Z|later")),
		"empty component": base64.StdEncoding.EncodeToString([]byte("|")),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeToken(token)
			assert.Error(t, err)
		})
	}
}

func TestAfter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	at := func(h int) time.Time { return time.Date(2024, 6, 1, h, 0, 0, 0, time.UTC) }

	assert.True(t, After(day(2), at(12), day(3), at(1)), "older date follows the cursor")
	assert.False(t, After(day(4), at(1), day(3), at(12)), "newer date precedes the cursor")
	assert.True(t, After(day(3), at(1), day(3), at(2)), "same date, created earlier")
	assert.False(t, After(day(3), at(2), day(3), at(2)), "the cursor itself is excluded")
}
