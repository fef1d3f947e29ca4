//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 10, 0, 0, 0, 123456000, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := DecodeAfterCursor(EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%"},
		{name: "wrong version", cursor: base64.RawURLEncoding.EncodeToString([]byte("v0:1:" + uuid.NewString()))},
		{name: "bad timestamp", cursor: base64.RawURLEncoding.EncodeToString([]byte("v1:abc:" + uuid.NewString()))},
		{name: "bad uuid", cursor: base64.RawURLEncoding.EncodeToString([]byte("v1:1:nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-5))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}
