//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"referral-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 4, 2, 12, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	c := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(c)
	require.NoError(t, err)

	assert.True(t, ts.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"not base64":   "%%%",
		"no version":   base64.URLEncoding.EncodeToString([]byte("123-" + uuid.NewString())),
		"bad micros":   base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":     base64.URLEncoding.EncodeToString([]byte("v1:123-nope")),
		"no separator": base64.URLEncoding.EncodeToString([]byte("v1:123")),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
