package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowIsInReferenceZone(t *testing.T) {
	now := Now()

	assert.Equal(t, Location, now.Location())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestNormalizeConvertsToReferenceZone(t *testing.T) {
	utc := time.Date(2025, 12, 6, 9, 22, 33, 0, time.UTC)

	normalized := Normalize(utc)

	// Tehran is UTC+3:30 year-round
	assert.Equal(t, Location, normalized.Location())
	assert.Equal(t, 12, normalized.Hour())
	assert.Equal(t, 52, normalized.Minute())
	assert.True(t, normalized.Equal(utc))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	utc := time.Date(2025, 12, 6, 9, 22, 33, 0, time.UTC)

	once := Normalize(utc)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizePtr(t *testing.T) {
	assert.Nil(t, NormalizePtr(nil))

	utc := time.Date(2025, 12, 6, 9, 22, 33, 0, time.UTC)
	normalized := NormalizePtr(&utc)
	assert.NotNil(t, normalized)
	assert.Equal(t, Location, normalized.Location())
	assert.True(t, normalized.Equal(utc))
}
