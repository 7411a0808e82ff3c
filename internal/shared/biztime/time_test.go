package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMillisRoundTripKeepsUTC(t *testing.T) {
	in := time.Date(2024, 3, 1, 10, 30, 0, 123_000_000, time.FixedZone("X", 3600))
	out := FromMillis(ToMillis(in))
	assert.True(t, in.Equal(out))
	assert.Equal(t, time.UTC, out.Location())
}

func TestNormalizeUTC(t *testing.T) {
	assert.False(t, NormalizeUTC(time.Time{}).IsZero())

	in := time.Date(2024, 3, 1, 10, 30, 0, 123_456_789, time.UTC)
	assert.Equal(t, 123_000_000, NormalizeUTC(in).Nanosecond())
}

func TestOptionalMillis(t *testing.T) {
	assert.Nil(t, OptionalToMillis(nil))
	assert.Nil(t, OptionalFromMillis(nil))

	now := NowUTC()
	assert.True(t, now.Equal(*OptionalFromMillis(OptionalToMillis(&now))))
}
