package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed_ReturnsGivenInstant(t *testing.T) {
	instant := time.Date(2026, 8, 26, 15, 4, 5, 123456000, time.UTC)

	clk := Fixed(instant)

	assert.Equal(t, instant, clk.Now())
	// repeated reads do not advance
	assert.Equal(t, instant, clk.Now())
}

func TestSystem_IsCloseToWallClock(t *testing.T) {
	clk := System()

	diff := time.Since(clk.Now())

	assert.Less(t, diff.Abs(), time.Second)
}

func TestTimestamp_RendersISO8601(t *testing.T) {
	instant := time.Date(2026, 8, 26, 15, 4, 5, 123456000, time.UTC)

	got := Timestamp(Fixed(instant))

	assert.Equal(t, "2026-08-26T15:04:05.123456", got)
}

func TestTimestamp_TrimsZeroFraction(t *testing.T) {
	instant := time.Date(2026, 8, 26, 15, 4, 5, 0, time.UTC)

	got := Timestamp(Fixed(instant))

	assert.Equal(t, "2026-08-26T15:04:05", got)
}

func TestTimestamp_SystemParsesBack(t *testing.T) {
	got := Timestamp(System())

	_, err := time.Parse(isoLayout, got)
	require.NoError(t, err)
}
