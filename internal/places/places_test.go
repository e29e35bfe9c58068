package places

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(16.9891, 82.2475, 16.9891, 82.2475))
}

func TestDistanceKnownPoints(t *testing.T) {
	// Kakinada Town PS to Kakinada Rural PS, roughly 2.7 km apart.
	got := Distance(16.9891, 82.2475, 16.9650, 82.2420)
	assert.InDelta(t, 2.74, got, 0.1)
}

func TestDistanceSymmetric(t *testing.T) {
	a := Distance(16.9891, 82.2475, 17.6868, 83.2185)
	b := Distance(17.6868, 83.2185, 16.9891, 82.2475)
	assert.Equal(t, a, b)
}

func TestDistanceRoundedToTwoDecimals(t *testing.T) {
	got := Distance(16.9891, 82.2475, 16.9720, 82.2590)
	assert.Equal(t, math.Round(got*100)/100, got)
}
