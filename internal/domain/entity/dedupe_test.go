package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

func TestDeduplicatorFirstObservationAccepted(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)
	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
}

func TestDeduplicatorSamePlateWithinCooldownRejected(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.False(t, d.ShouldSubmit("ABC123", at(2)))
	assert.False(t, d.ShouldSubmit("ABC123", at(4.9)))
}

func TestDeduplicatorSamePlateAfterCooldownAccepted(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.True(t, d.ShouldSubmit("ABC123", at(5)))
}

func TestDeduplicatorDifferentPlateAlwaysAccepted(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.True(t, d.ShouldSubmit("XYZ999", at(0.1)))
}

// A rejection must not refresh the stored timestamp, otherwise a plate held
// in view would never be re-submitted.
func TestDeduplicatorRejectionDoesNotExtendCooldown(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.False(t, d.ShouldSubmit("ABC123", at(4)))
	assert.True(t, d.ShouldSubmit("ABC123", at(5.5)))
}

// A different plate resets the cool-down baseline for that new plate.
func TestDeduplicatorDifferentPlateResetsBaseline(t *testing.T) {
	d := NewDeduplicator(5 * time.Second)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.True(t, d.ShouldSubmit("XYZ999", at(1)))
	assert.False(t, d.ShouldSubmit("XYZ999", at(3)))
	assert.True(t, d.ShouldSubmit("ABC123", at(3.5)))
}

func TestDeduplicatorScenario(t *testing.T) {
	tests := []struct {
		plate string
		at    float64
		want  bool
	}{
		{"ABC123", 0, true},
		{"ABC123", 2, false},
		{"ABC123", 6, true},
		{"XYZ999", 6.1, true},
	}

	d := NewDeduplicator(5 * time.Second)
	for _, tt := range tests {
		got := d.ShouldSubmit(tt.plate, at(tt.at))
		assert.Equalf(t, tt.want, got, "plate %s at t=%v", tt.plate, tt.at)
	}
}

func TestDeduplicatorZeroCooldownFallsBackToDefault(t *testing.T) {
	d := NewDeduplicator(0)

	assert.True(t, d.ShouldSubmit("ABC123", at(0)))
	assert.False(t, d.ShouldSubmit("ABC123", at(1)))
	assert.True(t, d.ShouldSubmit("ABC123", at(5)))
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate(" abc123 "))
	assert.Equal(t, "XYZ999", NormalizePlate("xyz999"))
}
