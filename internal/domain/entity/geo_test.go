package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMeters(t *testing.T) {
	t.Run("Same point is zero distance", func(t *testing.T) {
		assert.Zero(t, HaversineMeters(1.3521, 103.8198, 1.3521, 103.8198))
	})

	t.Run("Distance is symmetric", func(t *testing.T) {
		a := HaversineMeters(1.3138, 103.8159, 1.3008, 103.9122)
		b := HaversineMeters(1.3008, 103.9122, 1.3138, 103.8159)
		assert.InDelta(t, a, b, 0.000001)
	})

	t.Run("Small latitude offset near the equator", func(t *testing.T) {
		// 0.0018 degrees of latitude is roughly 200m on the reference sphere
		d := HaversineMeters(1.3, 103.8, 1.3018, 103.8)
		assert.InDelta(t, 200.2, d, 0.5)
	})

	t.Run("Quarter meridian", func(t *testing.T) {
		d := HaversineMeters(0, 0, 90, 0)
		assert.InDelta(t, 10007543.4, d, 1.0)
	})

	t.Run("Within versus beyond a 200m radius", func(t *testing.T) {
		near := HaversineMeters(1.3, 103.8, 1.3009, 103.8)
		far := HaversineMeters(1.3, 103.8, 1.3036, 103.8)
		assert.Less(t, near, 200.0)
		assert.Greater(t, far, 200.0)
	})
}
