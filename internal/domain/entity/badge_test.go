package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgesFor(t *testing.T) {
	t.Run("Below first threshold earns nothing", func(t *testing.T) {
		assert.Empty(t, BadgesFor(0))
		assert.Empty(t, BadgesFor(49))
	})

	t.Run("Result is never nil", func(t *testing.T) {
		assert.NotNil(t, BadgesFor(0))
	})

	t.Run("Thresholds are inclusive", func(t *testing.T) {
		assert.Equal(t, []string{"Green Starter"}, BadgesFor(50))
		assert.Equal(t, []string{"Green Starter", "Eco Warrior"}, BadgesFor(150))
		assert.Equal(t, []string{"Green Starter", "Eco Warrior", "Eco Legend"}, BadgesFor(300))
	})

	t.Run("Badges accumulate rather than replace", func(t *testing.T) {
		assert.Equal(t, []string{"Green Starter", "Eco Warrior"}, BadgesFor(299))
		assert.Len(t, BadgesFor(1000), 3)
	})
}

func TestNextBadgeThreshold(t *testing.T) {
	assert.Equal(t, 50, NextBadgeThreshold(0))
	assert.Equal(t, 150, NextBadgeThreshold(50))
	assert.Equal(t, 300, NextBadgeThreshold(299))
	assert.Equal(t, 0, NextBadgeThreshold(300))
}
