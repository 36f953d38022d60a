package entity

// badgeTier maps a points threshold to the badge it unlocks.
type badgeTier struct {
	Threshold int
	Label     string
}

// badgeTiers is ordered ascending; every tier whose threshold is met is
// awarded, not just the highest.
var badgeTiers = []badgeTier{
	{Threshold: 50, Label: "Green Starter"},
	{Threshold: 150, Label: "Eco Warrior"},
	{Threshold: 300, Label: "Eco Legend"},
}

// BadgesFor returns the ordered set of badges earned at the given points
// total. The result is never nil so it serializes as [] rather than null.
func BadgesFor(points int) []string {
	badges := make([]string, 0, len(badgeTiers))
	for _, tier := range badgeTiers {
		if points >= tier.Threshold {
			badges = append(badges, tier.Label)
		}
	}
	return badges
}

// NextBadgeThreshold returns the points threshold of the next unearned
// badge, or 0 when every badge is already earned.
func NextBadgeThreshold(points int) int {
	for _, tier := range badgeTiers {
		if points < tier.Threshold {
			return tier.Threshold
		}
	}
	return 0
}
