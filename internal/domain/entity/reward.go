package entity

// Reward is a redeemable catalog item. Rewards are seeded externally and
// read-only at runtime.
type Reward struct {
	ID         string
	Name       string
	Brand      string
	CostPoints int
	ImageURL   string
}

// HasValidCost reports whether the catalog row carries a usable cost.
func (r *Reward) HasValidCost() bool {
	return r.CostPoints > 0
}
