package domain

import "sort"

// Reward is a catalog item unlockable at a points threshold. The catalog is
// externally curated through the keyed catalog endpoint; interns only read it.
type Reward struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	Icon        string `db:"icon" json:"icon"`
	Points      int64  `db:"points" json:"points"`
	SortOrder   int    `db:"sort_order" json:"-"`
}

// UnlockedAt reports whether the reward is available at the given points
// balance. Exactly meeting the threshold unlocks.
func (r *Reward) UnlockedAt(points int64) bool {
	return points >= r.Points
}

// SortRewards orders the catalog ascending by points threshold, cheapest
// first. Equal thresholds fall back to catalog ID.
func SortRewards(rewards []Reward) {
	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].Points != rewards[j].Points {
			return rewards[i].Points < rewards[j].Points
		}
		return rewards[i].ID < rewards[j].ID
	})
}
