package domain

import (
	"math"
	"sort"
	"time"
)

// Profile is the private per-intern record: identity, donation totals and
// referral code. Donation totals are maintained by the donation recorder,
// never edited directly by the owner.
type Profile struct {
	UserID         int64     `db:"user_id" json:"id"`
	Name           string    `db:"name" json:"name"`
	ReferralCode   string    `db:"referral_code" json:"referral_code"`
	TotalDonations float64   `db:"total_donations" json:"total_donations"`
	DonationsCount int64     `db:"donations_count" json:"donations_count"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Points returns the reward points earned by this profile.
func (p *Profile) Points() int64 {
	return Points(p.TotalDonations)
}

// LeaderboardEntry is the public denormalized projection of a Profile used
// for ranking. The name is mirrored from the profile on every rename.
type LeaderboardEntry struct {
	UserID         int64   `db:"user_id" json:"id"`
	Name           string  `db:"name" json:"name"`
	ReferralCode   string  `db:"referral_code" json:"referral_code"`
	TotalDonations float64 `db:"total_donations" json:"total_donations"`
}

func (e *LeaderboardEntry) Points() int64 {
	return Points(e.TotalDonations)
}

// Points maps an accumulated donation amount to reward points: one point per
// $10 raised, rounded down. Every place that shows points goes through here.
func Points(totalDonations float64) int64 {
	if totalDonations <= 0 {
		return 0
	}
	return int64(math.Floor(totalDonations / 10))
}

// SortLeaderboard orders entries descending by total donations. Equal totals
// are ordered ascending by user ID so the ranking is deterministic.
func SortLeaderboard(entries []LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalDonations != entries[j].TotalDonations {
			return entries[i].TotalDonations > entries[j].TotalDonations
		}
		return entries[i].UserID < entries[j].UserID
	})
}
