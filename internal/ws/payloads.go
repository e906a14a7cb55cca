package ws

import "intern_rewards/internal/domain"

const (
	// server -> client feed types
	FeedProfile     = "profile"
	FeedLeaderboard = "leaderboard"
	FeedRewards     = "rewards"
)

// Message is the envelope for every feed emission.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ProfilePayload is the owner's profile with its derived points.
type ProfilePayload struct {
	domain.Profile
	Points int64 `json:"points"`
}

// LeaderboardRow carries the same derived points as the dashboard, so both
// views agree for any given donation total.
type LeaderboardRow struct {
	domain.LeaderboardEntry
	Points int64 `json:"points"`
}

func newProfilePayload(p *domain.Profile) ProfilePayload {
	return ProfilePayload{Profile: *p, Points: p.Points()}
}

func newLeaderboardRows(entries []domain.LeaderboardEntry) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LeaderboardRow{LeaderboardEntry: e, Points: e.Points()})
	}
	return rows
}
