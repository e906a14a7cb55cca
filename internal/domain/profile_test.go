package domain

import "testing"

func TestPoints(t *testing.T) {
	cases := []struct {
		total  float64
		points int64
	}{
		{0, 0},
		{9.99, 0},
		{10, 1},
		{95, 9},
		{100, 10},
		{109.5, 10},
		{2500, 250},
		{-50, 0},
	}

	for _, c := range cases {
		if got := Points(c.total); got != c.points {
			t.Errorf("Points(%v) = %d, want %d", c.total, got, c.points)
		}
	}
}

func TestProfilePointsMatchesLeaderboardPoints(t *testing.T) {
	// the dashboard and leaderboard rows must agree on points for the
	// same donation total
	p := Profile{TotalDonations: 95}
	e := LeaderboardEntry{TotalDonations: 95}
	if p.Points() != e.Points() {
		t.Fatalf("profile points %d != leaderboard points %d", p.Points(), e.Points())
	}
}

func TestSortLeaderboard(t *testing.T) {
	entries := []LeaderboardEntry{
		{UserID: 1, TotalDonations: 300},
		{UserID: 2, TotalDonations: 100},
		{UserID: 3, TotalDonations: 500},
	}

	SortLeaderboard(entries)

	want := []float64{500, 300, 100}
	for i, w := range want {
		if entries[i].TotalDonations != w {
			t.Errorf("position %d: got %v, want %v", i, entries[i].TotalDonations, w)
		}
	}
}

func TestSortLeaderboardTieBreak(t *testing.T) {
	entries := []LeaderboardEntry{
		{UserID: 9, TotalDonations: 200},
		{UserID: 4, TotalDonations: 200},
		{UserID: 7, TotalDonations: 200},
	}

	SortLeaderboard(entries)

	wantIDs := []int64{4, 7, 9}
	for i, w := range wantIDs {
		if entries[i].UserID != w {
			t.Errorf("position %d: got user %d, want %d", i, entries[i].UserID, w)
		}
	}
}
