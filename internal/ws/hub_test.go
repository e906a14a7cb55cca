package ws

import (
	"context"
	"encoding/json"
	"testing"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/repository"
)

type stubSource struct {
	profiles map[int64]*domain.Profile
	entries  []domain.LeaderboardEntry
	rewards  []domain.Reward
}

func (s *stubSource) GetByUserID(_ context.Context, userID int64) (*domain.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubSource) ListLeaderboard(context.Context) ([]domain.LeaderboardEntry, error) {
	return append([]domain.LeaderboardEntry(nil), s.entries...), nil
}

func (s *stubSource) List(context.Context) ([]domain.Reward, error) {
	return append([]domain.Reward(nil), s.rewards...), nil
}

func testClient(userID int64) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 16)}
}

func drain(t *testing.T, c *Client) map[string]json.RawMessage {
	t.Helper()
	got := make(map[string]json.RawMessage)
	for {
		select {
		case raw := <-c.Send:
			var msg struct {
				Type string          `json:"type"`
				Data json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(raw, &msg); err != nil {
				t.Fatalf("bad message: %v", err)
			}
			got[msg.Type] = msg.Data
		default:
			return got
		}
	}
}

func TestRegisterPushesAllSnapshots(t *testing.T) {
	src := &stubSource{
		profiles: map[int64]*domain.Profile{
			1: {UserID: 1, Name: "jane.doe", ReferralCode: "AB12CD", TotalDonations: 95},
		},
		entries: []domain.LeaderboardEntry{
			{UserID: 2, TotalDonations: 100},
			{UserID: 1, TotalDonations: 95},
		},
		rewards: []domain.Reward{{ID: 1, Points: 10}},
	}
	hub := NewHub(src, src)

	c := testClient(1)
	hub.Register(c)

	got := drain(t, c)
	for _, feed := range []string{FeedProfile, FeedLeaderboard, FeedRewards} {
		if _, ok := got[feed]; !ok {
			t.Errorf("missing %s snapshot on register", feed)
		}
	}

	var p ProfilePayload
	if err := json.Unmarshal(got[FeedProfile], &p); err != nil {
		t.Fatalf("profile payload: %v", err)
	}
	if p.Points != 9 {
		t.Errorf("profile points = %d, want 9", p.Points)
	}
}

func TestRegisterWithoutProfileSkipsProfileFeed(t *testing.T) {
	// a profile that does not exist yet is "still loading": no message,
	// no error delivered
	src := &stubSource{profiles: map[int64]*domain.Profile{}}
	hub := NewHub(src, src)

	c := testClient(5)
	hub.Register(c)

	got := drain(t, c)
	if _, ok := got[FeedProfile]; ok {
		t.Error("profile feed should stay silent for a missing profile")
	}
	if _, ok := got[FeedLeaderboard]; !ok {
		t.Error("leaderboard snapshot should still be pushed")
	}
}

func TestNotifyLeaderboardSortsDescending(t *testing.T) {
	src := &stubSource{
		profiles: map[int64]*domain.Profile{},
		entries: []domain.LeaderboardEntry{
			{UserID: 1, TotalDonations: 300},
			{UserID: 2, TotalDonations: 100},
			{UserID: 3, TotalDonations: 500},
		},
	}
	hub := NewHub(src, src)

	c := testClient(1)
	hub.Register(c)
	drain(t, c)

	hub.NotifyLeaderboard()

	got := drain(t, c)
	var rows []LeaderboardRow
	if err := json.Unmarshal(got[FeedLeaderboard], &rows); err != nil {
		t.Fatalf("leaderboard payload: %v", err)
	}

	want := []float64{500, 300, 100}
	for i, w := range want {
		if rows[i].TotalDonations != w {
			t.Errorf("row %d: total %v, want %v", i, rows[i].TotalDonations, w)
		}
	}
}

func TestNotifyRewardsPushesUpdatedCatalog(t *testing.T) {
	src := &stubSource{
		profiles: map[int64]*domain.Profile{},
		rewards:  []domain.Reward{{ID: 1, Title: "Mug", Points: 50}},
	}
	hub := NewHub(src, src)

	c := testClient(1)
	hub.Register(c)
	drain(t, c)

	// a catalog write after the initial snapshot must reach the client
	src.rewards = append(src.rewards, domain.Reward{ID: 2, Title: "Sticker", Points: 10})
	hub.NotifyRewards()

	got := drain(t, c)
	var rewards []domain.Reward
	if err := json.Unmarshal(got[FeedRewards], &rewards); err != nil {
		t.Fatalf("rewards payload: %v", err)
	}
	if len(rewards) != 2 {
		t.Fatalf("got %d rewards, want 2", len(rewards))
	}
	if rewards[0].Points != 10 || rewards[1].Points != 50 {
		t.Errorf("catalog not sorted ascending: %+v", rewards)
	}
}

func TestNotifyProfileOnlyReachesOwner(t *testing.T) {
	src := &stubSource{
		profiles: map[int64]*domain.Profile{
			1: {UserID: 1, Name: "a"},
			2: {UserID: 2, Name: "b"},
		},
	}
	hub := NewHub(src, src)

	c1 := testClient(1)
	c2 := testClient(2)
	hub.Register(c1)
	hub.Register(c2)
	drain(t, c1)
	drain(t, c2)

	hub.NotifyProfile(1)

	if got := drain(t, c1); len(got) != 1 {
		t.Errorf("owner received %d messages, want 1", len(got))
	}
	if got := drain(t, c2); len(got) != 0 {
		t.Errorf("other user received %d messages, want 0", len(got))
	}
}

func TestDisconnectUserDetachesFeeds(t *testing.T) {
	src := &stubSource{profiles: map[int64]*domain.Profile{1: {UserID: 1}}}
	hub := NewHub(src, src)

	c := testClient(1)
	hub.Register(c)
	drain(t, c)

	hub.DisconnectUser(1)

	hub.NotifyProfile(1)
	hub.NotifyLeaderboard()
	if got := drain(t, c); len(got) != 0 {
		t.Errorf("detached client received %d messages, want 0", len(got))
	}
}
