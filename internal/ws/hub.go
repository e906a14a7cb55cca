package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"intern_rewards/internal/domain"
	"intern_rewards/internal/logger"
	"intern_rewards/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	feedDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_feed_messages_total",
			Help: "Feed messages queued for delivery",
		},
		[]string{"feed"},
	)
	feedErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "live_feed_errors_total",
			Help: "Feed snapshot fetch or delivery failures",
		},
		[]string{"feed"},
	)
)

func init() {
	prometheus.MustRegister(feedDeliveries)
	prometheus.MustRegister(feedErrors)
}

// ProfileSource supplies the current profile and leaderboard state.
// *repository.ProfileRepository satisfies it.
type ProfileSource interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	ListLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

// RewardSource supplies the current reward catalog.
// *repository.RewardRepository satisfies it.
type RewardSource interface {
	List(ctx context.Context) ([]domain.Reward, error)
}

// Hub fans live state out to connected clients. Each connection carries three
// independent feeds (own profile, leaderboard, rewards): the full current
// value is pushed on register and again whenever a writer notifies a change.
// Feed errors are logged and swallowed; clients keep their last known value.
type Hub struct {
	profiles ProfileSource
	rewards  RewardSource

	mu      sync.RWMutex
	clients map[int64]map[*Client]bool
}

func NewHub(profiles ProfileSource, rewards RewardSource) *Hub {
	return &Hub{
		profiles: profiles,
		rewards:  rewards,
		clients:  make(map[int64]map[*Client]bool),
	}
}

// Register adds a client and immediately pushes all three snapshots to it.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*Client]bool)
	}
	h.clients[c.UserID][c] = true
	h.mu.Unlock()

	logger.Debug("feed client registered", "user_id", c.UserID)

	ctx := context.Background()
	h.pushProfile(ctx, c.UserID, []*Client{c})
	h.pushLeaderboard(ctx, []*Client{c})
	h.pushRewards(ctx, []*Client{c})
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
}

// DisconnectUser tears down every feed connection of a user. Called on
// signout so no callbacks survive a closed session.
func (h *Hub) DisconnectUser(userID int64) {
	h.mu.Lock()
	set := h.clients[userID]
	delete(h.clients, userID)
	h.mu.Unlock()

	for c := range set {
		c.Close()
	}
	if len(set) > 0 {
		logger.Info("feeds detached", "user_id", userID, "connections", len(set))
	}
}

// NotifyProfile re-reads a user's profile and pushes it to their connections.
func (h *Hub) NotifyProfile(userID int64) {
	targets := h.clientsOf(userID)
	if len(targets) == 0 {
		return
	}
	h.pushProfile(context.Background(), userID, targets)
}

// NotifyLeaderboard re-reads the leaderboard and pushes it to everyone.
func (h *Hub) NotifyLeaderboard() {
	targets := h.allClients()
	if len(targets) == 0 {
		return
	}
	h.pushLeaderboard(context.Background(), targets)
}

// NotifyRewards re-reads the catalog and pushes it to everyone.
func (h *Hub) NotifyRewards() {
	targets := h.allClients()
	if len(targets) == 0 {
		return
	}
	h.pushRewards(context.Background(), targets)
}

func (h *Hub) clientsOf(userID int64) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	targets := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	return targets
}

func (h *Hub) allClients() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var targets []*Client
	for _, set := range h.clients {
		for c := range set {
			targets = append(targets, c)
		}
	}
	return targets
}

func (h *Hub) pushProfile(ctx context.Context, userID int64, targets []*Client) {
	p, err := h.profiles.GetByUserID(ctx, userID)
	if err != nil {
		// a missing profile is "still loading", not an error to deliver
		if !errors.Is(err, repository.ErrProfileNotFound) {
			feedErrors.WithLabelValues(FeedProfile).Inc()
			logger.Error("profile feed fetch failed", "user_id", userID, "error", err)
		}
		return
	}
	h.deliver(FeedProfile, Message{Type: FeedProfile, Data: newProfilePayload(p)}, targets)
}

func (h *Hub) pushLeaderboard(ctx context.Context, targets []*Client) {
	entries, err := h.profiles.ListLeaderboard(ctx)
	if err != nil {
		feedErrors.WithLabelValues(FeedLeaderboard).Inc()
		logger.Error("leaderboard feed fetch failed", "error", err)
		return
	}
	domain.SortLeaderboard(entries)
	h.deliver(FeedLeaderboard, Message{Type: FeedLeaderboard, Data: newLeaderboardRows(entries)}, targets)
}

func (h *Hub) pushRewards(ctx context.Context, targets []*Client) {
	rewards, err := h.rewards.List(ctx)
	if err != nil {
		feedErrors.WithLabelValues(FeedRewards).Inc()
		logger.Error("rewards feed fetch failed", "error", err)
		return
	}
	domain.SortRewards(rewards)
	h.deliver(FeedRewards, Message{Type: FeedRewards, Data: rewards}, targets)
}

func (h *Hub) deliver(feed string, msg Message, targets []*Client) {
	raw, err := json.Marshal(msg)
	if err != nil {
		feedErrors.WithLabelValues(feed).Inc()
		logger.Error("feed marshal failed", "feed", feed, "error", err)
		return
	}

	for _, c := range targets {
		select {
		case c.Send <- raw:
			feedDeliveries.WithLabelValues(feed).Inc()
		default:
			// slow consumer: drop this emission, the client keeps the
			// last value it received
			feedErrors.WithLabelValues(feed).Inc()
			logger.Warn("feed send buffer full, dropping message", "feed", feed, "user_id", c.UserID)
		}
	}
}
