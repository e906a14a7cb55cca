package service

// FeedNotifier is implemented by the live-feed hub. Writers call it after a
// successful commit; delivery happens asynchronously and failures stay inside
// the hub (logged, never propagated back to the writer).
type FeedNotifier interface {
	NotifyProfile(userID int64)
	NotifyLeaderboard()
	NotifyRewards()
}

// noopNotifier stands in when no hub is wired (tests, one-shot tools).
type noopNotifier struct{}

func (noopNotifier) NotifyProfile(int64) {}
func (noopNotifier) NotifyLeaderboard()  {}
func (noopNotifier) NotifyRewards()      {}
