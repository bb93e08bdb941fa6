package service

// ReconcileStrategy names how a view catches up with server state after a
// mutation succeeds. The frontend never patches rendered state in place;
// making the strategy explicit keeps an optimistic-update variant swappable
// without hidden coupling in the controllers.
type ReconcileStrategy string

const (
	// ReconcileFullReload discards the whole view and re-fetches it.
	ReconcileFullReload ReconcileStrategy = "full_reload"
)
