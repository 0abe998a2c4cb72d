package domain

import "context"

// UserCache provides point reads and writes of member records keyed by
// userId. Get reports found=false on a clean miss; any transport or
// decode fault is returned as an error, never downgraded to a miss.
type UserCache interface {
	Get(ctx context.Context, userID string) (UserRecord, bool, error)
	Set(ctx context.Context, record UserRecord) error
}

// Directory resolves a userId against the authoritative member store.
// found=false means the directory positively does not know the user;
// a degraded directory returns ErrDirectoryUnavailable instead.
type Directory interface {
	Lookup(ctx context.Context, userID string) (UserRecord, bool, error)
}

// EventPublisher delivers rejection events to the durable event
// stream, best-effort. The returned message id is used only for
// delivery logging.
type EventPublisher interface {
	Publish(ctx context.Context, event *UnauthorizedEvent) (string, error)
}

// RejectionPolicy decides whether an attempt is rejected before any
// lookup happens. Implementations must be safe for concurrent use.
type RejectionPolicy interface {
	Reject() bool
}

// RejectionCounter records rejected attempts per user id.
type RejectionCounter interface {
	Inc(userID string)
}
