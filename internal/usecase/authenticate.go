// Package usecase contains business logic for auth-gate.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"auth-gate/internal/domain"
)

// AuthenticateUser orchestrates one authentication attempt: rejection
// gate first, then cache-aside resolution against the member
// directory. The publisher and counter are optional collaborators; a
// nil value disables that side channel without changing the outcome.
type AuthenticateUser struct {
	cache     domain.UserCache
	directory domain.Directory
	policy    domain.RejectionPolicy
	publisher domain.EventPublisher
	counter   domain.RejectionCounter
	logger    *slog.Logger
}

// NewAuthenticateUser creates the orchestrator.
func NewAuthenticateUser(
	cache domain.UserCache,
	directory domain.Directory,
	policy domain.RejectionPolicy,
	publisher domain.EventPublisher,
	counter domain.RejectionCounter,
	logger *slog.Logger,
) *AuthenticateUser {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthenticateUser{
		cache:     cache,
		directory: directory,
		policy:    policy,
		publisher: publisher,
		counter:   counter,
		logger:    logger,
	}
}

// Execute resolves userID to an Outcome. The caller must pass a
// non-empty userID; empty ids are a request-validation concern handled
// upstream. Cache faults propagate: treating them as a miss would mask
// infrastructure failure behind extra directory load.
func (uc *AuthenticateUser) Execute(ctx context.Context, txn domain.Transaction, userID string) (*domain.Outcome, error) {
	if uc.policy != nil && uc.policy.Reject() {
		uc.auditRejection(ctx, txn, userID)
		return &domain.Outcome{Kind: domain.OutcomeRejected}, nil
	}

	record, found, err := uc.cache.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cache lookup for user %q: %w", userID, err)
	}
	if found {
		return &domain.Outcome{Kind: domain.OutcomeAuthenticated, Record: record}, nil
	}

	record, found, err = uc.directory.Lookup(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("directory lookup for user %q: %w", userID, err)
	}
	if !found {
		// No negative caching: an unknown user writes nothing.
		return &domain.Outcome{Kind: domain.OutcomeNotFound}, nil
	}

	// The write must land before the response so a follow-up call in
	// this process observes the freshly cached record.
	if err := uc.cache.Set(ctx, record); err != nil {
		return nil, fmt.Errorf("cache write for user %q: %w", userID, err)
	}

	return &domain.Outcome{Kind: domain.OutcomeAuthenticated, Record: record}, nil
}

// auditRejection publishes the rejection event and bumps the counter.
// Audit delivery is best-effort: a publish failure is logged and the
// rejection is still returned to the caller.
func (uc *AuthenticateUser) auditRejection(ctx context.Context, txn domain.Transaction, userID string) {
	if uc.publisher != nil {
		if _, err := uc.publisher.Publish(ctx, domain.NewUnauthorizedEvent(txn, userID)); err != nil {
			uc.logger.ErrorContext(ctx, "failed to publish unauthorized event",
				"transaction_id", txn.ID,
				"user_id", userID,
				"error", err)
		}
	}
	if uc.counter != nil {
		uc.counter.Inc(userID)
	}
}
