package gateway

import (
	"context"
	"fmt"

	"auth-gate/internal/domain"
)

// MemberLookup is the slice of the member client the directory gateway
// needs.
type MemberLookup interface {
	Lookup(ctx context.Context, userID string) (domain.UserRecord, bool, error)
}

// DirectoryGateway implements domain.Directory over the
// member-management client, rejecting records that do not carry the
// userId they were looked up with.
type DirectoryGateway struct {
	client MemberLookup
}

// NewDirectoryGateway creates a directory gateway.
func NewDirectoryGateway(client MemberLookup) *DirectoryGateway {
	return &DirectoryGateway{client: client}
}

// Lookup resolves userID against the authoritative directory.
func (g *DirectoryGateway) Lookup(ctx context.Context, userID string) (domain.UserRecord, bool, error) {
	record, found, err := g.client.Lookup(ctx, userID)
	if err != nil || !found {
		return nil, false, err
	}

	if record.UserID() != userID {
		return nil, false, fmt.Errorf("%w: directory returned record for %q, requested %q",
			domain.ErrDirectoryUnavailable, record.UserID(), userID)
	}
	return record, true, nil
}
