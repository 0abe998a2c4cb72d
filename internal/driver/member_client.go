package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"auth-gate/internal/domain"
)

// MemberClient calls the member-management service, the authoritative
// member directory. The protocol is a JSON POST of {"userId": ...}
// answered with the full member record.
type MemberClient struct {
	url    string
	client *http.Client
}

// NewMemberClient creates a client for the given endpoint URL.
func NewMemberClient(url string, timeout time.Duration) *MemberClient {
	return &MemberClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup resolves userID against the directory. A 404 means the user
// is positively unknown (found=false, no error); any other non-2xx
// status or transport failure is reported as ErrDirectoryUnavailable
// so the caller can tell "unknown user" from "directory degraded".
func (c *MemberClient) Lookup(ctx context.Context, userID string) (domain.UserRecord, bool, error) {
	body, err := json.Marshal(map[string]string{"userId": userID})
	if err != nil {
		return nil, false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, false, fmt.Errorf("%w: directory returned status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("%w: reading directory response: %w", domain.ErrDirectoryUnavailable, err)
	}

	var record domain.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, false, fmt.Errorf("%w: malformed directory response: %w", domain.ErrDirectoryUnavailable, err)
	}

	return record, true, nil
}
