// Package domain contains core domain types for auth-gate.
package domain

import "encoding/json"

// UserRecord holds a member record returned by the member-management
// directory. The record is opaque: only the userId attribute is
// interpreted, everything else is carried through untouched and echoed
// back to the caller on success.
type UserRecord map[string]any

// UserID returns the userId attribute, or "" when absent or not a string.
func (r UserRecord) UserID() string {
	id, _ := r["userId"].(string)
	return id
}

// Validate checks that the record carries a non-empty userId.
func (r UserRecord) Validate() error {
	if r.UserID() == "" {
		return ErrMissingUserID
	}
	return nil
}

// Encode serializes the record for cache storage.
func (r UserRecord) Encode() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeUserRecord parses a cached payload back into a UserRecord.
// A payload without a userId is rejected so a corrupt cache entry
// surfaces loudly instead of resolving to a bogus member.
func DecodeUserRecord(payload string) (UserRecord, error) {
	var record UserRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}
