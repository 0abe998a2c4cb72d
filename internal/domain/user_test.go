package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRecord_UserID(t *testing.T) {
	assert.Equal(t, "u1", UserRecord{"userId": "u1"}.UserID())
	assert.Empty(t, UserRecord{}.UserID())
	assert.Empty(t, UserRecord{"userId": 42}.UserID(), "non-string userId is treated as absent")
}

func TestUserRecord_Validate(t *testing.T) {
	assert.NoError(t, UserRecord{"userId": "u1"}.Validate())
	assert.ErrorIs(t, UserRecord{"tier": "gold"}.Validate(), ErrMissingUserID)
	assert.ErrorIs(t, UserRecord{"userId": ""}.Validate(), ErrMissingUserID)
}

func TestDecodeUserRecord(t *testing.T) {
	record, err := DecodeUserRecord(`{"userId":"u1","tier":"gold"}`)
	require.NoError(t, err)
	assert.Equal(t, "u1", record.UserID())
	assert.Equal(t, "gold", record["tier"], "extra attributes pass through untouched")
}

func TestDecodeUserRecord_Malformed(t *testing.T) {
	_, err := DecodeUserRecord(`{"userId":`)
	assert.Error(t, err)
}

func TestDecodeUserRecord_MissingUserID(t *testing.T) {
	_, err := DecodeUserRecord(`{"tier":"gold"}`)
	assert.ErrorIs(t, err, ErrMissingUserID, "a cached record without userId is corrupt, not a member")
}
