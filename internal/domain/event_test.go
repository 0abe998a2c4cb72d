package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnauthorizedEvent(t *testing.T) {
	txn := NewTransaction("authenticate")

	event := NewUnauthorizedEvent(txn, "u2")

	assert.Equal(t, txn.ID, event.ID)
	assert.Equal(t, "Unauthorized", event.Message)
	assert.Equal(t, "u2", event.User.UserID)
	assert.Equal(t, "authenticate", event.Source)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, event.Validate())
}

func TestUnauthorizedEvent_Validate(t *testing.T) {
	valid := func() *UnauthorizedEvent {
		return &UnauthorizedEvent{
			ID:        "txn-1",
			Message:   EventMessageUnauthorized,
			User:      EventUser{UserID: "u1"},
			CreatedAt: time.Now(),
		}
	}

	require.NoError(t, valid().Validate())

	event := valid()
	event.ID = ""
	assert.Error(t, event.Validate())

	event = valid()
	event.Message = ""
	assert.Error(t, event.Validate())

	event = valid()
	event.User.UserID = ""
	assert.Error(t, event.Validate())

	event = valid()
	event.CreatedAt = time.Time{}
	assert.Error(t, event.Validate())
}

func TestNewTransaction(t *testing.T) {
	a := NewTransaction("authenticate")
	b := NewTransaction("authenticate")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID, "each call gets its own transaction id")
	assert.Equal(t, "authenticate", a.Component)
}
