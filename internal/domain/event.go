package domain

import (
	"errors"
	"time"
)

// EventMessageUnauthorized is the message carried by rejection events.
const EventMessageUnauthorized = "Unauthorized"

// EventUser is the user portion of an UnauthorizedEvent payload.
type EventUser struct {
	UserID string `json:"userId"`
}

// UnauthorizedEvent is published to the durable event stream whenever
// the rejection gate fires. Its ID is the transaction id of the
// surrounding call so the event can be joined with the log pair.
type UnauthorizedEvent struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	User      EventUser `json:"user"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUnauthorizedEvent builds a rejection event for the given
// transaction and user id.
func NewUnauthorizedEvent(txn Transaction, userID string) *UnauthorizedEvent {
	return &UnauthorizedEvent{
		ID:        txn.ID,
		Message:   EventMessageUnauthorized,
		User:      EventUser{UserID: userID},
		Source:    txn.Component,
		CreatedAt: time.Now(),
	}
}

// Validate checks that the event has all required fields.
func (e *UnauthorizedEvent) Validate() error {
	if e.ID == "" {
		return errors.New("event id is required")
	}
	if e.Message == "" {
		return errors.New("event message is required")
	}
	if e.User.UserID == "" {
		return errors.New("event user id is required")
	}
	if e.CreatedAt.IsZero() {
		return errors.New("event created_at is required")
	}
	return nil
}
