package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventPostCreated       EventType = "post_created"
	EventPostUpdated       EventType = "post_updated"
	EventPostDeleted       EventType = "post_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AccountID string      `json:"account_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Email string `json:"email"`
}

// PostCreatedPayload payload.
type PostCreatedPayload struct {
	PostID string `json:"post_id"`
	Title  string `json:"title"`
}

// PostUpdatedPayload payload.
type PostUpdatedPayload struct {
	PostID string `json:"post_id"`
	Title  string `json:"title"`
}

// PostDeletedPayload payload.
type PostDeletedPayload struct {
	PostID string `json:"post_id"`
}
