package model

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a write-once membership fact; JoinedAt is never revised.
type Participant struct {
	ConversationID uuid.UUID
	UserID         uuid.UUID
	JoinedAt       time.Time
}

// FeedEntry is one row of the conversations_by_user materialized view. A new
// send inserts a newer-ranked row rather than updating in place; older rows
// for the same conversation are shadowed until compacted.
type FeedEntry struct {
	UserID            uuid.UUID
	ConversationID    uuid.UUID
	LastUpdatedAt     time.Time
	LastMessage       string
	OtherParticipants []uuid.UUID
}
