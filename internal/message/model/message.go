package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once written. Rows cluster newest-first inside the
// conversation partition; equal timestamps order by id ascending so readers
// see one deterministic sequence.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	ReceiverID     uuid.UUID
	Content        string
	Timestamp      time.Time
}
