package message

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type SendMessageCommand struct {
	SenderIndex   int
	ReceiverIndex int
	Content       string
}

// Output DTOs
type MessageDTO struct {
	ID             uuid.UUID `json:"id"`
	SenderID       int       `json:"sender_id"`
	ReceiverID     int       `json:"receiver_id"`
	ConversationID int       `json:"conversation_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

type PaginatedMessagesDTO struct {
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Data  []MessageDTO `json:"data"`
}
