package conversation

import "time"

// Output DTOs carry the external dense indexes, never internal UUIDs.
type ConversationDTO struct {
	ID                 int       `json:"id"`
	User1ID            int       `json:"user1_id"`
	User2ID            int       `json:"user2_id"`
	LastMessageAt      time.Time `json:"last_message_at"`
	LastMessageContent string    `json:"last_message_content"`
}

type PaginatedConversationsDTO struct {
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Data  []ConversationDTO `json:"data"`
}
