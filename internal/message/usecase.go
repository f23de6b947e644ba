package message

import (
	"context"
	"time"
)

type MessageUsecase interface {
	// SendMessage appends to the log and fans the new latest-message snapshot
	// out to every participant's feed. When the append succeeded but one or
	// more feed writes failed, the DTO is returned together with a
	// PARTIAL_WRITE error: the message is durable, the named feeds are stale.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*MessageDTO, error)

	GetConversationMessages(ctx context.Context, conversationIndex, page, limit int) (*PaginatedMessagesDTO, error)

	GetMessagesBeforeTimestamp(ctx context.Context, conversationIndex int, before time.Time, page, limit int) (*PaginatedMessagesDTO, error)
}
