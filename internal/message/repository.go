package message

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siddharthbaleja7/fb-messenger/internal/message/model"
)

type MessageRepository interface {
	CreateMessage(ctx context.Context, msg *model.Message) error

	// GetConversationMessages pages the log newest-first. The store cannot
	// skip rows, so page N costs N*limit fetched rows; deep pagination should
	// use GetMessagesBefore instead.
	GetConversationMessages(ctx context.Context, conversationID uuid.UUID, page, limit int) ([]model.Message, error)

	// GetMessagesBefore returns messages strictly older than the cursor,
	// same slice contract. The cursor is the timestamp of the oldest message
	// of the previous page.
	GetMessagesBefore(ctx context.Context, conversationID uuid.UUID, before time.Time, page, limit int) ([]model.Message, error)

	// GetLastMessage returns the newest message, or nil when the log is empty.
	GetLastMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error)
}
