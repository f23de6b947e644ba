package conversation

import (
	"context"

	"github.com/google/uuid"
	"github.com/siddharthbaleja7/fb-messenger/internal/conversation/model"
)

type ConversationRepository interface {
	// CreateOrGetConversation derives the conversation id deterministically
	// from the sorted participant set, so concurrent first-contact sends
	// converge on the same conversation instead of racing to create
	// duplicates. Participant rows and the index mapping are inserted with
	// IF NOT EXISTS; repeated calls are no-ops.
	CreateOrGetConversation(ctx context.Context, participants []uuid.UUID) (uuid.UUID, error)
	GetParticipants(ctx context.Context, conversationID uuid.UUID) ([]model.Participant, error)

	GetConversationByIndex(ctx context.Context, index int) (uuid.UUID, error)
	GetConversationIndex(ctx context.Context, conversationID uuid.UUID) (int, error)

	// UpsertFeedEntry inserts a newer-ranked feed row; it shadows the previous
	// entry rather than replacing it (last_updated_at is part of the key).
	UpsertFeedEntry(ctx context.Context, entry *model.FeedEntry) error
	// ListFeedForUser walks the feed newest-first, collapses shadowed rows per
	// conversation (newest wins), stops after page*limit distinct conversations
	// and slices the requested window. Cost grows with page depth and with the
	// number of shadow rows crossed; prefer small pages.
	ListFeedForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.FeedEntry, error)
}
