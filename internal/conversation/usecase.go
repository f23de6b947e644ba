package conversation

import (
	"context"
)

type ConversationUsecase interface {
	// ListUserConversations returns the caller's feed, most recent first. A
	// feed row whose identifiers no longer resolve is skipped, not fatal.
	ListUserConversations(ctx context.Context, userIndex, page, limit int) (*PaginatedConversationsDTO, error)

	GetConversation(ctx context.Context, conversationIndex int) (*ConversationDTO, error)
}
