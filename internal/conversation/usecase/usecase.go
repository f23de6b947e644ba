package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/siddharthbaleja7/fb-messenger/config"
	"github.com/siddharthbaleja7/fb-messenger/internal/conversation"
	"github.com/siddharthbaleja7/fb-messenger/internal/message"
	"github.com/siddharthbaleja7/fb-messenger/internal/user"
	"github.com/siddharthbaleja7/fb-messenger/pkg/logger"
	"github.com/siddharthbaleja7/fb-messenger/pkg/metrics"
)

type ConversationUsecase struct {
	convRepo conversation.ConversationRepository
	userRepo user.UserRepository
	msgRepo  message.MessageRepository
	logger   logger.Logger
	config   config.Config
}

func NewConversationUsecase(
	convRepo conversation.ConversationRepository,
	userRepo user.UserRepository,
	msgRepo message.MessageRepository,
	logger logger.Logger,
	config config.Config,
) *ConversationUsecase {
	return &ConversationUsecase{
		convRepo: convRepo,
		userRepo: userRepo,
		msgRepo:  msgRepo,
		logger:   logger,
		config:   config,
	}
}

func (uc *ConversationUsecase) ListUserConversations(ctx context.Context, userIndex, page, limit int) (*conversation.PaginatedConversationsDTO, error) {
	page, limit = uc.sanitize(page, limit)

	caller, err := uc.userRepo.GetUserByIndex(ctx, userIndex)
	if err != nil {
		return nil, err
	}

	entries, err := uc.convRepo.ListFeedForUser(ctx, caller.ID, page, limit)
	if err != nil {
		return nil, err
	}

	data := make([]conversation.ConversationDTO, 0, len(entries))
	for _, entry := range entries {
		conversationIndex, err := uc.convRepo.GetConversationIndex(ctx, entry.ConversationID)
		if err != nil {
			uc.skip(entry.ConversationID, err)
			continue
		}

		otherIndex := -1
		if len(entry.OtherParticipants) > 0 {
			other, err := uc.userRepo.GetUserByID(ctx, entry.OtherParticipants[0])
			if err != nil {
				uc.skip(entry.ConversationID, err)
				continue
			}
			otherIndex = other.Index
		}

		data = append(data, conversation.ConversationDTO{
			ID:                 conversationIndex,
			User1ID:            caller.Index,
			User2ID:            otherIndex,
			LastMessageAt:      entry.LastUpdatedAt,
			LastMessageContent: entry.LastMessage,
		})
	}

	return &conversation.PaginatedConversationsDTO{
		Total: len(data),
		Page:  page,
		Limit: limit,
		Data:  data,
	}, nil
}

func (uc *ConversationUsecase) GetConversation(ctx context.Context, conversationIndex int) (*conversation.ConversationDTO, error) {
	conversationID, err := uc.convRepo.GetConversationByIndex(ctx, conversationIndex)
	if err != nil {
		return nil, err
	}

	participants, err := uc.convRepo.GetParticipants(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	user1, err := uc.userRepo.GetUserByID(ctx, participants[0].UserID)
	if err != nil {
		return nil, err
	}
	user2Index := -1
	if len(participants) > 1 {
		user2, err := uc.userRepo.GetUserByID(ctx, participants[1].UserID)
		if err != nil {
			return nil, err
		}
		user2Index = user2.Index
	}

	dto := &conversation.ConversationDTO{
		ID:      conversationIndex,
		User1ID: user1.Index,
		User2ID: user2Index,
	}

	// Latest-message snapshot comes from the log head; an empty log leaves
	// the zero values in place.
	last, err := uc.msgRepo.GetLastMessage(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		dto.LastMessageAt = last.Timestamp
		dto.LastMessageContent = last.Content
	}
	return dto, nil
}

func (uc *ConversationUsecase) skip(conversationID uuid.UUID, err error) {
	metrics.SkippedRows.WithLabelValues("conversations_by_user").Inc()
	uc.logger.Error("skipping conversation with unresolvable ids", "conversation", conversationID, "err", err)
}

func (uc *ConversationUsecase) sanitize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = uc.config.Pagination.DefaultLimit
	}
	if uc.config.Pagination.MaxLimit > 0 && limit > uc.config.Pagination.MaxLimit {
		limit = uc.config.Pagination.MaxLimit
	}
	return page, limit
}
