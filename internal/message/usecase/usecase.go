package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/siddharthbaleja7/fb-messenger/config"
	"github.com/siddharthbaleja7/fb-messenger/internal/conversation"
	convModel "github.com/siddharthbaleja7/fb-messenger/internal/conversation/model"
	"github.com/siddharthbaleja7/fb-messenger/internal/message"
	"github.com/siddharthbaleja7/fb-messenger/internal/message/model"
	"github.com/siddharthbaleja7/fb-messenger/internal/user"
	"github.com/siddharthbaleja7/fb-messenger/pkg/errors"
	"github.com/siddharthbaleja7/fb-messenger/pkg/logger"
	"github.com/siddharthbaleja7/fb-messenger/pkg/metrics"
)

type MessageUsecase struct {
	msgRepo  message.MessageRepository
	convRepo conversation.ConversationRepository
	userRepo user.UserRepository
	logger   logger.Logger
	config   config.Config
}

func NewMessageUsecase(
	msgRepo message.MessageRepository,
	convRepo conversation.ConversationRepository,
	userRepo user.UserRepository,
	logger logger.Logger,
	config config.Config,
) *MessageUsecase {
	return &MessageUsecase{
		msgRepo:  msgRepo,
		convRepo: convRepo,
		userRepo: userRepo,
		logger:   logger,
		config:   config,
	}
}

func (uc *MessageUsecase) SendMessage(ctx context.Context, cmd message.SendMessageCommand) (*message.MessageDTO, error) {
	if strings.TrimSpace(cmd.Content) == "" {
		return nil, errors.ErrMessageContentEmpty
	}
	if cmd.SenderIndex == cmd.ReceiverIndex {
		return nil, errors.ErrSenderEqualsReceiver
	}

	sender, err := uc.userRepo.GetUserByIndex(ctx, cmd.SenderIndex)
	if err != nil {
		return nil, err
	}
	receiver, err := uc.userRepo.GetUserByIndex(ctx, cmd.ReceiverIndex)
	if err != nil {
		return nil, err
	}

	conversationID, err := uc.convRepo.CreateOrGetConversation(ctx, []uuid.UUID{sender.ID, receiver.ID})
	if err != nil {
		return nil, err
	}

	participants, err := uc.convRepo.GetParticipants(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(participants, receiver.ID) {
		return nil, errors.ErrReceiverNotParticipant
	}

	msg := &model.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       sender.ID,
		ReceiverID:     receiver.ID,
		Content:        cmd.Content,
		Timestamp:      time.Now().UTC(),
	}
	if err := uc.msgRepo.CreateMessage(ctx, msg); err != nil {
		// Nothing durable yet, the feeds were never touched.
		return nil, err
	}
	metrics.MessagesSent.Inc()

	conversationIndex, indexErr := uc.convRepo.GetConversationIndex(ctx, conversationID)
	if indexErr != nil {
		uc.logger.Error("conversation index missing after send", "conversation", conversationID, "err", indexErr)
		conversationIndex = -1
	}

	dto := &message.MessageDTO{
		ID:             msg.ID,
		SenderID:       sender.Index,
		ReceiverID:     receiver.Index,
		ConversationID: conversationIndex,
		Content:        msg.Content,
		CreatedAt:      msg.Timestamp,
	}

	// Fan-out: one independent feed write per participant, sender included.
	// There is no transaction spanning them; collect failures and surface
	// them as a partial write instead of pretending the send fully landed.
	var (
		failed  []string
		lastErr error
	)
	for _, p := range participants {
		entry := &convModel.FeedEntry{
			UserID:            p.UserID,
			ConversationID:    conversationID,
			LastUpdatedAt:     msg.Timestamp,
			LastMessage:       msg.Content,
			OtherParticipants: otherUserIDs(participants, p.UserID),
		}
		if err := uc.convRepo.UpsertFeedEntry(ctx, entry); err != nil {
			metrics.FeedFanoutFailures.Inc()
			uc.logger.Error("feed upsert failed", "user", p.UserID, "conversation", conversationID, "err", err)
			failed = append(failed, p.UserID.String())
			lastErr = err
		}
	}
	if len(failed) > 0 {
		return dto, errors.ErrFeedFanoutPartial(failed, lastErr)
	}
	if indexErr != nil {
		// The append is durable and the feeds are current, but the response
		// carries a -1 conversation id; the caller must not mistake that for
		// a clean send.
		return dto, errors.ErrConversationIndexUnresolved(indexErr)
	}
	return dto, nil
}

func (uc *MessageUsecase) GetConversationMessages(ctx context.Context, conversationIndex, page, limit int) (*message.PaginatedMessagesDTO, error) {
	page, limit = uc.sanitize(page, limit)

	conversationID, err := uc.convRepo.GetConversationByIndex(ctx, conversationIndex)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.msgRepo.GetConversationMessages(ctx, conversationID, page, limit)
	if err != nil {
		return nil, err
	}
	return uc.toPage(ctx, msgs, conversationIndex, page, limit), nil
}

func (uc *MessageUsecase) GetMessagesBeforeTimestamp(ctx context.Context, conversationIndex int, before time.Time, page, limit int) (*message.PaginatedMessagesDTO, error) {
	if before.IsZero() {
		return nil, errors.ErrInvalidBeforeTimestamp
	}
	page, limit = uc.sanitize(page, limit)

	conversationID, err := uc.convRepo.GetConversationByIndex(ctx, conversationIndex)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.msgRepo.GetMessagesBefore(ctx, conversationID, before, page, limit)
	if err != nil {
		return nil, err
	}
	return uc.toPage(ctx, msgs, conversationIndex, page, limit), nil
}

// toPage re-translates internal ids to external indexes. A row that no longer
// resolves is logged and skipped so one corrupt row cannot sink the page; the
// skip is counted for diagnostics.
func (uc *MessageUsecase) toPage(ctx context.Context, msgs []model.Message, conversationIndex, page, limit int) *message.PaginatedMessagesDTO {
	data := make([]message.MessageDTO, 0, len(msgs))
	indexCache := map[uuid.UUID]int{}

	for _, m := range msgs {
		senderIndex, err := uc.resolveIndex(ctx, indexCache, m.SenderID)
		if err == nil {
			var receiverIndex int
			receiverIndex, err = uc.resolveIndex(ctx, indexCache, m.ReceiverID)
			if err == nil {
				data = append(data, message.MessageDTO{
					ID:             m.ID,
					SenderID:       senderIndex,
					ReceiverID:     receiverIndex,
					ConversationID: conversationIndex,
					Content:        m.Content,
					CreatedAt:      m.Timestamp,
				})
				continue
			}
		}
		metrics.SkippedRows.WithLabelValues("messages_by_conversation").Inc()
		uc.logger.Error("skipping message with unresolvable participant", "message", m.ID, "err", err)
	}

	return &message.PaginatedMessagesDTO{
		Total: len(data),
		Page:  page,
		Limit: limit,
		Data:  data,
	}
}

func (uc *MessageUsecase) resolveIndex(ctx context.Context, cache map[uuid.UUID]int, id uuid.UUID) (int, error) {
	if index, ok := cache[id]; ok {
		return index, nil
	}
	u, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return 0, err
	}
	cache[id] = u.Index
	return u.Index, nil
}

func (uc *MessageUsecase) sanitize(page, limit int) (int, int) {
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

func isParticipant(participants []convModel.Participant, target uuid.UUID) bool {
	for _, p := range participants {
		if p.UserID == target {
			return true
		}
	}
	return false
}

func otherUserIDs(participants []convModel.Participant, target uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(participants)-1)
	for _, p := range participants {
		if p.UserID != target {
			out = append(out, p.UserID)
		}
	}
	return out
}
