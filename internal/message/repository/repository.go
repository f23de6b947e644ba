package repository

import (
	"context"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/siddharthbaleja7/fb-messenger/internal/message/model"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
)

type MessageRepository struct {
	session *gocql.Session
}

func NewMessageRepository(session *gocql.Session) *MessageRepository {
	return &MessageRepository{session: session}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	err := r.session.Query(
		`INSERT INTO messages_by_conversation
		 (conversation_id, timestamp, message_id, sender_id, receiver_id, content)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		gocql.UUID(msg.ConversationID),
		msg.Timestamp,
		gocql.UUID(msg.ID),
		gocql.UUID(msg.SenderID),
		gocql.UUID(msg.ReceiverID),
		msg.Content,
	).WithContext(ctx).Exec()
	if err != nil {
		return db.TranslateError(errors.Wrap(err, "messageRepo.CreateMessage.Exec"))
	}
	return nil
}

func (r *MessageRepository) GetConversationMessages(ctx context.Context, conversationID uuid.UUID, page, limit int) ([]model.Message, error) {
	return r.pageMessages(ctx,
		`SELECT conversation_id, timestamp, message_id, sender_id, receiver_id, content
		 FROM messages_by_conversation WHERE conversation_id = ? LIMIT ?`,
		page, limit,
		gocql.UUID(conversationID), page*limit)
}

func (r *MessageRepository) GetMessagesBefore(ctx context.Context, conversationID uuid.UUID, before time.Time, page, limit int) ([]model.Message, error) {
	// timestamp is the first clustering column, so the range predicate runs
	// inside the partition without filtering.
	return r.pageMessages(ctx,
		`SELECT conversation_id, timestamp, message_id, sender_id, receiver_id, content
		 FROM messages_by_conversation WHERE conversation_id = ? AND timestamp < ? LIMIT ?`,
		page, limit,
		gocql.UUID(conversationID), before, page*limit)
}

func (r *MessageRepository) GetLastMessage(ctx context.Context, conversationID uuid.UUID) (*model.Message, error) {
	var (
		convID, msgID, senderID, receiverID gocql.UUID
		msg                                 model.Message
	)
	err := r.session.Query(
		`SELECT conversation_id, timestamp, message_id, sender_id, receiver_id, content
		 FROM messages_by_conversation WHERE conversation_id = ? LIMIT 1`,
		gocql.UUID(conversationID),
	).WithContext(ctx).Scan(&convID, &msg.Timestamp, &msgID, &senderID, &receiverID, &msg.Content)
	if err == gocql.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, db.TranslateError(errors.Wrap(err, "messageRepo.GetLastMessage.Scan"))
	}
	msg.ConversationID = uuid.UUID(convID)
	msg.ID = uuid.UUID(msgID)
	msg.SenderID = uuid.UUID(senderID)
	msg.ReceiverID = uuid.UUID(receiverID)
	return &msg, nil
}

// pageMessages runs a newest-first query bounded at page*limit rows and
// slices the requested window in memory (the store has no native offset).
func (r *MessageRepository) pageMessages(ctx context.Context, stmt string, page, limit int, binds ...interface{}) ([]model.Message, error) {
	iter := r.session.Query(stmt, binds...).WithContext(ctx).Iter()

	var (
		all []model.Message

		convID, msgID, senderID, receiverID gocql.UUID
		timestamp                           time.Time
		content                             string
	)
	for iter.Scan(&convID, &timestamp, &msgID, &senderID, &receiverID, &content) {
		all = append(all, model.Message{
			ID:             uuid.UUID(msgID),
			ConversationID: uuid.UUID(convID),
			SenderID:       uuid.UUID(senderID),
			ReceiverID:     uuid.UUID(receiverID),
			Content:        content,
			Timestamp:      timestamp,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, db.TranslateError(errors.Wrap(err, "messageRepo.pageMessages.Iter"))
	}

	start := (page - 1) * limit
	if start >= len(all) {
		return nil, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}
