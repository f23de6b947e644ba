package repository

import (
	"bytes"
	"context"
	"sort"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/siddharthbaleja7/fb-messenger/internal/conversation/model"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"
)

// Namespace for deriving conversation ids from participant sets. Changing it
// would orphan every existing conversation.
var conversationNamespace = uuid.MustParse("b5a1f3e8-6c2d-4a7b-9e0f-3d8c41a27f56")

type ConversationRepository struct {
	session   *gocql.Session
	allocator *db.IndexAllocator
}

func NewConversationRepository(session *gocql.Session) *ConversationRepository {
	return &ConversationRepository{
		session:   session,
		allocator: db.NewIndexAllocator(session, "conversation_index", 1),
	}
}

// DeterministicConversationID folds the sorted participant set into a UUIDv5.
// The same set always yields the same id, which turns creation races into
// harmless duplicate inserts.
func DeterministicConversationID(participants []uuid.UUID) uuid.UUID {
	sorted := make([]uuid.UUID, len(participants))
	copy(sorted, participants)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	var buf bytes.Buffer
	for _, id := range sorted {
		buf.Write(id[:])
	}
	return uuid.NewSHA1(conversationNamespace, buf.Bytes())
}

func (r *ConversationRepository) CreateOrGetConversation(ctx context.Context, participants []uuid.UUID) (uuid.UUID, error) {
	if len(participants) < 2 {
		return uuid.Nil, appErrors.ErrEmptyParticipantSet
	}

	conversationID := DeterministicConversationID(participants)

	if _, err := r.GetConversationIndex(ctx, conversationID); err == nil {
		return conversationID, nil
	} else if !appErrors.IsNotFound(err) {
		return uuid.Nil, err
	}

	index, err := r.allocator.Next(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	// A lost race here wastes one index; the winner's mapping stands.
	_, err = r.session.Query(
		`INSERT INTO conversation_metadata (conversation_id, conversation_index)
		 VALUES (?, ?) IF NOT EXISTS`,
		gocql.UUID(conversationID), index,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return uuid.Nil, db.TranslateError(errors.Wrap(err, "convRepo.CreateOrGetConversation.Metadata"))
	}

	joinedAt := time.Now().UTC()
	for _, userID := range participants {
		_, err = r.session.Query(
			`INSERT INTO conversation_participants (conversation_id, user_id, joined_at)
			 VALUES (?, ?, ?) IF NOT EXISTS`,
			gocql.UUID(conversationID), gocql.UUID(userID), joinedAt,
		).WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return uuid.Nil, db.TranslateError(errors.Wrap(err, "convRepo.CreateOrGetConversation.Participant"))
		}
	}

	return conversationID, nil
}

func (r *ConversationRepository) GetParticipants(ctx context.Context, conversationID uuid.UUID) ([]model.Participant, error) {
	iter := r.session.Query(
		`SELECT conversation_id, user_id, joined_at FROM conversation_participants WHERE conversation_id = ?`,
		gocql.UUID(conversationID),
	).WithContext(ctx).Iter()

	var (
		participants []model.Participant
		convID       gocql.UUID
		userID       gocql.UUID
		joinedAt     time.Time
	)
	for iter.Scan(&convID, &userID, &joinedAt) {
		participants = append(participants, model.Participant{
			ConversationID: uuid.UUID(convID),
			UserID:         uuid.UUID(userID),
			JoinedAt:       joinedAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, db.TranslateError(errors.Wrap(err, "convRepo.GetParticipants.Iter"))
	}
	if len(participants) == 0 {
		return nil, appErrors.ErrConversationNotFound
	}
	return participants, nil
}

func (r *ConversationRepository) GetConversationByIndex(ctx context.Context, index int) (uuid.UUID, error) {
	var conversationID gocql.UUID
	err := r.session.Query(
		`SELECT conversation_id FROM conversation_metadata WHERE conversation_index = ?`,
		index,
	).WithContext(ctx).Scan(&conversationID)
	if err == gocql.ErrNotFound {
		return uuid.Nil, appErrors.ErrConversationNotFound
	}
	if err != nil {
		return uuid.Nil, db.TranslateError(errors.Wrap(err, "convRepo.GetConversationByIndex.Scan"))
	}
	return uuid.UUID(conversationID), nil
}

func (r *ConversationRepository) GetConversationIndex(ctx context.Context, conversationID uuid.UUID) (int, error) {
	var index int
	err := r.session.Query(
		`SELECT conversation_index FROM conversation_metadata WHERE conversation_id = ?`,
		gocql.UUID(conversationID),
	).WithContext(ctx).Scan(&index)
	if err == gocql.ErrNotFound {
		return 0, appErrors.ErrConversationNotFound
	}
	if err != nil {
		return 0, db.TranslateError(errors.Wrap(err, "convRepo.GetConversationIndex.Scan"))
	}
	return index, nil
}

func (r *ConversationRepository) UpsertFeedEntry(ctx context.Context, entry *model.FeedEntry) error {
	err := r.session.Query(
		`INSERT INTO conversations_by_user
		 (user_id, conversation_id, last_updated_at, last_message, other_participants)
		 VALUES (?, ?, ?, ?, ?)`,
		gocql.UUID(entry.UserID),
		gocql.UUID(entry.ConversationID),
		entry.LastUpdatedAt,
		entry.LastMessage,
		toGocqlUUIDs(entry.OtherParticipants),
	).WithContext(ctx).Exec()
	if err != nil {
		return db.TranslateError(errors.Wrap(err, "convRepo.UpsertFeedEntry.Exec"))
	}
	return nil
}

func (r *ConversationRepository) ListFeedForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]model.FeedEntry, error) {
	// The store cannot skip rows, so the scan walks the partition newest-first
	// and slices the requested window in memory. The bound is page*limit
	// DISTINCT conversations, not physical rows: shadow rows of one busy
	// conversation must not use up the budget of the ones ranked below it.
	want := page * limit
	iter := r.session.Query(
		`SELECT user_id, conversation_id, last_updated_at, last_message, other_participants
		 FROM conversations_by_user WHERE user_id = ?`,
		gocql.UUID(userID),
	).WithContext(ctx).Iter()

	var (
		entries []model.FeedEntry
		seen    = map[uuid.UUID]bool{}

		rowUserID gocql.UUID
		rowConvID gocql.UUID
		updatedAt time.Time
		lastMsg   string
		others    []gocql.UUID
	)
	for len(entries) < want && iter.Scan(&rowUserID, &rowConvID, &updatedAt, &lastMsg, &others) {
		conversationID := uuid.UUID(rowConvID)
		// Rows are newest-first, so the first row per conversation is the
		// live one and the rest are shadowed.
		if seen[conversationID] {
			others = nil
			continue
		}
		seen[conversationID] = true
		entries = append(entries, model.FeedEntry{
			UserID:            uuid.UUID(rowUserID),
			ConversationID:    conversationID,
			LastUpdatedAt:     updatedAt,
			LastMessage:       lastMsg,
			OtherParticipants: toUUIDs(others),
		})
		others = nil
	}
	if err := iter.Close(); err != nil {
		return nil, db.TranslateError(errors.Wrap(err, "convRepo.ListFeedForUser.Iter"))
	}

	start := (page - 1) * limit
	if start >= len(entries) {
		return nil, nil
	}
	end := start + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end], nil
}

func toGocqlUUIDs(ids []uuid.UUID) []gocql.UUID {
	out := make([]gocql.UUID, len(ids))
	for i, id := range ids {
		out[i] = gocql.UUID(id)
	}
	return out
}

func toUUIDs(ids []gocql.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		out[i] = uuid.UUID(id)
	}
	return out
}
