package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siddharthbaleja7/fb-messenger/config"
	convMocks "github.com/siddharthbaleja7/fb-messenger/internal/conversation/mocks"
	"github.com/siddharthbaleja7/fb-messenger/internal/conversation/model"
	msgMocks "github.com/siddharthbaleja7/fb-messenger/internal/message/mocks"
	msgModel "github.com/siddharthbaleja7/fb-messenger/internal/message/model"
	userMocks "github.com/siddharthbaleja7/fb-messenger/internal/user/mocks"
	userModel "github.com/siddharthbaleja7/fb-messenger/internal/user/model"
	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"
	"github.com/siddharthbaleja7/fb-messenger/pkg/logger"
)

func newTestUsecase(t *testing.T) (*ConversationUsecase, *convMocks.MockConversationRepository, *userMocks.MockUserRepository, *msgMocks.MockMessageRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	convRepo := convMocks.NewMockConversationRepository(ctrl)
	userRepo := userMocks.NewMockUserRepository(ctrl)
	msgRepo := msgMocks.NewMockMessageRepository(ctrl)

	cfg := config.Config{
		Pagination: config.Pagination{DefaultLimit: 20, MaxLimit: 100},
	}
	log, err := logger.NewLogger(&cfg)
	require.NoError(t, err)

	return NewConversationUsecase(convRepo, userRepo, msgRepo, *log, cfg), convRepo, userRepo, msgRepo
}

func TestConversationUsecase_ListUserConversations(t *testing.T) {
	caller := &userModel.User{ID: uuid.New(), Index: 0, Username: "user1"}
	other := &userModel.User{ID: uuid.New(), Index: 1, Username: "user2"}
	conversationID := uuid.New()

	t.Run("happy path - feed rows become external-index DTOs", func(t *testing.T) {
		uc, convRepo, userRepo, _ := newTestUsecase(t)
		updatedAt := time.Now().UTC()

		userRepo.EXPECT().GetUserByIndex(gomock.Any(), 0).Return(caller, nil)
		convRepo.EXPECT().ListFeedForUser(gomock.Any(), caller.ID, 1, 20).Return([]model.FeedEntry{
			{
				UserID:            caller.ID,
				ConversationID:    conversationID,
				LastUpdatedAt:     updatedAt,
				LastMessage:       "hi",
				OtherParticipants: []uuid.UUID{other.ID},
			},
		}, nil)
		convRepo.EXPECT().GetConversationIndex(gomock.Any(), conversationID).Return(3, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), other.ID).Return(other, nil)

		page, err := uc.ListUserConversations(context.Background(), 0, 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)

		dto := page.Data[0]
		assert.Equal(t, 3, dto.ID)
		assert.Equal(t, 0, dto.User1ID)
		assert.Equal(t, 1, dto.User2ID)
		assert.Equal(t, "hi", dto.LastMessageContent)
		assert.Equal(t, updatedAt, dto.LastMessageAt)
		assert.Equal(t, 1, page.Total)
	})

	t.Run("unknown user index is not found", func(t *testing.T) {
		uc, _, userRepo, _ := newTestUsecase(t)

		userRepo.EXPECT().GetUserByIndex(gomock.Any(), 42).Return(nil, appErrors.ErrUserNotFound)

		_, err := uc.ListUserConversations(context.Background(), 42, 1, 20)
		assert.True(t, appErrors.IsNotFound(err))
	})

	t.Run("a row with an unresolvable conversation is skipped", func(t *testing.T) {
		uc, convRepo, userRepo, _ := newTestUsecase(t)
		orphanConvID := uuid.New()

		userRepo.EXPECT().GetUserByIndex(gomock.Any(), 0).Return(caller, nil)
		convRepo.EXPECT().ListFeedForUser(gomock.Any(), caller.ID, 1, 20).Return([]model.FeedEntry{
			{UserID: caller.ID, ConversationID: orphanConvID, LastMessage: "lost"},
			{UserID: caller.ID, ConversationID: conversationID, LastMessage: "hi", OtherParticipants: []uuid.UUID{other.ID}},
		}, nil)
		convRepo.EXPECT().GetConversationIndex(gomock.Any(), orphanConvID).
			Return(0, appErrors.ErrConversationNotFound)
		convRepo.EXPECT().GetConversationIndex(gomock.Any(), conversationID).Return(3, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), other.ID).Return(other, nil)

		page, err := uc.ListUserConversations(context.Background(), 0, 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "hi", page.Data[0].LastMessageContent)
	})

	t.Run("empty feed returns an empty page", func(t *testing.T) {
		uc, convRepo, userRepo, _ := newTestUsecase(t)

		userRepo.EXPECT().GetUserByIndex(gomock.Any(), 0).Return(caller, nil)
		convRepo.EXPECT().ListFeedForUser(gomock.Any(), caller.ID, 1, 20).Return(nil, nil)

		page, err := uc.ListUserConversations(context.Background(), 0, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Total)
		assert.Empty(t, page.Data)
	})
}

func TestConversationUsecase_GetConversation(t *testing.T) {
	user1 := &userModel.User{ID: uuid.New(), Index: 0}
	user2 := &userModel.User{ID: uuid.New(), Index: 1}
	conversationID := uuid.New()

	t.Run("happy path with latest message snapshot", func(t *testing.T) {
		uc, convRepo, userRepo, msgRepo := newTestUsecase(t)
		sentAt := time.Now().UTC()

		convRepo.EXPECT().GetConversationByIndex(gomock.Any(), 3).Return(conversationID, nil)
		convRepo.EXPECT().GetParticipants(gomock.Any(), conversationID).
			Return([]model.Participant{{UserID: user1.ID}, {UserID: user2.ID}}, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), user1.ID).Return(user1, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), user2.ID).Return(user2, nil)
		msgRepo.EXPECT().GetLastMessage(gomock.Any(), conversationID).Return(&msgModel.Message{
			Content:   "latest",
			Timestamp: sentAt,
		}, nil)

		dto, err := uc.GetConversation(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, 3, dto.ID)
		assert.Equal(t, 0, dto.User1ID)
		assert.Equal(t, 1, dto.User2ID)
		assert.Equal(t, "latest", dto.LastMessageContent)
		assert.Equal(t, sentAt, dto.LastMessageAt)
	})

	t.Run("empty log leaves the snapshot zeroed", func(t *testing.T) {
		uc, convRepo, userRepo, msgRepo := newTestUsecase(t)

		convRepo.EXPECT().GetConversationByIndex(gomock.Any(), 3).Return(conversationID, nil)
		convRepo.EXPECT().GetParticipants(gomock.Any(), conversationID).
			Return([]model.Participant{{UserID: user1.ID}, {UserID: user2.ID}}, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), user1.ID).Return(user1, nil)
		userRepo.EXPECT().GetUserByID(gomock.Any(), user2.ID).Return(user2, nil)
		msgRepo.EXPECT().GetLastMessage(gomock.Any(), conversationID).Return(nil, nil)

		dto, err := uc.GetConversation(context.Background(), 3)
		require.NoError(t, err)
		assert.Empty(t, dto.LastMessageContent)
		assert.True(t, dto.LastMessageAt.IsZero())
	})

	t.Run("unknown index is not found", func(t *testing.T) {
		uc, convRepo, _, _ := newTestUsecase(t)

		convRepo.EXPECT().GetConversationByIndex(gomock.Any(), 99).
			Return(uuid.Nil, appErrors.ErrConversationNotFound)

		_, err := uc.GetConversation(context.Background(), 99)
		assert.True(t, appErrors.IsNotFound(err))
	})
}
