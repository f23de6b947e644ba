package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/siddharthbaleja7/fb-messenger/config"
	convModel "github.com/siddharthbaleja7/fb-messenger/internal/conversation/model"
	convRepository "github.com/siddharthbaleja7/fb-messenger/internal/conversation/repository"
	msgModel "github.com/siddharthbaleja7/fb-messenger/internal/message/model"
	msgRepository "github.com/siddharthbaleja7/fb-messenger/internal/message/repository"
	models "github.com/siddharthbaleja7/fb-messenger/internal/user/model"
	userRepository "github.com/siddharthbaleja7/fb-messenger/internal/user/repository"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
	"github.com/siddharthbaleja7/fb-messenger/pkg/logger"
)

// Seeds the keyspace with users, conversations and messages so the read paths
// have something to page through. Not part of the runtime contract.
func main() {
	configName := flag.String("config", "config", "config file name (without extension)")
	numUsers := flag.Int("users", 10, "number of users to create")
	numConversations := flag.Int("conversations", 15, "number of conversations to create")
	maxMessages := flag.Int("max-messages", 50, "max messages per conversation")
	flag.Parse()
	if *maxMessages < 5 {
		*maxMessages = 5
	}

	v, err := config.LoadConfig(*configName)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		os.Stderr.WriteString("failed to parse config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, err := logger.NewLogger(cfg)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	session, err := db.NewSession(cfg)
	if err != nil {
		log.Error("failed to connect", "err", err)
		os.Exit(1)
	}
	defer session.Close()

	ctx := context.Background()
	userRepo := userRepository.NewUserRepository(session)
	convRepo := convRepository.NewConversationRepository(session)
	msgRepo := msgRepository.NewMessageRepository(session)

	users := make([]*models.User, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		u := &models.User{
			Username: fmt.Sprintf("user%d", i+1),
			FullName: fmt.Sprintf("Test User %d", i+1),
			Email:    fmt.Sprintf("user%d@example.com", i+1),
		}
		if err := userRepo.CreateUser(ctx, u); err != nil {
			log.Error("failed to create user", "username", u.Username, "err", err)
			os.Exit(1)
		}
		users = append(users, u)
		log.Info("created user", "index", u.Index, "id", u.ID)
	}

	for i := 0; i < *numConversations; i++ {
		participants := pickParticipants(users, 2+rand.Intn(3))
		conversationID, err := convRepo.CreateOrGetConversation(ctx, participants)
		if err != nil {
			log.Error("failed to create conversation", "err", err)
			os.Exit(1)
		}

		numMessages := 5 + rand.Intn(*maxMessages-4)
		timestamp := time.Now().UTC().Add(-time.Duration(numMessages) * time.Minute)
		var lastMsg *msgModel.Message
		for j := 0; j < numMessages; j++ {
			sender, receiver := pickPair(participants)
			timestamp = timestamp.Add(time.Duration(10+rand.Intn(51)) * time.Second)
			msg := &msgModel.Message{
				ID:             uuid.New(),
				ConversationID: conversationID,
				SenderID:       sender,
				ReceiverID:     receiver,
				Content:        fmt.Sprintf("Message %d in conversation %d", j+1, i+1),
				Timestamp:      timestamp,
			}
			if err := msgRepo.CreateMessage(ctx, msg); err != nil {
				log.Error("failed to create message", "err", err)
				os.Exit(1)
			}
			lastMsg = msg
		}

		for _, userID := range participants {
			entry := &convModel.FeedEntry{
				UserID:            userID,
				ConversationID:    conversationID,
				LastUpdatedAt:     lastMsg.Timestamp,
				LastMessage:       lastMsg.Content,
				OtherParticipants: without(participants, userID),
			}
			if err := convRepo.UpsertFeedEntry(ctx, entry); err != nil {
				log.Error("failed to upsert feed entry", "user", userID, "err", err)
				os.Exit(1)
			}
		}
		log.Info("created conversation", "id", conversationID, "participants", len(participants), "messages", numMessages)
	}

	log.Info("seed complete", "users", *numUsers, "conversations", *numConversations)
}

func pickParticipants(users []*models.User, n int) []uuid.UUID {
	if n > len(users) {
		n = len(users)
	}
	perm := rand.Perm(len(users))
	out := make([]uuid.UUID, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, users[idx].ID)
	}
	return out
}

func pickPair(participants []uuid.UUID) (uuid.UUID, uuid.UUID) {
	sender := participants[rand.Intn(len(participants))]
	for {
		receiver := participants[rand.Intn(len(participants))]
		if receiver != sender {
			return sender, receiver
		}
	}
}

func without(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids)-1)
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
