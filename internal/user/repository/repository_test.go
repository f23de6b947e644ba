package repository

import (
	"context"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"

	"github.com/gocql/gocql"

	"testing"

	models "github.com/siddharthbaleja7/fb-messenger/internal/user/model"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"

	"github.com/google/uuid"
)

var testSession *gocql.Session

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := cassandra.Run(ctx, "cassandra:4.1")
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	hostPort, err := container.ConnectionHost(ctx)
	if err != nil {
		log.Fatalf("failed to get connection host: %v", err)
	}
	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		log.Fatalf("failed to split host/port: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	cluster := gocql.NewCluster(host)
	cluster.Port = port
	cluster.Timeout = 30 * time.Second
	cluster.Consistency = gocql.Quorum

	setupSession, err := cluster.CreateSession()
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	if err := setupSession.Query(db.KeyspaceCQL("messenger_test", 1)).Exec(); err != nil {
		log.Fatalf("failed to create keyspace: %v", err)
	}
	setupSession.Close()

	cluster.Keyspace = "messenger_test"
	testSession, err = cluster.CreateSession()
	if err != nil {
		log.Fatalf("failed to connect to keyspace: %v", err)
	}
	if err := db.CreateTables(ctx, testSession); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}

	code := m.Run()

	testSession.Close()

	os.Exit(code)
}

func Test_CreateUser_AssignsDenseIndexes(t *testing.T) {
	repo := NewUserRepository(testSession)
	ctx := context.Background()

	u1 := &models.User{Username: "user1", FullName: "Test User 1", Email: "user1@example.com"}
	u2 := &models.User{Username: "user2", FullName: "Test User 2", Email: "user2@example.com"}

	require.NoError(t, repo.CreateUser(ctx, u1))
	require.NoError(t, repo.CreateUser(ctx, u2))

	assert.NotEqual(t, uuid.Nil, u1.ID)
	assert.NotEqual(t, uuid.Nil, u2.ID)
	assert.Equal(t, u1.Index+1, u2.Index)
}

func Test_IdentityRoundTrip(t *testing.T) {
	repo := NewUserRepository(testSession)
	ctx := context.Background()

	u := &models.User{Username: "roundtrip", FullName: "Round Trip", Email: "rt@example.com"}
	require.NoError(t, repo.CreateUser(ctx, u))

	byIndex, err := repo.GetUserByIndex(ctx, u.Index)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byIndex.ID)

	byID, err := repo.GetUserByID(ctx, byIndex.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Index, byID.Index)
	assert.Equal(t, "roundtrip", byID.Username)
	assert.Equal(t, "rt@example.com", byID.Email)
}

func Test_GetUser_NotFound(t *testing.T) {
	repo := NewUserRepository(testSession)
	ctx := context.Background()

	_, err := repo.GetUserByID(ctx, uuid.New())
	assert.True(t, appErrors.IsNotFound(err))

	_, err = repo.GetUserByIndex(ctx, 1<<30)
	assert.True(t, appErrors.IsNotFound(err))
}
