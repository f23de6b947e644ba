package db

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
)

// Every access pattern gets its own purpose-built partition; the schema is the
// contract, queries never filter outside their partition on the hot path.
var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS messages_by_conversation (
		conversation_id UUID,
		timestamp TIMESTAMP,
		message_id UUID,
		sender_id UUID,
		receiver_id UUID,
		content TEXT,
		PRIMARY KEY ((conversation_id), timestamp, message_id)
	) WITH CLUSTERING ORDER BY (timestamp DESC, message_id ASC)`,

	`CREATE TABLE IF NOT EXISTS conversations_by_user (
		user_id UUID,
		conversation_id UUID,
		last_updated_at TIMESTAMP,
		last_message TEXT,
		other_participants SET<UUID>,
		PRIMARY KEY ((user_id), last_updated_at, conversation_id)
	) WITH CLUSTERING ORDER BY (last_updated_at DESC, conversation_id ASC)`,

	`CREATE TABLE IF NOT EXISTS conversation_participants (
		conversation_id UUID,
		user_id UUID,
		joined_at TIMESTAMP,
		PRIMARY KEY ((conversation_id), user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS user_details (
		user_id UUID,
		user_index INT,
		username TEXT,
		full_name TEXT,
		email TEXT,
		PRIMARY KEY (user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS conversation_metadata (
		conversation_id UUID,
		conversation_index INT,
		PRIMARY KEY (conversation_id)
	)`,

	`CREATE TABLE IF NOT EXISTS index_counters (
		name TEXT,
		value INT,
		PRIMARY KEY (name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_user_index ON user_details (user_index)`,

	`CREATE INDEX IF NOT EXISTS idx_conversation_index ON conversation_metadata (conversation_index)`,
}

func KeyspaceCQL(name string, replicationFactor int) string {
	return fmt.Sprintf(`CREATE KEYSPACE IF NOT EXISTS %s
		WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		name, replicationFactor)
}

// CreateTables provisions all tables and secondary indexes in the session's
// keyspace. Idempotent.
func CreateTables(ctx context.Context, session *gocql.Session) error {
	for _, stmt := range tableStatements {
		if err := session.Query(stmt).WithContext(ctx).Exec(); err != nil {
			return errors.Wrap(err, "db.CreateTables.Exec")
		}
	}
	return nil
}
