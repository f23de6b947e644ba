package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gocql/gocql"

	"github.com/siddharthbaleja7/fb-messenger/config"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
	"github.com/siddharthbaleja7/fb-messenger/pkg/logger"
)

const (
	connectAttempts   = 10
	connectRetryDelay = 5 * time.Second
)

// Idempotent schema bootstrap: keyspace, tables, secondary indexes. Safe to
// run on every deploy; the runtime assumes it already happened.
func main() {
	configName := flag.String("config", "config", "config file name (without extension)")
	replication := flag.Int("replication-factor", 1, "keyspace replication factor")
	flag.Parse()

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

	ctx := context.Background()

	session, err := waitForCassandra(cfg, *log)
	if err != nil {
		log.Error("could not connect to cassandra", "err", err)
		os.Exit(1)
	}

	if err := session.Query(db.KeyspaceCQL(cfg.Cassandra.Keyspace, *replication)).WithContext(ctx).Exec(); err != nil {
		log.Error("failed to create keyspace", "keyspace", cfg.Cassandra.Keyspace, "err", err)
		os.Exit(1)
	}
	log.Info("keyspace ready", "keyspace", cfg.Cassandra.Keyspace)
	session.Close()

	session, err = db.NewSession(cfg)
	if err != nil {
		log.Error("failed to reconnect with keyspace", "err", err)
		os.Exit(1)
	}
	defer session.Close()

	if err := db.CreateTables(ctx, session); err != nil {
		log.Error("failed to create tables", "err", err)
		os.Exit(1)
	}
	log.Info("tables and indexes created")
}

func waitForCassandra(cfg *config.Config, log logger.Logger) (*gocql.Session, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		session, err := db.NewCluster(cfg).CreateSession()
		if err == nil {
			log.Info("cassandra is ready", "attempt", attempt)
			return session, nil
		}
		lastErr = err
		log.Warn("cassandra not ready yet", "attempt", attempt, "err", err)
		time.Sleep(connectRetryDelay)
	}
	return nil, lastErr
}
