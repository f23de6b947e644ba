package db

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/siddharthbaleja7/fb-messenger/config"
	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"
)

// NewSession opens the process-wide Cassandra session. Every query issued
// through it carries the configured timeout; retries are left to the caller,
// the driver performs none.
func NewSession(cfg *config.Config) (*gocql.Session, error) {
	cluster := NewCluster(cfg)
	cluster.Keyspace = cfg.Cassandra.Keyspace

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, errors.Wrap(err, "db.NewSession.CreateSession")
	}
	return session, nil
}

// NewCluster builds the cluster config without binding a keyspace, so the
// bootstrap can connect before the keyspace exists.
func NewCluster(cfg *config.Config) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(cfg.Cassandra.Hosts...)
	cluster.Port = cfg.Cassandra.Port
	cluster.Timeout = cfg.Cassandra.Timeout
	cluster.ConnectTimeout = cfg.Cassandra.ConnectTimeout
	cluster.Consistency = parseConsistency(cfg.Cassandra.Consistency)
	return cluster
}

func parseConsistency(raw string) gocql.Consistency {
	if raw == "" {
		return gocql.Quorum
	}
	c, err := gocql.ParseConsistencyWrapper(raw)
	if err != nil {
		return gocql.Quorum
	}
	return c
}

// TranslateError maps a store error onto the application taxonomy. Not-found
// handling stays in the repositories (they know which sentinel applies); this
// covers the transient/unknown split.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if isUnavailable(err) {
		return appErrors.ErrStoreUnavailable(err)
	}
	return appErrors.Wrap(appErrors.CodeInternal, "store operation failed", err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gocql.ErrTimeoutNoResponse) ||
		errors.Is(err, gocql.ErrConnectionClosed) ||
		errors.Is(err, gocql.ErrNoConnections) {
		return true
	}
	var readTimeout *gocql.RequestErrReadTimeout
	var writeTimeout *gocql.RequestErrWriteTimeout
	var unavailable *gocql.RequestErrUnavailable
	return errors.As(err, &readTimeout) ||
		errors.As(err, &writeTimeout) ||
		errors.As(err, &unavailable)
}
