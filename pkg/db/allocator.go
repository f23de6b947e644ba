package db

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"
)

const maxCASAttempts = 10

// IndexAllocator hands out dense integer indexes from a named counter row.
// Cassandra has no sequences, so allocation is a lightweight-transaction
// compare-and-set loop; a lost race retries with the fresh value.
type IndexAllocator struct {
	session *gocql.Session
	name    string
	start   int
}

func NewIndexAllocator(session *gocql.Session, name string, start int) *IndexAllocator {
	return &IndexAllocator{session: session, name: name, start: start}
}

// Next returns the next unused index. An index returned here may still be
// wasted upstream if the caller loses its own insert race; the resulting gap
// is accepted, the bijection only requires that no index maps twice.
func (a *IndexAllocator) Next(ctx context.Context) (int, error) {
	for attempt := 0; attempt < maxCASAttempts; attempt++ {
		var current int
		err := a.session.Query(
			`SELECT value FROM index_counters WHERE name = ?`, a.name,
		).WithContext(ctx).Scan(&current)

		if err == gocql.ErrNotFound {
			if err := a.seed(ctx); err != nil {
				return 0, err
			}
			continue
		}
		if err != nil {
			return 0, TranslateError(errors.Wrap(err, "indexAllocator.Next.Scan"))
		}

		applied, err := a.session.Query(
			`UPDATE index_counters SET value = ? WHERE name = ? IF value = ?`,
			current+1, a.name, current,
		).WithContext(ctx).MapScanCAS(map[string]interface{}{})
		if err != nil {
			return 0, TranslateError(errors.Wrap(err, "indexAllocator.Next.CAS"))
		}
		if applied {
			return current, nil
		}
	}
	return 0, appErrors.ErrIndexCounterExhausted
}

func (a *IndexAllocator) seed(ctx context.Context) error {
	_, err := a.session.Query(
		`INSERT INTO index_counters (name, value) VALUES (?, ?) IF NOT EXISTS`,
		a.name, a.start,
	).WithContext(ctx).MapScanCAS(map[string]interface{}{})
	if err != nil {
		return TranslateError(errors.Wrap(err, "indexAllocator.seed"))
	}
	return nil
}
