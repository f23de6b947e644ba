package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Messenger data-layer metrics
var (
	// Messages appended to the log
	MessagesSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messenger",
			Subsystem: "messages",
			Name:      "sent_total",
			Help:      "Total messages appended to the message log",
		},
	)

	// Feed fan-out writes that failed after a durable message append
	FeedFanoutFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "messenger",
			Subsystem: "feed",
			Name:      "fanout_failures_total",
			Help:      "Conversation feed upserts that failed after the message row was stored",
		},
	)

	// Rows skipped by lossy-tolerant reads (unresolvable ids inside a page)
	SkippedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "messenger",
			Subsystem: "reads",
			Name:      "skipped_rows_total",
			Help:      "Rows dropped from a page because their identifiers did not resolve",
		},
		[]string{"source"},
	)
)
