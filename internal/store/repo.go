package store

import (
	"context"
	"database/sql"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	BatchID string // only events of this batch ("" = all)
}

// BatchEventData captures a newly generated batch.
type BatchEventData struct {
	BatchID string
	Count   int
}

// AnswerEventData captures the first check of one exercise.
type AnswerEventData struct {
	BatchID      string
	Index        int
	Kind         string
	Statement    string
	Selected     float64
	CorrectValue float64
	Correct      bool
}

// AnswerEvent is a recorded answer with its position in the global sequence.
type AnswerEvent struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// BatchSummary aggregates the answers recorded for one batch.
type BatchSummary struct {
	BatchID   string
	Sequence  int64
	Timestamp time.Time
	Count     int
	Answered  int
	Correct   int
}

// EventRepo provides append and query access to quiz events.
type EventRepo interface {
	// AppendBatchEvent records that a batch was generated.
	AppendBatchEvent(ctx context.Context, data BatchEventData) error

	// AppendAnswerEvent records a checked answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// BatchSummaries returns one summary per batch, newest first.
	BatchSummaries(ctx context.Context) ([]BatchSummary, error)
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}
