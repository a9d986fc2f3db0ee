package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(sequence, created_at, batch_id, exercise_index, kind, statement, selected, correct_value, correct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixNano(), data.BatchID, data.Index, data.Kind,
		data.Statement, data.Selected, data.CorrectValue, data.Correct,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error) {
	var (
		where []string
		args  []any
	)
	if opts.After > 0 {
		where = append(where, "sequence > ?")
		args = append(args, opts.After)
	}
	if opts.BatchID != "" {
		where = append(where, "batch_id = ?")
		args = append(args, opts.BatchID)
	}

	q := `SELECT sequence, created_at, batch_id, exercise_index, kind, statement,
		selected, correct_value, correct FROM answer_events`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEvent
	for rows.Next() {
		var (
			ev AnswerEvent
			ts int64
		)
		err := rows.Scan(&ev.Sequence, &ts, &ev.BatchID, &ev.Index, &ev.Kind, &ev.Statement,
			&ev.Selected, &ev.CorrectValue, &ev.Correct)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		ev.Timestamp = time.Unix(0, ts)
		out = append(out, ev)
	}
	return out, rows.Err()
}
