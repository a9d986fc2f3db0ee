package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendBatchEvent(ctx context.Context, data BatchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO batch_events (sequence, created_at, batch_id, count) VALUES (?, ?, ?, ?)`,
		seqNum, time.Now().UnixNano(), data.BatchID, data.Count,
	)
	if err != nil {
		return fmt.Errorf("save batch event: %w", err)
	}
	return nil
}

func (r *eventRepo) BatchSummaries(ctx context.Context) ([]BatchSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.batch_id, b.sequence, b.created_at, b.count,
			COUNT(a.id), COALESCE(SUM(a.correct), 0)
		FROM batch_events b
		LEFT JOIN answer_events a ON a.batch_id = b.batch_id
		GROUP BY b.id
		ORDER BY b.sequence DESC`)
	if err != nil {
		return nil, fmt.Errorf("query batch summaries: %w", err)
	}
	defer rows.Close()

	var out []BatchSummary
	for rows.Next() {
		var (
			bs BatchSummary
			ts int64
		)
		if err := rows.Scan(&bs.BatchID, &bs.Sequence, &ts, &bs.Count, &bs.Answered, &bs.Correct); err != nil {
			return nil, fmt.Errorf("scan batch summary: %w", err)
		}
		bs.Timestamp = time.Unix(0, ts)
		out = append(out, bs)
	}
	return out, rows.Err()
}
