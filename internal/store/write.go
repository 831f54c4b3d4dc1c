package store

import (
	"context"
	"fmt"
	"time"
)

// WriteRun inserts a run and its sub-circuit records in one transaction.
// Uses ON CONFLICT DO NOTHING for idempotency: rewriting an existing run
// ID is a silent no-op, other constraint violations still fail.
func (s *Store) WriteRun(ctx context.Context, run Run, subs []SubcircuitRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, wiring_digest, mode, presses, low_total, high_total, answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.WiringDigest,
		run.Mode,
		int64(run.Presses),
		int64(run.LowTotal),
		int64(run.HighTotal),
		int64(run.Answer),
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	for _, sc := range subs {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO subcircuits
			(run_id, root, end_module, cycle_start, cycle_end, period)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT DO NOTHING
		`,
			sc.RunID,
			sc.Root,
			sc.End,
			int64(sc.CycleStart),
			int64(sc.CycleEnd),
			int64(sc.Period),
		)
		if err != nil {
			return fmt.Errorf("write subcircuit %s/%s: %w", sc.Root, sc.End, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}
