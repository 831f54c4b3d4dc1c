package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrRunNotFound is returned by ReadRun for unknown run IDs.
var ErrRunNotFound = errors.New("run not found")

// ReadRun returns the run with the given ID and its sub-circuit records.
// Sub-circuit records are ordered deterministically by (root, end_module).
func (s *Store) ReadRun(ctx context.Context, id string) (Run, []SubcircuitRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, wiring_digest, mode, presses, low_total, high_total, answer
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, nil, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
		}
		return Run{}, nil, fmt.Errorf("read run %s: %w", id, err)
	}

	subs, err := s.readSubcircuits(ctx, id)
	if err != nil {
		return Run{}, nil, err
	}
	return run, subs, nil
}

// ReadRuns returns all runs, newest first (created_at, then id, both
// descending; IDs are UUIDv7 so the tiebreak stays chronological).
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, wiring_digest, mode, presses, low_total, high_total, answer
		FROM runs
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (s *Store) readSubcircuits(ctx context.Context, runID string) ([]SubcircuitRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, root, end_module, cycle_start, cycle_end, period
		FROM subcircuits
		WHERE run_id = ?
		ORDER BY root ASC, end_module ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query subcircuits: %w", err)
	}
	defer rows.Close()

	var subs []SubcircuitRecord
	for rows.Next() {
		var sc SubcircuitRecord
		var cycleStart, cycleEnd, period int64
		if err := rows.Scan(&sc.RunID, &sc.Root, &sc.End, &cycleStart, &cycleEnd, &period); err != nil {
			return nil, fmt.Errorf("scan subcircuit: %w", err)
		}
		sc.CycleStart = uint64(cycleStart)
		sc.CycleEnd = uint64(cycleEnd)
		sc.Period = uint64(period)
		subs = append(subs, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subcircuits: %w", err)
	}
	return subs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var createdAt string
	var presses, low, high, answer int64

	err := row.Scan(&run.ID, &createdAt, &run.WiringDigest, &run.Mode,
		&presses, &low, &high, &answer)
	if err != nil {
		return Run{}, err
	}

	run.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	run.Presses = uint64(presses)
	run.LowTotal = uint64(low)
	run.HighTotal = uint64(high)
	run.Answer = uint64(answer)
	return run, nil
}
