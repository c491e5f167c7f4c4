package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"
)

// sequenceCounter hands out the global monotonic sequence shared by every
// event table, so vote events and quiz results can be ordered against each
// other. The mutex serializes within the process; the RETURNING clause makes
// the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendVoteEvent(ctx context.Context, data VoteEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO vote_events (sequence, timestamp, action, count, voted) VALUES (?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.Action, data.Count, boolToInt(data.Voted),
	)
	if err != nil {
		return fmt.Errorf("save vote event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (sequence, timestamp, session_id, answers, outcome, city, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixMilli(), data.SessionID, data.Answers, data.Outcome, data.City, data.Score,
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryVoteEvents(ctx context.Context, opts QueryOpts) ([]VoteEvent, error) {
	where, args := opts.filter()
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, action, count, voted FROM vote_events`+where+
			` ORDER BY sequence DESC`+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query vote events: %w", err)
	}
	defer rows.Close()

	var out []VoteEvent
	for rows.Next() {
		var (
			ev    VoteEvent
			ts    int64
			voted int
		)
		if err := rows.Scan(&ev.Sequence, &ts, &ev.Action, &ev.Count, &voted); err != nil {
			return nil, fmt.Errorf("scan vote event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ts)
		ev.Voted = voted != 0
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResult, error) {
	where, args := opts.filter()
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, session_id, answers, outcome, city, score FROM quiz_results`+where+
			` ORDER BY sequence DESC`+opts.limit(),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		var (
			res QuizResult
			ts  int64
		)
		if err := rows.Scan(&res.Sequence, &ts, &res.SessionID, &res.Answers, &res.Outcome, &res.City, &res.Score); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		res.Timestamp = time.UnixMilli(ts)
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *eventRepo) OutcomeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT outcome, COUNT(*) FROM quiz_results GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("query outcome counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			outcome string
			n       int
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan outcome count: %w", err)
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// filter renders the WHERE clause shared by every event table.
func (o QueryOpts) filter() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if o.After > 0 {
		conds = append(conds, "sequence > ?")
		args = append(args, o.After)
	}
	if o.Before > 0 {
		conds = append(conds, "sequence < ?")
		args = append(args, o.Before)
	}
	if !o.From.IsZero() {
		conds = append(conds, "timestamp >= ?")
		args = append(args, o.From.UnixMilli())
	}
	if !o.To.IsZero() {
		conds = append(conds, "timestamp <= ?")
		args = append(args, o.To.UnixMilli())
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (o QueryOpts) limit() string {
	if o.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf(" LIMIT %d", o.Limit)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
