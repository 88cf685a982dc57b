package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event kinds recorded in the solve-event log.
const (
	EventKindSolved    = "solved"
	EventKindAttempted = "attempted"
)

// SolveEventData captures one solve or attempt event.
type SolveEventData struct {
	ProblemID string
	Kind      string
	At        time.Time
}

// DayCount is an aggregate of events on one calendar day.
type DayCount struct {
	Date  string
	Count int
}

// EventRepo provides append access to the solve-event log plus the
// aggregates the stats surface needs.
type EventRepo interface {
	// Append records a solve or attempt event.
	Append(ctx context.Context, data SolveEventData) error

	// CountsByDay returns per-day solve counts for events in [from, to].
	CountsByDay(ctx context.Context, from, to time.Time) ([]DayCount, error)

	// TotalSolves returns the number of solved events recorded.
	TotalSolves(ctx context.Context) (int, error)
}

type eventRepo struct {
	db *sql.DB
}

// eventTime renders a timestamp in a form SQLite's date functions parse.
// Binding a time.Time directly would store Go's default String() format,
// which date() cannot read.
func eventTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (r *eventRepo) Append(ctx context.Context, data SolveEventData) error {
	at := data.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO solve_events (id, problem_id, kind, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), data.ProblemID, data.Kind, eventTime(at))
	if err != nil {
		return fmt.Errorf("append solve event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountsByDay(ctx context.Context, from, to time.Time) ([]DayCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date(created_at), COUNT(*)
		 FROM solve_events
		 WHERE kind = ? AND created_at >= ? AND created_at <= ?
		 GROUP BY date(created_at)
		 ORDER BY date(created_at)`,
		EventKindSolved, eventTime(from), eventTime(to))
	if err != nil {
		return nil, fmt.Errorf("query counts by day: %w", err)
	}
	defer rows.Close()

	var counts []DayCount
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan day count: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

func (r *eventRepo) TotalSolves(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM solve_events WHERE kind = ?`, EventKindSolved).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count solves: %w", err)
	}
	return n, nil
}
