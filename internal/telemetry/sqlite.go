package telemetry

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"burnscar/internal/sims/wildfire"
)

const createFireEvents = `CREATE TABLE IF NOT EXISTS fire_events (
	run_id   TEXT    NOT NULL,
	step     INTEGER NOT NULL,
	time     REAL    NOT NULL,
	center   INTEGER NOT NULL,
	x        REAL    NOT NULL,
	y        REAL    NOT NULL,
	radius   REAL    NOT NULL,
	affected INTEGER NOT NULL
)`

const insertFireEvent = `INSERT INTO fire_events
	(run_id, step, time, center, x, y, radius, affected)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteRecorder buffers fire events and writes them to a SQLite database in
// batches. It is not safe for concurrent use.
type SQLiteRecorder struct {
	*sql.DB
	statement *sql.Stmt

	runID     string
	path      string
	pending   []wildfire.FireEvent
	batchSize int
	err       error
	closed    bool
}

// NewSQLiteRecorder opens (or creates) the database at path. An empty path
// creates a new file named after the run id. Pending events are flushed
// when the process exits through atexit.Exit.
func NewSQLiteRecorder(path string) (*SQLiteRecorder, error) {
	r := &SQLiteRecorder{
		runID:     xid.New().String(),
		batchSize: 1000,
	}
	if path == "" {
		path = "burnscar_" + r.runID + ".sqlite3"
	}
	r.path = path

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r.DB = db

	if _, err := db.Exec(createFireEvents); err != nil {
		db.Close()
		return nil, fmt.Errorf("create fire_events: %w", err)
	}
	r.statement, err = db.Prepare(insertFireEvent)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}

	atexit.Register(func() {
		if err := r.Close(); err != nil {
			log.Printf("telemetry: %v", err)
		}
	})

	return r, nil
}

// RunID identifies the rows written by this recorder.
func (r *SQLiteRecorder) RunID() string { return r.runID }

// Path returns the database file location.
func (r *SQLiteRecorder) Path() string { return r.path }

// SetBatchSize changes how many events are buffered before a write.
func (r *SQLiteRecorder) SetBatchSize(n int) {
	if n < 1 {
		n = 1
	}
	r.batchSize = n
}

// RecordFire buffers ev and writes the buffer once it is full. Write errors
// are kept and returned by the next Flush.
func (r *SQLiteRecorder) RecordFire(ev wildfire.FireEvent) {
	if r.closed {
		return
	}
	r.pending = append(r.pending, ev)
	if len(r.pending) >= r.batchSize {
		if err := r.flush(); err != nil && r.err == nil {
			r.err = err
		}
	}
}

// Flush writes all buffered events in a single transaction.
func (r *SQLiteRecorder) Flush() error {
	if r.closed {
		return nil
	}
	err := r.flush()
	if r.err != nil {
		err = errors.Join(r.err, err)
		r.err = nil
	}
	return err
}

func (r *SQLiteRecorder) flush() error {
	if len(r.pending) == 0 {
		return nil
	}

	tx, err := r.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	stmt := tx.Stmt(r.statement)
	for _, ev := range r.pending {
		_, err := stmt.Exec(r.runID, ev.Step, ev.Time, ev.Center, ev.X, ev.Y, ev.Radius, ev.Affected)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert fire at step %d: %w", ev.Step, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	r.pending = r.pending[:0]
	return nil
}

// Close flushes pending events and closes the database. Calling it more
// than once is a no-op.
func (r *SQLiteRecorder) Close() error {
	if r.closed {
		return nil
	}
	err := r.Flush()
	r.closed = true
	return errors.Join(err, r.statement.Close(), r.DB.Close())
}

// ReadFireEvents loads the events written under runID, ordered by step.
func ReadFireEvents(db *sql.DB, runID string) ([]wildfire.FireEvent, error) {
	rows, err := db.Query(`SELECT step, time, center, x, y, radius, affected
		FROM fire_events WHERE run_id = ? ORDER BY step`, runID)
	if err != nil {
		return nil, fmt.Errorf("query fire_events: %w", err)
	}
	defer rows.Close()

	var events []wildfire.FireEvent
	for rows.Next() {
		var ev wildfire.FireEvent
		if err := rows.Scan(&ev.Step, &ev.Time, &ev.Center, &ev.X, &ev.Y, &ev.Radius, &ev.Affected); err != nil {
			return nil, fmt.Errorf("scan fire event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
