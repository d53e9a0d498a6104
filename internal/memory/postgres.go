package memory

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	_ "github.com/lib/pq"
)

// PostgresStore keeps the record in a single-row JSONB table and appends a
// row per run to workflow_runs for history. Schema lives under migrations/.
type PostgresStore struct {
	DB *sql.DB

	mu     sync.Mutex
	rec    Record
	logger *log.Logger
}

// NewPostgres connects with the given DSN, verifies the connection and
// loads the persisted record. No row yet means a fresh idle record.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return NewPostgresWithDB(ctx, db)
}

// NewPostgresWithDB wraps an existing connection pool.
func NewPostgresWithDB(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	s := &PostgresStore{
		DB:     db,
		rec:    emptyRecord(),
		logger: log.New(log.Writer(), "[MEMORY] ", log.LstdFlags),
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) load(ctx context.Context) error {
	var raw []byte
	err := s.DB.QueryRowContext(ctx, `SELECT record FROM workflow_memory WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load memory record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Printf("stored memory record unreadable, starting fresh: %v", err)
		return nil
	}
	s.rec = copyRecord(rec)
	return nil
}

func (s *PostgresStore) StartWorkflow(ctx context.Context, goal string, plan []string, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = runningRecord(goal, plan, runID)
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	if runID == "" {
		return nil
	}
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO workflow_runs (run_id, goal, status, started_at)
VALUES ($1, $2, $3, NOW())
ON CONFLICT (run_id) DO NOTHING
`, runID, goal, string(StatusRunning))
	return err
}

func (s *PostgresStore) LogStep(ctx context.Context, step int, action, result string, data any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowUTC()
	s.rec.ExecutionLog = append(s.rec.ExecutionLog, LogEntry{
		Step:      step,
		Action:    action,
		Result:    result,
		Data:      data,
		Timestamp: now,
	})
	s.rec.UpdatedAt = &now
	return s.persistLocked(ctx)
}

func (s *PostgresStore) SetFinalOutput(ctx context.Context, output map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if output == nil {
		output = map[string]any{}
	}
	now := nowUTC()
	s.rec.FinalOutput = output
	s.rec.Status = StatusCompleted
	s.rec.UpdatedAt = &now
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	return s.finishRunLocked(ctx, StatusCompleted, nil)
}

func (s *PostgresStore) SetError(ctx context.Context, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowUTC()
	s.rec.Status = StatusError
	s.rec.Error = msg
	s.rec.UpdatedAt = &now
	if err := s.persistLocked(ctx); err != nil {
		return err
	}
	return s.finishRunLocked(ctx, StatusError, &msg)
}

func (s *PostgresStore) State() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecord(s.rec)
}

func (s *PostgresStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = emptyRecord()
	return s.persistLocked(ctx)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error { return s.DB.Close() }

func (s *PostgresStore) persistLocked(ctx context.Context) error {
	buf, err := json.Marshal(s.rec)
	if err != nil {
		return fmt.Errorf("encode memory record: %w", err)
	}
	_, err = s.DB.ExecContext(ctx, `
INSERT INTO workflow_memory (id, record, updated_at) VALUES (1, $1, NOW())
ON CONFLICT (id) DO UPDATE SET record = EXCLUDED.record, updated_at = NOW()
`, buf)
	if err != nil {
		return fmt.Errorf("persist memory record: %w", err)
	}
	return nil
}

func (s *PostgresStore) finishRunLocked(ctx context.Context, status Status, errMsg *string) error {
	if s.rec.RunID == "" {
		return nil
	}
	_, err := s.DB.ExecContext(ctx, `
UPDATE workflow_runs SET status = $2, error = $3, finished_at = NOW() WHERE run_id = $1
`, s.rec.RunID, string(status), errMsg)
	return err
}
