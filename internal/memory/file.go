package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const defaultFilePath = "memory/workflow_memory.json"

// FileStore keeps the record in one indented JSON file, the layout the
// API's memory endpoint exposes verbatim.
type FileStore struct {
	mu     sync.Mutex
	path   string
	rec    Record
	logger *log.Logger
}

// NewFileStore loads the record from path, creating parent directories as
// needed. A missing or corrupt file yields a fresh idle record.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = defaultFilePath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create memory dir: %w", err)
		}
	}
	s := &FileStore{
		path:   path,
		rec:    emptyRecord(),
		logger: log.New(log.Writer(), "[MEMORY] ", log.LstdFlags),
	}
	s.load()
	return s, nil
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.logger.Printf("memory file %s unreadable, starting fresh: %v", s.path, err)
		return
	}
	s.rec = copyRecord(rec)
}

func (s *FileStore) StartWorkflow(_ context.Context, goal string, plan []string, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = runningRecord(goal, plan, runID)
	return s.persistLocked()
}

func (s *FileStore) LogStep(_ context.Context, step int, action, result string, data any) error {
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
	return s.persistLocked()
}

func (s *FileStore) SetFinalOutput(_ context.Context, output map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if output == nil {
		output = map[string]any{}
	}
	now := nowUTC()
	s.rec.FinalOutput = output
	s.rec.Status = StatusCompleted
	s.rec.UpdatedAt = &now
	return s.persistLocked()
}

func (s *FileStore) SetError(_ context.Context, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := nowUTC()
	s.rec.Status = StatusError
	s.rec.Error = msg
	s.rec.UpdatedAt = &now
	return s.persistLocked()
}

func (s *FileStore) State() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyRecord(s.rec)
}

func (s *FileStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = emptyRecord()
	return s.persistLocked()
}

func (s *FileStore) persistLocked() error {
	buf, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode memory record: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("write memory record: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace memory record: %w", err)
	}
	return nil
}
