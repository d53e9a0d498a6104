package memory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workflow_memory.json")
	st, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return st, path
}

func TestFileStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	st, path := newTestFileStore(t)

	rec := st.State()
	if rec.Status != StatusIdle {
		t.Fatalf("expected idle, got %q", rec.Status)
	}
	if len(rec.Plan) != 0 || len(rec.ExecutionLog) != 0 || len(rec.FinalOutput) != 0 {
		t.Fatalf("expected empty record, got %+v", rec)
	}
	if rec.CreatedAt != nil {
		t.Fatalf("expected nil created_at on idle record, got %v", *rec.CreatedAt)
	}

	goal := "Who will win the World Cup 2026?"
	plan := []string{"Fetch current FIFA rankings data", "Generate report"}
	if err := st.StartWorkflow(ctx, goal, plan, "run-123"); err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	rec = st.State()
	if rec.Status != StatusRunning || rec.Goal != goal || rec.RunID != "run-123" {
		t.Fatalf("unexpected record after start: %+v", rec)
	}
	if len(rec.Plan) != 2 || rec.CreatedAt == nil || rec.UpdatedAt == nil {
		t.Fatalf("expected plan and timestamps, got %+v", rec)
	}

	if err := st.LogStep(ctx, 1, plan[0], "Fetched 21 team rankings", map[string]any{"count": 21}); err != nil {
		t.Fatalf("LogStep: %v", err)
	}
	rec = st.State()
	if len(rec.ExecutionLog) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(rec.ExecutionLog))
	}
	entry := rec.ExecutionLog[0]
	if entry.Step != 1 || entry.Action != plan[0] || entry.Result != "Fetched 21 team rankings" {
		t.Fatalf("unexpected log entry: %+v", entry)
	}
	data, ok := entry.Data.(map[string]any)
	if !ok || data["count"] != float64(21) {
		t.Fatalf("expected step payload to survive, got %v", entry.Data)
	}
	if entry.Timestamp == "" {
		t.Fatalf("expected timestamp on log entry")
	}

	if err := st.SetFinalOutput(ctx, map[string]any{"result": "done"}); err != nil {
		t.Fatalf("SetFinalOutput: %v", err)
	}
	rec = st.State()
	if rec.Status != StatusCompleted || rec.FinalOutput["result"] != "done" {
		t.Fatalf("unexpected record after completion: %+v", rec)
	}

	// A fresh store over the same file resumes the persisted record.
	reloaded, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.State()
	if got.Goal != goal || got.Status != StatusCompleted || len(got.ExecutionLog) != 1 {
		t.Fatalf("reloaded record differs: %+v", got)
	}
}

func TestFileStoreNilStepData(t *testing.T) {
	ctx := context.Background()
	st, path := newTestFileStore(t)

	if err := st.StartWorkflow(ctx, "goal", []string{"step"}, "run-1"); err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	if err := st.LogStep(ctx, 1, "Format output for display", "Step completed", nil); err != nil {
		t.Fatalf("LogStep: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read memory file: %v", err)
	}
	if !strings.Contains(string(raw), `"data": null`) {
		t.Fatalf("expected explicit null data in persisted log, got:\n%s", raw)
	}
}

func TestFileStoreResetClearsRecord(t *testing.T) {
	ctx := context.Background()
	st, path := newTestFileStore(t)

	if err := st.StartWorkflow(ctx, "goal", []string{"step"}, "run-1"); err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	if err := st.SetError(ctx, "ranking fetch exploded"); err != nil {
		t.Fatalf("SetError: %v", err)
	}
	if rec := st.State(); rec.Status != StatusError || rec.Error != "ranking fetch exploded" {
		t.Fatalf("unexpected record after error: %+v", rec)
	}

	if err := st.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	rec := st.State()
	if rec.Status != StatusIdle || rec.Goal != "" || rec.RunID != "" || rec.Error != "" {
		t.Fatalf("expected pristine record, got %+v", rec)
	}
	if len(rec.Plan) != 0 || len(rec.ExecutionLog) != 0 || len(rec.FinalOutput) != 0 {
		t.Fatalf("expected empty collections, got %+v", rec)
	}
	if rec.CreatedAt != nil {
		t.Fatalf("expected created_at cleared, got %v", *rec.CreatedAt)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read memory file: %v", err)
	}
	if strings.Contains(string(raw), `"error"`) {
		t.Fatalf("expected error key dropped after reset, got:\n%s", raw)
	}
}

func TestFileStoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workflow_memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	st, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if rec := st.State(); rec.Status != StatusIdle || len(rec.ExecutionLog) != 0 {
		t.Fatalf("expected fresh record, got %+v", rec)
	}
}

func TestFileStoreStateIsCopy(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestFileStore(t)

	if err := st.StartWorkflow(ctx, "goal", []string{"step"}, "run-1"); err != nil {
		t.Fatalf("StartWorkflow: %v", err)
	}
	if err := st.SetFinalOutput(ctx, map[string]any{"result": "done"}); err != nil {
		t.Fatalf("SetFinalOutput: %v", err)
	}

	out := st.State()
	out.FinalOutput["injected"] = true
	out.Plan[0] = "tampered"

	rec := st.State()
	if _, ok := rec.FinalOutput["injected"]; ok {
		t.Fatalf("State leaked internal final output map")
	}
	if rec.Plan[0] != "step" {
		t.Fatalf("State leaked internal plan slice, got %q", rec.Plan[0])
	}
}
