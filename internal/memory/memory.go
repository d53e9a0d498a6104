// Package memory persists the single workflow record: the goal, the plan,
// the per-step execution log and the final output. Every mutation writes the
// whole record synchronously so a restart resumes from the last state.
package memory

import (
	"context"
	"encoding/json"
	"time"
)

// Status is the workflow lifecycle state carried on the record.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// LogEntry is one executed step. Data holds the step payload and is always
// serialized, as null when the step produced none.
type LogEntry struct {
	Step      int    `json:"step"`
	Action    string `json:"action"`
	Result    string `json:"result"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Record is the full workflow memory document.
type Record struct {
	Goal         string         `json:"goal"`
	Plan         []string       `json:"plan"`
	ExecutionLog []LogEntry     `json:"execution_log"`
	FinalOutput  map[string]any `json:"final_output"`
	Status       Status         `json:"workflow_status"`
	RunID        string         `json:"run_id,omitempty"`
	CreatedAt    *string        `json:"created_at"`
	UpdatedAt    *string        `json:"updated_at"`
	Error        string         `json:"error,omitempty"`
}

// Store is the persistence seam the workflow engine runs against.
type Store interface {
	// StartWorkflow replaces the record with a fresh running one.
	StartWorkflow(ctx context.Context, goal string, plan []string, runID string) error
	// LogStep appends one executed step to the log.
	LogStep(ctx context.Context, step int, action, result string, data any) error
	// SetFinalOutput stores the workflow result and marks it completed.
	SetFinalOutput(ctx context.Context, output map[string]any) error
	// SetError marks the workflow failed.
	SetError(ctx context.Context, msg string) error
	// State returns a copy of the current record.
	State() Record
	// Reset restores the empty idle record.
	Reset(ctx context.Context) error
}

func emptyRecord() Record {
	return Record{
		Goal:         "",
		Plan:         []string{},
		ExecutionLog: []LogEntry{},
		FinalOutput:  map[string]any{},
		Status:       StatusIdle,
	}
}

func runningRecord(goal string, plan []string, runID string) Record {
	now := nowUTC()
	if plan == nil {
		plan = []string{}
	}
	return Record{
		Goal:         goal,
		Plan:         plan,
		ExecutionLog: []LogEntry{},
		FinalOutput:  map[string]any{},
		Status:       StatusRunning,
		RunID:        runID,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// copyRecord detaches the record from the store's internal state. Payloads
// are plain JSON values, so a round trip clones them.
func copyRecord(r Record) Record {
	buf, err := json.Marshal(r)
	if err != nil {
		return r
	}
	var out Record
	if err := json.Unmarshal(buf, &out); err != nil {
		return r
	}
	if out.Plan == nil {
		out.Plan = []string{}
	}
	if out.ExecutionLog == nil {
		out.ExecutionLog = []LogEntry{}
	}
	if out.FinalOutput == nil {
		out.FinalOutput = map[string]any{}
	}
	return out
}
