package workflow

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohammad-safakhou/mundial/internal/memory"
	"github.com/mohammad-safakhou/mundial/internal/predict"
	"github.com/mohammad-safakhou/mundial/internal/source"
	"github.com/mohammad-safakhou/mundial/internal/telemetry"
)

// defaultMaxSteps caps both plan length and execution.
const defaultMaxSteps = 10

// Engine executes prediction plans step by step against an injected memory
// store. A mutex serializes runs; the process handles one workflow at a time.
type Engine struct {
	store      memory.Store
	source     *source.Client
	predict    *predict.Engine
	planner    *Planner
	telemetry  *telemetry.Telemetry
	maxSteps   int
	reportsDir string
	logger     *log.Logger

	mu sync.Mutex
}

// NewEngine wires an engine. telemetry may be nil.
func NewEngine(store memory.Store, src *source.Client, tel *telemetry.Telemetry, maxSteps int, reportsDir string) *Engine {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	return &Engine{
		store:      store,
		source:     src,
		predict:    predict.New(src),
		planner:    NewPlanner(maxSteps),
		telemetry:  tel,
		maxSteps:   maxSteps,
		reportsDir: reportsDir,
		logger:     log.New(log.Writer(), "[WORKFLOW] ", log.LstdFlags),
	}
}

// Plan builds the execution plan for a goal.
func (e *Engine) Plan(goal string) Plan {
	return e.planner.BuildPlan(goal)
}

// State returns a copy of the current memory record.
func (e *Engine) State() memory.Record {
	return e.store.State()
}

// Reset clears the memory record back to idle. The source cache is left
// intact.
func (e *Engine) Reset(ctx context.Context) error {
	return e.store.Reset(ctx)
}

// runState carries data between the steps of a single run.
type runState struct {
	last        map[string]any
	predictions map[string]any
	byStep      map[int]map[string]any
}

// predictionsOrLast picks the payload report and persist steps work from:
// the latest prediction envelope when one exists, otherwise the latest step
// output.
func (r *runState) predictionsOrLast() map[string]any {
	if r.predictions != nil {
		return r.predictions
	}
	if r.last != nil {
		return r.last
	}
	return map[string]any{}
}

// Execute runs a plan. Step outputs flow to later steps through the run
// state; every step lands in the execution log. A failing step aborts the
// run, marks the record and reports Status "error" in the result. Returns
// ErrRunInProgress when another run holds the engine.
func (e *Engine) Execute(ctx context.Context, plan Plan) (Result, error) {
	if !e.mu.TryLock() {
		return Result{}, ErrRunInProgress
	}
	defer e.mu.Unlock()

	runID := uuid.NewString()
	labels := make([]string, len(plan.Steps))
	for i, s := range plan.Steps {
		labels[i] = s.Label
	}
	if err := e.store.StartWorkflow(ctx, plan.Goal, labels, runID); err != nil {
		return Result{}, fmt.Errorf("start workflow: %w", err)
	}

	steps := plan.Steps
	if len(steps) > e.maxSteps {
		steps = steps[:e.maxSteps]
	}
	e.logger.Printf("run %s: executing %d steps for %s goal", runID, len(steps), plan.Category)

	run := &runState{byStep: map[int]map[string]any{}}
	finalOutput := map[string]any{}
	started := time.Now()

	for i, step := range steps {
		num := i + 1
		stepStart := time.Now()
		out, err := e.runStep(ctx, step, plan.Category, run)
		e.telemetry.RecordStep(string(step.Kind), time.Since(stepStart))
		if err == nil {
			err = e.store.LogStep(ctx, num, step.Label, out.summary, out.data)
		}
		if err != nil {
			return e.fail(ctx, runID, num, step.Label, started, err), nil
		}
		if out.data != nil {
			run.last = out.data
			run.byStep[num] = out.data
			if hasPredictionKeys(out.data) {
				run.predictions = out.data
				finalOutput = out.data
			}
		}
	}

	if err := e.store.SetFinalOutput(ctx, finalOutput); err != nil {
		return Result{}, fmt.Errorf("set final output: %w", err)
	}
	e.telemetry.RecordRun(StatusCompleted, time.Since(started))
	e.logger.Printf("run %s: completed in %v", runID, time.Since(started))
	return Result{Status: StatusCompleted, Memory: e.store.State(), Output: finalOutput}, nil
}

// fail records a step failure and closes the run out in the error state.
func (e *Engine) fail(ctx context.Context, runID string, step int, label string, started time.Time, cause error) Result {
	msg := cause.Error()
	if err := e.store.LogStep(ctx, step, label, "Error: "+msg, nil); err != nil {
		e.logger.Printf("run %s: recording failure of step %d: %v", runID, step, err)
	}
	if err := e.store.SetError(ctx, msg); err != nil {
		e.logger.Printf("run %s: marking record failed: %v", runID, err)
	}
	e.telemetry.RecordRun(StatusError, time.Since(started))
	e.logger.Printf("run %s: step %d failed: %v", runID, step, cause)
	return Result{Status: StatusError, Memory: e.store.State(), Output: map[string]any{}, Err: cause}
}

// hasPredictionKeys reports whether a step payload is a prediction envelope,
// which makes it the candidate final output of the run.
func hasPredictionKeys(data map[string]any) bool {
	if _, ok := data["top5"]; ok {
		return true
	}
	_, ok := data["predictions"]
	return ok
}
