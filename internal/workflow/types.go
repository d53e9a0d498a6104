// Package workflow turns a prediction goal into an ordered plan and executes
// it step by step, passing each step's output to the next and logging every
// step to the memory store.
package workflow

import (
	"errors"

	"github.com/mohammad-safakhou/mundial/internal/memory"
)

// ErrRunInProgress is returned when Execute is called while another run
// holds the engine.
var ErrRunInProgress = errors.New("a workflow run is already in progress")

// GoalCategory identifies which of the five prediction workflows a goal
// maps to.
type GoalCategory string

const (
	TeamWinner  GoalCategory = "team_winner"
	GoldenBall  GoalCategory = "golden_ball"
	GoldenBoot  GoalCategory = "golden_boot"
	GoldenGlove GoalCategory = "golden_glove"
	YoungPlayer GoalCategory = "young_player"
)

// StepKind names one executable operation. The engine dispatches on the
// kind, never on the human-readable label.
type StepKind string

const (
	StepFetchRankings       StepKind = "fetch_rankings"
	StepFetchHistorical     StepKind = "fetch_historical"
	StepAnalyzeForm         StepKind = "analyze_form"
	StepComputeTeamScores   StepKind = "compute_team_scores"
	StepRankTeams           StepKind = "rank_teams"
	StepFetchForwards       StepKind = "fetch_forwards"
	StepFetchMidfielders    StepKind = "fetch_midfielders"
	StepFetchGoalkeepers    StepKind = "fetch_goalkeepers"
	StepFetchYoung          StepKind = "fetch_young"
	StepComputePlayerScores StepKind = "compute_player_scores"
	StepVisualize           StepKind = "visualize"
	StepReport              StepKind = "report"
	StepPersist             StepKind = "persist"
	StepFormat              StepKind = "format"
	StepNoOp                StepKind = "noop"
)

// PlanStep pairs an executable kind with the label that goes into the
// execution log.
type PlanStep struct {
	Kind  StepKind `json:"kind"`
	Label string   `json:"label"`
}

// Plan is an ordered list of steps for one goal.
type Plan struct {
	Goal     string       `json:"goal"`
	Category GoalCategory `json:"category"`
	Steps    []PlanStep   `json:"steps"`
}

// Result is the outcome of one workflow run. Err is set when a step failed
// and the run aborted; the memory record then carries the error state.
type Result struct {
	Status string         `json:"status"`
	Memory memory.Record  `json:"memory"`
	Output map[string]any `json:"output"`
	Err    error          `json:"-"`
}

// Run statuses reported in Result.Status.
const (
	StatusCompleted = "completed"
	StatusError     = "error"
)
