package workflow

import (
	"log"
	"strings"
)

// planTemplates holds the fixed step list for each goal category. Plans for
// equal goal text are always identical.
var planTemplates = map[GoalCategory][]PlanStep{
	TeamWinner: {
		{Kind: StepFetchRankings, Label: "Fetch current FIFA rankings data"},
		{Kind: StepFetchHistorical, Label: "Fetch historical World Cup performance data"},
		{Kind: StepAnalyzeForm, Label: "Analyze team form and recent match results"},
		{Kind: StepComputeTeamScores, Label: "Calculate predictive scores using weighted factors (FIFA 25%, Historical 20%, Form 25%, Squad 20%, Home 10%)"},
		{Kind: StepRankTeams, Label: "Generate top 5 predictions with probabilities"},
		{Kind: StepVisualize, Label: "Create visualization data"},
		{Kind: StepReport, Label: "Generate report"},
		{Kind: StepPersist, Label: "Save results to memory and file"},
		{Kind: StepFormat, Label: "Format output for display"},
	},
	GoldenBall: {
		{Kind: StepFetchForwards, Label: "Fetch forward statistics"},
		{Kind: StepFetchMidfielders, Label: "Fetch midfielder statistics"},
		{Kind: StepFetchHistorical, Label: "Fetch historical Golden Ball winners"},
		{Kind: StepComputePlayerScores, Label: "Calculate player scores (goals + assists + ratings + team success)"},
		{Kind: StepComputePlayerScores, Label: "Rank top 5 candidates with probabilities"},
		{Kind: StepVisualize, Label: "Create visualization data"},
		{Kind: StepReport, Label: "Generate report"},
		{Kind: StepPersist, Label: "Save results to file"},
		{Kind: StepFormat, Label: "Format output for display"},
	},
	GoldenBoot: {
		{Kind: StepFetchForwards, Label: "Fetch forward and attacking player statistics"},
		{Kind: StepFetchHistorical, Label: "Fetch historical Golden Boot / top scorer data"},
		{Kind: StepComputePlayerScores, Label: "Calculate scoring-based scores (goals + form + team style)"},
		{Kind: StepComputePlayerScores, Label: "Rank top 5 candidates with probabilities"},
		{Kind: StepVisualize, Label: "Create visualization data"},
		{Kind: StepReport, Label: "Generate report"},
		{Kind: StepPersist, Label: "Save results to file"},
		{Kind: StepFormat, Label: "Format output for display"},
	},
	GoldenGlove: {
		{Kind: StepFetchGoalkeepers, Label: "Fetch goalkeeper statistics"},
		{Kind: StepFetchHistorical, Label: "Fetch historical Golden Glove winners"},
		{Kind: StepComputePlayerScores, Label: "Calculate keeper scores (clean sheets + saves + defensive strength)"},
		{Kind: StepComputePlayerScores, Label: "Rank top 5 candidates with probabilities"},
		{Kind: StepVisualize, Label: "Create visualization data"},
		{Kind: StepReport, Label: "Generate report"},
		{Kind: StepPersist, Label: "Save results to file"},
		{Kind: StepFormat, Label: "Format output for display"},
	},
	YoungPlayer: {
		{Kind: StepFetchYoung, Label: "Fetch young player (U21) statistics"},
		{Kind: StepFetchHistorical, Label: "Fetch historical Young Player Award winners"},
		{Kind: StepComputePlayerScores, Label: "Calculate scores (age <21 + performance + potential)"},
		{Kind: StepComputePlayerScores, Label: "Rank top 5 candidates with probabilities"},
		{Kind: StepVisualize, Label: "Create visualization data"},
		{Kind: StepReport, Label: "Generate report"},
		{Kind: StepPersist, Label: "Save results to file"},
		{Kind: StepFormat, Label: "Format output for display"},
	},
}

// Classify maps free-form goal text onto a prediction category. Unrecognized
// goals run the team winner workflow.
func Classify(goal string) GoalCategory {
	g := strings.ToLower(strings.TrimSpace(goal))
	switch {
	case strings.Contains(g, "winner") && (strings.Contains(g, "world cup") || strings.Contains(g, "2026")):
		return TeamWinner
	case strings.Contains(g, "golden ball"):
		return GoldenBall
	case strings.Contains(g, "golden boot"):
		return GoldenBoot
	case strings.Contains(g, "golden glove"):
		return GoldenGlove
	case strings.Contains(g, "young player"):
		return YoungPlayer
	default:
		return TeamWinner
	}
}

// Planner converts goals into execution plans, truncated to the configured
// step limit.
type Planner struct {
	maxSteps int
	logger   *log.Logger
}

// NewPlanner creates a planner. Non-positive maxSteps falls back to the
// default limit of 10.
func NewPlanner(maxSteps int) *Planner {
	if maxSteps <= 0 {
		maxSteps = defaultMaxSteps
	}
	return &Planner{
		maxSteps: maxSteps,
		logger:   log.New(log.Writer(), "[PLANNER] ", log.LstdFlags),
	}
}

// BuildPlan returns the plan for a goal.
func (p *Planner) BuildPlan(goal string) Plan {
	category := Classify(goal)
	template := planTemplates[category]
	steps := make([]PlanStep, len(template))
	copy(steps, template)
	if len(steps) > p.maxSteps {
		steps = steps[:p.maxSteps]
	}
	p.logger.Printf("planned %d steps for %s goal", len(steps), category)
	return Plan{Goal: goal, Category: category, Steps: steps}
}
