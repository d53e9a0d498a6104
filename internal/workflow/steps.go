package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/mohammad-safakhou/mundial/internal/predict"
	"github.com/mohammad-safakhou/mundial/internal/source"
)

// Report filenames, fixed per goal family.
const (
	TeamReportFile   = "world_cup_winner.json"
	PlayerReportFile = "player_predictions.json"
)

// stepOutput is what one executed step produces: a summary line for the
// execution log and an optional payload handed to later steps.
type stepOutput struct {
	summary string
	data    map[string]any
}

// runStep dispatches one plan step on its kind. Unknown kinds complete
// without output so a run never stalls on them.
func (e *Engine) runStep(ctx context.Context, step PlanStep, category GoalCategory, run *runState) (stepOutput, error) {
	switch step.Kind {
	case StepFetchRankings:
		return e.fetchRankings(ctx), nil
	case StepFetchHistorical:
		return e.fetchHistorical(), nil
	case StepAnalyzeForm:
		return e.analyzeForm(ctx), nil
	case StepComputeTeamScores, StepRankTeams:
		return e.computeTeamScores(ctx), nil
	case StepFetchForwards:
		return e.fetchPlayers(ctx, "forwards"), nil
	case StepFetchMidfielders:
		return e.fetchPlayers(ctx, "midfielders"), nil
	case StepFetchGoalkeepers:
		return e.fetchPlayers(ctx, "goalkeepers"), nil
	case StepFetchYoung:
		return e.fetchPlayers(ctx, "young"), nil
	case StepComputePlayerScores:
		return e.computePlayerScores(ctx, category), nil
	case StepVisualize:
		return e.visualize(run), nil
	case StepReport:
		return e.report(run), nil
	case StepPersist:
		return e.persist(category, run)
	case StepFormat:
		return stepOutput{summary: "Results ready for display", data: run.last}, nil
	default:
		return stepOutput{summary: "Step completed"}, nil
	}
}

// envelope wraps a step result the way every tool reports it: the summary
// line plus the payload under "data".
func envelope(result string, data any) map[string]any {
	return map[string]any{"result": result, "data": data}
}

// resultText pulls the summary line back out of a prediction envelope.
func resultText(out map[string]any) string {
	s, _ := out["result"].(string)
	return s
}

func (e *Engine) fetchRankings(ctx context.Context) stepOutput {
	rows := e.source.RankingTable(ctx)
	summary := fmt.Sprintf("Retrieved rankings for %d qualified teams", len(rows))
	return stepOutput{summary: summary, data: envelope(summary, rows)}
}

func (e *Engine) fetchHistorical() stepOutput {
	data := map[string]any{
		"2022": e.source.WorldCup(2022),
		"2018": e.source.WorldCup(2018),
		"2014": e.source.WorldCup(2014),
	}
	summary := "Processed data from 2014, 2018, 2022 tournaments"
	return stepOutput{summary: summary, data: envelope(summary, data)}
}

func (e *Engine) analyzeForm(ctx context.Context) stepOutput {
	names := e.source.TeamNames(ctx)
	if len(names) > 15 {
		names = names[:15]
	}
	byName := e.source.TeamsByName(ctx)
	form := map[string]any{}
	for _, name := range names {
		last := byName[name].LastWorldCup
		form[name] = map[string]any{"form": formLabel(last), "last_world_cup": last}
	}
	summary := fmt.Sprintf("Analyzed form for %d teams", len(names))
	return stepOutput{summary: summary, data: envelope(summary, form)}
}

// formLabel grades recent form from a team's finish at the last World Cup.
func formLabel(lastWC string) string {
	switch {
	case strings.Contains(lastWC, "Winner") || strings.Contains(lastWC, "Final"):
		return "Excellent"
	case strings.Contains(lastWC, "Semi") || strings.Contains(lastWC, "Third") || strings.Contains(lastWC, "Fourth"):
		return "Very Good"
	case strings.Contains(lastWC, "Quarter"):
		return "Good"
	case strings.Contains(lastWC, "Round of 16"):
		return "Average"
	default:
		return "Poor"
	}
}

// computeTeamScores re-reads the ranking table rather than the prior step's
// payload; the cache makes the second fetch cheap and the computation stays
// correct even when the fetch step was skipped.
func (e *Engine) computeTeamScores(ctx context.Context) stepOutput {
	rows := e.source.RankingTable(ctx)
	out := e.predict.PredictTeams(ctx, rows, predict.DefaultTeamWeights)
	return stepOutput{summary: resultText(out), data: out}
}

func (e *Engine) fetchPlayers(ctx context.Context, position string) stepOutput {
	players := e.source.PlayersByPosition(ctx, position)
	summary := fmt.Sprintf("Retrieved %d %s", len(players), position)
	return stepOutput{summary: summary, data: envelope(summary, players)}
}

func (e *Engine) computePlayerScores(ctx context.Context, category GoalCategory) stepOutput {
	var pool []source.Player
	award := predict.GoldenBall
	switch category {
	case GoldenBoot:
		award = predict.GoldenBoot
		pool = e.source.PlayersByPosition(ctx, "forwards")
	case GoldenGlove:
		award = predict.GoldenGlove
		pool = e.source.PlayersByPosition(ctx, "goalkeepers")
	case YoungPlayer:
		award = predict.YoungPlayer
		pool = e.source.PlayersByPosition(ctx, "young")
	default:
		pool = append(e.source.PlayersByPosition(ctx, "forwards"), e.source.PlayersByPosition(ctx, "midfielders")...)
	}
	out := e.predict.PredictPlayers(ctx, pool, award)
	return stepOutput{summary: resultText(out), data: out}
}

func (e *Engine) visualize(run *runState) stepOutput {
	last := run.last
	if last == nil {
		last = map[string]any{}
	}
	out := predict.Visualization(last)
	return stepOutput{summary: resultText(out), data: out}
}

func (e *Engine) report(run *runState) stepOutput {
	out := predict.BuildReport(run.predictionsOrLast())
	return stepOutput{summary: resultText(out), data: out}
}

func (e *Engine) persist(category GoalCategory, run *runState) (stepOutput, error) {
	pred := run.predictionsOrLast()
	content, _ := predict.BuildReport(pred)["data"].(map[string]any)
	if len(content) == 0 {
		content = pred
	}
	filename := PlayerReportFile
	if category == TeamWinner {
		filename = TeamReportFile
	}
	out, err := predict.SaveReport(e.reportsDir, filename, content)
	if err != nil {
		return stepOutput{}, err
	}
	return stepOutput{summary: resultText(out), data: out}, nil
}
