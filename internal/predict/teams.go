package predict

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/mohammad-safakhou/mundial/internal/source"
)

// Weights mix the five team factors. Fractions sum to 1.
type Weights struct {
	FIFARanking   float64
	Historical    float64
	RecentForm    float64
	SquadStrength float64
	HomeAdvantage float64
}

// DefaultTeamWeights is the tuned factor mix the workflow runs with. The
// narrative strings quote these percentages, so changing them means
// changing teamReason too.
var DefaultTeamWeights = Weights{
	FIFARanking:   0.25,
	Historical:    0.20,
	RecentForm:    0.25,
	SquadStrength: 0.20,
	HomeAdvantage: 0.10,
}

// scoreDamping compresses weighted totals into the headline 0-35 band the
// probabilities are normalized over.
const scoreDamping = 0.35

// Form tier scores derived from the last World Cup finish.
const (
	formExcellent = 80.0
	formVeryGood  = 60.0
	formGood      = 40.0
	formPoor      = 20.0
)

// defaultMaxRank stands in when no ranking row carries a rank.
const defaultMaxRank = 32

// defaultSquadRating is assumed for teams missing from the team table.
const defaultSquadRating = 80.0

type teamFactors struct {
	FIFA       float64
	Historical float64
	Form       float64
	Squad      float64
	Home       float64
}

type teamCandidate struct {
	name    string
	score   float64
	factors teamFactors
	entry   map[string]any
}

// PredictTeams scores every ranked team on FIFA rank, historical wins,
// recent form, squad strength and home advantage, and returns the standard
// envelope with the top five normalized to probabilities. A zero Weights
// value falls back to DefaultTeamWeights; empty rows fall back to the
// source ranking table.
func (e *Engine) PredictTeams(ctx context.Context, rows []source.RankingEntry, w Weights) map[string]any {
	if w == (Weights{}) {
		w = DefaultTeamWeights
	}
	if len(rows) == 0 {
		rows = e.src.RankingTable(ctx)
	}
	byName := e.src.TeamsByName(ctx)

	maxRank := 0
	for _, r := range rows {
		if r.Rank > maxRank {
			maxRank = r.Rank
		}
	}
	if maxRank == 0 {
		maxRank = defaultMaxRank
	}

	scored := make([]teamCandidate, 0, len(rows))
	for _, row := range rows {
		name := row.Team
		info, known := byName[name]

		rank := row.Rank
		if rank == 0 {
			rank = info.FIFARank
		}
		wins := info.WorldCupWins
		squad := defaultSquadRating
		if known && info.OverallRating > 0 {
			squad = info.OverallRating
		}

		f := teamFactors{
			FIFA:       (1 - float64(rank-1)/float64(maxRank)) * 100,
			Historical: math.Min(100, float64(wins)*20+20),
			Form:       formScore(info.LastWorldCup),
			Squad:      math.Max(0, math.Min(100, (squad-70)*2.5)),
		}
		if info.HomeAdvantage {
			f.Home = 100
		}

		total := f.FIFA*w.FIFARanking + f.Historical*w.Historical + f.Form*w.RecentForm +
			f.Squad*w.SquadStrength + f.Home*w.HomeAdvantage
		total = math.Max(0, math.Min(100, total*scoreDamping))

		crest := row.Crest
		short := shortName(name)
		if known {
			crest = info.Flag
			short = info.Code
		}

		score := round1(total)
		scored = append(scored, teamCandidate{
			name:    name,
			score:   score,
			factors: f,
			entry: map[string]any{
				"team":      name,
				"score":     score,
				"crest":     crest,
				"shortName": short,
				"factors": map[string]float64{
					"fifa":       f.FIFA,
					"historical": f.Historical,
					"form":       f.Form,
					"squad":      f.Squad,
					"home":       f.Home,
				},
			},
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	top := scored
	if len(top) > 5 {
		top = top[:5]
	}
	sum := 0.0
	for _, c := range top {
		sum += c.score
	}
	if sum == 0 {
		sum = 1
	}

	data := map[string]any{}
	top5 := make([]map[string]any, len(top))
	for i, c := range top {
		prob := round1(100 * c.score / sum)
		c.entry["probability"] = prob
		desc, reason := teamNarrative(byName, c, i+1, prob)
		c.entry["description"] = desc
		c.entry["reason"] = reason
		data[strconv.Itoa(i+1)] = c.entry
		top5[i] = c.entry
	}
	e.logger.Printf("scored %d teams for the winner model", len(scored))
	return map[string]any{"result": "Computed weighted scores for all teams", "data": data, "top5": top5}
}

func formScore(lastWC string) float64 {
	switch {
	case strings.Contains(lastWC, "Winner") || strings.Contains(lastWC, "Final"):
		return formExcellent
	case strings.Contains(lastWC, "Semi") || strings.Contains(lastWC, "Third") || strings.Contains(lastWC, "Fourth"):
		return formVeryGood
	case strings.Contains(lastWC, "Quarter"):
		return formGood
	default:
		return formPoor
	}
}

func teamNarrative(byName map[string]source.Team, c teamCandidate, position int, prob float64) (string, string) {
	info, known := byName[c.name]
	rank := position
	if known {
		rank = info.FIFARank
	}
	desc := fmt.Sprintf("%s – %s; %d World Cup wins, FIFA rank #%d.",
		c.name, info.LastWorldCup, info.WorldCupWins, rank)
	reason := fmt.Sprintf("FIFA rank (25%%): %.0f, Historical (20%%): %.0f, Recent form (25%%): %.0f, Squad (20%%): %.0f, Home (10%%): %.0f. Weighted total → %.1f%%.",
		c.factors.FIFA, c.factors.Historical, c.factors.Form, c.factors.Squad, c.factors.Home, prob)
	return desc, reason
}
