package predict

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/mohammad-safakhou/mundial/internal/source"
)

// Award identifies one of the four individual prize models.
type Award string

const (
	GoldenBall  Award = "golden_ball"
	GoldenBoot  Award = "golden_boot"
	GoldenGlove Award = "golden_glove"
	YoungPlayer Award = "young_player"
)

// Honour tiers for the Golden Ball model. The highest matching tier wins.
const (
	tierBallonDOrWinner = 95.0
	tierGoldenBall      = 90.0
	tierFIFABest        = 85.0
	tierGoldenBoot      = 82.0
	tierClubHonour      = 78.0
)

const (
	// defaultPlayerRating stands in when enrichment produced no rating.
	defaultPlayerRating = 80.0
	// maxAttackBonus caps the goals/assists contribution to the Golden
	// Ball score.
	maxAttackBonus = 30.0
	// ageBonusPerYear rewards each year under 22 in the young player model.
	ageBonusPerYear = 3.0
	// defaultYoungAge is assumed when a roster row carries no age.
	defaultYoungAge = 22
)

// ScoreGoldenBall weighs honours, rating and attacking output. Players with
// a recognized honour score on a tier base; the rest on raw numbers.
func ScoreGoldenBall(p source.Player) float64 {
	rating := ratingOrDefault(p.Rating)
	goals := float64(p.Goals)
	assists := float64(p.Assists)
	if tier := honourTier(p.Honours); tier > 0 {
		return tier*0.5 + rating*0.25 + math.Min(maxAttackBonus, goals*0.3+assists*0.2)
	}
	return rating*0.4 + goals*0.3 + assists*0.3
}

// ScoreGoldenBoot weighs international goals at 80% and rating at 20%.
func ScoreGoldenBoot(p source.Player) float64 {
	return float64(p.Goals)*0.8 + ratingOrDefault(p.Rating)*0.2
}

// ScoreGoldenGlove weighs clean sheets and rating equally.
func ScoreGoldenGlove(p source.Player) float64 {
	return float64(p.CleanSheets)*0.5 + ratingOrDefault(p.Rating)*0.5
}

// ScoreYoungPlayer adds an under-22 age bonus to rating and attacking
// output.
func ScoreYoungPlayer(p source.Player) float64 {
	age := p.Age
	if age == 0 {
		age = defaultYoungAge
	}
	bonus := math.Max(0, float64(22-age)*ageBonusPerYear)
	return bonus + ratingOrDefault(p.Rating)*0.4 + float64(p.Goals)*0.3 + float64(p.Assists)*0.2
}

func ratingOrDefault(rating float64) float64 {
	if rating == 0 {
		return defaultPlayerRating
	}
	return rating
}

func honourTier(honours []string) float64 {
	has := func(name string) bool {
		for _, h := range honours {
			if h == name {
				return true
			}
		}
		return false
	}
	switch {
	case has("Ballon d'Or winner"):
		return tierBallonDOrWinner
	case has("World Cup Golden Ball") || has("Ballon d'Or"):
		return tierGoldenBall
	case has("FIFA Best") || has("UEFA Best Player"):
		return tierFIFABest
	case has("Golden Boot"):
		return tierGoldenBoot
	case has("World Cup winner") || has("Champions League winner"):
		return tierClubHonour
	default:
		return 0
	}
}

type playerCandidate struct {
	score  float64
	player source.Player
	entry  map[string]any
}

// PredictPlayers scores candidates for one award and returns the standard
// envelope with the top five normalized to probabilities. Fewer than five
// candidates substitutes the curated fallback roster for the award; when
// even that is empty the result reports no players rather than an error.
func (e *Engine) PredictPlayers(ctx context.Context, players []source.Player, award Award) map[string]any {
	if len(players) < 5 {
		players = e.src.FallbackCandidates(ctx, string(award))
	}
	if len(players) == 0 {
		return map[string]any{"result": "No players to score", "data": map[string]any{}, "top5": []map[string]any{}}
	}

	switch award {
	case GoldenGlove:
		players = e.src.EnrichGoalkeepers(ctx, players)
	case YoungPlayer:
		players = e.src.EnrichYoungPlayers(ctx, players)
	default:
		players = e.src.EnrichForGoldenBall(ctx, players)
	}

	byName := e.src.TeamsByName(ctx)
	scored := make([]playerCandidate, 0, len(players))
	for _, p := range players {
		crest := ""
		if p.Team != "" {
			crest = byName[p.Team].Flag
		}
		if crest == "" {
			crest = p.Crest
		}

		var s float64
		switch award {
		case GoldenBoot:
			s = ScoreGoldenBoot(p)
		case GoldenGlove:
			s = ScoreGoldenGlove(p)
		case YoungPlayer:
			s = ScoreYoungPlayer(p)
		default:
			s = ScoreGoldenBall(p)
		}
		score := round1(s)

		entry := map[string]any{
			"name":      p.Name,
			"team":      p.Team,
			"score":     score,
			"crest":     crest,
			"shortName": shortName(p.Team),
		}
		switch award {
		case GoldenBoot:
			entry["goals"] = p.Goals
		case GoldenGlove:
			entry["clean_sheets"] = p.CleanSheets
			entry["saves"] = p.Saves
		case YoungPlayer:
			entry["age"] = p.Age
			entry["goals"] = p.Goals
		}
		scored = append(scored, playerCandidate{score: score, player: p, entry: entry})
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
		desc, reason := playerNarrative(c.player, award, i+1, c.score, prob)
		c.entry["description"] = desc
		c.entry["reason"] = reason
		data[strconv.Itoa(i+1)] = c.entry
		top5[i] = c.entry
	}
	e.logger.Printf("scored %d candidates for %s", len(scored), award)
	return map[string]any{"result": fmt.Sprintf("Computed %s scores", award), "data": data, "top5": top5}
}

func playerNarrative(p source.Player, award Award, rank int, score, prob float64) (string, string) {
	switch award {
	case GoldenBoot:
		desc := fmt.Sprintf("%s – %s. Elite forward, high goal tally.", p.Name, p.Team)
		if p.Goals > 0 {
			desc = fmt.Sprintf("%s – %s. Elite forward, %d international goals.", p.Name, p.Team, p.Goals)
		}
		reason := fmt.Sprintf("Goals-based: international goals (80%% weight), rating (20%%). Score %.1f → %.1f%%.", score, prob)
		return desc, reason
	case GoldenGlove:
		desc := fmt.Sprintf("%s – %s goalkeeper. %d clean sheets, %d saves.", p.Name, p.Team, p.CleanSheets, p.Saves)
		reason := fmt.Sprintf("Clean sheets (50%%) + rating (50%%). Score %.1f → %.1f%%.", score, prob)
		return desc, reason
	case YoungPlayer:
		desc := fmt.Sprintf("%s – %s. Age %d, high potential.", p.Name, p.Team, p.Age)
		reason := fmt.Sprintf("Age (U21 bonus) + rating + goals/assists. Score %.1f → %.1f%%.", score, prob)
		return desc, reason
	default:
		desc := fmt.Sprintf("%s – %s. Ballon d'Or / World Cup Golden Ball pedigree, top international goals and caps.", p.Name, p.Team)
		reason := fmt.Sprintf("Ranked #%d: honours + rating + goals/assists. Score %.1f → %.1f%%.", rank, score, prob)
		return desc, reason
	}
}
