package source

import (
	"context"
	"strings"
)

// Default stats assigned to roster players before biography enrichment.
const (
	defaultForwardGoals      = 4
	defaultMidfielderGoals   = 2
	defaultAttackerAssists   = 3
	defaultKeeperRating      = 82
	defaultForwardRating     = 81
	defaultOutfieldRating    = 79
	defaultKeeperCleanSheets = 12
	defaultKeeperSaves       = 80
	defaultPlayerAge         = 26
)

// maxEnrichedPlayers bounds how many biography pages one scoring pass may
// touch.
const maxEnrichedPlayers = 60

// AllRosters merges the squads of every qualified team, deduplicated by
// player name and team.
func (c *Client) AllRosters(ctx context.Context) []Player {
	type rosterKey struct{ name, team string }
	var all []Player
	seen := map[rosterKey]bool{}
	for _, team := range c.TeamNames(ctx) {
		for _, p := range c.RosterWithPositions(ctx, team) {
			p.Team = team
			if p.Position == "" {
				p.Position = "Midfielder"
			}
			k := rosterKey{strings.ToLower(p.Name), team}
			if seen[k] {
				continue
			}
			seen[k] = true
			all = append(all, p)
		}
	}
	return all
}

func (c *Client) applyDefaultStats(ctx context.Context, players []Player) []Player {
	teams := c.TeamsByName(ctx)
	out := make([]Player, len(players))
	for i, p := range players {
		pos := strings.ToLower(p.Position)
		if p.Goals == 0 {
			switch {
			case strings.Contains(pos, "forward"):
				p.Goals = defaultForwardGoals
			case strings.Contains(pos, "mid"):
				p.Goals = defaultMidfielderGoals
			}
		}
		if p.Assists == 0 && (strings.Contains(pos, "forward") || strings.Contains(pos, "mid")) {
			p.Assists = defaultAttackerAssists
		}
		if p.Rating == 0 {
			switch {
			case strings.Contains(pos, "goalkeeper"):
				p.Rating = defaultKeeperRating
			case strings.Contains(pos, "forward"):
				p.Rating = defaultForwardRating
			default:
				p.Rating = defaultOutfieldRating
			}
		}
		if p.CleanSheets == 0 && strings.Contains(pos, "goalkeeper") {
			p.CleanSheets = defaultKeeperCleanSheets
		}
		if p.Saves == 0 && strings.Contains(pos, "goalkeeper") {
			p.Saves = defaultKeeperSaves
		}
		if p.Age == 0 {
			p.Age = defaultPlayerAge
		}
		p.Crest = teams[p.Team].Flag
		out[i] = p
	}
	return out
}

// PlayersByPosition returns candidates from all rosters filtered by
// position group: "forwards", "midfielders", "goalkeepers" or "young".
// The young pool takes everyone under 22, or the first twenty players when
// roster data carries no real ages.
func (c *Client) PlayersByPosition(ctx context.Context, position string) []Player {
	position = strings.ToLower(position)
	if position == "" {
		position = "forwards"
	}
	if len(c.TeamNames(ctx)) == 0 {
		return nil
	}
	all := c.applyDefaultStats(ctx, c.AllRosters(ctx))
	switch position {
	case "goalkeepers":
		return filterByPosition(all, "goalkeeper")
	case "midfielders":
		return filterByPosition(all, "midfielder")
	case "young", "u21":
		young := make([]Player, 0)
		for _, p := range all {
			age := p.Age
			if age == 0 {
				age = 22
			}
			if age < 22 {
				young = append(young, p)
			}
		}
		if len(young) == 0 {
			if len(all) > 20 {
				all = all[:20]
			}
			return all
		}
		return young
	default:
		return filterByPosition(all, "forward")
	}
}

func filterByPosition(players []Player, key string) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Position), key) {
			out = append(out, p)
		}
	}
	return out
}

// FallbackCandidates returns the curated award roster, filtered to players
// whose team actually qualified. Used when live rosters yield fewer than
// five candidates.
func (c *Client) FallbackCandidates(ctx context.Context, award string) []Player {
	var names [][2]string
	switch award {
	case "golden_ball":
		names = goldenBallFallbackNames
	case "golden_boot":
		names = goldenBootFallbackNames
	case "golden_glove":
		names = goldenGloveFallbackNames
	case "young_player":
		names = youngPlayerFallbackNames
	default:
		return nil
	}
	teams := c.TeamsByName(ctx)
	out := make([]Player, 0, len(names))
	for _, nt := range names {
		team, ok := teams[nt[1]]
		if !ok {
			continue
		}
		out = append(out, Player{Name: nt[0], Team: nt[1], Crest: team.Flag})
	}
	return out
}

// EnrichForGoldenBall overlays biography data (honours, caps, goals,
// rating) onto candidates, bounded by maxEnrichedPlayers. Also used for
// Golden Boot candidates, which score on the same enriched fields.
func (c *Client) EnrichForGoldenBall(ctx context.Context, players []Player) []Player {
	if len(players) == 0 {
		return players
	}
	out := make([]Player, len(players))
	for i, p := range players {
		if i >= maxEnrichedPlayers || len(p.Name) < 3 {
			out[i] = p
			continue
		}
		info := c.PlayerInfo(ctx, p.Name)
		p.Honours = info.Honours
		if info.Position != "" {
			p.Position = info.Position
		}
		if info.NationalGoals != nil {
			p.Goals = *info.NationalGoals
		}
		if info.NationalCaps != nil {
			p.Caps = *info.NationalCaps
		}
		if info.RatingEstimate > 0 {
			p.Rating = info.RatingEstimate
		}
		out[i] = p
	}
	return out
}

// EnrichGoalkeepers overlays curated keeper stats and fills the rest with
// keeper defaults.
func (c *Client) EnrichGoalkeepers(ctx context.Context, players []Player) []Player {
	teams := c.TeamsByName(ctx)
	out := make([]Player, len(players))
	for i, p := range players {
		if info, ok := knownKeepers[p.Name]; ok {
			p.CleanSheets = info.CleanSheets
			p.Saves = info.Saves
			p.Rating = info.RatingEstimate
		} else {
			if p.CleanSheets == 0 {
				p.CleanSheets = 12
			}
			if p.Saves == 0 {
				p.Saves = 80
			}
			if p.Rating == 0 {
				p.Rating = 85
			}
		}
		if flag := teams[p.Team].Flag; flag != "" {
			p.Crest = flag
		}
		out[i] = p
	}
	return out
}

// EnrichYoungPlayers overlays curated U21 stats and fills the rest with
// young-player defaults.
func (c *Client) EnrichYoungPlayers(ctx context.Context, players []Player) []Player {
	teams := c.TeamsByName(ctx)
	out := make([]Player, len(players))
	for i, p := range players {
		if info, ok := knownYoungPlayers[p.Name]; ok {
			p.Age = info.Age
			p.Goals = info.Goals
			p.Assists = info.Assists
			p.Rating = info.RatingEstimate
		} else {
			if p.Age == 0 {
				p.Age = 21
			}
			if p.Goals == 0 {
				p.Goals = 2
			}
			if p.Assists == 0 {
				p.Assists = 4
			}
			if p.Rating == 0 {
				p.Rating = 84
			}
		}
		if flag := teams[p.Team].Flag; flag != "" {
			p.Crest = flag
		}
		out[i] = p
	}
	return out
}
