package source

import (
	"context"
	"math"
	"sort"
	"strings"
)

// snapshot returns the assembled team table, building it on first use. The
// table is memoized until Invalidate; the scheduler drops it after a refresh
// so reads pick up new upstream data.
func (c *Client) snapshot(ctx context.Context) ([]Team, map[string]Team) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.built {
		c.buildTeamsLocked(ctx)
	}
	return c.list, c.byName
}

func (c *Client) buildTeamsLocked(ctx context.Context) {
	qualified := c.QualifiedTeams(ctx)
	lastWC := c.WorldCup(2022)
	ranking := c.FIFARankings(ctx)

	fifaByTeam := make(map[string]RankingRow, len(ranking))
	for _, r := range ranking {
		if name := strings.TrimSpace(r.Team); name != "" {
			fifaByTeam[name] = r
		}
	}
	// Ranking table names do not always match qualification names.
	for _, r := range ranking {
		switch strings.TrimSpace(r.Team) {
		case "United States":
			fifaByTeam["USA"] = r
		case "Korea Republic":
			if _, ok := fifaByTeam["South Korea"]; !ok {
				fifaByTeam["South Korea"] = r
			}
		case "Côte d'Ivoire":
			if _, ok := fifaByTeam["Ivory Coast"]; !ok {
				fifaByTeam["Ivory Coast"] = r
			}
		}
	}

	teams := make([]Team, 0, len(qualified))
	for i, q := range qualified {
		name := q.Name
		code := q.Code
		if code == "" {
			code = shortCode(name)
		}
		info := c.TeamInfo(ctx, name)
		flag := info.Flag
		if flag == "" {
			flag = flagByCode[code]
		}
		conf := confederationByTeam[name]
		if conf == "" {
			conf = "UEFA"
		}
		rank := i + 1
		points := 0
		if row, ok := fifaByTeam[name]; ok {
			rank = row.Rank
			points = row.Points
		} else {
			points = 1800 - rank*25
			if points < 0 {
				points = 0
			}
		}
		ovr := 88 - float64(rank-1)*0.4
		if ovr < 70 {
			ovr = 70
		}
		if ovr > 90 {
			ovr = 90
		}
		teams = append(teams, Team{
			Name:          name,
			Code:          code,
			Flag:          flag,
			FIFARank:      rank,
			FIFAPoints:    points,
			WorldCupWins:  worldCupWins[name],
			LastWorldCup:  lastWorldCupLabel(lastWC, name),
			HomeAdvantage: hosts2026[name],
			Confederation: conf,
			OverallRating: math.Round(ovr),
		})
	}
	sort.SliceStable(teams, func(a, b int) bool {
		if teams[a].FIFARank != teams[b].FIFARank {
			return teams[a].FIFARank < teams[b].FIFARank
		}
		return teams[a].FIFAPoints > teams[b].FIFAPoints
	})

	c.list = teams
	c.byName = make(map[string]Team, len(teams))
	for _, t := range teams {
		c.byName[t.Name] = t
	}
	c.built = true
}

func lastWorldCupLabel(res TournamentResult, team string) string {
	switch team {
	case res.Winner:
		return "2022 (Winners)"
	case res.RunnerUp:
		return "2022 (Finalists)"
	case res.Third:
		return "2022 (Third Place)"
	case res.Fourth:
		return "2022 (Fourth Place)"
	}
	return "2022 (Group Stage)"
}

func shortCode(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// Teams returns all qualified teams ordered by rank.
func (c *Client) Teams(ctx context.Context) []Team {
	list, _ := c.snapshot(ctx)
	return list
}

// TeamsByName returns the team lookup used for crests and scoring factors.
func (c *Client) TeamsByName(ctx context.Context) map[string]Team {
	_, byName := c.snapshot(ctx)
	return byName
}

func (c *Client) TeamNames(ctx context.Context) []string {
	list, _ := c.snapshot(ctx)
	names := make([]string, 0, len(list))
	for _, t := range list {
		names = append(names, t.Name)
	}
	return names
}

// RankingTable joins ranking rows with team presentation data. This is the
// payload the fetch-rankings step reports.
func (c *Client) RankingTable(ctx context.Context) []RankingEntry {
	list, _ := c.snapshot(ctx)
	entries := make([]RankingEntry, 0, len(list))
	for i, t := range list {
		rank := t.FIFARank
		if rank == 0 {
			rank = i + 1
		}
		entries = append(entries, RankingEntry{
			Rank:          rank,
			Team:          t.Name,
			Points:        t.FIFAPoints,
			Confederation: t.Confederation,
			Crest:         t.Flag,
			ShortName:     t.Code,
		})
	}
	return entries
}

// Invalidate drops the memoized team table; the next read rebuilds it.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.built = false
	c.list = nil
	c.byName = nil
	c.mu.Unlock()
}

// RefreshAll rebuilds the team table and re-warms the per-team rosters,
// honoring cache TTLs. The scheduler drives this on its cron.
func (c *Client) RefreshAll(ctx context.Context) {
	c.Invalidate()
	teams := c.Teams(ctx)
	for _, t := range teams {
		c.RosterWithPositions(ctx, t.Name)
	}
	c.logger.Printf("refreshed source data for %d teams", len(teams))
}
