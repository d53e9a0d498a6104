package source

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	qualificationPage = "2026 FIFA World Cup qualification"
	rankingPage       = "FIFA Men's World Ranking"
)

// maxRatingEstimate caps the derived player rating.
const maxRatingEstimate = 95

var (
	qualifiedRowRe    = regexp.MustCompile(`data-sort-value="([^"]+)"[^|]*\|[^|]*\{\{fb\|([A-Z]{3})\}\}`)
	wikiLinkRe        = regexp.MustCompile(`\[\[([^\]|]+)(?:\|[^\]]*)?\]\]`)
	rankingRowRe      = regexp.MustCompile(`\|\s*(\d+)\s*(?:\|\|?|\|)\s*\[\[([^\]|]+)(?:\|[^\]]*)?\]\]\s*(?:\|\|?|\|)\s*(\d+)`)
	rankingLooseRe    = regexp.MustCompile(`\|\s*(\d+)\s*\|\s*([^|]+?)\s*\|\s*(\d+)`)
	nationalCapsRe    = regexp.MustCompile(`(?i)\|\s*nationalcaps\s*=\s*(\d+)`)
	nationalGoalsRe   = regexp.MustCompile(`(?i)\|\s*nationalgoals\s*=\s*(\d+)`)
	infoboxPositionRe = regexp.MustCompile(`\|\s*position\s*=\s*([^|\n]+)`)
	goalsInCapsRe     = regexp.MustCompile(`(\d+)\s*goals?\s*(?:in|from)\s*(\d+)\s*caps?`)
	capsAndGoalsRe    = regexp.MustCompile(`(\d+)\s*caps?\s*(?:and|,)\s*(\d+)\s*goals?`)
	renderedRankRe    = regexp.MustCompile(`(?m)^\s*(\d{1,2})\s+([A-Za-z][A-Za-z .'-]{2,28}?)\s+(\d{3,4})(?:\.\d+)?\s*$`)
)

// parseQualifiedTeams extracts the qualified sides from the qualification
// page wikitext. Rows look like:
//
//	data-sort-value="argentina" ... {{fb|ARG}}
//
// Header rows carry sort values "a" or "hosts" and are skipped.
func parseQualifiedTeams(content string) []QualifiedTeam {
	var teams []QualifiedTeam
	seen := map[string]bool{}
	for _, m := range qualifiedRowRe.FindAllStringSubmatch(content, -1) {
		sortVal := strings.ToLower(strings.TrimSpace(m[1]))
		code := strings.ToUpper(m[2])
		if seen[code] || sortVal == "a" || sortVal == "hosts" {
			continue
		}
		seen[code] = true
		name := nameBySortValue[sortVal]
		if name == "" {
			name = strings.Title(strings.ReplaceAll(sortVal, "_", " "))
		}
		if name == "United States" {
			name = "USA"
		}
		teams = append(teams, QualifiedTeam{Name: name, Code: code, SortValue: sortVal})
	}
	return teams
}

// extractPlayerLinks pulls player names out of [[Name]] / [[Name|display]]
// links, dropping files, categories and navigation links.
func extractPlayerLinks(markup, team string) []Player {
	var players []Player
	for _, m := range wikiLinkRe.FindAllStringSubmatch(markup, -1) {
		name := strings.TrimSpace(m[1])
		if strings.HasPrefix(name, "File:") || strings.HasPrefix(name, "Category:") ||
			strings.Contains(strings.ToLower(name), "football") || strings.Contains(name, "FIFA") {
			continue
		}
		if len(name) < 4 || len(name) > 40 {
			continue
		}
		if isAllDigits(name) || strings.Contains(name, "(") {
			continue
		}
		players = append(players, Player{Name: name, Team: team})
	}
	return players
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseRankingRows reads the world ranking table from wikitext. The primary
// pattern matches "| 3 || [[Brazil]] || 1784" style rows and stops past rank
// 60; a looser pattern without links is tried when it finds nothing.
func parseRankingRows(content string) []RankingRow {
	var rows []RankingRow
	for _, m := range rankingRowRe.FindAllStringSubmatch(content, -1) {
		rank, _ := strconv.Atoi(m[1])
		if rank > 60 {
			break
		}
		points, _ := strconv.Atoi(m[3])
		rows = append(rows, RankingRow{Rank: rank, Team: strings.TrimSpace(m[2]), Points: points})
	}
	if len(rows) == 0 {
		for _, m := range rankingLooseRe.FindAllStringSubmatch(content, -1) {
			rank, _ := strconv.Atoi(m[1])
			team := strings.TrimSpace(m[2])
			points, _ := strconv.Atoi(m[3])
			if rank > 60 || len(team) > 30 {
				continue
			}
			rows = append(rows, RankingRow{Rank: rank, Team: team, Points: points})
		}
	}
	if len(rows) > 55 {
		rows = rows[:55]
	}
	return rows
}

// parseRenderedRanking recovers ranking rows from readable page text, where
// each row collapses to "rank team points" on its own line.
func parseRenderedRanking(text string) []RankingRow {
	var rows []RankingRow
	seen := map[int]bool{}
	for _, m := range renderedRankRe.FindAllStringSubmatch(text, -1) {
		rank, _ := strconv.Atoi(m[1])
		if rank == 0 || rank > 60 || seen[rank] {
			continue
		}
		points, _ := strconv.Atoi(m[3])
		seen[rank] = true
		rows = append(rows, RankingRow{Rank: rank, Team: strings.TrimSpace(m[2]), Points: points})
	}
	if len(rows) > 55 {
		rows = rows[:55]
	}
	return rows
}

// parseHonours scans a biography intro for award mentions. The intro is
// matched lowercased; returned labels are the canonical honour names the
// scorers key on.
func parseHonours(extract string) []string {
	e := strings.ToLower(extract)
	honours := []string{}
	if strings.Contains(e, "ballon d'or") || strings.Contains(e, "ballon d’or") {
		if strings.Contains(e, "won the ballon d'or") || strings.Contains(e, "won the ballon d’or") ||
			strings.Contains(e, "ballon d'or winner") {
			honours = append(honours, "Ballon d'Or winner")
		} else {
			honours = append(honours, "Ballon d'Or")
		}
	}
	if strings.Contains(e, "golden boot") {
		honours = append(honours, "Golden Boot")
	}
	if strings.Contains(e, "golden ball") && strings.Contains(e, "world cup") {
		honours = append(honours, "World Cup Golden Ball")
	}
	if strings.Contains(e, "fifa world player") || strings.Contains(e, "fifa best") || strings.Contains(e, "the best fifa") {
		honours = append(honours, "FIFA Best")
	}
	if strings.Contains(e, "uefa best") || strings.Contains(e, "uefa player of the year") || strings.Contains(e, "uefa men's player") {
		honours = append(honours, "UEFA Best Player")
	}
	if strings.Contains(e, "world cup winner") || strings.Contains(e, "world cup champion") {
		honours = append(honours, "World Cup winner")
	}
	if strings.Contains(e, "champions league") && (strings.Contains(e, "won") || strings.Contains(e, "winner")) {
		honours = append(honours, "Champions League winner")
	}
	return honours
}

// parsePlayerPage combines the plain-text intro and the raw wikitext of a
// biography into a PlayerInfo: honours from the intro, caps and goals from
// the infobox with a prose fallback, and a rating estimated from both.
func parsePlayerPage(extract, wikitext string) PlayerInfo {
	info := PlayerInfo{Honours: parseHonours(extract)}
	if m := nationalCapsRe.FindStringSubmatch(wikitext); m != nil {
		v, _ := strconv.Atoi(m[1])
		info.NationalCaps = &v
	}
	if m := nationalGoalsRe.FindStringSubmatch(wikitext); m != nil {
		v, _ := strconv.Atoi(m[1])
		info.NationalGoals = &v
	}
	for _, m := range infoboxPositionRe.FindAllStringSubmatch(wikitext, -1) {
		pos := strings.Trim(strings.TrimSpace(m[1]), "[]")
		if len(pos) < 25 && !strings.Contains(strings.ToLower(pos), "football") {
			info.Position = pos
			break
		}
	}
	if info.NationalGoals == nil || info.NationalCaps == nil {
		e := strings.ToLower(extract)
		if m := goalsInCapsRe.FindStringSubmatch(e); m != nil {
			g, _ := strconv.Atoi(m[1])
			c, _ := strconv.Atoi(m[2])
			info.NationalGoals, info.NationalCaps = &g, &c
		} else if m := capsAndGoalsRe.FindStringSubmatch(e); m != nil {
			c, _ := strconv.Atoi(m[1])
			g, _ := strconv.Atoi(m[2])
			info.NationalGoals, info.NationalCaps = &g, &c
		}
	}
	info.RatingEstimate = ratingEstimate(info.Honours, info.NationalGoals, info.NationalCaps)
	return info
}

// ratingEstimate maps honours to a base rating tier, then adds a
// goals-per-cap bonus as a proxy for attacking impact.
func ratingEstimate(honours []string, goals, caps *int) float64 {
	rating := 80.0
	switch {
	case hasHonour(honours, "Ballon d'Or winner"):
		rating = 94
	case hasHonour(honours, "World Cup Golden Ball") || hasHonour(honours, "Ballon d'Or"):
		rating = 91
	case hasHonour(honours, "FIFA Best") || hasHonour(honours, "UEFA Best Player"):
		rating = 89
	case hasHonour(honours, "Golden Boot"):
		rating = 88
	case hasHonour(honours, "World Cup winner") || hasHonour(honours, "Champions League winner"):
		rating = 86
	}
	if goals != nil && caps != nil && *caps > 0 {
		gpc := float64(*goals) / float64(*caps)
		rating = math.Min(maxRatingEstimate, rating+gpc*15)
	}
	return rating
}

func hasHonour(honours []string, name string) bool {
	for _, h := range honours {
		if h == name {
			return true
		}
	}
	return false
}
