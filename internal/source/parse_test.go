package source

import (
	"strings"
	"testing"
)

const qualificationSample = `
|-
| data-sort-value="hosts" | {{fb|XXX}}
|-
| data-sort-value="canada" | {{fb|CAN}}
|-
| data-sort-value="united states" | {{fb|USA}}
|-
| data-sort-value="argentina" | {{fb|ARG}}
|-
| data-sort-value="argentina" | {{fb|ARG}}
`

func TestParseQualifiedTeams(t *testing.T) {
	teams := parseQualifiedTeams(qualificationSample)
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams, got %d: %+v", len(teams), teams)
	}
	if teams[0].Name != "Canada" || teams[0].Code != "CAN" {
		t.Fatalf("expected Canada/CAN first, got %+v", teams[0])
	}
	if teams[1].Name != "USA" {
		t.Fatalf("expected united states to normalize to USA, got %q", teams[1].Name)
	}
	if teams[2].Code != "ARG" {
		t.Fatalf("expected deduped ARG last, got %+v", teams[2])
	}
}

func TestParseQualifiedTeamsUnknownSortValue(t *testing.T) {
	teams := parseQualifiedTeams(`| data-sort-value="faroe_islands" | {{fb|FRO}}`)
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	if teams[0].Name != "Faroe Islands" {
		t.Fatalf("expected title-cased name, got %q", teams[0].Name)
	}
}

func TestParseRankingRows(t *testing.T) {
	content := `
|1||[[Argentina]]||1867
|2||[[France]]||1859
|61||[[Elsewhere]]||1200
`
	rows := parseRankingRows(content)
	if len(rows) != 2 {
		t.Fatalf("expected parsing to stop before rank 61, got %d rows", len(rows))
	}
	if rows[0].Team != "Argentina" || rows[0].Points != 1867 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
}

func TestParseRankingRowsLooseFallback(t *testing.T) {
	content := `
| 1 | Argentina | 1867
| 2 | France | 1859
| 3 | A country with a very long name over thirty | 1800
`
	rows := parseRankingRows(content)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows from loose pattern, got %d: %+v", len(rows), rows)
	}
	if rows[1].Team != "France" {
		t.Fatalf("expected France, got %q", rows[1].Team)
	}
}

func TestExtractPlayerLinks(t *testing.T) {
	markup := `
[[Lionel Messi]] [[File:Flag.png]] [[Category:Players]] [[Argentina national football team]]
[[FIFA World Cup]] [[Ann]] [[123456]] [[Julian Alvarez (footballer)]] [[Emiliano Martinez|Dibu]]
`
	players := extractPlayerLinks(markup, "Argentina")
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d: %+v", len(players), players)
	}
	if players[0].Name != "Lionel Messi" || players[0].Team != "Argentina" {
		t.Fatalf("unexpected first player: %+v", players[0])
	}
	if players[1].Name != "Emiliano Martinez" {
		t.Fatalf("expected piped link to keep target, got %q", players[1].Name)
	}
}

func TestParseHonoursTiers(t *testing.T) {
	honours := parseHonours("He won the Ballon d'Or in 2023 and earned the Golden Boot.")
	if len(honours) != 2 {
		t.Fatalf("expected 2 honours, got %v", honours)
	}
	if honours[0] != "Ballon d'Or winner" {
		t.Fatalf("expected winner tier, got %q", honours[0])
	}

	honours = parseHonours("A Ballon d'Or nominee who lifted the Champions League as a winner.")
	if honours[0] != "Ballon d'Or" {
		t.Fatalf("expected nominee tier, got %q", honours[0])
	}
	if !hasHonour(honours, "Champions League winner") {
		t.Fatalf("expected Champions League winner, got %v", honours)
	}
}

func TestParsePlayerPageInfobox(t *testing.T) {
	wikitext := "{{Infobox football biography\n| position = [[Forward]]\n| nationalcaps = 60\n| nationalgoals = 30\n}}"
	info := parsePlayerPage("He won the Champions League.", wikitext)
	if info.NationalCaps == nil || *info.NationalCaps != 60 {
		t.Fatalf("expected 60 caps, got %v", info.NationalCaps)
	}
	if info.NationalGoals == nil || *info.NationalGoals != 30 {
		t.Fatalf("expected 30 goals, got %v", info.NationalGoals)
	}
	if info.Position != "Forward" {
		t.Fatalf("expected Forward, got %q", info.Position)
	}
	// Tier 86 plus goals-per-cap bonus of 0.5*15.
	if info.RatingEstimate != 93.5 {
		t.Fatalf("expected rating 93.5, got %v", info.RatingEstimate)
	}
}

func TestParsePlayerPageProseFallback(t *testing.T) {
	info := parsePlayerPage("A forward with 25 goals in 50 caps for his country.", "")
	if info.NationalGoals == nil || *info.NationalGoals != 25 {
		t.Fatalf("expected 25 goals from prose, got %v", info.NationalGoals)
	}
	if info.NationalCaps == nil || *info.NationalCaps != 50 {
		t.Fatalf("expected 50 caps from prose, got %v", info.NationalCaps)
	}
}

func TestRatingEstimateCap(t *testing.T) {
	goals, caps := 130, 100
	r := ratingEstimate([]string{"Ballon d'Or winner"}, &goals, &caps)
	if r != maxRatingEstimate {
		t.Fatalf("expected rating capped at %d, got %v", maxRatingEstimate, r)
	}
	if got := ratingEstimate(nil, nil, nil); got != 80 {
		t.Fatalf("expected base rating 80, got %v", got)
	}
}

func TestParseRenderedRanking(t *testing.T) {
	text := strings.Join([]string{
		"FIFA Men's World Ranking",
		" 1 Argentina 1867",
		" 2 France 1859.62",
		"not a row",
		" 2 France 1859",
	}, "\n")
	rows := parseRenderedRanking(text)
	if len(rows) != 2 {
		t.Fatalf("expected 2 unique rows, got %d: %+v", len(rows), rows)
	}
	if rows[1].Team != "France" || rows[1].Points != 1859 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}
