package predict

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mohammad-safakhou/mundial/config"
	"github.com/mohammad-safakhou/mundial/internal/source"
)

// newOfflineEngine backs the engine with a dead API endpoint so every
// source accessor resolves to its static fallback, which makes scores
// fully deterministic.
func newOfflineEngine(t *testing.T) *Engine {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	cache, err := source.NewFileCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	src := source.NewClient(config.SourcesConfig{APIURL: srv.URL, TimeoutSeconds: 2, UserAgent: "mundial-test/1.0"}, cache)
	return New(src)
}

func entryString(t *testing.T, entry map[string]any, key string) string {
	t.Helper()
	s, ok := entry[key].(string)
	if !ok {
		t.Fatalf("expected string %q in entry %+v", key, entry)
	}
	return s
}

func entryFloat(t *testing.T, entry map[string]any, key string) float64 {
	t.Helper()
	f, ok := entry[key].(float64)
	if !ok {
		t.Fatalf("expected float %q in entry %+v", key, entry)
	}
	return f
}

func TestPredictTeamsTopFive(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictTeams(context.Background(), nil, Weights{})

	if out["result"] != "Computed weighted scores for all teams" {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	top5, ok := out["top5"].([]map[string]any)
	if !ok || len(top5) != 5 {
		t.Fatalf("expected 5 top entries, got %v", out["top5"])
	}
	want := []string{"Argentina", "France", "Brazil", "Canada", "England"}
	for i, name := range want {
		if got := entryString(t, top5[i], "team"); got != name {
			t.Fatalf("rank %d: expected %q, got %q", i+1, name, got)
		}
	}
	arg := top5[0]
	if got := entryFloat(t, arg, "score"); got != 24.5 {
		t.Fatalf("expected Argentina score 24.5, got %v", got)
	}
	factors, ok := arg["factors"].(map[string]float64)
	if !ok {
		t.Fatalf("expected factors map, got %+v", arg["factors"])
	}
	if factors["fifa"] != 100 || factors["historical"] != 80 || factors["form"] != 80 || factors["squad"] != 45 || factors["home"] != 0 {
		t.Fatalf("unexpected Argentina factors: %+v", factors)
	}
	wantDesc := "Argentina – 2022 (Winners); 3 World Cup wins, FIFA rank #1."
	if got := entryString(t, arg, "description"); got != wantDesc {
		t.Fatalf("expected %q, got %q", wantDesc, got)
	}
	reason := entryString(t, arg, "reason")
	if !strings.HasPrefix(reason, "FIFA rank (25%): 100, Historical (20%): 80,") {
		t.Fatalf("unexpected reason: %q", reason)
	}
	if !strings.HasSuffix(reason, "Weighted total → 24.6%.") {
		t.Fatalf("unexpected reason tail: %q", reason)
	}

	data, ok := out["data"].(map[string]any)
	if !ok || len(data) != 5 {
		t.Fatalf("expected data keyed 1..5, got %v", out["data"])
	}
	if first, ok := data["1"].(map[string]any); !ok || entryString(t, first, "team") != "Argentina" {
		t.Fatalf("expected data[1] to be the leader, got %v", data["1"])
	}
}

func TestPredictTeamsProbabilitiesSumToHundred(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictTeams(context.Background(), nil, Weights{})
	top5 := out["top5"].([]map[string]any)

	sum := 0.0
	for _, entry := range top5 {
		p := entryFloat(t, entry, "probability")
		if p < 0 || p > 100 {
			t.Fatalf("probability out of range: %v in %+v", p, entry)
		}
		sum += p
	}
	if diff := math.Abs(sum - 100); diff > 0.10001 {
		t.Fatalf("probabilities sum to %v, want 100 ± 0.1", sum)
	}
}

func TestPredictTeamsCustomRows(t *testing.T) {
	e := newOfflineEngine(t)
	rows := []source.RankingEntry{
		{Rank: 1, Team: "Alpha"},
		{Rank: 2, Team: "Beta"},
	}
	out := e.PredictTeams(context.Background(), rows, Weights{})
	top5 := out["top5"].([]map[string]any)
	if len(top5) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top5))
	}
	if got := entryFloat(t, top5[0], "score"); got != 13.6 {
		t.Fatalf("expected Alpha score 13.6, got %v", got)
	}
	if got := entryFloat(t, top5[1], "score"); got != 9.3 {
		t.Fatalf("expected Beta score 9.3, got %v", got)
	}
	wantDesc := "Alpha – ; 0 World Cup wins, FIFA rank #1."
	if got := entryString(t, top5[0], "description"); got != wantDesc {
		t.Fatalf("expected %q, got %q", wantDesc, got)
	}
	if p := entryFloat(t, top5[0], "probability"); p != 59.4 {
		t.Fatalf("expected probability 59.4, got %v", p)
	}
}

func TestPredictPlayersGoldenBootFallback(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictPlayers(context.Background(), nil, GoldenBoot)

	if out["result"] != "Computed golden_boot scores" {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	top5, ok := out["top5"].([]map[string]any)
	if !ok || len(top5) != 5 {
		t.Fatalf("expected 5 fallback candidates, got %v", out["top5"])
	}
	first := top5[0]
	if got := entryString(t, first, "name"); got != "Cristiano Ronaldo" {
		t.Fatalf("expected Ronaldo on top, got %q", got)
	}
	if goals, ok := first["goals"].(int); !ok || goals != 130 {
		t.Fatalf("expected 130 goals carried into entry, got %v", first["goals"])
	}
	wantDesc := "Cristiano Ronaldo – Portugal. Elite forward, 130 international goals."
	if got := entryString(t, first, "description"); got != wantDesc {
		t.Fatalf("expected %q, got %q", wantDesc, got)
	}

	sum := 0.0
	for _, entry := range top5 {
		sum += entryFloat(t, entry, "probability")
	}
	if diff := math.Abs(sum - 100); diff > 0.10001 {
		t.Fatalf("probabilities sum to %v, want 100 ± 0.1", sum)
	}
}

func TestPredictPlayersYoungKnownStats(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictPlayers(context.Background(), nil, YoungPlayer)

	top5 := out["top5"].([]map[string]any)
	if len(top5) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(top5))
	}
	if got := entryString(t, top5[0], "name"); got != "Lamine Yamal" {
		t.Fatalf("expected Yamal on top, got %q", got)
	}
	if got := entryFloat(t, top5[0], "score"); got != 48.6 {
		t.Fatalf("expected Yamal score 48.6, got %v", got)
	}
	// Curated stats overlay even zero goal counts.
	second := top5[1]
	if got := entryString(t, second, "name"); got != "Pau Cubarsi" {
		t.Fatalf("expected Cubarsi second, got %q", got)
	}
	if got := entryFloat(t, second, "score"); got != 45.6 {
		t.Fatalf("expected Cubarsi score 45.6, got %v", got)
	}
	if age, ok := second["age"].(int); !ok || age != 18 {
		t.Fatalf("expected age 18 in entry, got %v", second["age"])
	}
	wantDesc := "Pau Cubarsi – Spain. Age 18, high potential."
	if got := entryString(t, second, "description"); got != wantDesc {
		t.Fatalf("expected %q, got %q", wantDesc, got)
	}
}

func TestPredictPlayersGloveExtras(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictPlayers(context.Background(), nil, GoldenGlove)

	top5 := out["top5"].([]map[string]any)
	if len(top5) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(top5))
	}
	first := top5[0]
	if got := entryString(t, first, "name"); got != "Thibaut Courtois" {
		t.Fatalf("expected Courtois on top, got %q", got)
	}
	if got := entryFloat(t, first, "score"); got != 55.5 {
		t.Fatalf("expected score 55.5, got %v", got)
	}
	if cs, ok := first["clean_sheets"].(int); !ok || cs != 20 {
		t.Fatalf("expected 20 clean sheets, got %v", first["clean_sheets"])
	}
	wantDesc := "Thibaut Courtois – Belgium goalkeeper. 20 clean sheets, 102 saves."
	if got := entryString(t, first, "description"); got != wantDesc {
		t.Fatalf("expected %q, got %q", wantDesc, got)
	}
}

func TestPredictPlayersUnknownAward(t *testing.T) {
	e := newOfflineEngine(t)
	out := e.PredictPlayers(context.Background(), nil, Award("balloon_cup"))

	if out["result"] != "No players to score" {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	if top5 := out["top5"].([]map[string]any); len(top5) != 0 {
		t.Fatalf("expected empty top5, got %v", top5)
	}
	if data := out["data"].(map[string]any); len(data) != 0 {
		t.Fatalf("expected empty data, got %v", data)
	}
}

func TestScoreFormulas(t *testing.T) {
	// Scores are compared at the one-decimal precision the envelope reports.
	withHonour := source.Player{Rating: 90, Goals: 10, Assists: 5, Honours: []string{"Ballon d'Or winner"}}
	if got := round1(ScoreGoldenBall(withHonour)); got != 74.0 {
		t.Fatalf("expected honour-tier score 74.0, got %v", got)
	}
	plain := source.Player{Rating: 90, Goals: 10, Assists: 5}
	if got := round1(ScoreGoldenBall(plain)); got != 40.5 {
		t.Fatalf("expected raw score 40.5, got %v", got)
	}
	if got := round1(ScoreGoldenBoot(source.Player{Goals: 20, Rating: 85})); got != 33.0 {
		t.Fatalf("expected boot score 33.0, got %v", got)
	}
	if got := round1(ScoreGoldenGlove(source.Player{CleanSheets: 18, Rating: 90})); got != 54.0 {
		t.Fatalf("expected glove score 54.0, got %v", got)
	}
	if got := round1(ScoreYoungPlayer(source.Player{Age: 19, Rating: 84, Goals: 6, Assists: 4})); got != 45.2 {
		t.Fatalf("expected young score 45.2, got %v", got)
	}
	// Missing rating and age fall back to the model defaults.
	if got := round1(ScoreGoldenBoot(source.Player{Goals: 10})); got != 24.0 {
		t.Fatalf("expected default-rating boot score 24.0, got %v", got)
	}
	if got := round1(ScoreYoungPlayer(source.Player{Rating: 80})); got != 32.0 {
		t.Fatalf("expected default-age young score 32.0, got %v", got)
	}
}

func TestBuildReportShape(t *testing.T) {
	payload := map[string]any{
		"result": "Computed weighted scores for all teams",
		"top5": []map[string]any{
			{"team": "Argentina", "probability": 24.6},
			{"team": "France", "probability": 22.8},
		},
	}
	out := BuildReport(payload)
	if out["result"] != "Report generated" {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	report := out["data"].(map[string]any)
	preds := report["predictions"].(map[string]any)
	if len(preds) != 2 {
		t.Fatalf("expected 2 prediction entries, got %v", preds)
	}
	if first := preds["1"].(map[string]any); first["team"] != "Argentina" {
		t.Fatalf("expected Argentina first, got %v", first)
	}
	factors := report["key_factors"].([]string)
	if len(factors) != 5 || factors[0] != "FIFA ranking (25%)" {
		t.Fatalf("unexpected key factors: %v", factors)
	}
	stamp := report["generated_at"].(string)
	if _, err := time.Parse(generatedAtLayout, stamp); err != nil {
		t.Fatalf("generated_at %q does not parse: %v", stamp, err)
	}
}

func TestBuildReportFromDataMap(t *testing.T) {
	payload := map[string]any{
		"result": "Computed weighted scores for all teams",
		"data": map[string]any{
			"2": map[string]any{"team": "France"},
			"1": map[string]any{"team": "Argentina"},
		},
	}
	out := BuildReport(payload)
	preds := out["data"].(map[string]any)["predictions"].(map[string]any)
	if len(preds) != 2 {
		t.Fatalf("expected 2 entries, got %v", preds)
	}
	if first := preds["1"].(map[string]any); first["team"] != "Argentina" {
		t.Fatalf("expected key order to preserve rank, got %v", first)
	}
}

func TestVisualizationLabels(t *testing.T) {
	payload := map[string]any{
		"top5": []map[string]any{
			{"team": "Argentina", "probability": 24.6},
			{"name": "Lionel Messi", "probability": 30.1},
			{"team": "Brazil", "score": 19.7},
		},
	}
	out := Visualization(payload)
	if out["result"] != "Visualization data ready" {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	data := out["data"].(map[string]any)
	labels := data["labels"].([]string)
	values := data["values"].([]float64)
	if len(labels) != 3 || labels[0] != "Argentina" || labels[1] != "Lionel Messi" || labels[2] != "Brazil" {
		t.Fatalf("unexpected labels: %v", labels)
	}
	if values[0] != 24.6 || values[1] != 30.1 || values[2] != 19.7 {
		t.Fatalf("unexpected values: %v", values)
	}
	if data["type"] != "bar" {
		t.Fatalf("expected bar chart, got %v", data["type"])
	}
}

func TestVisualizationEmptyPayload(t *testing.T) {
	out := Visualization(nil)
	data := out["data"].(map[string]any)
	if labels := data["labels"].([]string); len(labels) != 0 {
		t.Fatalf("expected no labels, got %v", labels)
	}
}

func TestSaveReportWritesFile(t *testing.T) {
	dir := t.TempDir()
	content := map[string]any{"predictions": map[string]any{"1": map[string]any{"team": "Argentina"}}}
	out, err := SaveReport(dir, "world_cup_winner.json", content)
	if err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	path := filepath.Join(dir, "world_cup_winner.json")
	if out["result"] != "Report saved to "+path {
		t.Fatalf("unexpected result: %v", out["result"])
	}
	if got := out["data"].(map[string]any)["filename"]; got != path {
		t.Fatalf("expected filename %q, got %v", path, got)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved report: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("saved report is not JSON: %v", err)
	}
	if _, ok := decoded["predictions"]; !ok {
		t.Fatalf("saved report missing predictions: %v", decoded)
	}
}
