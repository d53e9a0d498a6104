package memory

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
)

// SearchHit is one execution-log match.
type SearchHit struct {
	ID      string  `json:"id"`
	Step    int     `json:"step"`
	Action  string  `json:"action"`
	Snippet string  `json:"snippet"`
	Score   float64 `json:"score"`
	Rank    int     `json:"rank"`
}

type logDoc struct {
	Action string `json:"action"`
	Result string `json:"result"`
	Step   int    `json:"step"`
}

const maxSnippet = 300

// SearchLog runs a full-text query over the record's goal and execution log.
// The index is rebuilt per call; logs are small, a handful of steps per run.
func SearchLog(rec Record, query string, k int) ([]SearchHit, error) {
	if k <= 0 {
		k = 5
	}
	if strings.TrimSpace(query) == "" {
		return []SearchHit{}, nil
	}

	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}
	defer index.Close()

	docs := map[string]logDoc{}
	if rec.Goal != "" {
		doc := logDoc{Action: "goal", Result: rec.Goal}
		docs["goal"] = doc
		if err := index.Index("goal", doc); err != nil {
			return nil, fmt.Errorf("index goal: %w", err)
		}
	}
	for _, entry := range rec.ExecutionLog {
		id := fmt.Sprintf("step-%d", entry.Step)
		doc := logDoc{Action: entry.Action, Result: entry.Result, Step: entry.Step}
		docs[id] = doc
		if err := index.Index(id, doc); err != nil {
			return nil, fmt.Errorf("index %s: %w", id, err)
		}
	}

	q := bleve.NewQueryStringQuery(query)
	req := bleve.NewSearchRequestOptions(q, k, 0, false)
	res, err := index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search memory: %w", err)
	}

	hits := make([]SearchHit, 0, len(res.Hits))
	for i, hit := range res.Hits {
		doc := docs[hit.ID]
		hits = append(hits, SearchHit{
			ID:      hit.ID,
			Step:    doc.Step,
			Action:  doc.Action,
			Snippet: snippet(doc.Result),
			Score:   hit.Score,
			Rank:    i + 1,
		})
		if len(hits) >= k {
			break
		}
	}
	return hits, nil
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= maxSnippet {
		return s
	}
	return string(r[:maxSnippet]) + "…"
}
