// Package predict implements the scoring models behind the workflow: a
// weighted team winner model and four individual award models, all
// producing ranked top-5 envelopes with interpretable factor breakdowns.
package predict

import (
	"log"
	"math"
	"strings"

	"github.com/mohammad-safakhou/mundial/internal/source"
)

// Engine runs the scoring models against the shared source client.
type Engine struct {
	src    *source.Client
	logger *log.Logger
}

// New returns an Engine backed by src.
func New(src *source.Client) *Engine {
	return &Engine{
		src:    src,
		logger: log.New(log.Writer(), "[PREDICT] ", log.LstdFlags),
	}
}

// round1 rounds to one decimal, the precision every reported score and
// probability carries.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// shortName abbreviates a team name for chart legends.
func shortName(team string) string {
	if team == "" {
		return "?"
	}
	r := []rune(strings.ToUpper(team))
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
