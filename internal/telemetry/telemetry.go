// Package telemetry tracks workflow runs, step execution and source access,
// mirroring every counter into prometheus collectors served at /metrics.
package telemetry

import (
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mundial",
		Name:      "workflow_runs_total",
		Help:      "Finished workflow runs by final status.",
	}, []string{"status"})

	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mundial",
		Name:      "workflow_steps_total",
		Help:      "Executed plan steps by kind.",
	}, []string{"kind"})

	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mundial",
		Name:      "workflow_step_duration_seconds",
		Help:      "Wall time spent executing each plan step.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind"})

	sourceFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mundial",
		Name:      "source_fetches_total",
		Help:      "Upstream fetch attempts by subject and outcome.",
	}, []string{"subject", "outcome"})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mundial",
		Name:      "source_cache_lookups_total",
		Help:      "Source cache lookups by outcome.",
	}, []string{"outcome"})
)

// Telemetry holds in-memory counters behind a mutex. All methods are safe on
// a nil receiver, so components can run without metrics wired in.
type Telemetry struct {
	logger *log.Logger

	mu          sync.RWMutex
	runs        map[string]int64
	steps       map[string]int64
	fetches     map[string]int64
	cacheHits   int64
	cacheMisses int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Runs        map[string]int64 `json:"runs"`
	Steps       map[string]int64 `json:"steps"`
	Fetches     map[string]int64 `json:"fetches"`
	CacheHits   int64            `json:"cache_hits"`
	CacheMisses int64            `json:"cache_misses"`
}

// New creates a telemetry instance.
func New() *Telemetry {
	return &Telemetry{
		logger:  log.New(log.Writer(), "[TELEMETRY] ", log.LstdFlags),
		runs:    make(map[string]int64),
		steps:   make(map[string]int64),
		fetches: make(map[string]int64),
	}
}

// RecordRun records a finished workflow run with its final status.
func (t *Telemetry) RecordRun(status string, duration time.Duration) {
	if t == nil {
		return
	}
	runsTotal.WithLabelValues(status).Inc()

	t.mu.Lock()
	t.runs[status]++
	t.mu.Unlock()

	t.logger.Printf("run finished: status=%s duration=%v", status, duration)
}

// RecordStep records one executed plan step.
func (t *Telemetry) RecordStep(kind string, duration time.Duration) {
	if t == nil {
		return
	}
	stepsTotal.WithLabelValues(kind).Inc()
	stepDuration.WithLabelValues(kind).Observe(duration.Seconds())

	t.mu.Lock()
	t.steps[kind]++
	t.mu.Unlock()
}

// FetchOutcome records an upstream fetch attempt. Together with CacheLookup
// it satisfies the source client's observer hook.
func (t *Telemetry) FetchOutcome(subject string, ok bool) {
	if t == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "fallback"
	}
	sourceFetches.WithLabelValues(subject, outcome).Inc()

	t.mu.Lock()
	t.fetches[subject+":"+outcome]++
	t.mu.Unlock()
}

// CacheLookup records a source cache hit or miss.
func (t *Telemetry) CacheLookup(hit bool) {
	if t == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	cacheLookups.WithLabelValues(outcome).Inc()

	t.mu.Lock()
	if hit {
		t.cacheHits++
	} else {
		t.cacheMisses++
	}
	t.mu.Unlock()
}

// Stats returns a copy of the current counters.
func (t *Telemetry) Stats() Snapshot {
	snap := Snapshot{
		Runs:    make(map[string]int64),
		Steps:   make(map[string]int64),
		Fetches: make(map[string]int64),
	}
	if t == nil {
		return snap
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, v := range t.runs {
		snap.Runs[k] = v
	}
	for k, v := range t.steps {
		snap.Steps[k] = v
	}
	for k, v := range t.fetches {
		snap.Fetches[k] = v
	}
	snap.CacheHits = t.cacheHits
	snap.CacheMisses = t.cacheMisses
	return snap
}
