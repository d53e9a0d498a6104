package telemetry

import (
	"testing"
	"time"
)

func TestTelemetryCounters(t *testing.T) {
	tel := New()
	tel.RecordRun("completed", 120*time.Millisecond)
	tel.RecordRun("error", 10*time.Millisecond)
	tel.RecordRun("completed", 80*time.Millisecond)
	tel.RecordStep("fetch_rankings", time.Millisecond)
	tel.RecordStep("fetch_rankings", time.Millisecond)
	tel.RecordStep("report", time.Millisecond)
	tel.FetchOutcome("rankings", true)
	tel.FetchOutcome("rankings", false)
	tel.CacheLookup(true)
	tel.CacheLookup(false)
	tel.CacheLookup(false)

	snap := tel.Stats()
	if snap.Runs["completed"] != 2 {
		t.Fatalf("expected 2 completed runs, got %d", snap.Runs["completed"])
	}
	if snap.Runs["error"] != 1 {
		t.Fatalf("expected 1 error run, got %d", snap.Runs["error"])
	}
	if snap.Steps["fetch_rankings"] != 2 {
		t.Fatalf("expected 2 fetch_rankings steps, got %d", snap.Steps["fetch_rankings"])
	}
	if snap.Fetches["rankings:ok"] != 1 || snap.Fetches["rankings:fallback"] != 1 {
		t.Fatalf("unexpected fetch counters: %v", snap.Fetches)
	}
	if snap.CacheHits != 1 || snap.CacheMisses != 2 {
		t.Fatalf("expected 1 hit / 2 misses, got %d / %d", snap.CacheHits, snap.CacheMisses)
	}
}

func TestTelemetryNilReceiver(t *testing.T) {
	var tel *Telemetry
	tel.RecordRun("completed", time.Second)
	tel.RecordStep("report", time.Millisecond)
	tel.FetchOutcome("rankings", true)
	tel.CacheLookup(true)

	snap := tel.Stats()
	if len(snap.Runs) != 0 || len(snap.Steps) != 0 {
		t.Fatalf("nil telemetry should report empty counters, got %+v", snap)
	}
}

func TestTelemetryStatsIsCopy(t *testing.T) {
	tel := New()
	tel.RecordStep("report", time.Millisecond)

	snap := tel.Stats()
	snap.Steps["report"] = 99

	if got := tel.Stats().Steps["report"]; got != 1 {
		t.Fatalf("expected stats copy to leave counters at 1, got %d", got)
	}
}
