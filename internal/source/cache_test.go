package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	payload := []byte(`{"rank":1,"team":"Argentina"}`)
	c.Set(context.Background(), "fifa_rankings", payload)

	got, ok := c.Get(context.Background(), "fifa_rankings")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if string(got) != string(payload) {
		t.Fatalf("expected %s, got %s", payload, got)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	stale := fmt.Sprintf(`{"_ts":%d,"data":{"rank":1}}`, time.Now().Add(-2*time.Hour).Unix())
	if err := os.WriteFile(filepath.Join(dir, "wiki_old.json"), []byte(stale), 0o644); err != nil {
		t.Fatalf("write stale entry: %v", err)
	}
	if _, ok := c.Get(context.Background(), "old"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir, time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wiki_bad.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write corrupt entry: %v", err)
	}
	if _, ok := c.Get(context.Background(), "bad"); ok {
		t.Fatalf("expected corrupt entry to miss")
	}
}

func TestCacheKeySanitize(t *testing.T) {
	got := cacheKey("team_info_Bosnia and Herzegovina!")
	if got != "team_info_Bosnia_and_Herzegovina_" {
		t.Fatalf("unexpected key %q", got)
	}
	long := cacheKey(string(make([]byte, 300)))
	if len(long) != 120 {
		t.Fatalf("expected key capped at 120, got %d", len(long))
	}
}
