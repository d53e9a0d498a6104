package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorhill/cronexpr"
	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/mundial/internal/source"
)

// refreshLockKey guards against duplicate refreshes when several replicas
// share a Redis instance.
const refreshLockKey = "mundial:sched:refresh"

// Scheduler re-pulls ranking and roster data on a cron schedule so the
// cache stays warm between workflow runs.
type Scheduler struct {
	source *source.Client
	rdb    *redis.Client
	cron   string
	logger *log.Logger

	stop chan struct{}

	mu          sync.Mutex
	lastRefresh time.Time
}

// NewScheduler builds a scheduler for the given cron spec. rdb may be nil;
// without it the lock is skipped and each process refreshes on its own.
func NewScheduler(src *source.Client, rdb *redis.Client, cron string) *Scheduler {
	return &Scheduler{
		source: src,
		rdb:    rdb,
		cron:   cron,
		logger: log.New(log.Writer(), "[SCHED] ", log.LstdFlags),
		stop:   make(chan struct{}),
	}
}

// Start launches the ticker loop. The loop wakes hourly and lets isDue
// decide whether the cron spec calls for a refresh.
func (s *Scheduler) Start() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for {
			select {
			case <-s.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				s.tick(time.Now())
			}
		}
	}()
}

// Stop terminates the ticker loop.
func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) tick(now time.Time) {
	s.mu.Lock()
	last := s.lastRefresh
	s.mu.Unlock()

	if !isDue(s.cron, last, now) {
		return
	}

	ctx := context.Background()
	if s.rdb != nil {
		ok, err := s.rdb.SetNX(ctx, refreshLockKey, uuid.NewString(), 2*time.Minute).Result()
		if err != nil {
			s.logger.Printf("refresh lock: %v", err)
			return
		}
		if !ok {
			return
		}
		defer s.rdb.Del(ctx, refreshLockKey)
	}

	s.source.RefreshAll(ctx)

	s.mu.Lock()
	s.lastRefresh = now
	s.mu.Unlock()
}

// isDue reports whether a refresh scheduled by cronSpec should run at now,
// given the previous refresh time. Supports "@daily", "@hourly", and
// standard 5-field cron expressions; an empty spec disables refreshes and
// an unparsable one falls back to daily.
func isDue(cronSpec string, last, now time.Time) bool {
	if cronSpec == "" {
		return false
	}
	if last.IsZero() {
		return true
	}
	switch cronSpec {
	case "@daily":
		return now.Sub(last) >= 24*time.Hour
	case "@hourly":
		return now.Sub(last) >= time.Hour
	default:
		expr, err := cronexpr.Parse(cronSpec)
		if err != nil {
			return now.Sub(last) >= 24*time.Hour
		}
		return !expr.Next(last).After(now)
	}
}
