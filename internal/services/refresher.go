package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// SnapshotRefresher keeps the market snapshot warm on a schedule so request
// paths rarely pay for an upstream fetch. Sportsbooks move lines most
// aggressively close to kickoff, so Sunday afternoons refresh on a tighter
// cadence than the base interval.
type SnapshotRefresher struct {
	analyzer  *AnalyzerService
	cache     Cache
	logger    *logrus.Logger
	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
	interval  time.Duration
}

func NewSnapshotRefresher(
	analyzer *AnalyzerService,
	cache Cache,
	logger *logrus.Logger,
	interval time.Duration,
) *SnapshotRefresher {
	return &SnapshotRefresher{
		analyzer: analyzer,
		cache:    cache,
		logger:   logger,
		cron:     cron.New(),
		interval: interval,
	}
}

// Start begins the scheduled refreshes and kicks off an initial warm-up.
func (s *SnapshotRefresher) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("snapshot refresher is already running")
	}

	schedule := fmt.Sprintf("@every %s", s.interval.String())
	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return fmt.Errorf("failed to schedule snapshot refresh: %w", err)
	}

	// Sunday game windows, every 10 minutes from noon to 11 PM.
	if _, err := s.cron.AddFunc("*/10 12-23 * * 0", s.refresh); err != nil {
		return fmt.Errorf("failed to schedule game-day refresh: %w", err)
	}

	s.cron.Start()
	s.isRunning = true

	go s.refresh()

	s.logger.Info("Snapshot refresher started")
	return nil
}

// Stop halts the schedule and waits for any in-flight refresh.
func (s *SnapshotRefresher) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Snapshot refresher stopped")
}

// RefreshNow drops the cached snapshot, game list, and per-game props, then
// refetches immediately.
func (s *SnapshotRefresher) RefreshNow(ctx context.Context) error {
	if s.cache != nil {
		keys := []string{SnapshotCacheKey(), GamesCacheKey()}
		var games []models.Game
		if err := s.cache.Get(ctx, GamesCacheKey(), &games); err == nil {
			for _, game := range games {
				keys = append(keys, GamePropsCacheKey(game.ID))
			}
		}
		if err := s.cache.Delete(ctx, keys...); err != nil {
			s.logger.Warnf("Failed to invalidate snapshot cache: %v", err)
		}
	}
	_, err := s.analyzer.Snapshot(ctx)
	return err
}

func (s *SnapshotRefresher) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.RefreshNow(ctx); err != nil {
		s.logger.Errorf("Scheduled snapshot refresh failed: %v", err)
		return
	}
	s.logger.WithField("duration", time.Since(start).String()).Info("Snapshot refreshed")
}

// Status reports the refresher's schedule state.
func (s *SnapshotRefresher) Status() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	nextRuns := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		nextRuns = append(nextRuns, entry.Next)
	}

	return map[string]interface{}{
		"is_running": s.isRunning,
		"interval":   s.interval.String(),
		"next_runs":  nextRuns,
		"cron_jobs":  len(entries),
	}
}
