package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fantasyedge/fantasy-edge/internal/models"
	"github.com/fantasyedge/fantasy-edge/internal/projection"
	"github.com/fantasyedge/fantasy-edge/internal/providers"
)

// SnapshotEntry ties one player's quotes to the game they were quoted in.
type SnapshotEntry struct {
	Game   models.Game          `json:"game"`
	Quotes []models.MarketQuote `json:"quotes"`
}

// Snapshot is the merged market state for a slate: every quoted player and
// the game list it came from.
type Snapshot struct {
	Games     []models.Game            `json:"games"`
	Players   map[string]SnapshotEntry `json:"players"`
	FetchedAt time.Time                `json:"fetched_at"`
}

// AnalyzerService orchestrates the pipeline: fetch a market snapshot,
// collapse quotes to consensus lines, and project each player under the
// active scoring rule. Snapshots are cached briefly so repeated analysis
// calls within the freshness window reuse one upstream fetch.
type AnalyzerService struct {
	provider    providers.SnapshotProvider
	cache       Cache
	positions   *PositionResolver
	hub         *WebSocketHub
	logger      *logrus.Logger
	snapshotTTL time.Duration
}

func NewAnalyzerService(
	provider providers.SnapshotProvider,
	cache Cache,
	positions *PositionResolver,
	hub *WebSocketHub,
	logger *logrus.Logger,
	snapshotTTL time.Duration,
) *AnalyzerService {
	if snapshotTTL <= 0 {
		snapshotTTL = 5 * time.Minute
	}
	return &AnalyzerService{
		provider:    provider,
		cache:       cache,
		positions:   positions,
		hub:         hub,
		logger:      logger,
		snapshotTTL: snapshotTTL,
	}
}

// Snapshot returns the current market snapshot, from cache when fresh. A
// single game failing to fetch is logged and skipped; the rest of the slate
// still analyzes.
func (s *AnalyzerService) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		var cached Snapshot
		if err := s.cache.Get(ctx, SnapshotCacheKey(), &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warnf("Snapshot cache read failed: %v", err)
		}
	}

	games, err := s.games(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		Games:     games,
		Players:   make(map[string]SnapshotEntry),
		FetchedAt: time.Now().UTC(),
	}
	for _, game := range games {
		quotes, err := s.gameProps(ctx, game.ID)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"game_id": game.ID,
				"error":   err,
			}).Warn("Skipping game: prop fetch failed")
			continue
		}
		for player, playerQuotes := range quotes {
			entry := snapshot.Players[player]
			entry.Game = game
			entry.Quotes = append(entry.Quotes, playerQuotes...)
			snapshot.Players[player] = entry
		}
	}

	if s.cache != nil {
		if err := s.cache.SetWithRetry(ctx, SnapshotCacheKey(), snapshot, s.snapshotTTL, 3); err != nil {
			s.logger.Warnf("Snapshot cache write failed: %v", err)
		}
	}
	return snapshot, nil
}

// games returns the slate's game list, from cache when fresh.
func (s *AnalyzerService) games(ctx context.Context) ([]models.Game, error) {
	if s.cache != nil {
		var cached []models.Game
		if err := s.cache.Get(ctx, GamesCacheKey(), &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warnf("Games cache read failed: %v", err)
		}
	}

	games, err := s.provider.Games(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, GamesCacheKey(), games, s.snapshotTTL); err != nil {
			s.logger.Warnf("Games cache write failed: %v", err)
		}
	}
	return games, nil
}

// gameProps returns one game's prop quotes, from cache when fresh. Caching
// per game lets a rebuild after a partial upstream failure reuse the games
// that did fetch.
func (s *AnalyzerService) gameProps(ctx context.Context, eventID string) (map[string][]models.MarketQuote, error) {
	if s.cache != nil {
		var cached map[string][]models.MarketQuote
		if err := s.cache.Get(ctx, GamePropsCacheKey(eventID), &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warnf("Game props cache read failed: %v", err)
		}
	}

	quotes, err := s.provider.PropQuotes(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, GamePropsCacheKey(eventID), quotes, s.snapshotTTL); err != nil {
			s.logger.Warnf("Game props cache write failed: %v", err)
		}
	}
	return quotes, nil
}

// AnalyzePlayer analyzes one player against the current snapshot. The
// result carries no projection when the player has no market data or an
// unknown position; that is an answer, not an error.
func (s *AnalyzerService) AnalyzePlayer(ctx context.Context, name string, rule models.ScoringRule) (*models.PlayerAnalysis, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	analysis := s.analyzeFromSnapshot(name, snapshot, rule)
	return &analysis, nil
}

// AnalyzePlayers analyzes each named player, or the whole quoted slate when
// names is empty. Output order is deterministic: requested order, or sorted
// name order for full-slate runs. Projection per player is independent, so
// one player without data never aborts the batch.
func (s *AnalyzerService) AnalyzePlayers(ctx context.Context, names []string, rule models.ScoringRule) ([]models.PlayerAnalysis, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		names = sortedPlayerNames(snapshot)
	}

	runID := uuid.New().String()
	logger := s.logger.WithFields(logrus.Fields{
		"analysis_id": runID,
		"players":     len(names),
	})
	logger.Info("Starting batch analysis")

	// Projections are independent, so they run in parallel. All results are
	// gathered, indexed by request position, before anything downstream
	// sorts or selects.
	analyses := make([]models.PlayerAnalysis, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			analyses[i] = s.analyzeFromSnapshot(name, snapshot, rule)
		}(i, name)
	}
	wg.Wait()

	for i, analysis := range analyses {
		if analysis.Projection == nil {
			logger.WithField("player", analysis.Name).Warn("No projection resolved, continuing")
		}
		if s.hub != nil {
			s.hub.Publish(ProgressEvent{
				AnalysisID: runID,
				Stage:      "projected",
				Player:     analysis.Name,
				Completed:  i + 1,
				Total:      len(names),
			})
		}
	}

	logger.Info("Batch analysis complete")
	return analyses, nil
}

// analyzeFromSnapshot builds one player's analysis from already-fetched
// market data: quotes, consensus, projection, and whatever roster context
// resolves.
func (s *AnalyzerService) analyzeFromSnapshot(name string, snapshot *Snapshot, rule models.ScoringRule) models.PlayerAnalysis {
	analysis := models.PlayerAnalysis{Name: name}

	position, known := s.positions.Resolve(name)
	if known {
		analysis.Position = position
	}

	entry, quoted := snapshot.Players[name]
	if !quoted {
		return analysis
	}
	analysis.Quotes = entry.Quotes
	analysis.Roster = resolveRoster(name, entry.Game)

	if !known {
		return analysis
	}
	lines := projection.Consensus(entry.Quotes)
	analysis.Projection = projection.Project(name, position, lines, rule)
	return analysis
}

// resolveRoster carries the game context forward. Which side of the game
// the player is on cannot be read from prop outcomes, so Team and Opponent
// stay unresolved rather than guessed.
func resolveRoster(name string, game models.Game) *models.RosterInfo {
	return &models.RosterInfo{
		Team:     "",
		Opponent: "",
		Kickoff:  game.CommenceTime,
		Active:   true,
	}
}

func sortedPlayerNames(snapshot *Snapshot) []string {
	names := make([]string, 0, len(snapshot.Players))
	for name := range snapshot.Players {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
