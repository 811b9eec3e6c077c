package services

import (
	"context"
	"errors"
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// ErrGameNotFound is returned when a matchup is requested for a game absent
// from the snapshot.
var ErrGameNotFound = errors.New("game not found in snapshot")

// matchupTopPlayers caps the headline player list per matchup.
const matchupTopPlayers = 5

// MatchupAnalysis summarizes every quoted player in one game. Prop outcomes
// do not say which side a player is on, so the summary covers the game as a
// whole rather than splitting projected totals per team.
type MatchupAnalysis struct {
	Game           models.Game             `json:"game"`
	PlayersQuoted  int                     `json:"players_quoted"`
	TotalProjected float64                 `json:"total_projected"`
	TopPlayers     []models.PlayerAnalysis `json:"top_players"`
}

// AnalyzeMatchup projects every quoted player in one game and ranks the
// headliners.
func (s *AnalyzerService) AnalyzeMatchup(ctx context.Context, gameID string, rule models.ScoringRule) (*MatchupAnalysis, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var game *models.Game
	for i := range snapshot.Games {
		if snapshot.Games[i].ID == gameID {
			game = &snapshot.Games[i]
			break
		}
	}
	if game == nil {
		return nil, ErrGameNotFound
	}

	names := make([]string, 0)
	for name, entry := range snapshot.Players {
		if entry.Game.ID == gameID {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	matchup := &MatchupAnalysis{Game: *game}
	players := make([]models.PlayerAnalysis, 0, len(names))
	for _, name := range names {
		analysis := s.analyzeFromSnapshot(name, snapshot, rule)
		players = append(players, analysis)
		if analysis.Projection != nil {
			matchup.PlayersQuoted++
			matchup.TotalProjected += analysis.Projection.Points
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].ProjectedPoints() > players[j].ProjectedPoints()
	})
	top := matchupTopPlayers
	if top > len(players) {
		top = len(players)
	}
	matchup.TopPlayers = players[:top]
	return matchup, nil
}
