package services

import (
	"strings"
	"sync"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// PositionResolver maps player names to positions. The odds feed identifies
// prop outcomes by player name only, so position comes from a static table
// seeded with common starters plus whatever the caller registers for their
// own league.
type PositionResolver struct {
	mu        sync.RWMutex
	positions map[string]models.Position
}

// knownPlayers seeds the resolver with high-volume prop players.
var knownPlayers = map[string]models.Position{
	"josh allen":          models.PositionQB,
	"patrick mahomes":     models.PositionQB,
	"jalen hurts":         models.PositionQB,
	"lamar jackson":       models.PositionQB,
	"joe burrow":          models.PositionQB,
	"tua tagovailoa":      models.PositionQB,
	"christian mccaffrey": models.PositionRB,
	"saquon barkley":      models.PositionRB,
	"bijan robinson":      models.PositionRB,
	"derrick henry":       models.PositionRB,
	"jahmyr gibbs":        models.PositionRB,
	"tyreek hill":         models.PositionWR,
	"ceedee lamb":         models.PositionWR,
	"justin jefferson":    models.PositionWR,
	"ja'marr chase":       models.PositionWR,
	"amon-ra st. brown":   models.PositionWR,
	"travis kelce":        models.PositionTE,
	"mark andrews":        models.PositionTE,
	"george kittle":       models.PositionTE,
	"sam laporta":         models.PositionTE,
}

// NewPositionResolver builds a resolver seeded with the builtin table.
func NewPositionResolver() *PositionResolver {
	positions := make(map[string]models.Position, len(knownPlayers))
	for name, pos := range knownPlayers {
		positions[name] = pos
	}
	return &PositionResolver{positions: positions}
}

// Register adds or overrides a player's position.
func (r *PositionResolver) Register(name string, pos models.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions[normalizeName(name)] = pos
}

// Resolve returns the player's position, or false when unknown.
func (r *PositionResolver) Resolve(name string) (models.Position, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.positions[normalizeName(name)]
	return pos, ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
