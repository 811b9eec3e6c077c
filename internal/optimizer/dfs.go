package optimizer

import (
	"errors"
	"sort"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

var (
	// ErrEmptyPool means no projected player survived ban filtering.
	ErrEmptyPool = errors.New("no eligible players in pool")
	// ErrInfeasibleLineup means no lineup satisfies the constraints. It is a
	// reportable outcome, distinct from an empty pool and from a crash.
	ErrInfeasibleLineup = errors.New("no feasible lineup under constraints")
)

// defaultSalary stands in when the slate did not list a salary for a player.
const defaultSalary = 5000

// OptimizeDFS builds a salary-capped lineup with a two-phase greedy pass:
// must-include players are seated first in caller order, then remaining
// slots fill with the best points-per-salary-dollar candidates that stay
// under the cap and the per-team limit.
//
// Must-include order is load-bearing: under constrained slots it decides
// which of two requested players gets seated, so it follows the caller's
// list exactly. The fill phase is a greedy heuristic, not a knapsack
// solution; it can leave cap headroom unused.
func OptimizeDFS(pool []models.PlayerAnalysis, constraints models.DFSConstraints, requirements models.LineupRequirement) (*models.DFSLineupResult, error) {
	if err := requirements.Validate(); err != nil {
		return nil, err
	}
	if err := constraints.Validate(requirements); err != nil {
		return nil, err
	}

	banned := make(map[string]bool, len(constraints.Banned))
	for _, name := range constraints.Banned {
		banned[name] = true
	}

	byPosition := make(map[models.Position][]models.PlayerAnalysis)
	byName := make(map[string]models.PlayerAnalysis)
	eligible := 0
	for _, p := range pool {
		if p.Projection == nil || banned[p.Name] {
			continue
		}
		byPosition[p.Position] = append(byPosition[p.Position], p)
		byName[p.Name] = p
		eligible++
	}
	if eligible == 0 {
		return nil, ErrEmptyPool
	}

	state := &lineupState{
		constraints: constraints,
		filled:      make(map[models.Position]int, len(requirements)),
		teamCounts:  make(map[string]int),
		committed:   make(map[string]bool),
	}

	// Must-include phase. A requested player that is missing, banned, or
	// whose slots are already taken makes the lineup infeasible rather than
	// being dropped silently.
	for _, name := range constraints.MustInclude {
		if state.committed[name] {
			continue
		}
		player, ok := byName[name]
		if !ok {
			return nil, ErrInfeasibleLineup
		}
		need := requirements[player.Position]
		if state.filled[player.Position] >= need {
			return nil, ErrInfeasibleLineup
		}
		if !state.fits(player) {
			return nil, ErrInfeasibleLineup
		}
		state.commit(player)
	}

	// Fill phase, positions in canonical order for determinism.
	for _, pos := range models.AllPositions {
		need, required := requirements[pos]
		if !required {
			continue
		}
		candidates := remainingCandidates(byPosition[pos], state.committed)
		sort.SliceStable(candidates, func(i, j int) bool {
			return pointsPerDollar(candidates[i]) > pointsPerDollar(candidates[j])
		})

		seated := 0
		for _, candidate := range candidates {
			if state.filled[pos] >= need {
				break
			}
			if state.fits(candidate) {
				state.commit(candidate)
				seated++
			}
		}

		// Slots still open with candidates left over means the budget or
		// team limit shut them out: that is infeasibility, not a quietly
		// short lineup. Running out of candidates entirely (kickers and
		// defenses carry no props) just leaves the slot open.
		if state.filled[pos] < need && seated < len(candidates) {
			return nil, ErrInfeasibleLineup
		}
	}

	byPos := make(map[models.Position][]models.PlayerAnalysis, len(requirements))
	for _, p := range state.players {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	return &models.DFSLineupResult{
		Players:          state.players,
		ByPosition:       byPos,
		TeamDistribution: state.teamCounts,
		TotalSalary:      state.totalSalary,
		TotalPoints:      state.totalPoints,
		SalaryRemaining:  constraints.SalaryCap - state.totalSalary,
	}, nil
}

type lineupState struct {
	constraints models.DFSConstraints
	players     []models.PlayerAnalysis
	filled      map[models.Position]int
	teamCounts  map[string]int
	committed   map[string]bool
	totalSalary int
	totalPoints float64
}

// fits reports whether committing the player keeps total salary at or under
// the cap and no team above the per-team limit.
func (s *lineupState) fits(p models.PlayerAnalysis) bool {
	if s.totalSalary+playerSalary(p) > s.constraints.SalaryCap {
		return false
	}
	if team := playerTeam(p); team != "" && s.teamCounts[team]+1 > s.constraints.MaxPerTeam {
		return false
	}
	return true
}

func (s *lineupState) commit(p models.PlayerAnalysis) {
	s.players = append(s.players, p)
	s.committed[p.Name] = true
	s.filled[p.Position]++
	s.totalSalary += playerSalary(p)
	s.totalPoints += p.ProjectedPoints()
	if team := playerTeam(p); team != "" {
		s.teamCounts[team]++
	}
}

func remainingCandidates(group []models.PlayerAnalysis, committed map[string]bool) []models.PlayerAnalysis {
	out := make([]models.PlayerAnalysis, 0, len(group))
	for _, p := range group {
		if !committed[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func playerSalary(p models.PlayerAnalysis) int {
	if p.Roster != nil && p.Roster.Salary != nil {
		return *p.Roster.Salary
	}
	return defaultSalary
}

func playerTeam(p models.PlayerAnalysis) string {
	if p.Roster == nil {
		return ""
	}
	return p.Roster.Team
}

func pointsPerDollar(p models.PlayerAnalysis) float64 {
	return p.ProjectedPoints() / float64(playerSalary(p))
}
