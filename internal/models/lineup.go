package models

import "fmt"

// LineupRequirement maps a position to its required slot count.
type LineupRequirement map[Position]int

// StandardLineup is a typical redraft starting lineup.
func StandardLineup() LineupRequirement {
	return LineupRequirement{
		PositionQB:  1,
		PositionRB:  2,
		PositionWR:  2,
		PositionTE:  1,
		PositionK:   1,
		PositionDST: 1,
	}
}

// Validate rejects requirements outside the closed position set or with
// non-positive slot counts.
func (r LineupRequirement) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("lineup requirements are empty")
	}
	for pos, count := range r {
		if !pos.Valid() {
			return fmt.Errorf("unknown position %q in requirements", pos)
		}
		if count <= 0 {
			return fmt.Errorf("position %s requires a positive slot count, got %d", pos, count)
		}
	}
	return nil
}

// TotalSlots is the sum of required slot counts.
func (r LineupRequirement) TotalSlots() int {
	total := 0
	for _, count := range r {
		total += count
	}
	return total
}

// DFSConstraints bound the DFS optimizer: salary budget, per-team
// concentration cap, excluded players, and players that must be seated.
type DFSConstraints struct {
	SalaryCap   int      `json:"salary_cap"`
	MaxPerTeam  int      `json:"max_per_team"`
	Banned      []string `json:"banned,omitempty"`
	MustInclude []string `json:"must_include,omitempty"`
}

// DefaultDFSConstraints uses the DraftKings cap and a four-player team limit.
func DefaultDFSConstraints() DFSConstraints {
	return DFSConstraints{
		SalaryCap:  DraftKingsSalaryCap,
		MaxPerTeam: 4,
	}
}

// Validate fails fast on malformed constraints before any selection begins.
func (c DFSConstraints) Validate(requirements LineupRequirement) error {
	if c.SalaryCap <= 0 {
		return fmt.Errorf("salary cap must be positive, got %d", c.SalaryCap)
	}
	if c.MaxPerTeam <= 0 {
		return fmt.Errorf("max players per team must be positive, got %d", c.MaxPerTeam)
	}
	if total := requirements.TotalSlots(); len(c.MustInclude) > total {
		return fmt.Errorf("%d must-include players exceed %d total lineup slots", len(c.MustInclude), total)
	}
	return nil
}

// LineupResult is the output of the quota-based optimizer.
type LineupResult struct {
	Starters    map[Position][]PlayerAnalysis `json:"starters"`
	Bench       []PlayerAnalysis              `json:"bench"`
	TotalPoints float64                       `json:"total_points"`
}

// DFSLineupResult is the output of the salary-capped optimizer.
type DFSLineupResult struct {
	Players          []PlayerAnalysis              `json:"players"`
	ByPosition       map[Position][]PlayerAnalysis `json:"by_position"`
	TeamDistribution map[string]int                `json:"team_distribution"`
	TotalSalary      int                           `json:"total_salary"`
	TotalPoints      float64                       `json:"total_points"`
	SalaryRemaining  int                           `json:"salary_remaining"`
}

// TradeVerdict classifies a trade from the evaluating side's perspective.
type TradeVerdict string

const (
	TradeStronglyFavorable   TradeVerdict = "strongly_favorable"
	TradeFavorable           TradeVerdict = "favorable"
	TradeFair                TradeVerdict = "fair"
	TradeUnfavorable         TradeVerdict = "unfavorable"
	TradeStronglyUnfavorable TradeVerdict = "strongly_unfavorable"
)

// TradeProposal is the evaluated outcome of a multi-player trade.
type TradeProposal struct {
	GiveValue    float64      `json:"give_value"`
	ReceiveValue float64      `json:"receive_value"`
	NetValue     float64      `json:"net_value"`
	Verdict      TradeVerdict `json:"verdict"`
	Explanation  string       `json:"explanation"`
	Confidence   float64      `json:"confidence"`
}

// WaiverTarget is a ranked waiver-wire pickup recommendation.
type WaiverTarget struct {
	Player    PlayerAnalysis `json:"player"`
	Priority  float64        `json:"priority"`
	Ownership float64        `json:"ownership"`
	Reason    string         `json:"reason"`
}

// BreakoutCandidate is a ranked breakout recommendation.
type BreakoutCandidate struct {
	Player PlayerAnalysis `json:"player"`
	Score  float64        `json:"score"`
	Reason string         `json:"reason"`
}

// ValuePlay is a projection whose confidence clears a caller threshold,
// ranked by points weighted by confidence.
type ValuePlay struct {
	Player PlayerAnalysis `json:"player"`
	Value  float64        `json:"value"`
}
