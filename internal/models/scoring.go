package models

import (
	"fmt"
	"strings"
)

// ScoringRule is an immutable set of point multipliers and divisors per
// statistical category. Swapping rules never mutates computed projections;
// callers construct a new rule and re-run the projection engine.
type ScoringRule struct {
	PassYardsPerPoint      float64 `json:"pass_yards_per_point"`
	PassTDPoints           float64 `json:"pass_td_points"`
	InterceptionPoints     float64 `json:"interception_points"`
	RushYardsPerPoint      float64 `json:"rush_yards_per_point"`
	RushTDPoints           float64 `json:"rush_td_points"`
	ReceptionPoints        float64 `json:"reception_points"`
	ReceivingYardsPerPoint float64 `json:"receiving_yards_per_point"`
	ReceivingTDPoints      float64 `json:"receiving_td_points"`
	FumbleLostPoints       float64 `json:"fumble_lost_points"`
	FGPoints               float64 `json:"fg_points"`
	ExtraPointPoints       float64 `json:"extra_point_points"`
	LongPlayBonus          float64 `json:"long_play_bonus"`
}

// StandardPPR is full point-per-reception scoring.
func StandardPPR() ScoringRule {
	return ScoringRule{
		PassYardsPerPoint:      25,
		PassTDPoints:           4,
		InterceptionPoints:     -2,
		RushYardsPerPoint:      10,
		RushTDPoints:           6,
		ReceptionPoints:        1.0,
		ReceivingYardsPerPoint: 10,
		ReceivingTDPoints:      6,
		FumbleLostPoints:       -2,
		FGPoints:               3,
		ExtraPointPoints:       1,
	}
}

// HalfPPR awards half a point per reception.
func HalfPPR() ScoringRule {
	r := StandardPPR()
	r.ReceptionPoints = 0.5
	return r
}

// StandardNonPPR awards nothing for receptions.
func StandardNonPPR() ScoringRule {
	r := StandardPPR()
	r.ReceptionPoints = 0
	return r
}

// QBPremiumPPR scores passing touchdowns at six points, the convention in
// superflex and two-QB leagues.
func QBPremiumPPR() ScoringRule {
	r := StandardPPR()
	r.PassTDPoints = 6
	return r
}

// DraftKingsDFS matches DraftKings classic NFL scoring.
func DraftKingsDFS() ScoringRule {
	return ScoringRule{
		PassYardsPerPoint:      25,
		PassTDPoints:           4,
		InterceptionPoints:     -1,
		RushYardsPerPoint:      10,
		RushTDPoints:           6,
		ReceptionPoints:        1.0,
		ReceivingYardsPerPoint: 10,
		ReceivingTDPoints:      6,
		FumbleLostPoints:       -1,
		FGPoints:               3,
		ExtraPointPoints:       1,
		LongPlayBonus:          3.0,
	}
}

// FanDuelDFS matches FanDuel classic NFL scoring.
func FanDuelDFS() ScoringRule {
	return ScoringRule{
		PassYardsPerPoint:      25,
		PassTDPoints:           4,
		InterceptionPoints:     -1,
		RushYardsPerPoint:      10,
		RushTDPoints:           6,
		ReceptionPoints:        0.5,
		ReceivingYardsPerPoint: 10,
		ReceivingTDPoints:      6,
		FumbleLostPoints:       -2,
		FGPoints:               3,
		ExtraPointPoints:       1,
	}
}

// ScoringPresets maps a preset name to its rule set. Dynasty leagues score
// identically to standard PPR and best ball to half PPR; only valuation
// differs. Superflex and two-QB formats share the QB-premium rule.
var ScoringPresets = map[string]ScoringRule{
	"standard_ppr":     StandardPPR(),
	"half_ppr":         HalfPPR(),
	"standard_non_ppr": StandardNonPPR(),
	"draftkings_dfs":   DraftKingsDFS(),
	"fanduel_dfs":      FanDuelDFS(),
	"dynasty_ppr":      StandardPPR(),
	"best_ball":        HalfPPR(),
	"qb_premium_ppr":   QBPremiumPPR(),
}

// ScoringPreset looks up a preset by name.
func ScoringPreset(name string) (ScoringRule, error) {
	rule, ok := ScoringPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ScoringRule{}, fmt.Errorf("unknown scoring preset %q", name)
	}
	return rule, nil
}

// DFS platform salary caps.
const (
	DraftKingsSalaryCap = 50000
	FanDuelSalaryCap    = 60000
)

// LeagueType drives player valuation in trade evaluation.
type LeagueType string

const (
	LeagueRedraft LeagueType = "redraft"
	LeagueKeeper  LeagueType = "keeper"
	LeagueDynasty LeagueType = "dynasty"
	LeagueDFS     LeagueType = "dfs"
)

// ParseLeagueType validates and normalizes a league type string.
func ParseLeagueType(s string) (LeagueType, error) {
	t := LeagueType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case LeagueRedraft, LeagueKeeper, LeagueDynasty, LeagueDFS:
		return t, nil
	}
	return "", fmt.Errorf("unknown league type %q", s)
}
