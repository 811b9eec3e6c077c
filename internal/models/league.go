package models

import (
	"fmt"
	"sort"
	"strings"
)

// LeagueConfig bundles the settings that shape analysis for one league
// format: how points score, what a roster looks like, and how players are
// valued.
type LeagueConfig struct {
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Type              LeagueType        `json:"type"`
	ScoringPreset     string            `json:"scoring_preset"`
	Roster            LineupRequirement `json:"roster"`
	BenchSpots        int               `json:"bench_spots"`
	RosterSize        int               `json:"roster_size"`
	TradeDeadlineWeek int               `json:"trade_deadline_week"`
	PlayoffWeeks      []int             `json:"playoff_weeks"`
	SalaryCap         int               `json:"salary_cap,omitempty"`
}

// Scoring resolves the config's scoring preset.
func (c LeagueConfig) Scoring() (ScoringRule, error) {
	return ScoringPreset(c.ScoringPreset)
}

func defaultPlayoffWeeks() []int {
	return []int{14, 15, 16}
}

func twoQBLineup() LineupRequirement {
	r := StandardLineup()
	r[PositionQB] = 2
	return r
}

func dfsClassicLineup() LineupRequirement {
	r := StandardLineup()
	r[PositionWR] = 3
	delete(r, PositionK)
	return r
}

// LeagueConfigs is the catalog of supported league formats, keyed by slug.
var LeagueConfigs = map[string]LeagueConfig{
	"standard_ppr": {
		Name:              "Standard PPR",
		Description:       "Full-point PPR redraft with a standard starting lineup",
		Type:              LeagueRedraft,
		ScoringPreset:     "standard_ppr",
		Roster:            StandardLineup(),
		BenchSpots:        6,
		RosterSize:        16,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"half_ppr": {
		Name:              "Half PPR",
		Description:       "Half-point PPR redraft with a standard starting lineup",
		Type:              LeagueRedraft,
		ScoringPreset:     "half_ppr",
		Roster:            StandardLineup(),
		BenchSpots:        6,
		RosterSize:        16,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"standard_non_ppr": {
		Name:              "Standard (Non-PPR)",
		Description:       "Non-PPR redraft with a standard starting lineup",
		Type:              LeagueRedraft,
		ScoringPreset:     "standard_non_ppr",
		Roster:            StandardLineup(),
		BenchSpots:        6,
		RosterSize:        16,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"superflex": {
		Name:              "Superflex",
		Description:       "QB-premium scoring with a flexible second quarterback slot",
		Type:              LeagueRedraft,
		ScoringPreset:     "qb_premium_ppr",
		Roster:            StandardLineup(),
		BenchSpots:        6,
		RosterSize:        16,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"two_qb": {
		Name:              "Two QB",
		Description:       "QB-premium scoring with two required quarterbacks",
		Type:              LeagueRedraft,
		ScoringPreset:     "qb_premium_ppr",
		Roster:            twoQBLineup(),
		BenchSpots:        6,
		RosterSize:        16,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"dynasty_ppr": {
		Name:              "Dynasty PPR",
		Description:       "PPR dynasty league with deep benches and a late trade deadline",
		Type:              LeagueDynasty,
		ScoringPreset:     "dynasty_ppr",
		Roster:            StandardLineup(),
		BenchSpots:        15,
		RosterSize:        22,
		TradeDeadlineWeek: 12,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"best_ball": {
		Name:              "Best Ball",
		Description:       "Half-PPR best ball with no weekly lineup changes",
		Type:              LeagueRedraft,
		ScoringPreset:     "best_ball",
		Roster:            StandardLineup(),
		BenchSpots:        11,
		RosterSize:        18,
		TradeDeadlineWeek: 10,
		PlayoffWeeks:      defaultPlayoffWeeks(),
	},
	"draftkings_dfs": {
		Name:          "DraftKings DFS",
		Description:   "DraftKings classic contest under the $50,000 cap",
		Type:          LeagueDFS,
		ScoringPreset: "draftkings_dfs",
		Roster:        dfsClassicLineup(),
		RosterSize:    dfsClassicLineup().TotalSlots(),
		SalaryCap:     DraftKingsSalaryCap,
	},
	"fanduel_dfs": {
		Name:          "FanDuel DFS",
		Description:   "FanDuel classic contest under the $60,000 cap",
		Type:          LeagueDFS,
		ScoringPreset: "fanduel_dfs",
		Roster:        StandardLineup(),
		RosterSize:    StandardLineup().TotalSlots(),
		SalaryCap:     FanDuelSalaryCap,
	},
}

// LeagueConfigSlugs lists catalog keys in sorted order.
func LeagueConfigSlugs() []string {
	slugs := make([]string, 0, len(LeagueConfigs))
	for slug := range LeagueConfigs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// LeagueConfigByName looks up a league config by slug.
func LeagueConfigByName(slug string) (LeagueConfig, error) {
	config, ok := LeagueConfigs[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return LeagueConfig{}, fmt.Errorf("unknown league config %q", slug)
	}
	return config, nil
}
