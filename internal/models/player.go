package models

import (
	"fmt"
	"strings"
	"time"
)

// Position is a roster slot position. The set is closed; anything else is
// rejected at the boundary.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

// AllPositions is the canonical iteration order for anything that walks
// positions. Map iteration order is random, so every selection step that
// needs determinism ranges over this slice instead.
var AllPositions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST}

// ParsePosition normalizes a position string and rejects anything outside
// the closed set.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST:
		return p, nil
	case "D/ST", "DEF":
		return PositionDST, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// Valid reports whether p is a member of the closed position set.
func (p Position) Valid() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST:
		return true
	}
	return false
}

// Prop market keys as exposed by the odds feed.
const (
	MarketPassYards      = "player_pass_yds"
	MarketPassTDs        = "player_pass_tds"
	MarketRushYards      = "player_rush_yds"
	MarketRushTDs        = "player_rush_tds"
	MarketReceptions     = "player_receptions"
	MarketReceptionYards = "player_reception_yds"
	MarketReceptionTDs   = "player_reception_tds"
)

// PropMarkets is the full set of markets requested from the odds feed.
var PropMarkets = []string{
	MarketPassYards,
	MarketPassTDs,
	MarketRushYards,
	MarketRushTDs,
	MarketReceptions,
	MarketReceptionYards,
	MarketReceptionTDs,
}

// MarketQuote is one bookmaker's two-sided line for a single
// (player, market) pair. Immutable once fetched.
type MarketQuote struct {
	Market     string    `json:"market"`
	Line       float64   `json:"line"`
	OverPrice  *int      `json:"over_price,omitempty"`
	UnderPrice *int      `json:"under_price,omitempty"`
	Bookmaker  string    `json:"bookmaker"`
	LastUpdate time.Time `json:"last_update"`
}

// Game is a single slate entry from the snapshot provider.
type Game struct {
	ID           string    `json:"id"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
}

// RosterInfo carries game context for a player. Salary and Ownership are
// optional; a nil pointer means the slate did not list one.
type RosterInfo struct {
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	Kickoff   time.Time `json:"kickoff"`
	Active    bool      `json:"active"`
	Salary    *int      `json:"salary,omitempty"`
	Ownership *float64  `json:"ownership,omitempty"`
}

// Projection is a confidence-weighted fantasy point estimate derived from
// consensus market lines.
type Projection struct {
	Player     string             `json:"player"`
	Position   Position           `json:"position"`
	Points     float64            `json:"points"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Confidence float64            `json:"confidence"`
}

// PlayerAnalysis is the unit passed between every downstream component:
// identity plus whatever market data, roster context, and projection could
// be resolved. Absent pieces stay nil so partial data still flows.
type PlayerAnalysis struct {
	Name       string        `json:"name"`
	Position   Position      `json:"position"`
	Roster     *RosterInfo   `json:"roster,omitempty"`
	Quotes     []MarketQuote `json:"quotes,omitempty"`
	Projection *Projection   `json:"projection,omitempty"`
}

// ProjectedPoints returns the projection's point total, or zero when no
// projection resolved.
func (a *PlayerAnalysis) ProjectedPoints() float64 {
	if a.Projection == nil {
		return 0
	}
	return a.Projection.Points
}

// ProjectionConfidence returns the projection's confidence, or zero when no
// projection resolved.
func (a *PlayerAnalysis) ProjectionConfidence() float64 {
	if a.Projection == nil {
		return 0
	}
	return a.Projection.Confidence
}

// ToMap flattens the analysis into a plain nested mapping for export.
func (a *PlayerAnalysis) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"name":     a.Name,
		"position": string(a.Position),
	}
	if a.Roster != nil {
		roster := map[string]interface{}{
			"team":     a.Roster.Team,
			"opponent": a.Roster.Opponent,
			"kickoff":  a.Roster.Kickoff.Format(time.RFC3339),
			"active":   a.Roster.Active,
		}
		if a.Roster.Salary != nil {
			roster["salary"] = *a.Roster.Salary
		}
		if a.Roster.Ownership != nil {
			roster["ownership"] = *a.Roster.Ownership
		}
		m["roster"] = roster
	}
	if a.Projection != nil {
		breakdown := make(map[string]interface{}, len(a.Projection.Breakdown))
		for k, v := range a.Projection.Breakdown {
			breakdown[k] = v
		}
		m["projection"] = map[string]interface{}{
			"points":     a.Projection.Points,
			"confidence": a.Projection.Confidence,
			"breakdown":  breakdown,
		}
	}
	if len(a.Quotes) > 0 {
		quotes := make([]map[string]interface{}, 0, len(a.Quotes))
		for _, q := range a.Quotes {
			quote := map[string]interface{}{
				"market":      q.Market,
				"line":        q.Line,
				"bookmaker":   q.Bookmaker,
				"last_update": q.LastUpdate.Format(time.RFC3339),
			}
			if q.OverPrice != nil {
				quote["over_price"] = *q.OverPrice
			}
			if q.UnderPrice != nil {
				quote["under_price"] = *q.UnderPrice
			}
			quotes = append(quotes, quote)
		}
		m["quotes"] = quotes
	}
	return m
}
