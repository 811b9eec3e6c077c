package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fantasyedge/fantasy-edge/internal/analysis"
	"github.com/fantasyedge/fantasy-edge/internal/models"
	"github.com/fantasyedge/fantasy-edge/internal/projection"
	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/utils"
)

type PlayerHandler struct {
	analyzer *services.AnalyzerService
}

func NewPlayerHandler(analyzer *services.AnalyzerService) *PlayerHandler {
	return &PlayerHandler{analyzer: analyzer}
}

// scoringRule resolves the optional scoring_preset query/body field,
// defaulting to full PPR.
func scoringRule(preset string) (models.ScoringRule, error) {
	if preset == "" {
		preset = "standard_ppr"
	}
	return models.ScoringPreset(preset)
}

// GetGames returns the current slate.
func (h *PlayerHandler) GetGames(c *gin.Context) {
	snapshot, err := h.analyzer.Snapshot(c.Request.Context())
	if err != nil {
		utils.SendUpstreamError(c, "Failed to fetch market snapshot", err.Error())
		return
	}
	utils.SendSuccess(c, gin.H{
		"games":      snapshot.Games,
		"fetched_at": snapshot.FetchedAt,
	})
}

// GetMatchup summarizes projections for every quoted player in one game.
func (h *PlayerHandler) GetMatchup(c *gin.Context) {
	rule, err := scoringRule(c.Query("scoring_preset"))
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}

	matchup, err := h.analyzer.AnalyzeMatchup(c.Request.Context(), c.Param("id"), rule)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			utils.SendNotFound(c, "Game not found in the current slate")
			return
		}
		utils.SendUpstreamError(c, "Failed to analyze matchup", err.Error())
		return
	}
	utils.SendSuccess(c, matchup)
}

// GetLeagues lists the supported league formats.
func (h *PlayerHandler) GetLeagues(c *gin.Context) {
	if slug := c.Query("name"); slug != "" {
		config, err := models.LeagueConfigByName(slug)
		if err != nil {
			utils.SendNotFound(c, err.Error())
			return
		}
		utils.SendSuccess(c, config)
		return
	}

	leagues := make(map[string]models.LeagueConfig, len(models.LeagueConfigs))
	for _, slug := range models.LeagueConfigSlugs() {
		leagues[slug] = models.LeagueConfigs[slug]
	}
	utils.SendSuccess(c, gin.H{
		"leagues": leagues,
		"slugs":   models.LeagueConfigSlugs(),
	})
}

// AnalyzePlayer projects a single player.
func (h *PlayerHandler) AnalyzePlayer(c *gin.Context) {
	rule, err := scoringRule(c.Query("scoring_preset"))
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}

	name := c.Param("name")
	result, err := h.analyzer.AnalyzePlayer(c.Request.Context(), name, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze player", err.Error())
		return
	}
	utils.SendSuccess(c, result)
}

// AnalyzePlayers projects a batch of players, or the whole slate when no
// names are given.
func (h *PlayerHandler) AnalyzePlayers(c *gin.Context) {
	var req struct {
		Players       []string `json:"players"`
		ScoringPreset string   `json:"scoring_preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	rule, err := scoringRule(req.ScoringPreset)
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}

	analyses, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	utils.SendSuccess(c, analyses)
}

// ComparePlayers projects two players and recommends a side.
func (h *PlayerHandler) ComparePlayers(c *gin.Context) {
	var req struct {
		PlayerA       string `json:"player_a" binding:"required"`
		PlayerB       string `json:"player_b" binding:"required"`
		ScoringPreset string `json:"scoring_preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	rule, err := scoringRule(req.ScoringPreset)
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}

	ctx := c.Request.Context()
	a, err := h.analyzer.AnalyzePlayer(ctx, req.PlayerA, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	b, err := h.analyzer.AnalyzePlayer(ctx, req.PlayerB, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}

	comparison, err := projection.Compare(a.Projection, b.Projection)
	if err != nil {
		utils.SendNotFound(c, "One or both players have no projection")
		return
	}
	utils.SendSuccess(c, gin.H{
		"player_a":   a,
		"player_b":   b,
		"comparison": comparison,
	})
}

// GetBestLines reports the best-priced over and under per market for one
// player.
func (h *PlayerHandler) GetBestLines(c *gin.Context) {
	snapshot, err := h.analyzer.Snapshot(c.Request.Context())
	if err != nil {
		utils.SendUpstreamError(c, "Failed to fetch market snapshot", err.Error())
		return
	}

	name := c.Param("name")
	entry, ok := snapshot.Players[name]
	if !ok {
		utils.SendNotFound(c, "No market data for player")
		return
	}
	utils.SendSuccess(c, gin.H{
		"player": name,
		"lines":  projection.BestLines(entry.Quotes),
	})
}

// GetValuePlays ranks the slate's confidence-weighted projections.
func (h *PlayerHandler) GetValuePlays(c *gin.Context) {
	var req struct {
		Players       []string `json:"players"`
		MinConfidence float64  `json:"min_confidence"`
		ScoringPreset string   `json:"scoring_preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	rule, err := scoringRule(req.ScoringPreset)
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}
	if req.MinConfidence == 0 {
		req.MinConfidence = 5.0
	}

	analyses, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	utils.SendSuccess(c, analysis.ValuePlays(analyses, req.MinConfidence))
}
