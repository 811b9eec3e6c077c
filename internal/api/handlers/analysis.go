package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fantasyedge/fantasy-edge/internal/analysis"
	"github.com/fantasyedge/fantasy-edge/internal/models"
	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/utils"
)

type AnalysisHandler struct {
	analyzer *services.AnalyzerService
}

func NewAnalysisHandler(analyzer *services.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// EvaluateTrade values both sides of a proposed trade.
func (h *AnalysisHandler) EvaluateTrade(c *gin.Context) {
	var req struct {
		Give          []string `json:"give" binding:"required"`
		Receive       []string `json:"receive" binding:"required"`
		LeagueType    string   `json:"league_type"`
		ScoringPreset string   `json:"scoring_preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.LeagueType == "" {
		req.LeagueType = string(models.LeagueRedraft)
	}
	leagueType, err := models.ParseLeagueType(req.LeagueType)
	if err != nil {
		utils.SendValidationError(c, "Invalid league type", err.Error())
		return
	}
	rule, err := scoringRule(req.ScoringPreset)
	if err != nil {
		utils.SendValidationError(c, "Invalid scoring preset", err.Error())
		return
	}

	ctx := c.Request.Context()
	give, err := h.analyzer.AnalyzePlayers(ctx, req.Give, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	receive, err := h.analyzer.AnalyzePlayers(ctx, req.Receive, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}

	proposal, err := analysis.EvaluateTrade(give, receive, leagueType)
	if err != nil {
		utils.SendValidationError(c, "Trade evaluation failed", err.Error())
		return
	}
	utils.SendSuccess(c, proposal)
}

// WaiverTargets ranks waiver-wire pickups for the needed positions.
func (h *AnalysisHandler) WaiverTargets(c *gin.Context) {
	var req struct {
		Players       []string `json:"players" binding:"required"`
		Needs         []string `json:"needs" binding:"required"`
		MaxOwnership  float64  `json:"max_ownership"`
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
	needs := make([]models.Position, 0, len(req.Needs))
	for _, posStr := range req.Needs {
		pos, err := models.ParsePosition(posStr)
		if err != nil {
			utils.SendValidationError(c, "Invalid position in needs", err.Error())
			return
		}
		needs = append(needs, pos)
	}
	if req.MaxOwnership == 0 {
		req.MaxOwnership = 50.0
	}

	pool, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	utils.SendSuccess(c, analysis.WaiverTargets(pool, needs, req.MaxOwnership))
}

// BreakoutCandidates ranks breakout candidates from the pool.
func (h *AnalysisHandler) BreakoutCandidates(c *gin.Context) {
	var req struct {
		Players       []string `json:"players" binding:"required"`
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
		req.MinConfidence = 0.6
	}

	pool, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}
	utils.SendSuccess(c, analysis.BreakoutCandidates(pool, req.MinConfidence))
}

// SimulateSeason runs a seeded Monte Carlo season for a roster.
func (h *AnalysisHandler) SimulateSeason(c *gin.Context) {
	var req struct {
		Players       []string       `json:"players" binding:"required"`
		Requirements  map[string]int `json:"requirements"`
		Weeks         int            `json:"weeks"`
		Seed          *int64         `json:"seed"`
		ScoringPreset string         `json:"scoring_preset"`
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
	if req.Weeks == 0 {
		req.Weeks = 17
	}
	requirements := models.StandardLineup()
	if len(req.Requirements) > 0 {
		requirements, err = parseRequirements(req.Requirements)
		if err != nil {
			utils.SendValidationError(c, "Invalid lineup requirements", err.Error())
			return
		}
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	roster, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}

	sim, err := analysis.SimulateSeason(roster, requirements, req.Weeks, seed)
	if err != nil {
		utils.SendValidationError(c, "Season simulation failed", err.Error())
		return
	}
	utils.SendSuccess(c, sim)
}
