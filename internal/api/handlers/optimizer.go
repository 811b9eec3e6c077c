package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/fantasyedge/fantasy-edge/internal/models"
	"github.com/fantasyedge/fantasy-edge/internal/optimizer"
	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/utils"
)

type OptimizerHandler struct {
	analyzer *services.AnalyzerService
}

func NewOptimizerHandler(analyzer *services.AnalyzerService) *OptimizerHandler {
	return &OptimizerHandler{analyzer: analyzer}
}

// parseRequirements converts the wire position map into a validated
// LineupRequirement.
func parseRequirements(raw map[string]int) (models.LineupRequirement, error) {
	requirements := make(models.LineupRequirement, len(raw))
	for posStr, count := range raw {
		pos, err := models.ParsePosition(posStr)
		if err != nil {
			return nil, err
		}
		requirements[pos] = count
	}
	if err := requirements.Validate(); err != nil {
		return nil, err
	}
	return requirements, nil
}

// OptimizeLineup picks the best projected starters per position quota.
func (h *OptimizerHandler) OptimizeLineup(c *gin.Context) {
	var req struct {
		Players       []string       `json:"players" binding:"required"`
		Requirements  map[string]int `json:"requirements" binding:"required"`
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
	requirements, err := parseRequirements(req.Requirements)
	if err != nil {
		utils.SendValidationError(c, "Invalid lineup requirements", err.Error())
		return
	}

	pool, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}

	result, err := optimizer.OptimizeLineup(pool, requirements)
	if err != nil {
		utils.SendValidationError(c, "Lineup optimization failed", err.Error())
		return
	}
	utils.SendSuccess(c, result)
}

// OptimizeDFS builds a salary-capped lineup from the pool.
func (h *OptimizerHandler) OptimizeDFS(c *gin.Context) {
	var req struct {
		Players       []string       `json:"players" binding:"required"`
		Requirements  map[string]int `json:"requirements" binding:"required"`
		SalaryCap     int            `json:"salary_cap"`
		MaxPerTeam    int            `json:"max_per_team"`
		Banned        []string       `json:"banned"`
		MustInclude   []string       `json:"must_include"`
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
	requirements, err := parseRequirements(req.Requirements)
	if err != nil {
		utils.SendValidationError(c, "Invalid lineup requirements", err.Error())
		return
	}

	constraints := models.DefaultDFSConstraints()
	if req.SalaryCap != 0 {
		constraints.SalaryCap = req.SalaryCap
	}
	if req.MaxPerTeam != 0 {
		constraints.MaxPerTeam = req.MaxPerTeam
	}
	constraints.Banned = req.Banned
	constraints.MustInclude = req.MustInclude
	if err := constraints.Validate(requirements); err != nil {
		utils.SendValidationError(c, "Invalid constraints", err.Error())
		return
	}

	pool, err := h.analyzer.AnalyzePlayers(c.Request.Context(), req.Players, rule)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to analyze players", err.Error())
		return
	}

	result, err := optimizer.OptimizeDFS(pool, constraints, requirements)
	switch {
	case errors.Is(err, optimizer.ErrInfeasibleLineup):
		utils.SendInfeasible(c, "No lineup satisfies the salary cap and team limits")
		return
	case errors.Is(err, optimizer.ErrEmptyPool):
		utils.SendValidationError(c, "No eligible players", "every player in the pool is banned or unprojected")
		return
	case err != nil:
		utils.SendValidationError(c, "DFS optimization failed", err.Error())
		return
	}
	utils.SendSuccess(c, result)
}
