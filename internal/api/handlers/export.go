package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/utils"
)

type ExportHandler struct {
	analyzer *services.AnalyzerService
}

func NewExportHandler(analyzer *services.AnalyzerService) *ExportHandler {
	return &ExportHandler{analyzer: analyzer}
}

// ExportAnalyses downloads projections for a set of players as CSV or JSON.
func (h *ExportHandler) ExportAnalyses(c *gin.Context) {
	var req struct {
		Players       []string `json:"players"`
		Format        string   `json:"format"`
		ScoringPreset string   `json:"scoring_preset"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}
	if req.Format == "" {
		req.Format = string(services.ExportCSV)
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

	data, err := services.ExportAnalyses(analyses, services.ExportFormat(req.Format))
	if err != nil {
		utils.SendValidationError(c, "Export failed", err.Error())
		return
	}

	filename := fmt.Sprintf("projections_%s.%s", time.Now().UTC().Format("20060102_150405"), req.Format)
	contentType := "text/csv"
	if services.ExportFormat(req.Format) == services.ExportJSON {
		contentType = "application/json"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// GetExportFormats lists supported encodings.
func (h *ExportHandler) GetExportFormats(c *gin.Context) {
	utils.SendSuccess(c, services.ExportFormats())
}
