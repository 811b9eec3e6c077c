package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fantasyedge/fantasy-edge/internal/api/handlers"
	"github.com/fantasyedge/fantasy-edge/internal/services"
	"github.com/fantasyedge/fantasy-edge/pkg/utils"
)

// SetupRoutes configures all API routes on the given router group.
func SetupRoutes(
	group *gin.RouterGroup,
	analyzer *services.AnalyzerService,
	refresher *services.SnapshotRefresher,
	redisClient *redis.Client,
) {
	healthHandler := handlers.NewHealthHandler(redisClient, refresher)
	playerHandler := handlers.NewPlayerHandler(analyzer)
	optimizerHandler := handlers.NewOptimizerHandler(analyzer)
	analysisHandler := handlers.NewAnalysisHandler(analyzer)
	exportHandler := handlers.NewExportHandler(analyzer)

	// Health and operational status
	group.GET("/health", healthHandler.Health)
	group.GET("/snapshot/status", healthHandler.RefresherStatus)
	group.POST("/snapshot/refresh", func(c *gin.Context) {
		if err := refresher.RefreshNow(c.Request.Context()); err != nil {
			utils.SendUpstreamError(c, "Snapshot refresh failed", err.Error())
			return
		}
		utils.SendSuccess(c, gin.H{"refreshed": true})
	})

	// Market data and projections
	group.GET("/games", playerHandler.GetGames)
	group.GET("/games/:id/matchup", playerHandler.GetMatchup)
	group.GET("/leagues", playerHandler.GetLeagues)
	group.GET("/players/:name", playerHandler.AnalyzePlayer)
	group.GET("/players/:name/lines", playerHandler.GetBestLines)
	group.POST("/players/analyze", playerHandler.AnalyzePlayers)
	group.POST("/players/compare", playerHandler.ComparePlayers)
	group.POST("/players/value-plays", playerHandler.GetValuePlays)

	// Optimizers
	group.POST("/optimize/lineup", optimizerHandler.OptimizeLineup)
	group.POST("/optimize/dfs", optimizerHandler.OptimizeDFS)

	// Roster analysis
	group.POST("/trades/evaluate", analysisHandler.EvaluateTrade)
	group.POST("/waivers/targets", analysisHandler.WaiverTargets)
	group.POST("/breakouts", analysisHandler.BreakoutCandidates)
	group.POST("/season/simulate", analysisHandler.SimulateSeason)

	// Export
	group.POST("/export", exportHandler.ExportAnalyses)
	group.GET("/export/formats", exportHandler.GetExportFormats)
}
