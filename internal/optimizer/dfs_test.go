package optimizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

func salaried(name string, pos models.Position, points float64, team string, salary int) models.PlayerAnalysis {
	p := projected(name, pos, points)
	p.Roster = &models.RosterInfo{
		Team:   team,
		Active: true,
		Salary: &salary,
	}
	return p
}

func dfsPool() []models.PlayerAnalysis {
	return []models.PlayerAnalysis{
		salaried("QB1", models.PositionQB, 24.0, "BUF", 8200),
		salaried("QB2", models.PositionQB, 20.0, "KC", 7400),
		salaried("RB1", models.PositionRB, 18.0, "SF", 9000),
		salaried("RB2", models.PositionRB, 15.0, "BUF", 6800),
		salaried("RB3", models.PositionRB, 12.0, "DET", 5200),
		salaried("WR1", models.PositionWR, 17.0, "MIA", 8800),
		salaried("WR2", models.PositionWR, 14.0, "KC", 6600),
		salaried("WR3", models.PositionWR, 11.0, "DET", 4800),
		salaried("TE1", models.PositionTE, 12.0, "KC", 5000),
		salaried("TE2", models.PositionTE, 8.0, "BUF", 3400),
	}
}

func classicRequirements() models.LineupRequirement {
	return models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionRB: 2,
		models.PositionWR: 2,
		models.PositionTE: 1,
	}
}

func TestOptimizeDFS_RespectsSalaryCap(t *testing.T) {
	constraints := models.DFSConstraints{SalaryCap: 40000, MaxPerTeam: 4}

	result, err := OptimizeDFS(dfsPool(), constraints, classicRequirements())

	require.NoError(t, err)
	assert.LessOrEqual(t, result.TotalSalary, constraints.SalaryCap)
	assert.Equal(t, constraints.SalaryCap-result.TotalSalary, result.SalaryRemaining)
	assert.Len(t, result.Players, 6)
	assert.Greater(t, result.TotalPoints, 0.0)
}

func TestOptimizeDFS_RespectsTeamCap(t *testing.T) {
	pool := []models.PlayerAnalysis{
		salaried("QB1", models.PositionQB, 24.0, "BUF", 7000),
		salaried("RB1", models.PositionRB, 18.0, "BUF", 7000),
		salaried("RB2", models.PositionRB, 16.0, "BUF", 7000),
		salaried("RB3", models.PositionRB, 10.0, "NYJ", 7000),
		salaried("WR1", models.PositionWR, 15.0, "MIA", 7000),
	}
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 2}
	req := models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionRB: 2,
		models.PositionWR: 1,
	}

	result, err := OptimizeDFS(pool, constraints, req)

	require.NoError(t, err)
	counts := make(map[string]int)
	for _, p := range result.Players {
		counts[p.Roster.Team]++
	}
	for team, n := range counts {
		assert.LessOrEqual(t, n, 2, "team %s over cap", team)
	}
}

func TestOptimizeDFS_FillsByPointsPerDollar(t *testing.T) {
	pool := []models.PlayerAnalysis{
		// 2.5 points per thousand vs 3.0 points per thousand.
		salaried("Pricey", models.PositionQB, 25.0, "A", 10000),
		salaried("Value", models.PositionQB, 15.0, "B", 5000),
	}
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 4}
	req := models.LineupRequirement{models.PositionQB: 1}

	result, err := OptimizeDFS(pool, constraints, req)

	require.NoError(t, err)
	require.Len(t, result.Players, 1)
	assert.Equal(t, "Value", result.Players[0].Name)
}

func TestOptimizeDFS_MustIncludeCallerOrder(t *testing.T) {
	pool := []models.PlayerAnalysis{
		salaried("QB1", models.PositionQB, 24.0, "A", 7000),
		salaried("QB2", models.PositionQB, 20.0, "B", 6000),
	}
	constraints := models.DFSConstraints{
		SalaryCap:   50000,
		MaxPerTeam:  4,
		MustInclude: []string{"QB2", "QB1"},
	}
	req := models.LineupRequirement{models.PositionQB: 1}

	// Both requested for one slot: the first seats, the second cannot.
	_, err := OptimizeDFS(pool, constraints, req)
	assert.ErrorIs(t, err, ErrInfeasibleLineup)

	constraints.MustInclude = []string{"QB2"}
	result, err := OptimizeDFS(pool, constraints, req)
	require.NoError(t, err)
	require.Len(t, result.Players, 1)
	assert.Equal(t, "QB2", result.Players[0].Name)
}

func TestOptimizeDFS_BannedPlayersExcluded(t *testing.T) {
	constraints := models.DFSConstraints{
		SalaryCap:  40000,
		MaxPerTeam: 4,
		Banned:     []string{"QB1", "WR1"},
	}

	result, err := OptimizeDFS(dfsPool(), constraints, classicRequirements())

	require.NoError(t, err)
	for _, p := range result.Players {
		assert.NotEqual(t, "QB1", p.Name)
		assert.NotEqual(t, "WR1", p.Name)
	}
}

func TestOptimizeDFS_InfeasibleWhenBudgetBlocksRequiredSlot(t *testing.T) {
	pool := []models.PlayerAnalysis{
		salaried("QB1", models.PositionQB, 24.0, "A", 9000),
		salaried("RB1", models.PositionRB, 18.0, "B", 9000),
	}
	constraints := models.DFSConstraints{SalaryCap: 9000, MaxPerTeam: 4}
	req := models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionRB: 1,
	}

	_, err := OptimizeDFS(pool, constraints, req)

	assert.ErrorIs(t, err, ErrInfeasibleLineup)
}

func TestOptimizeDFS_MissingPositionGroupLeavesSlotOpen(t *testing.T) {
	pool := []models.PlayerAnalysis{
		salaried("QB1", models.PositionQB, 24.0, "A", 7000),
	}
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 4}
	req := models.LineupRequirement{
		models.PositionQB: 1,
		models.PositionK:  1,
	}

	result, err := OptimizeDFS(pool, constraints, req)

	require.NoError(t, err)
	assert.Len(t, result.Players, 1)
}

func TestOptimizeDFS_EmptyPoolDistinctFromInfeasible(t *testing.T) {
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 4}
	req := models.LineupRequirement{models.PositionQB: 1}

	_, err := OptimizeDFS(nil, constraints, req)
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = OptimizeDFS([]models.PlayerAnalysis{unprojected("X", models.PositionQB)}, constraints, req)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestOptimizeDFS_ValidatesConstraints(t *testing.T) {
	req := models.LineupRequirement{models.PositionQB: 1}
	pool := dfsPool()

	_, err := OptimizeDFS(pool, models.DFSConstraints{SalaryCap: -1, MaxPerTeam: 4}, req)
	assert.Error(t, err)

	_, err = OptimizeDFS(pool, models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 0}, req)
	assert.Error(t, err)

	_, err = OptimizeDFS(pool, models.DFSConstraints{
		SalaryCap:   50000,
		MaxPerTeam:  4,
		MustInclude: []string{"QB1", "QB2"},
	}, req)
	assert.Error(t, err)
}

func TestOptimizeDFS_DefaultSalaryForUnlistedPlayers(t *testing.T) {
	noSalary := projected("Cheap", models.PositionQB, 10.0)
	constraints := models.DFSConstraints{SalaryCap: 5000, MaxPerTeam: 4}
	req := models.LineupRequirement{models.PositionQB: 1}

	result, err := OptimizeDFS([]models.PlayerAnalysis{noSalary}, constraints, req)

	require.NoError(t, err)
	assert.Equal(t, 5000, result.TotalSalary)
	assert.Equal(t, 0, result.SalaryRemaining)
}

func setupBenchmarkPool(size int) []models.PlayerAnalysis {
	pool := make([]models.PlayerAnalysis, 0, size)
	positions := []models.Position{models.PositionQB, models.PositionRB, models.PositionWR, models.PositionTE}
	for i := 0; i < size; i++ {
		pos := positions[i%len(positions)]
		team := fmt.Sprintf("T%d", i%16)
		pool = append(pool, salaried(
			fmt.Sprintf("P%d", i),
			pos,
			5.0+float64(i%25),
			team,
			4000+(i%40)*150,
		))
	}
	return pool
}

func BenchmarkOptimizeDFS_200Players(b *testing.B) {
	pool := setupBenchmarkPool(200)
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 4}
	req := classicRequirements()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := OptimizeDFS(pool, constraints, req)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkOptimizeLineup_200Players(b *testing.B) {
	pool := setupBenchmarkPool(200)
	req := classicRequirements()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := OptimizeLineup(pool, req)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func TestOptimizeDFS_MustIncludeSeatsOnceAtMultiSlotPosition(t *testing.T) {
	pool := []models.PlayerAnalysis{
		// Star has the best points per dollar, so a fill-phase re-seat
		// would pick them again for the second slot.
		salaried("Star", models.PositionRB, 20.0, "SF", 5000),
		salaried("RB2", models.PositionRB, 10.0, "DET", 6000),
	}
	constraints := models.DFSConstraints{
		SalaryCap:   50000,
		MaxPerTeam:  4,
		MustInclude: []string{"Star"},
	}
	req := models.LineupRequirement{models.PositionRB: 2}

	result, err := OptimizeDFS(pool, constraints, req)

	require.NoError(t, err)
	counts := make(map[string]int)
	for _, p := range result.Players {
		counts[p.Name]++
	}
	assert.Equal(t, 1, counts["Star"])
	assert.Equal(t, 1, counts["RB2"])
	assert.Equal(t, 11000, result.TotalSalary)
	assert.InDelta(t, 30.0, result.TotalPoints, 1e-9)
}

func TestOptimizeDFS_DuplicateMustIncludeSeatsOnce(t *testing.T) {
	pool := []models.PlayerAnalysis{
		salaried("Star", models.PositionRB, 20.0, "SF", 5000),
		salaried("RB2", models.PositionRB, 10.0, "DET", 6000),
	}
	constraints := models.DFSConstraints{
		SalaryCap:   50000,
		MaxPerTeam:  4,
		MustInclude: []string{"Star", "Star"},
	}
	req := models.LineupRequirement{models.PositionRB: 2}

	result, err := OptimizeDFS(pool, constraints, req)

	require.NoError(t, err)
	counts := make(map[string]int)
	for _, p := range result.Players {
		counts[p.Name]++
	}
	assert.Equal(t, 1, counts["Star"])
}

func TestOptimizeDFS_ReportsGroupingAndTeamDistribution(t *testing.T) {
	constraints := models.DFSConstraints{SalaryCap: 50000, MaxPerTeam: 4}

	result, err := OptimizeDFS(dfsPool(), constraints, classicRequirements())

	require.NoError(t, err)
	assert.Len(t, result.ByPosition[models.PositionRB], 2)
	assert.Len(t, result.ByPosition[models.PositionWR], 2)
	assert.Len(t, result.ByPosition[models.PositionQB], 1)

	total := 0
	for _, n := range result.TeamDistribution {
		total += n
	}
	assert.Equal(t, len(result.Players), total)
}
