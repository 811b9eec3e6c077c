package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/fantasyedge/fantasy-edge/internal/models"
)

// ExportFormat names a supported export encoding.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// ExportFormats lists the supported encodings.
func ExportFormats() []ExportFormat {
	return []ExportFormat{ExportCSV, ExportJSON}
}

// ExportAnalyses encodes a batch of player analyses for download.
func ExportAnalyses(analyses []models.PlayerAnalysis, format ExportFormat) ([]byte, error) {
	switch format {
	case ExportCSV:
		return exportCSV(analyses)
	case ExportJSON:
		return exportJSON(analyses)
	}
	return nil, fmt.Errorf("unsupported export format %q", format)
}

var csvHeader = []string{
	"name", "position", "team", "projected_points", "confidence",
	"passing_yards", "passing_tds", "rushing_yards", "rushing_tds",
	"receptions", "receiving_yards", "receiving_tds",
}

var csvCategories = []string{
	"passing_yards", "passing_tds", "rushing_yards", "rushing_tds",
	"receptions", "receiving_yards", "receiving_tds",
}

func exportCSV(analyses []models.PlayerAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, a := range analyses {
		record := make([]string, 0, len(csvHeader))
		record = append(record, a.Name, string(a.Position), exportTeam(a))
		if a.Projection != nil {
			record = append(record,
				formatPoints(a.Projection.Points),
				strconv.FormatFloat(a.Projection.Confidence, 'f', 2, 64),
			)
			for _, category := range csvCategories {
				record = append(record, formatPoints(a.Projection.Breakdown[category]))
			}
		} else {
			for i := len(record); i < len(csvHeader); i++ {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportJSON(analyses []models.PlayerAnalysis) ([]byte, error) {
	out := make([]map[string]interface{}, 0, len(analyses))
	for _, a := range analyses {
		out = append(out, a.ToMap())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i]["name"].(string) < out[j]["name"].(string)
	})
	return json.MarshalIndent(out, "", "  ")
}

func exportTeam(a models.PlayerAnalysis) string {
	if a.Roster == nil {
		return ""
	}
	return a.Roster.Team
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
