package projection

import "github.com/fantasyedge/fantasy-edge/internal/models"

// Consensus collapses multi-bookmaker quotes into one representative line
// per market: the arithmetic mean of the quoted line values. Every quote
// counts equally; there is no bookmaker weighting or staleness decay.
// Markets absent from the input are absent from the output, never zeroed.
func Consensus(quotes []models.MarketQuote) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, q := range quotes {
		sums[q.Market] += q.Line
		counts[q.Market]++
	}

	lines := make(map[string]float64, len(sums))
	for market, sum := range sums {
		lines[market] = sum / float64(counts[market])
	}
	return lines
}

// BestLine is the most favorable over and under price found for one market
// across all bookmakers.
type BestLine struct {
	Market        string  `json:"market"`
	OverBook      string  `json:"over_book,omitempty"`
	OverPrice     int     `json:"over_price,omitempty"`
	OverLine      float64 `json:"over_line,omitempty"`
	UnderBook     string  `json:"under_book,omitempty"`
	UnderPrice    int     `json:"under_price,omitempty"`
	UnderLine     float64 `json:"under_line,omitempty"`
	ConsensusLine float64 `json:"consensus_line"`
}

// BestLines finds, per market, the bookmaker offering the highest over price
// and the highest under price. Quotes without a priced side are skipped for
// that side only.
func BestLines(quotes []models.MarketQuote) map[string]BestLine {
	lines := Consensus(quotes)
	best := make(map[string]BestLine)
	for _, q := range quotes {
		entry, ok := best[q.Market]
		if !ok {
			entry = BestLine{Market: q.Market, ConsensusLine: lines[q.Market]}
		}
		if q.OverPrice != nil && (entry.OverBook == "" || *q.OverPrice > entry.OverPrice) {
			entry.OverBook = q.Bookmaker
			entry.OverPrice = *q.OverPrice
			entry.OverLine = q.Line
		}
		if q.UnderPrice != nil && (entry.UnderBook == "" || *q.UnderPrice > entry.UnderPrice) {
			entry.UnderBook = q.Bookmaker
			entry.UnderPrice = *q.UnderPrice
			entry.UnderLine = q.Line
		}
		best[q.Market] = entry
	}
	return best
}
