package contracts

import "time"

// AnalysisResult is the full output of one video analysis run
// ⭐ SSOT: 파이프라인 최종 결과 전달
type AnalysisResult struct {
	VideoID    string    `json:"video_id"`
	Tickers    []string  `json:"tickers"`   // extracted, deduplicated, sorted
	Ratings    []Rating  `json:"ratings"`   // successfully resolved records
	TopPicks   []Rating  `json:"top_picks"` // highest-scoring subset, descending
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// HasTickers reports whether extraction found any candidates.
// "no tickers found" and "tickers found but no ratings" are distinct
// outcomes and presented differently by callers.
func (r *AnalysisResult) HasTickers() bool {
	return len(r.Tickers) > 0
}

// HasRatings reports whether any rating lookups resolved
func (r *AnalysisResult) HasRatings() bool {
	return len(r.Ratings) > 0
}
