package ratings

import (
	"sort"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// Ranker scores rating records and selects the top picks
// ⭐ SSOT: 스코어링/랭킹 로직은 여기서만
type Ranker struct {
	weights ScoreConfig
	logger  *logger.Logger
}

// ScoreConfig defines the scoring weights. The defaults favor strong
// qualitative analyst sentiment over raw numeric upside, with caps so
// outlier tickers cannot dominate the ranking. Tuning constants, not law.
type ScoreConfig struct {
	TrendWeight float64 // multiplier on the trend bucket ordinal (기본: 20)
	UpsideCap   float64 // max upside contribution; no floor, negative upside subtracts
	AnalystCap  int     // analyst coverage counted up to this many
	AnalystMult float64 // multiplier on capped analyst count
}

// DefaultTopCount is the default shortlist size
const DefaultTopCount = 5

// DefaultScoreConfig returns the default scoring weights
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		TrendWeight: 20,
		UpsideCap:   50,
		AnalystCap:  10,
		AnalystMult: 2,
	}
}

// NewRanker creates a new ranker
func NewRanker(weights ScoreConfig, log *logger.Logger) *Ranker {
	return &Ranker{
		weights: weights,
		logger:  log.WithField("module", "ranker"),
	}
}

// Score computes the scalar ranking score for one record:
// trend ordinal × trend weight, plus upside clamped from above only,
// plus analyst coverage clamped and weighted.
func (r *Ranker) Score(rec *contracts.Rating) float64 {
	score := float64(rec.Trend.Weight()) * r.weights.TrendWeight

	if rec.Upside != nil {
		upside := *rec.Upside
		if upside > r.weights.UpsideCap {
			upside = r.weights.UpsideCap
		}
		score += upside
	}

	analysts := rec.Analysts
	if analysts > r.weights.AnalystCap {
		analysts = r.weights.AnalystCap
	}
	score += float64(analysts) * r.weights.AnalystMult

	return score
}

// TopPicks returns at most count records ordered by descending score.
// The sort is stable, so ties keep their relative input order. A count
// below 1 falls back to DefaultTopCount. The input slice is not mutated.
func (r *Ranker) TopPicks(records []contracts.Rating, count int) []contracts.Rating {
	if count < 1 {
		count = DefaultTopCount
	}

	ranked := make([]contracts.Rating, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return r.Score(&ranked[i]) > r.Score(&ranked[j])
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}

	if len(ranked) > 0 {
		r.logger.WithFields(map[string]interface{}{
			"candidates": len(records),
			"picks":      len(ranked),
			"top_symbol": ranked[0].Symbol,
			"top_score":  r.Score(&ranked[0]),
		}).Info("Ranking completed")
	}

	return ranked
}
