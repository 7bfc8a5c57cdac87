package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/internal/extract"
	"github.com/wonny/tickerpulse/internal/ratings"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// Analyzer runs the full pipeline for one video:
// transcript → ticker extraction → rating fetch → top picks
// ⭐ SSOT: 파이프라인 오케스트레이션은 여기서만
type Analyzer struct {
	transcripts contracts.TranscriptProvider
	aggregator  *ratings.Aggregator
	ranker      *ratings.Ranker
	topCount    int
	logger      *logger.Logger
}

// New creates a new Analyzer
func New(
	transcripts contracts.TranscriptProvider,
	aggregator *ratings.Aggregator,
	ranker *ratings.Ranker,
	topCount int,
	log *logger.Logger,
) *Analyzer {
	if topCount < 1 {
		topCount = ratings.DefaultTopCount
	}
	return &Analyzer{
		transcripts: transcripts,
		aggregator:  aggregator,
		ranker:      ranker,
		topCount:    topCount,
		logger:      log.WithField("module", "analyzer"),
	}
}

// AnalyzeVideo analyzes one video end to end. A transcript failure is
// terminal for the request; everything after it degrades to partial or
// empty results instead of failing.
func (a *Analyzer) AnalyzeVideo(ctx context.Context, videoID string) (*contracts.AnalysisResult, error) {
	text, err := a.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript: %w", err)
	}

	result := a.AnalyzeText(ctx, text)
	result.VideoID = videoID

	a.logger.WithFields(map[string]interface{}{
		"video_id": videoID,
		"tickers":  len(result.Tickers),
		"ratings":  len(result.Ratings),
		"picks":    len(result.TopPicks),
	}).Info("Video analysis completed")

	return result, nil
}

// AnalyzeText runs extraction, rating aggregation and ranking over raw
// text. Never fails: zero tickers or zero resolved ratings are valid
// outcomes the caller presents distinctly.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) *contracts.AnalysisResult {
	result := &contracts.AnalysisResult{
		Tickers:    extract.Extract(text),
		Ratings:    []contracts.Rating{},
		TopPicks:   []contracts.Rating{},
		AnalyzedAt: time.Now().UTC(),
	}

	if !result.HasTickers() {
		return result
	}

	result.Ratings = a.aggregator.FetchMultiple(ctx, result.Tickers)
	result.TopPicks = a.ranker.TopPicks(result.Ratings, a.topCount)

	return result
}
