package ratings

import (
	"context"
	"sync"
	"time"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// Aggregator fetches analyst ratings for a set of tickers in
// rate-limited batches.
// ⭐ SSOT: 레이팅 배치 조회는 여기서만
type Aggregator struct {
	provider   contracts.RatingProvider
	batchSize  int
	batchDelay time.Duration
	logger     *logger.Logger
}

// Config holds aggregator tuning parameters
type Config struct {
	BatchSize  int           // provider calls issued concurrently per batch
	BatchDelay time.Duration // pause between batches
}

// DefaultConfig returns the default batch parameters
func DefaultConfig() Config {
	return Config{
		BatchSize:  5,
		BatchDelay: 200 * time.Millisecond,
	}
}

// NewAggregator creates a new Aggregator
func NewAggregator(provider contracts.RatingProvider, cfg Config, log *logger.Logger) *Aggregator {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Aggregator{
		provider:   provider,
		batchSize:  cfg.BatchSize,
		batchDelay: cfg.BatchDelay,
		logger:     log.WithField("module", "ratings"),
	}
}

// FetchMultiple resolves ratings for all tickers. Tickers are sliced
// into fixed-size batches in input order; within a batch every provider
// call runs concurrently and a failing call only drops its own ticker.
// Batches run strictly sequentially with a fixed pause between them to
// respect upstream rate limits. Output order follows batch grouping but
// is otherwise not guaranteed to match the input.
func (a *Aggregator) FetchMultiple(ctx context.Context, tickers []string) []contracts.Rating {
	results := make([]contracts.Rating, 0, len(tickers))

	for start := 0; start < len(tickers); start += a.batchSize {
		// Pause between batches, never before the first one
		if start > 0 && a.batchDelay > 0 {
			select {
			case <-ctx.Done():
				a.logger.WithField("collected", len(results)).Warn("Rating fetch cancelled between batches")
				return results
			case <-time.After(a.batchDelay):
			}
		}

		end := start + a.batchSize
		if end > len(tickers) {
			end = len(tickers)
		}
		batch := tickers[start:end]

		// All calls in the batch settle before the batch is resolved;
		// one failure never cancels its siblings.
		slots := make([]*contracts.Rating, len(batch))
		var wg sync.WaitGroup
		for i, symbol := range batch {
			wg.Add(1)
			go func(i int, symbol string) {
				defer wg.Done()

				rating, err := a.provider.FetchRating(ctx, symbol)
				if err != nil {
					// Absorbed: the ticker is dropped, the batch continues
					a.logger.WithError(err).WithField("symbol", symbol).Warn("Rating fetch failed, dropping ticker")
					return
				}
				slots[i] = rating
			}(i, symbol)
		}
		wg.Wait()

		for _, rating := range slots {
			if rating != nil {
				results = append(results, *rating)
			}
		}
	}

	a.logger.WithFields(map[string]interface{}{
		"requested": len(tickers),
		"resolved":  len(results),
	}).Info("Rating fetch completed")

	return results
}
