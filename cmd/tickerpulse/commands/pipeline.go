package commands

import (
	"fmt"

	"github.com/wonny/tickerpulse/internal/analyzer"
	"github.com/wonny/tickerpulse/internal/external/yahoo"
	"github.com/wonny/tickerpulse/internal/external/youtube"
	"github.com/wonny/tickerpulse/internal/notify"
	"github.com/wonny/tickerpulse/internal/ratings"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/httputil"
	"github.com/wonny/tickerpulse/pkg/logger"
	"github.com/wonny/tickerpulse/pkg/redis"
)

// pipeline bundles the wired core components shared by the api,
// analyze and digest commands.
// ⭐ SSOT: 파이프라인 조립은 이 파일에서만
type pipeline struct {
	analyzer *analyzer.Analyzer
	notifier *notify.EmailNotifier
	redis    *redis.Client
}

// buildPipeline wires config, redis, HTTP clients and the analysis
// components. Callers must Close() the returned pipeline.
func buildPipeline(cfg *config.Config, log *logger.Logger) (*pipeline, error) {
	// 1. Connect to Redis (no-op client when disabled)
	rdb, err := redis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	limiter := redis.NewRateLimiter(rdb, "tickerpulse")
	cache := redis.NewCache(rdb, "tickerpulse")

	// 2. HTTP clients for upstream APIs. No automatic retries: a failed
	// rating or transcript call is dropped, not replayed.
	yahooHTTP := httputil.New(cfg, log).DisableRetry()
	youtubeHTTP := httputil.New(cfg, log).DisableRetry()

	if rdb.Enabled() {
		yahooHTTP = yahooHTTP.WithRateLimiter(limiter, redis.YahooRateLimit)
		youtubeHTTP = youtubeHTTP.WithRateLimiter(limiter, redis.YouTubeRateLimit)
	} else {
		yahooHTTP = yahooHTTP.WithLocalLimiter(float64(redis.YahooRateLimit.Limit), redis.YahooRateLimit.Limit)
		youtubeHTTP = youtubeHTTP.WithLocalLimiter(float64(redis.YouTubeRateLimit.Limit), redis.YouTubeRateLimit.Limit)
	}

	// 3. External API clients
	yahooClient := yahoo.NewClient(yahooHTTP, cfg.Yahoo.BaseURL, log)
	youtubeClient := youtube.NewClient(youtubeHTTP, cfg.YouTube.BaseURL, cfg.YouTube.Languages, cache, cfg.YouTube.CacheTTL, log)

	// 4. Analysis components
	aggregator := ratings.NewAggregator(yahooClient, ratings.Config{
		BatchSize:  cfg.Analyze.BatchSize,
		BatchDelay: cfg.Analyze.BatchDelay,
	}, log)
	ranker := ratings.NewRanker(ratings.DefaultScoreConfig(), log)

	a := analyzer.New(youtubeClient, aggregator, ranker, cfg.Analyze.TopCount, log)

	// 5. Digest notifier
	notifier := notify.NewEmailNotifier(
		notify.NewHTMLEmailRenderer(),
		notify.NewEmailSender(cfg.SMTP, log),
		log,
	)

	return &pipeline{
		analyzer: a,
		notifier: notifier,
		redis:    rdb,
	}, nil
}

// Close releases pipeline resources.
func (p *pipeline) Close() {
	if p.redis != nil {
		p.redis.Close()
	}
}
