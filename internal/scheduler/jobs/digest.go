package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/tickerpulse/internal/analyzer"
	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/internal/notify"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// DigestJob analyzes the configured videos and emails a top-picks digest
// ⭐ SSOT: 다이제스트 스케줄은 이 Job에서만
type DigestJob struct {
	analyzer *analyzer.Analyzer
	notifier *notify.EmailNotifier
	config   *config.Config
	logger   *logger.Logger
}

// NewDigestJob creates a new digest job
func NewDigestJob(a *analyzer.Analyzer, n *notify.EmailNotifier, cfg *config.Config, log *logger.Logger) *DigestJob {
	return &DigestJob{
		analyzer: a,
		notifier: n,
		config:   cfg,
		logger:   log,
	}
}

// Name returns the job name
func (j *DigestJob) Name() string {
	return "daily_digest"
}

// Schedule returns the configured cron schedule (default 7 AM daily)
func (j *DigestJob) Schedule() string {
	return j.config.Digest.Schedule
}

// Run analyzes each configured video and sends one digest covering the
// run. A single video failing is absorbed; the job fails only when no
// video could be analyzed or the digest could not be delivered.
func (j *DigestJob) Run(ctx context.Context) error {
	videoIDs := j.config.Digest.VideoIDs
	if len(videoIDs) == 0 {
		j.logger.Warn("No digest videos configured, skipping run")
		return nil
	}

	j.logger.WithField("videos", len(videoIDs)).Info("Starting scheduled digest run")

	results := make([]*contracts.AnalysisResult, 0, len(videoIDs))
	for _, videoID := range videoIDs {
		result, err := j.analyzer.AnalyzeVideo(ctx, videoID)
		if err != nil {
			j.logger.WithError(err).WithField("video_id", videoID).Warn("Video analysis failed, skipping")
			continue
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return fmt.Errorf("all %d video analyses failed", len(videoIDs))
	}

	if err := j.notifier.SendDigest(ctx, results); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"analyzed": len(results),
		"failed":   len(videoIDs) - len(results),
	}).Info("Scheduled digest run completed")

	return nil
}
