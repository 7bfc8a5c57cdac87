package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/tickerpulse/internal/scheduler"
	"github.com/wonny/tickerpulse/internal/scheduler/jobs"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "다이제스트 스케줄러 시작",
	Long: `설정된 영상 목록을 주기적으로 분석하고 이메일 다이제스트를 발송합니다.

이 명령어는:
- cron 스케줄러 시작 (기본: 매일 07:00)
- DIGEST_VIDEO_IDS에 지정된 영상 분석
- 상위 종목 다이제스트 이메일 발송

Example:
  go run ./cmd/tickerpulse digest
  go run ./cmd/tickerpulse digest --now`,
	RunE: runDigest,
}

var (
	digestNow bool
)

func init() {
	rootCmd.AddCommand(digestCmd)

	// Flags
	digestCmd.Flags().BoolVar(&digestNow, "now", false, "스케줄 없이 즉시 1회 실행")
}

func runDigest(cmd *cobra.Command, args []string) error {
	fmt.Println("=== TickerPulse Digest Scheduler ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Wire the analysis pipeline
	pipe, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer pipe.Close()

	job := jobs.NewDigestJob(pipe.analyzer, pipe.notifier, cfg, log)

	// One-shot mode: run the job once and exit
	if digestNow {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := job.Run(ctx); err != nil {
			return fmt.Errorf("digest run: %w", err)
		}

		fmt.Println("\n✅ Digest completed")
		return nil
	}

	// 4. Start the scheduler
	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return fmt.Errorf("add digest job: %w", err)
	}

	sched.Start()
	defer sched.Stop()

	fmt.Printf("\n✅ Scheduler running (schedule: %s, videos: %d)\n", cfg.Digest.Schedule, len(cfg.Digest.VideoIDs))
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	return nil
}
