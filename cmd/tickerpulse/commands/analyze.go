package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/tickerpulse/internal/external/youtube"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [video]",
	Short: "영상 하나를 분석",
	Long: `유튜브 영상 하나를 일회성으로 분석합니다.

자막에서 티커를 추출하고 애널리스트 평가를 수집한 뒤
상위 종목을 출력합니다.

Example:
  go run ./cmd/tickerpulse analyze dQw4w9WgXcQ
  go run ./cmd/tickerpulse analyze https://youtu.be/dQw4w9WgXcQ
  go run ./cmd/tickerpulse analyze dQw4w9WgXcQ --top 3`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeTop     int
	analyzeTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Flags
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "상위 종목 수 (기본: 설정값)")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 2*time.Minute, "분석 타임아웃")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== TickerPulse Analyze ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if analyzeTop > 0 {
		cfg.Analyze.TopCount = analyzeTop
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Parse the video argument (bare ID or URL)
	videoID, err := youtube.ParseVideoID(args[0])
	if err != nil {
		return fmt.Errorf("parse video: %w", err)
	}

	// 4. Wire the analysis pipeline
	pipe, err := buildPipeline(cfg, log)
	if err != nil {
		return err
	}
	defer pipe.Close()

	// 5. Run the analysis
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	fmt.Printf("\nAnalyzing video %s...\n", videoID)
	result, err := pipe.analyzer.AnalyzeVideo(ctx, videoID)
	if err != nil {
		return fmt.Errorf("analyze video: %w", err)
	}

	// 6. Print results
	if !result.HasTickers() {
		fmt.Println("\nNo tickers mentioned in this video.")
		return nil
	}

	fmt.Printf("\nMentioned tickers (%d): %s\n", len(result.Tickers), strings.Join(result.Tickers, ", "))

	if !result.HasRatings() {
		fmt.Println("No analyst ratings resolved.")
		return nil
	}

	fmt.Printf("\nTop %d picks:\n", len(result.TopPicks))
	for i, pick := range result.TopPicks {
		line := fmt.Sprintf("  %d. %-6s %-12s %3d analysts", i+1, pick.Symbol, pick.Label, pick.Analysts)
		if pick.Upside != nil {
			line += fmt.Sprintf("  %+6.1f%% upside", *pick.Upside)
		}
		if pick.Name != "" {
			line += "  " + pick.Name
		}
		fmt.Println(line)
	}

	fmt.Println("\n✅ Analysis completed")
	return nil
}
