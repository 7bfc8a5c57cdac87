package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tickerpulse",
	Short: "TickerPulse - 유튜브 종목 분석 파이프라인",
	Long: `TickerPulse Unified CLI

유튜브 자막에서 종목 티커를 추출하고 애널리스트 평가를 집계하는 시스템.
추출 → 평가 수집 → 랭킹 → 다이제스트까지 하나의 파이프라인으로.

Usage:
  go run ./cmd/tickerpulse [command]

Examples:
  go run ./cmd/tickerpulse api
  go run ./cmd/tickerpulse analyze dQw4w9WgXcQ
  go run ./cmd/tickerpulse digest`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
