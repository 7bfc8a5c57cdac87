package main

import (
	"os"

	"github.com/wonny/tickerpulse/cmd/tickerpulse/commands"
)

// main is the entry point for the TickerPulse CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/tickerpulse [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
