// Package main runs the code-quality backend double.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quality-mock",
	Short: "Deterministic backend double for the code-quality web API",
	Long: `quality-mock serves the issues, rules, users, quality gates and
security hotspots endpoints from a seeded in-memory store.

Configuration is read from the environment and config/.env, for example
STORE_BACKEND=sqlite or STORE_RESET_CRON=@hourly.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
