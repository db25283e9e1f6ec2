package main

import (
	"os"

	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"

	"github.com/spf13/cobra"
)

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "Inspect seed data",
}

var dumpOutput string

var fixturesDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Write the built-in seed as YAML",
	Long: `Write the built-in seed as YAML. Edit the output and point
STORE_FIXTURES_FILE at it to serve a custom seed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := cmd.OutOrStdout()
		if dumpOutput != "" {
			f, err := os.Create(dumpOutput)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			w = f
		}
		return fixtures.Dump(w, fixtures.Default())
	},
}

func init() {
	fixturesDumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write to file instead of stdout")
	fixturesCmd.AddCommand(fixturesDumpCmd)
	rootCmd.AddCommand(fixturesCmd)
}
