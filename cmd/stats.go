package cmd

import (
	"github.com/ARU-life-sciences/clstr/internal/clstr"
	"github.com/spf13/cobra"
)

// statsCmd is for summarizing a cluster file.
var statsCmd = &cobra.Command{
	Use:                        "stats FILE",
	Short:                      "Get statistics on a CD-HIT cluster file",
	Run:                        clstr.StatsCmd,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	statsCmd.Flags().BoolP("table", "t", false, "print each cluster and number of sequences per cluster")

	rootCmd.AddCommand(statsCmd)
}
