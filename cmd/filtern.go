package cmd

import (
	"github.com/ARU-life-sciences/clstr/internal/clstr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// filternCmd is for dropping clusters below a size threshold.
var filternCmd = &cobra.Command{
	Use:   "filtern FILE",
	Short: "Write clusters with at least N records to a new file",
	Long: `Stream the input and write every cluster with at least N member sequences
to a sibling file with a .more_than_N.clstr extension. Unlike topn this never
holds more than one cluster in memory.`,
	Run:                        clstr.FilterNCmd,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	filternCmd.Flags().IntP("filter-number", "n", 20, "the minimum number of sequences in a cluster for it to be written to the output file")

	// Bind the parameters to viper
	viper.BindPFlag("filter-number", filternCmd.Flags().Lookup("filter-number"))

	rootCmd.AddCommand(filternCmd)
}
