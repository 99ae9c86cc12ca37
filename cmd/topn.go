package cmd

import (
	"github.com/ARU-life-sciences/clstr/internal/clstr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// topnCmd is for keeping only the largest clusters in a file.
var topnCmd = &cobra.Command{
	Use:   "topn FILE",
	Short: "Write the top N clusters to a new file",
	Long: `Collect every cluster in the input, sort by member count with the largest
first, and write the top N to a sibling file with a .topN.clstr extension.
Ties keep their original file order.`,
	Run:                        clstr.TopNCmd,
	SuggestionsMinimumDistance: 3,
}

// set flags
func init() {
	topnCmd.Flags().IntP("cluster-number", "n", 500, "the number of top clusters to write to the output file")

	// Bind the parameters to viper
	viper.BindPFlag("cluster-number", topnCmd.Flags().Lookup("cluster-number"))

	rootCmd.AddCommand(topnCmd)
}
