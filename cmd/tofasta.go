package cmd

import (
	"github.com/ARU-life-sciences/clstr/internal/clstr"
	"github.com/spf13/cobra"
)

// tofastaCmd is for splitting a cluster file into per-cluster FASTA files.
var tofastaCmd = &cobra.Command{
	Use:   "tofasta FILE DATABASE",
	Short: "Generate multiple FASTA files given an input cluster file",
	Long: `Write one FASTA file per cluster, named after the database description of
the cluster's representative. DATABASE is the sequence file the report was
clustered from, gzipped or not. Members missing from the database are
skipped with a warning.`,
	Run:                        clstr.ToFastaCmd,
	SuggestionsMinimumDistance: 3,
}

func init() {
	rootCmd.AddCommand(tofastaCmd)
}
