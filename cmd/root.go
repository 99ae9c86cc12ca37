// Package cmd is for command line interactions with the clstr application
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "clstr",
	Short: `Process .clstr clustering reports produced by CD-HIT.
Summarize, subset, and cross-reference clusters against their FASTA database`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
