package cmd

import (
	"github.com/ARU-life-sciences/clstr/internal/browse"
	"github.com/spf13/cobra"
)

// browseCmd is for inspecting a cluster file interactively.
var browseCmd = &cobra.Command{
	Use:                        "browse FILE",
	Short:                      "Browse a cluster file interactively",
	Run:                        browse.Cmd,
	SuggestionsMinimumDistance: 3,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
