package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barscribe",
	Short: "Turns ABC-like notation into bars, tracks and midi files",
	Long: `barscribe parses a compact pitch/duration notation ("GGGA | B2A2")
into bars and tracks, and renders YAML tune files to standard midi files.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
