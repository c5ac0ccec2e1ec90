package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bgscore",
	Short: "Score garment background colors against print artwork",
	Long: "bgscore analyzes a piece of foreground artwork and scores how well each\n" +
		"candidate solid background color pairs with it for print-on-demand apparel,\n" +
		"reporting a 0-100 score and a PROMOTED / PASSED / REJECTED verdict per color.",
}

func init() {
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
