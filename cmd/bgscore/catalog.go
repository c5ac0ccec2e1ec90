package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowmable/background-color-scorer/pkg/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active background color slate",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		if flagCatalog != "" {
			var err error
			if cat, err = catalog.LoadFile(flagCatalog); err != nil {
				return err
			}
		}

		for _, entry := range cat.Entries() {
			line := fmt.Sprintf("%-24s %s", entry.Name, entry.Hex)
			if entry.MarketBonus != nil {
				line += fmt.Sprintf("  (market override %+.2f)", *entry.MarketBonus)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&flagCatalog, "catalog", "c", "", "YAML catalog file replacing the built-in palette")
	rootCmd.AddCommand(catalogCmd)
}
