package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/flowmable/background-color-scorer/pkg/catalog"
	"github.com/flowmable/background-color-scorer/pkg/loader"
	"github.com/flowmable/background-color-scorer/pkg/report"
	"github.com/flowmable/background-color-scorer/pkg/scoring"
	"github.com/flowmable/background-color-scorer/pkg/settings"
)

var (
	flagBackgrounds []string
	flagCatalog     string
	flagJSON        bool
	flagTop         int
)

var scoreCmd = &cobra.Command{
	Use:   "score <image>...",
	Short: "Score one or more designs against the background slate",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringSliceVarP(&flagBackgrounds, "backgrounds", "b", nil, "explicit hex slate instead of the catalog (e.g. -b '#000000,#FFFFFF')")
	scoreCmd.Flags().StringVarP(&flagCatalog, "catalog", "c", "", "YAML catalog file replacing the built-in palette")
	scoreCmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON instead of the terminal table")
	scoreCmd.Flags().IntVar(&flagTop, "top", 0, "show only the top N candidates (0 = all)")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	s, err := settings.Load()
	if err != nil {
		return err
	}

	cat := catalog.Default()
	if flagCatalog != "" {
		if cat, err = catalog.LoadFile(flagCatalog); err != nil {
			return err
		}
	}

	slate := cat.Hexes()
	if len(flagBackgrounds) > 0 {
		slate = flagBackgrounds
	}

	engine := scoring.NewEngine(s)
	if err := engine.SetOverrides(cat.Overrides()); err != nil {
		return err
	}

	fl := loader.NewFileLoader(s)

	// Designs are independent; analysis dominates wall time, so fan out one
	// goroutine per design up to the core count.
	results := make([][]scoring.EvaluationResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range args {
		g.Go(func() error {
			img, err := fl.LoadImage(ctx, path)
			if err != nil {
				return err
			}

			scored, err := engine.ScoreImage(img, slate)
			if err != nil {
				return fmt.Errorf("scoring %s: %w", path, err)
			}

			results[i] = scored
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	writer := report.NewWriter(os.Stdout, engine.ModelVersion())
	for i, path := range args {
		if flagJSON {
			if err := writer.RenderJSON(path, results[i]); err != nil {
				return err
			}
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		writer.Render(path, results[i], cat.Name, flagTop)
	}

	return nil
}
