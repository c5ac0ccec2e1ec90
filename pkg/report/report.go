package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/flowmable/background-color-scorer/pkg/scoring"
)

var (
	promotedSprint = color.New(color.FgGreen, color.Bold).SprintFunc()
	passedSprint   = color.New(color.FgYellow).SprintFunc()
	rejectedSprint = color.New(color.FgRed).SprintFunc()
	dimSprint      = color.New(color.Faint).SprintFunc()
)

// Writer renders evaluation results to a stream. Color is enabled only when
// the stream is a terminal.
type Writer struct {
	out          io.Writer
	colorEnabled bool
	modelVersion string
}

func NewWriter(out io.Writer, modelVersion string) *Writer {
	w := &Writer{
		out:          out,
		modelVersion: modelVersion,
	}

	if f, ok := out.(*os.File); ok {
		w.colorEnabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return w
}

// Render prints the slate sorted by final score descending, truncated to top
// entries when top > 0. nameFor maps a hex to its display name.
func (w *Writer) Render(design string, results []scoring.EvaluationResult, nameFor func(string) string, top int) {
	sorted := append([]scoring.EvaluationResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FinalScore > sorted[j].FinalScore
	})

	if top > 0 && top < len(sorted) {
		sorted = sorted[:top]
	}

	fmt.Fprintf(w.out, "%s  (scoring model %s, %d candidates)\n", design, w.modelVersion, len(results))
	fmt.Fprintf(w.out, "%-24s %-9s %7s %7s %7s  %s\n", "BACKGROUND", "HEX", "SCORE", "P10dE", "MINdE", "VERDICT")

	for _, r := range sorted {
		verdict := r.Suitability.String()
		if w.colorEnabled {
			switch r.Suitability {
			case scoring.Promoted:
				verdict = promotedSprint(verdict)
			case scoring.Passed:
				verdict = passedSprint(verdict)
			default:
				verdict = rejectedSprint(verdict)
			}
		}

		line := fmt.Sprintf("%-24s %-9s %7.1f %7.2f %7.2f  %s",
			nameFor(r.Hex), r.Hex, r.FinalScore, r.P10DeltaE, r.MinClusterDeltaE, verdict)

		if r.OverrideReason != "" {
			reason := "[" + r.OverrideReason + "]"
			if w.colorEnabled {
				reason = dimSprint(reason)
			}
			line += " " + reason
		}

		fmt.Fprintln(w.out, line)
	}
}

type jsonReport struct {
	Design       string                     `json:"design"`
	ModelVersion string                     `json:"model_version"`
	Results      []scoring.EvaluationResult `json:"results"`
}

// RenderJSON emits the slate in input order as indented JSON.
func (w *Writer) RenderJSON(design string, results []scoring.EvaluationResult) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Design:       design,
		ModelVersion: w.modelVersion,
		Results:      results,
	})
}
