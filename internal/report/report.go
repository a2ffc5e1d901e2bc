package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/sweepparse/internal/rank"
	"github.com/signalnine/sweepparse/internal/sweeplog"
)

// Summary prints the parse command's console block: counts, artifact paths,
// the best-run line, and the top-N listing.
func Summary(w io.Writer, res *sweeplog.Result, best *sweeplog.Run, top []*sweeplog.Run, csvPath, incompletePath string) {
	fmt.Fprintf(w, "Parsed runs: %d\n", len(res.Runs))
	if len(res.Incomplete) > 0 {
		fmt.Fprintf(w, "Incomplete runs: %d (saved to %s)\n", len(res.Incomplete), incompletePath)
	}
	fmt.Fprintf(w, "CSV: %s\n", csvPath)
	if best != nil {
		fmt.Fprintf(w, "Best: %s %s\n", best.RunName, describe(best, "threshold"))
	}
	fmt.Fprintln(w, "Top runs:")
	for _, r := range top {
		fmt.Fprintf(w, "  %s %s\n", r.RunName, describe(r, "thr"))
	}
}

// Render writes up to n completed runs in the requested format.
func Render(w io.Writer, runs []*sweeplog.Run, format string, n int) error {
	top := rank.Top(runs, n)
	switch format {
	case "markdown":
		return writeMarkdown(top, w)
	case "json":
		return writeJSON(top, w)
	default:
		return writeTable(top, w)
	}
}

func writeTable(runs []*sweeplog.Run, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tBOOSTER\tGAIN\tPROFILE\tTHRESHOLD\tSEEDS\tFOLDS\tEPOCHS\tDURATION")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.RunName, floatField(r.BoosterScore), floatField(r.Gain),
			strField(r.SelectedProfile), floatField(r.SecondThreshold),
			seedsField(r.OOFSeeds), intField(r.Folds), intField(r.Epochs),
			floatField(r.DurationS))
	}
	return tw.Flush()
}

func writeMarkdown(runs []*sweeplog.Run, w io.Writer) error {
	fmt.Fprintln(w, "| Run | Booster | Gain | Profile | Threshold | Seeds | Folds | Epochs | Duration |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|---|")
	for _, r := range runs {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			r.RunName, floatField(r.BoosterScore), floatField(r.Gain),
			strField(r.SelectedProfile), floatField(r.SecondThreshold),
			seedsField(r.OOFSeeds), intField(r.Folds), intField(r.Epochs),
			floatField(r.DurationS))
	}
	return nil
}

func writeJSON(runs []*sweeplog.Run, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runs)
}

func describe(r *sweeplog.Run, thrLabel string) string {
	return fmt.Sprintf("booster=%s gain=%s profile=%s %s=%s seeds=%s folds=%s epochs=%s",
		floatField(r.BoosterScore), floatField(r.Gain), strField(r.SelectedProfile),
		thrLabel, floatField(r.SecondThreshold), seedsField(r.OOFSeeds),
		intField(r.Folds), intField(r.Epochs))
}

func floatField(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func intField(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func strField(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func seedsField(seeds []int) string {
	if seeds == nil {
		return "-"
	}
	toks := make([]string, len(seeds))
	for i, s := range seeds {
		toks[i] = strconv.Itoa(s)
	}
	return strings.Join(toks, ",")
}
