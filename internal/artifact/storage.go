package artifact

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signalnine/sweepparse/internal/sweeplog"
)

// Columns is the fixed CSV header. Order is part of the output contract.
var Columns = []string{
	"run_index",
	"run_total",
	"run_name",
	"booster_score",
	"booster_max",
	"ensemble_score",
	"gain",
	"duration_s",
	"oof_seeds",
	"folds",
	"epochs",
	"ensemble_agg",
	"ensemble_threshold",
	"ensemble_tp",
	"ensemble_fn",
	"ensemble_fp",
	"profile_mode",
	"selected_profile",
	"blend_alpha",
	"second_threshold",
	"second_tp",
	"second_fn",
	"second_fp",
	"seed_score_mean",
	"seed_score_std",
	"candidates",
}

// Writer emits artifacts into a single output directory.
type Writer struct {
	Dir string
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// WriteCSV writes one row per completed run in input order. Missing fields
// render as empty cells.
func (w *Writer) WriteCSV(runs []*sweeplog.Run, name string) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range runs {
		row, err := csvRow(r)
		if err != nil {
			return "", err
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return path, nil
}

// WriteBest writes the single best run as indented JSON.
func (w *Writer) WriteBest(run *sweeplog.Run, name string) (string, error) {
	return w.writeJSON(run, name)
}

// WriteIncomplete writes the incomplete runs as an indented JSON array.
func (w *Writer) WriteIncomplete(runs []*sweeplog.Run, name string) (string, error) {
	return w.writeJSON(runs, name)
}

func (w *Writer) writeJSON(v any, name string) (string, error) {
	path := filepath.Join(w.Dir, name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}

func csvRow(r *sweeplog.Run) ([]string, error) {
	candidates := ""
	if r.Candidates != nil {
		data, err := json.Marshal(r.Candidates)
		if err != nil {
			return nil, fmt.Errorf("marshaling candidates for %s: %w", r.RunName, err)
		}
		candidates = string(data)
	}
	return []string{
		intCell(r.RunIndex),
		intCell(r.RunTotal),
		r.RunName,
		floatCell(r.BoosterScore),
		intCell(r.BoosterMax),
		floatCell(r.EnsembleScore),
		floatCell(r.Gain),
		floatCell(r.DurationS),
		seedsCell(r.OOFSeeds),
		intCell(r.Folds),
		intCell(r.Epochs),
		strCell(r.EnsembleAgg),
		floatCell(r.EnsembleThreshold),
		intCell(r.EnsembleTP),
		intCell(r.EnsembleFN),
		intCell(r.EnsembleFP),
		strCell(r.ProfileMode),
		strCell(r.SelectedProfile),
		floatCell(r.BlendAlpha),
		floatCell(r.SecondThreshold),
		intCell(r.SecondTP),
		intCell(r.SecondFN),
		intCell(r.SecondFP),
		floatCell(r.SeedScoreMean),
		floatCell(r.SeedScoreStd),
		candidates,
	}, nil
}

func intCell(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func strCell(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// seedsCell renders the ordered seed list as a comma-joined string; both a
// missing and an empty list render as the empty cell.
func seedsCell(seeds []int) string {
	toks := make([]string, len(seeds))
	for i, s := range seeds {
		toks[i] = strconv.Itoa(s)
	}
	return strings.Join(toks, ",")
}
