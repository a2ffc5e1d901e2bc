package sweeplog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	runStartRE        = regexp.MustCompile(`^\[(\d+)/(\d+)\] Running (\S+) \.\.\.$`)
	oofRE             = regexp.MustCompile(`Building OOF first-stage features.*seeds=\[(.*?)\], folds=(\d+), epochs=(\d+)\)\.\.\.`)
	ensembleAggRE     = regexp.MustCompile(`Ensemble aggregation: (\w+)`)
	ensembleThreshRE  = regexp.MustCompile(`Ensemble selected threshold: ([0-9.]+)`)
	ensembleScoreRE   = regexp.MustCompile(`Ensemble test score: (\d+) \(TP=(\d+), FN=(\d+), FP=(\d+), accounts=(\d+)\)`)
	seedScoreRE       = regexp.MustCompile(`Seed score mean/std: ([0-9.]+) / ([0-9.]+)`)
	profileModeRE     = regexp.MustCompile(`Second-stage profile mode: (.+)$`)
	profileSelectedRE = regexp.MustCompile(`Second-stage selected profile: (.+)$`)
	blendAlphaRE      = regexp.MustCompile(`Second-stage blend alpha \(CatBoost weight\): ([0-9.]+)`)
	secondThreshRE    = regexp.MustCompile(`Second-stage threshold: ([0-9.]+)`)
	secondScoreRE     = regexp.MustCompile(`Second-stage test score: (\d+)/(\d+)`)
	secondConfRE      = regexp.MustCompile(`Second-stage confusion components -> TP=(\d+), FN=(\d+), FP=(\d+)`)
	summaryRE         = regexp.MustCompile(`^(week_sweep_\d+): booster=([0-9.]+), ensemble=([0-9.]+), gain=([-0-9.]+), dur=([0-9.]+)s`)
)

const candidateHeader = "Second-stage candidate report"

// DefaultProfiles are the second-stage profile names recognized in the
// candidate report table.
var DefaultProfiles = []string{"legacy", "regularized"}

// Parser recognizes sweep runner log lines and groups them into runs.
type Parser struct {
	profiles map[string]bool
}

// New returns a Parser that accepts candidate rows for the given profile
// names, defaulting to DefaultProfiles when none are given.
func New(profiles ...string) *Parser {
	if len(profiles) == 0 {
		profiles = DefaultProfiles
	}
	set := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		set[p] = true
	}
	return &Parser{profiles: set}
}

// Parse scans the log text line by line and returns completed and incomplete
// runs. Invalid UTF-8 bytes are replaced before matching. A malformed numeric
// token inside a matched pattern aborts the parse with an error.
func (p *Parser) Parse(text string) (*Result, error) {
	lines := joinContinuations(splitLines(strings.ToValidUTF8(text, "�")))

	res := &Result{}
	var current *Run
	inCandidates := false

	for _, line := range lines {
		if m := runStartRE.FindStringSubmatch(line); m != nil {
			// A new run start replaces any still-open run outright; only a
			// run open at end of input is captured as incomplete.
			idx, err := atoi(line, m[1])
			if err != nil {
				return nil, err
			}
			total, err := atoi(line, m[2])
			if err != nil {
				return nil, err
			}
			current = &Run{
				RunIndex:   &idx,
				RunTotal:   &total,
				RunName:    m[3],
				Candidates: []Candidate{},
			}
			inCandidates = false
			continue
		}

		if current == nil {
			m := summaryRE.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			// A bare summary line opens a run and falls through, so the
			// summary recognizer below finalizes it on this same pass.
			current = &Run{RunName: m[1], Candidates: []Candidate{}}
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, candidateHeader) {
			inCandidates = true
			continue
		}
		if inCandidates {
			if trimmed == "" || strings.HasPrefix(trimmed, "Baseline account-level") {
				inCandidates = false
				continue
			}
			parts := strings.Fields(line)
			if len(parts) == 0 {
				continue
			}
			if parts[0] == "profile" {
				continue
			}
			if p.profiles[parts[0]] && len(parts) >= 11 {
				cand, err := parseCandidate(line, parts)
				if err != nil {
					return nil, err
				}
				current.Candidates = append(current.Candidates, cand)
				continue
			}
			// Not a candidate row: leave the table and let the line fall
			// through to the field recognizers.
			inCandidates = false
		}

		done, err := applyLine(current, line)
		if err != nil {
			return nil, err
		}
		if done {
			res.Runs = append(res.Runs, current)
			current = nil
		}
	}

	if current != nil {
		res.Incomplete = append(res.Incomplete, current)
	}
	return res, nil
}

// applyLine tries the field recognizers in order, first match wins. It
// reports done=true when the summary line finalized the run.
func applyLine(r *Run, line string) (bool, error) {
	if m := oofRE.FindStringSubmatch(line); m != nil {
		seeds, err := parseSeeds(line, m[1])
		if err != nil {
			return false, err
		}
		folds, err := atoi(line, m[2])
		if err != nil {
			return false, err
		}
		epochs, err := atoi(line, m[3])
		if err != nil {
			return false, err
		}
		r.OOFSeeds = seeds
		r.Folds = &folds
		r.Epochs = &epochs
		return false, nil
	}
	if m := ensembleAggRE.FindStringSubmatch(line); m != nil {
		agg := m[1]
		r.EnsembleAgg = &agg
		return false, nil
	}
	if m := ensembleThreshRE.FindStringSubmatch(line); m != nil {
		thresh, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		r.EnsembleThreshold = &thresh
		return false, nil
	}
	if m := ensembleScoreRE.FindStringSubmatch(line); m != nil {
		score, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		nums, err := atoiAll(line, m[2:6])
		if err != nil {
			return false, err
		}
		r.EnsembleScore = &score
		r.EnsembleTP = &nums[0]
		r.EnsembleFN = &nums[1]
		r.EnsembleFP = &nums[2]
		r.EnsembleAccounts = &nums[3]
		return false, nil
	}
	if m := seedScoreRE.FindStringSubmatch(line); m != nil {
		mean, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		std, err := atof(line, m[2])
		if err != nil {
			return false, err
		}
		r.SeedScoreMean = &mean
		r.SeedScoreStd = &std
		return false, nil
	}
	if m := profileModeRE.FindStringSubmatch(line); m != nil {
		mode := m[1]
		r.ProfileMode = &mode
		return false, nil
	}
	if m := profileSelectedRE.FindStringSubmatch(line); m != nil {
		profile := m[1]
		r.SelectedProfile = &profile
		return false, nil
	}
	if m := blendAlphaRE.FindStringSubmatch(line); m != nil {
		alpha, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		r.BlendAlpha = &alpha
		return false, nil
	}
	if m := secondThreshRE.FindStringSubmatch(line); m != nil {
		thresh, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		r.SecondThreshold = &thresh
		return false, nil
	}
	if m := secondScoreRE.FindStringSubmatch(line); m != nil {
		score, err := atof(line, m[1])
		if err != nil {
			return false, err
		}
		maxScore, err := atoi(line, m[2])
		if err != nil {
			return false, err
		}
		r.BoosterScore = &score
		r.BoosterMax = &maxScore
		return false, nil
	}
	if m := secondConfRE.FindStringSubmatch(line); m != nil {
		nums, err := atoiAll(line, m[1:4])
		if err != nil {
			return false, err
		}
		r.SecondTP = &nums[0]
		r.SecondFN = &nums[1]
		r.SecondFP = &nums[2]
		return false, nil
	}
	if m := summaryRE.FindStringSubmatch(line); m != nil {
		booster, err := atof(line, m[2])
		if err != nil {
			return false, err
		}
		ensemble, err := atof(line, m[3])
		if err != nil {
			return false, err
		}
		gain, err := atof(line, m[4])
		if err != nil {
			return false, err
		}
		dur, err := atof(line, m[5])
		if err != nil {
			return false, err
		}
		r.RunName = m[1]
		r.BoosterScore = &booster
		r.EnsembleScore = &ensemble
		r.Gain = &gain
		r.DurationS = &dur
		return true, nil
	}
	return false, nil
}

func parseCandidate(line string, parts []string) (Candidate, error) {
	var c Candidate
	c.Profile = parts[0]
	floats := []struct {
		dst *float64
		tok string
	}{
		{&c.Alpha, parts[1]},
		{&c.Threshold, parts[2]},
		{&c.ValScore, parts[3]},
		{&c.TestScore, parts[7]},
	}
	for _, f := range floats {
		v, err := atof(line, f.tok)
		if err != nil {
			return c, err
		}
		*f.dst = v
	}
	ints := []struct {
		dst *int
		tok string
	}{
		{&c.ValTPAccounts, parts[4]},
		{&c.ValFNAccounts, parts[5]},
		{&c.ValFPAccounts, parts[6]},
		{&c.TestTPAccounts, parts[8]},
		{&c.TestFNAccounts, parts[9]},
		{&c.TestFPAccounts, parts[10]},
	}
	for _, f := range ints {
		v, err := atoi(line, f.tok)
		if err != nil {
			return c, err
		}
		*f.dst = v
	}
	return c, nil
}

// parseSeeds parses a comma-separated seed list, preserving order. An empty
// capture yields an empty (non-nil) list.
func parseSeeds(line, raw string) ([]int, error) {
	seeds := []int{}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := atoi(line, tok)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}

// joinContinuations undoes backslash line wrapping. A carried prefix can
// extend across consecutive wrapped lines; a trailing carry at end of input
// is kept as its own line.
func joinContinuations(raw []string) []string {
	var out []string
	carry := ""
	haveCarry := false
	for _, line := range raw {
		if haveCarry {
			line = carry + line
			haveCarry = false
		}
		if strings.HasSuffix(line, `\`) {
			carry = strings.TrimSuffix(line, `\`)
			haveCarry = true
			continue
		}
		out = append(out, line)
	}
	if haveCarry {
		out = append(out, carry)
	}
	return out
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func atoi(line, tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("parsing integer %q in line %q: %w", tok, line, err)
	}
	return n, nil
}

func atoiAll(line string, toks []string) ([]int, error) {
	nums := make([]int, len(toks))
	for i, tok := range toks {
		n, err := atoi(line, tok)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func atof(line, tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q in line %q: %w", tok, line, err)
	}
	return f, nil
}
