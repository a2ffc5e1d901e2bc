package rank

import (
	"math"
	"sort"

	"github.com/signalnine/sweepparse/internal/sweeplog"
)

// Best returns the run maximizing (booster_score, gain, -second_fp). Missing
// booster_score and gain rank worst, as does a missing second-stage FP count.
// The first of fully tied runs wins. Returns nil for an empty input.
func Best(runs []*sweeplog.Run) *sweeplog.Run {
	var best *sweeplog.Run
	for _, r := range runs {
		if best == nil || greater(r, best) {
			best = r
		}
	}
	return best
}

func greater(a, b *sweeplog.Run) bool {
	ab, ag, af := bestKey(a)
	bb, bg, bf := bestKey(b)
	if ab != bb {
		return ab > bb
	}
	if ag != bg {
		return ag > bg
	}
	return af > bf
}

func bestKey(r *sweeplog.Run) (booster, gain, negFP float64) {
	booster = math.Inf(-1)
	if r.BoosterScore != nil {
		booster = *r.BoosterScore
	}
	gain = math.Inf(-1)
	if r.Gain != nil {
		gain = *r.Gain
	}
	negFP = math.Inf(-1)
	if r.SecondFP != nil {
		negFP = -float64(*r.SecondFP)
	}
	return booster, gain, negFP
}

// Top returns up to n runs ordered descending by (booster_score, gain), with
// missing values ranked as -1. The sort is stable and the input slice is not
// reordered.
func Top(runs []*sweeplog.Run, n int) []*sweeplog.Run {
	ordered := make([]*sweeplog.Run, len(runs))
	copy(ordered, runs)
	sort.SliceStable(ordered, func(i, j int) bool {
		bi, gi := topKey(ordered[i])
		bj, gj := topKey(ordered[j])
		if bi != bj {
			return bi > bj
		}
		return gi > gj
	})
	if n >= 0 && n < len(ordered) {
		ordered = ordered[:n]
	}
	return ordered
}

func topKey(r *sweeplog.Run) (booster, gain float64) {
	booster, gain = -1, -1
	if r.BoosterScore != nil {
		booster = *r.BoosterScore
	}
	if r.Gain != nil {
		gain = *r.Gain
	}
	return booster, gain
}
