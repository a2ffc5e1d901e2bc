package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/signalnine/sweepparse/internal/report"
	"github.com/signalnine/sweepparse/internal/sweeplog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func sampleRuns() []*sweeplog.Run {
	return []*sweeplog.Run{
		{RunName: "week_sweep_001", BoosterScore: f(0.91), Gain: f(0.03), SelectedProfile: s("legacy"), OOFSeeds: []int{3, 5}},
		{RunName: "week_sweep_002", BoosterScore: f(0.85), Gain: f(0.01)},
	}
}

func TestSummary(t *testing.T) {
	res := &sweeplog.Result{
		Runs:       sampleRuns(),
		Incomplete: []*sweeplog.Run{{RunName: "sweep_c"}},
	}
	var buf bytes.Buffer
	report.Summary(&buf, res, res.Runs[0], res.Runs, "out/parsed.csv", "out/incomplete.json")

	out := buf.String()
	assert.Contains(t, out, "Parsed runs: 2")
	assert.Contains(t, out, "Incomplete runs: 1 (saved to out/incomplete.json)")
	assert.Contains(t, out, "CSV: out/parsed.csv")
	assert.Contains(t, out, "Best: week_sweep_001")
	assert.Contains(t, out, "booster=0.91")
	assert.Contains(t, out, "seeds=3,5")
	assert.Contains(t, out, "Top runs:")
	assert.Contains(t, out, "  week_sweep_002")
}

func TestSummary_NoIncompleteLine(t *testing.T) {
	res := &sweeplog.Result{Runs: sampleRuns()}
	var buf bytes.Buffer
	report.Summary(&buf, res, res.Runs[0], res.Runs, "out/parsed.csv", "")
	assert.NotContains(t, buf.String(), "Incomplete runs:")
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleRuns(), "table", 10))
	out := buf.String()
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, "week_sweep_001")
	assert.Contains(t, out, "week_sweep_002")
	// missing profile renders as a dash, not an empty column
	assert.Contains(t, out, "-")
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleRuns(), "markdown", 10))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header, separator, two rows
	assert.True(t, strings.HasPrefix(lines[2], "| week_sweep_001 |"))
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleRuns(), "json", 10))
	var got []*sweeplog.Run
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "week_sweep_001", got[0].RunName)
}

func TestRender_TruncatesToTopN(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, sampleRuns(), "markdown", 1))
	assert.Contains(t, buf.String(), "week_sweep_001")
	assert.NotContains(t, buf.String(), "week_sweep_002")
}

func TestRender_OrdersByScore(t *testing.T) {
	runs := []*sweeplog.Run{
		{RunName: "week_sweep_009", BoosterScore: f(0.10)},
		{RunName: "week_sweep_010", BoosterScore: f(0.95)},
	}
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, runs, "markdown", 10))
	out := buf.String()
	assert.Less(t, strings.Index(out, "week_sweep_010"), strings.Index(out, "week_sweep_009"))
}
