package sweeplog

// Run is one sweep pipeline execution reconstructed from the log. Scalar
// fields are pointers so a value that never appeared in the log stays
// distinguishable from a parsed zero; the seed and candidate slices use
// omitzero so a present-but-empty list still serializes.
type Run struct {
	RunIndex          *int        `json:"run_index,omitempty"`
	RunTotal          *int        `json:"run_total,omitempty"`
	RunName           string      `json:"run_name"`
	BoosterScore      *float64    `json:"booster_score,omitempty"`
	BoosterMax        *int        `json:"booster_max,omitempty"`
	EnsembleScore     *float64    `json:"ensemble_score,omitempty"`
	Gain              *float64    `json:"gain,omitempty"`
	DurationS         *float64    `json:"duration_s,omitempty"`
	OOFSeeds          []int       `json:"oof_seeds,omitzero"`
	Folds             *int        `json:"folds,omitempty"`
	Epochs            *int        `json:"epochs,omitempty"`
	EnsembleAgg       *string     `json:"ensemble_agg,omitempty"`
	EnsembleThreshold *float64    `json:"ensemble_threshold,omitempty"`
	EnsembleTP        *int        `json:"ensemble_tp,omitempty"`
	EnsembleFN        *int        `json:"ensemble_fn,omitempty"`
	EnsembleFP        *int        `json:"ensemble_fp,omitempty"`
	EnsembleAccounts  *int        `json:"ensemble_accounts,omitempty"`
	ProfileMode       *string     `json:"profile_mode,omitempty"`
	SelectedProfile   *string     `json:"selected_profile,omitempty"`
	BlendAlpha        *float64    `json:"blend_alpha,omitempty"`
	SecondThreshold   *float64    `json:"second_threshold,omitempty"`
	SecondTP          *int        `json:"second_tp,omitempty"`
	SecondFN          *int        `json:"second_fn,omitempty"`
	SecondFP          *int        `json:"second_fp,omitempty"`
	SeedScoreMean     *float64    `json:"seed_score_mean,omitempty"`
	SeedScoreStd      *float64    `json:"seed_score_std,omitempty"`
	Candidates        []Candidate `json:"candidates,omitzero"`
}

// Candidate is one row of the second-stage candidate report table.
type Candidate struct {
	Profile        string  `json:"profile"`
	Alpha          float64 `json:"alpha"`
	Threshold      float64 `json:"threshold"`
	ValScore       float64 `json:"val_score"`
	ValTPAccounts  int     `json:"val_tp_accounts"`
	ValFNAccounts  int     `json:"val_fn_accounts"`
	ValFPAccounts  int     `json:"val_fp_accounts"`
	TestScore      float64 `json:"test_score"`
	TestTPAccounts int     `json:"test_tp_accounts"`
	TestFNAccounts int     `json:"test_fn_accounts"`
	TestFPAccounts int     `json:"test_fp_accounts"`
}

// Result holds the outcome of a parse: runs that reached their summary line
// and runs still open at end of input.
type Result struct {
	Runs       []*Run `json:"runs"`
	Incomplete []*Run `json:"incomplete"`
}
