// Package analyzer defines the repository activity analyzer.
//
// The analyzer receives fully validated and normalized parameters from the
// CLI and is the attachment point for the future analysis engine (commit and
// pull-request aggregation over the window). Today Analyze only re-checks
// its window invariant and produces a run-stamped skeleton report.
package analyzer

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/repopulse/repopulse/pkg/errors"
	"github.com/repopulse/repopulse/pkg/httpclient"
)

// Params holds the validated and normalized analysis inputs.
// StartDate and EndDate are in the fixed YYYY-MM-DDTHH:MM:SSZ layout, so
// they compare correctly as strings.
type Params struct {
	Owner     string
	Repo      string
	StartDate string
	EndDate   string
	Branch    string
}

// Validate checks the window invariant. The CLI enforces the same rule
// before constructing an Analyzer; this guards direct library use.
func (p Params) Validate() error {
	if p.Owner == "" || p.Repo == "" {
		return errors.New(errors.ErrCodeInvalidInput, "owner and repo are required")
	}
	if p.StartDate > p.EndDate {
		return errors.New(errors.ErrCodeInvalidRange, "start date %s is after end date %s", p.StartDate, p.EndDate)
	}
	return nil
}

// Report is the analysis result. Activity metrics will land here once the
// aggregation engine is built; for now it records what was analyzed.
type Report struct {
	RunID       string    `json:"run_id"`
	Owner       string    `json:"owner"`
	Repo        string    `json:"repo"`
	Branch      string    `json:"branch"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Analyzer analyzes a GitHub repository's activity within a date range.
type Analyzer struct {
	params Params
	runID  string
	client *httpclient.Client
	logger *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used during analysis.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithHTTPClient sets the HTTP client the analysis engine will fetch with.
func WithHTTPClient(c *httpclient.Client) Option {
	return func(a *Analyzer) { a.client = c }
}

// New creates an Analyzer for the given parameters. Each Analyzer carries a
// unique run ID that stamps its reports and log lines.
func New(params Params, opts ...Option) *Analyzer {
	a := &Analyzer{
		params: params,
		runID:  uuid.NewString(),
		client: httpclient.New(),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RunID returns the unique identifier for this analysis run.
func (a *Analyzer) RunID() string {
	return a.runID
}

// Params returns the parameters this analyzer was built with.
func (a *Analyzer) Params() Params {
	return a.params
}

// Analyze runs the analysis and returns its report.
//
// The engine that fetches commits and pull requests within the window and
// aggregates them is not implemented yet; the returned report carries the
// run metadata and no metrics.
func (a *Analyzer) Analyze(ctx context.Context) (*Report, error) {
	if err := a.params.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug("starting analysis",
		"run_id", a.runID,
		"repo", a.params.Owner+"/"+a.params.Repo,
		"branch", a.params.Branch,
		"start", a.params.StartDate,
		"end", a.params.EndDate,
	)

	return &Report{
		RunID:       a.runID,
		Owner:       a.params.Owner,
		Repo:        a.params.Repo,
		Branch:      a.params.Branch,
		StartDate:   a.params.StartDate,
		EndDate:     a.params.EndDate,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
