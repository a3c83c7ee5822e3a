package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cashflow "cashflow-report/internal/cashflow/domain"
)

// SourceStats counts what the extraction phase produced and dropped.
type SourceStats struct {
	BalanceRecords     int
	Receivables        int
	ProductPayables    int
	GeneralExpenses    int
	DroppedReceivables int
	DroppedPayables    int
	DroppedExpenses    int
}

// ArtifactPaths points at the three written artifacts.
type ArtifactPaths struct {
	Spreadsheet string
	Markup      string
	Document    string
}

// RunResult describes a completed projection run.
type RunResult struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration
	Summary   cashflow.ProjectionSummary
	Stats     SourceStats
	Artifacts ArtifactPaths
}

// ArtifactError reports which artifact failed to render or write.
// Artifacts written before the failure stay on disk.
type ArtifactError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s artifact %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }

// Pipeline runs the projection end to end: extract the statement, project
// the daily balance walk, export the artifacts.
type Pipeline struct {
	source      StatementSource
	spreadsheet SpreadsheetBuilder
	document    DocumentRenderer
	paths       ArtifactPaths
	clock       cashflow.Clock
	logger      zerolog.Logger
}

// NewPipeline wires the projection pipeline.
func NewPipeline(
	source StatementSource,
	spreadsheet SpreadsheetBuilder,
	document DocumentRenderer,
	paths ArtifactPaths,
	clock cashflow.Clock,
	logger zerolog.Logger,
) (*Pipeline, error) {
	if source == nil {
		return nil, errors.New("pipeline: nil statement source")
	}
	if spreadsheet == nil {
		return nil, errors.New("pipeline: nil spreadsheet builder")
	}
	if document == nil {
		return nil, errors.New("pipeline: nil document renderer")
	}
	if clock == nil {
		clock = cashflow.SystemClock{}
	}

	return &Pipeline{
		source:      source,
		spreadsheet: spreadsheet,
		document:    document,
		paths:       paths,
		clock:       clock,
		logger:      logger,
	}, nil
}

// Run executes one projection. Extraction failures abort the run before
// anything is written; export failures keep earlier artifacts on disk and
// return an ArtifactError.
func (p *Pipeline) Run(ctx context.Context) (RunResult, error) {
	result := RunResult{RunID: uuid.New(), StartedAt: p.clock.Now()}
	logger := p.logger.With().Str("run_id", result.RunID.String()).Logger()
	logger.Info().Msg("starting cash-flow projection")

	balances, err := p.source.BalanceHistory(ctx)
	if err != nil {
		return result, fmt.Errorf("balance history: %w", err)
	}
	receivables, droppedReceivables, err := p.source.Receivables(ctx)
	if err != nil {
		return result, fmt.Errorf("receivables: %w", err)
	}
	payables, droppedPayables, err := p.source.ProductPayables(ctx)
	if err != nil {
		return result, fmt.Errorf("product payables: %w", err)
	}
	expenses, droppedExpenses, err := p.source.GeneralExpenses(ctx)
	if err != nil {
		return result, fmt.Errorf("general expenses: %w", err)
	}
	result.Stats = SourceStats{
		BalanceRecords:     len(balances),
		Receivables:        len(receivables),
		ProductPayables:    len(payables),
		GeneralExpenses:    len(expenses),
		DroppedReceivables: droppedReceivables,
		DroppedPayables:    droppedPayables,
		DroppedExpenses:    droppedExpenses,
	}
	logger.Info().
		Int("balance_records", result.Stats.BalanceRecords).
		Int("receivables", result.Stats.Receivables).
		Int("product_payables", result.Stats.ProductPayables).
		Int("general_expenses", result.Stats.GeneralExpenses).
		Int("dropped_rows", droppedReceivables+droppedPayables+droppedExpenses).
		Msg("statement extracted")

	timeline := cashflow.BuildTimeline(receivables, payables, expenses)
	report, err := cashflow.BuildDailyReport(balances, timeline)
	if err != nil {
		return result, fmt.Errorf("daily report: %w", err)
	}
	if report.Empty() {
		logger.Warn().
			Time("start_date", report.StartDate).
			Msg("nothing due on or after the balance date, artifacts will be empty")
	}
	result.Summary = cashflow.Summarize(report)
	logSummary(logger, result.Summary)

	workbook, err := p.spreadsheet.BuildWorkbook(report, timeline, balances)
	if err != nil {
		return result, &ArtifactError{Artifact: "spreadsheet", Path: p.paths.Spreadsheet, Err: err}
	}
	if err := writeArtifact(p.paths.Spreadsheet, workbook); err != nil {
		return result, &ArtifactError{Artifact: "spreadsheet", Path: p.paths.Spreadsheet, Err: err}
	}
	result.Artifacts.Spreadsheet = p.paths.Spreadsheet
	logger.Info().Str("path", p.paths.Spreadsheet).Int("bytes", len(workbook)).Msg("spreadsheet written")

	markup, document, err := p.document.RenderDocument(report, timeline)
	if err != nil {
		return result, &ArtifactError{Artifact: "document", Path: p.paths.Document, Err: err}
	}
	if err := writeArtifact(p.paths.Markup, markup); err != nil {
		return result, &ArtifactError{Artifact: "markup", Path: p.paths.Markup, Err: err}
	}
	result.Artifacts.Markup = p.paths.Markup
	logger.Info().Str("path", p.paths.Markup).Int("bytes", len(markup)).Msg("markup written")

	if err := writeArtifact(p.paths.Document, document); err != nil {
		return result, &ArtifactError{Artifact: "document", Path: p.paths.Document, Err: err}
	}
	result.Artifacts.Document = p.paths.Document
	logger.Info().Str("path", p.paths.Document).Int("bytes", len(document)).Msg("document written")

	result.Duration = p.clock.Now().Sub(result.StartedAt)
	logger.Info().Dur("duration", result.Duration).Msg("projection finished")
	return result, nil
}

func logSummary(logger zerolog.Logger, summary cashflow.ProjectionSummary) {
	logger.Info().
		Time("start_date", summary.StartDate).
		Time("end_date", summary.EndDate).
		Int("days", summary.Days).
		Int("days_with_movement", summary.DaysWithMovement).
		Str("opening_balance", summary.OpeningBalance.StringFixed(2)).
		Str("final_balance", summary.FinalBalance.StringFixed(2)).
		Str("variation", summary.Variation.StringFixed(2)).
		Int("inflow_count", summary.InflowCount).
		Str("inflows_total", summary.InflowsTotal.StringFixed(2)).
		Int("outflow_count", summary.OutflowCount).
		Str("outflows_total", summary.OutflowsTotal.StringFixed(2)).
		Msg("projection summary")
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
