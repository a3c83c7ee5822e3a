package main

import (
	"context"
	"flag"

	"cashflow-report/internal/cashflow/application"
	cashflow "cashflow-report/internal/cashflow/domain"
	"cashflow-report/internal/cashflow/infrastructure/excel"
	"cashflow-report/internal/cashflow/interfaces"
	"cashflow-report/internal/config"
	"cashflow-report/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml configuration file")
	flag.Parse()

	log := logger.New()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	reader, err := excel.NewReader(cfg.InputPath, cfg.Workbook, log)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.InputPath).Msg("open statement workbook")
	}
	defer reader.Close()

	renderer, err := interfaces.NewPaperRenderer(cfg.Report, cashflow.SystemClock{})
	if err != nil {
		log.Fatal().Err(err).Msg("build paper renderer")
	}

	pipeline, err := application.NewPipeline(
		reader,
		interfaces.NewWorkbookExporter(),
		renderer,
		application.ArtifactPaths{
			Spreadsheet: cfg.SpreadsheetPath(),
			Markup:      cfg.MarkupPath(),
			Document:    cfg.DocumentPath(),
		},
		cashflow.SystemClock{},
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("wire pipeline")
	}

	result, err := pipeline.Run(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("projection failed")
	}

	log.Info().
		Str("run_id", result.RunID.String()).
		Str("spreadsheet", result.Artifacts.Spreadsheet).
		Str("markup", result.Artifacts.Markup).
		Str("document", result.Artifacts.Document).
		Msg("artifacts ready")
}
