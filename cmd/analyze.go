package main

import (
	"context"
	"errors"
	"path/filepath"

	"airhhi/internal/analysis"
	"airhhi/internal/config"
	"airhhi/internal/dataset"
	"airhhi/pkg/domain"
	"airhhi/pkg/logger"
	"airhhi/pkg/serrors"
	"airhhi/pkg/tables"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadSlotInputs reads every focus airport's slot file and its new-entrant
// candidate list. A missing file only removes that airport from the
// slot-side analyses; it never aborts the run.
func loadSlotInputs(ctx context.Context, cfg *config.Config) analysis.SlotInputs {
	in := analysis.SlotInputs{
		Slots:    map[string][]domain.SlotRecord{},
		Entrants: map[string][]string{},
	}

	for _, airport := range cfg.Analysis.FocusAirports {
		slots, err := dataset.LoadSlots(cfg.Data.SlotsDir, airport, cfg.Analysis.Seasons)
		if err != nil {
			if errors.Is(err, serrors.ErrNotFound) {
				logger.Warn(ctx, "no slot file for airport", zap.String("airport", airport))

				continue
			}
			logger.Fatal(ctx, "could not load slot file", zap.String("airport", airport), zap.Error(err))
		}
		if slots.Skipped > 0 {
			logger.Warn(ctx, "skipped malformed slot rows",
				zap.String("airport", airport), zap.Int("skipped", slots.Skipped))
		}
		in.Skipped += slots.Skipped
		in.Slots[airport] = slots.Records

		entrants, err := dataset.LoadNewEntrants(cfg.Data.SlotsDir, airport)
		if err != nil {
			if !errors.Is(err, serrors.ErrNotFound) {
				logger.Fatal(ctx, "could not load new-entrant candidates",
					zap.String("airport", airport), zap.Error(err))
			}

			continue
		}
		in.Entrants[airport] = entrants
	}

	return in
}

// writeTables writes every table of a result as CSV under dir and logs the
// run's diagnostics.
func writeTables(ctx context.Context, dir, name string, res *analysis.Result) []*tables.Table {
	for _, tbl := range res.Tables {
		path, err := tables.WriteFile(dir, tbl)
		if err != nil {
			logger.Fatal(ctx, "could not write result table", zap.String("table", tbl.Name), zap.Error(err))
		}
		logger.Debug(ctx, "wrote result table", zap.String("path", path))
	}

	d := res.Diagnostics
	logger.Info(ctx, "analysis finished",
		zap.String("analysis", name),
		zap.String("runId", d.RunID.String()),
		zap.Int("skippedRows", d.SkippedRows),
		zap.Int("excludedRows", d.ExcludedRows),
		zap.Int("unclassifiedRows", d.UnclassifiedRows),
		zap.Strings("unclassifiedCodes", d.UnclassifiedCodes()),
	)
	for _, note := range d.Notes {
		logger.Warn(ctx, note, zap.String("analysis", name))
	}

	return res.Tables
}

func analyzeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Runs all market-concentration analyses and writes result tables",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			runner, err := analysis.NewRunner(cfg)
			if err != nil {
				logger.Fatal(ctx, "could not build analysis runner", zap.Error(err))
			}
			for _, c := range runner.Conflicts() {
				logger.Warn(ctx, "airline code in multiple group tables",
					zap.String("code", c.AirlineCode),
					zap.String("kept", string(c.Kept)),
					zap.String("dropped", string(c.Dropped)))
			}

			slotIn := loadSlotInputs(ctx, cfg)

			schedule, err := dataset.LoadSchedule(cfg.Data.ScheduleFile)
			if err != nil {
				logger.Fatal(ctx, "could not load flight schedule", zap.Error(err))
			}
			if schedule.Skipped > 0 {
				logger.Warn(ctx, "skipped malformed schedule rows", zap.Int("skipped", schedule.Skipped))
			}
			schedIn := analysis.ScheduleInput{Records: schedule.Records, Skipped: schedule.Skipped}

			out := cfg.Data.OutputDir
			var workbook []*tables.Table

			run := func(name, dir string, res *analysis.Result, err error) {
				if err != nil {
					logger.Fatal(ctx, "analysis failed", zap.String("analysis", name), zap.Error(err))
				}
				workbook = append(workbook, writeTables(ctx, dir, name, res)...)
			}

			slots, err := runner.SlotAllocation(slotIn)
			run("slot allocation", filepath.Join(out, "slots"), slots, err)

			coverage, err := runner.EntrantCoverage(slotIn)
			run("entrant coverage", out, coverage, err)

			airports, err := runner.AirportConcentration(slotIn)
			run("airport concentration", filepath.Join(out, "hhi"), airports, err)

			routes, err := runner.RouteConcentration(schedIn, slotIn.Entrants)
			run("route concentration", filepath.Join(out, "routes"), routes, err)

			expansion, err := runner.ExpansionTracking(schedIn)
			run("expansion tracking", filepath.Join(out, "expansion"), expansion, err)

			workbookPath := filepath.Join(out, "results.xlsx")
			if err := tables.WriteWorkbook(workbookPath, workbook); err != nil {
				logger.Fatal(ctx, "could not write workbook", zap.Error(err))
			}
			logger.Info(ctx, "wrote workbook", zap.String("path", workbookPath))
		},
	}

	return cmd
}
