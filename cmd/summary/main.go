package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vantage/internal/report"
	"vantage/internal/run"
	"vantage/pkg/analysis"
	"vantage/pkg/dataset"
	"vantage/pkg/export"
	"vantage/pkg/logger"
	"vantage/pkg/store/base"
	storepgx "vantage/pkg/store/pgx"
)

var summaryFiles = []string{
	analysis.TableCompany,
	analysis.TablePerson,
	analysis.TableInvestor,
	analysis.TableServiceProvider,
	analysis.TableDeal,
	analysis.TableCompanyInvestor,
	analysis.TableCompanyServiceProvider,
	analysis.TableCompanyAffiliate,
	analysis.TableCompanyLeadPartner,
	analysis.TableCompanyPatent,
	analysis.TablePersonPosition,
	analysis.TablePersonBoardSeat,
	analysis.TableDealInvestor,
	analysis.TableDealServiceProvider,
}

func main() {
	cfg := run.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID, err := export.NewRunID()
	if err != nil {
		logger.Fatal("Failed to create run id", "err", err)
	}
	logger.Info("Building company summary table", "run", runID)

	data, err := dataset.Load(ctx, dataset.LoadParams{
		Loader:      run.NewLoader(ctx, cfg),
		Dir:         cfg.DataDir,
		Files:       summaryFiles,
		MaxFileSize: cfg.MaxFileSize(),
		Comma:       cfg.Comma(),
	})
	if err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}

	rows := analysis.NewAnalyzer(data).BuildSummary()
	stats := analysis.Summarize(rows)

	report.Banner("COMPANY SUMMARY TABLE")
	report.Item("Companies", stats.Companies)
	report.Item("Companies with investors", stats.WithInvestors)
	report.Item("Companies with board members", stats.WithBoardMembers)
	report.Item("Companies with deals", stats.WithDeals)
	report.Item("Investor links", stats.Investors)
	report.Item("Board members", stats.BoardMembers)
	report.Item("Second-level people", stats.SecondLevelPeople)
	report.Item("Deal-level people", stats.DealLevelPeople)
	report.Item("Deals", stats.Deals)
	report.Item("Patents", stats.Patents)

	report.Section("Null-country statistics")
	report.Item("Board members without country", stats.NullCountryBoardMembers)
	report.Item("Investors without country", stats.NullCountryInvestors)
	report.Item("Service providers without country", stats.NullCountryServiceProviders)
	report.Blank()

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	out := filepath.Join(cfg.OutDir, "company_summary_table.csv")
	if err := export.WriteCSV(out, analysis.SummaryHeader, records); err != nil {
		logger.Fatal("Failed to write summary table", "err", err)
	}
	logger.Info("Summary table written", "path", out, "rows", len(records))

	if cfg.DatabaseURL != "" {
		var store base.SummaryStore
		store, err = storepgx.NewSummaryDBStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database", "err", err)
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			logger.Fatal("Failed to migrate database", "err", err)
		}
		if err := store.SaveSummary(ctx, runID, rows); err != nil {
			logger.Fatal("Failed to persist summary", "err", err)
		}
		logger.Info("Summary persisted", "run", runID, "rows", len(rows))
	}
}
