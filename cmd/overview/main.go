package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"vantage/internal/report"
	"vantage/internal/run"
	"vantage/pkg/analysis"
	"vantage/pkg/dataset"
	"vantage/pkg/export"
	"vantage/pkg/logger"
)

// allFiles is every table the export is known to ship. Files missing
// from the dataset directory, or larger than the size valve, are
// skipped by the loader.
var allFiles = []string{
	analysis.TableCompany,
	analysis.TablePerson,
	analysis.TableInvestor,
	analysis.TableServiceProvider,
	analysis.TableLimitedPartner,
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
	analysis.TableFundLimitedPartner,
}

func main() {
	cfg := run.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := dataset.Load(ctx, dataset.LoadParams{
		Loader:      run.NewLoader(ctx, cfg),
		Dir:         cfg.DataDir,
		Files:       allFiles,
		MaxFileSize: cfg.MaxFileSize(),
		Comma:       cfg.Comma(),
	})
	if err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}

	report.Banner("DATASET OVERVIEW")
	for _, name := range data.Names() {
		t := data.Table(name)
		report.Linef("  %-36s %7d rows  %3d columns", name, t.Len(), len(t.Header))
	}

	report.Section("Company characteristics")
	printDistribution(data, "Financing status", "CompanyFinancingStatus")
	printDistribution(data, "Ownership status", "OwnershipStatus")
	printDistribution(data, "Universe", "Universe")

	employees := analysis.ComputeEmployeeStats(data)
	report.Section("Employee counts")
	report.Item("Companies with known count", employees.Known)
	report.Item("Min", employees.Min)
	report.Item("Max", employees.Max)
	report.Item("Mean", fmt.Sprintf("%.1f", employees.Mean))

	network := analysis.ComputeNetworkStats(data)
	report.Section("Investor network")
	report.Item("Company-investor links", network.Relations)
	report.Item("Companies with investors", network.Companies)
	report.Item("Distinct investors", network.Investors)
	report.Item("Avg investors per company", fmt.Sprintf("%.2f", network.AvgInvestorsPerCompany))
	report.Item("Max investors per company", network.MaxInvestorsPerCompany)
	report.Item("Names shared by companies and investors", analysis.NameOverlap(data))

	topInvestors := analysis.TopInvestors(data, cfg.TopN)
	report.Section(fmt.Sprintf("Top %d investors by portfolio size", cfg.TopN))
	for _, entry := range topInvestors {
		report.Linef("  %-44s %5d companies", entry.Name, entry.Count)
	}

	topCompanies := analysis.TopCompanies(data, cfg.TopN)
	report.Section(fmt.Sprintf("Top %d companies by investor count", cfg.TopN))
	for _, entry := range topCompanies {
		report.Linef("  %-44s %5d investors", entry.Name, entry.Count)
	}
	report.Blank()

	writeRanking(cfg.OutDir, "top_investors.csv", "Investors", topInvestors)
	writeRanking(cfg.OutDir, "top_companies.csv", "Companies", topCompanies)

	// Re-export the core entity tables as loaded, for downstream
	// spreadsheets working off the filtered snapshot.
	for _, name := range []string{analysis.TableCompany, analysis.TableInvestor, analysis.TablePerson} {
		t := data.Table(name)
		if t == nil {
			continue
		}
		path := filepath.Join(cfg.OutDir, strings.ToLower(name)+"_export.csv")
		if err := export.WriteCSV(path, t.Header, t.Rows); err != nil {
			logger.Fatal("Failed to re-export table", "table", name, "err", err)
		}
		logger.Info("Table re-exported", "table", name, "path", path, "rows", t.Len())
	}
}

func printDistribution(data *dataset.Store, label, column string) {
	counts := analysis.ValueCounts(data, analysis.TableCompany, column)
	if len(counts) == 0 {
		return
	}
	report.Linef("  %s:", label)
	for _, entry := range counts {
		report.Linef("    %-42s %5d", entry.Value, entry.Count)
	}
}

func writeRanking(outDir, name, subject string, ranking []analysis.EntityCount) {
	records := make([][]string, 0, len(ranking))
	for _, entry := range ranking {
		records = append(records, []string{entry.ID, entry.Name, fmt.Sprint(entry.Count)})
	}
	path := filepath.Join(outDir, name)
	if err := export.WriteCSV(path, []string{"EntityID", "EntityName", "Count"}, records); err != nil {
		logger.Fatal("Failed to write ranking", "path", path, "err", err)
	}
	logger.Info(subject+" ranking written", "path", path, "rows", len(records))
}
