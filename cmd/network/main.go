package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"vantage/internal/report"
	"vantage/internal/run"
	"vantage/pkg/analysis"
	"vantage/pkg/chart"
	"vantage/pkg/dataset"
	"vantage/pkg/export"
	"vantage/pkg/logger"
)

var networkFiles = []string{
	analysis.TableCompany,
	analysis.TableInvestor,
	analysis.TableCompanyInvestor,
}

func main() {
	cfg := run.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := dataset.Load(ctx, dataset.LoadParams{
		Loader:      run.NewLoader(ctx, cfg),
		Dir:         cfg.DataDir,
		Files:       networkFiles,
		MaxFileSize: cfg.MaxFileSize(),
		Comma:       cfg.Comma(),
	})
	if err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}

	stats := analysis.ComputeNetworkStats(data)
	report.Banner("COMPANY-INVESTOR NETWORK")
	report.Item("Company-investor links", stats.Relations)
	report.Item("Companies with investors", stats.Companies)
	report.Item("Distinct investors", stats.Investors)
	report.Item("Avg investors per company", fmt.Sprintf("%.2f", stats.AvgInvestorsPerCompany))
	report.Item("Max investors per company", stats.MaxInvestorsPerCompany)
	report.Blank()

	topInvestors := analysis.TopInvestors(data, cfg.TopN)
	topCompanies := analysis.TopCompanies(data, cfg.TopN)

	writeRanking(cfg.OutDir, "top_investors.csv", topInvestors)
	writeRanking(cfg.OutDir, "top_companies.csv", topCompanies)

	writeBar(cfg.OutDir, "top_investors.html", "Top investors by portfolio size", entityLabels(topInvestors), entityValues(topInvestors))
	writeBar(cfg.OutDir, "top_companies.html", "Top companies by investor count", entityLabels(topCompanies), entityValues(topCompanies))

	financing := analysis.ValueCounts(data, analysis.TableCompany, "CompanyFinancingStatus")
	writePie(cfg.OutDir, "financing_status.html", "Company financing status", valueLabels(financing), valueValues(financing))

	buckets := analysis.EmployeeBuckets(data)
	writeBar(cfg.OutDir, "employee_distribution.html", "Companies by employee count", valueLabels(buckets), valueValues(buckets))

	locations := analysis.ValueCounts(data, analysis.TableInvestor, "HQCountry")
	if len(locations) > cfg.TopN {
		locations = locations[:cfg.TopN]
	}
	writePie(cfg.OutDir, "investor_locations.html", "Investors by HQ country", valueLabels(locations), valueValues(locations))
}

func writeRanking(outDir, name string, ranking []analysis.EntityCount) {
	records := make([][]string, 0, len(ranking))
	for _, entry := range ranking {
		records = append(records, []string{entry.ID, entry.Name, fmt.Sprint(entry.Count)})
	}
	path := filepath.Join(outDir, name)
	if err := export.WriteCSV(path, []string{"EntityID", "EntityName", "Count"}, records); err != nil {
		logger.Fatal("Failed to write ranking", "path", path, "err", err)
	}
	logger.Info("Ranking written", "path", path, "rows", len(records))
}

func writeBar(outDir, name, title string, labels []string, values []int) {
	path := filepath.Join(outDir, name)
	if err := chart.WriteBar(path, title, labels, values); err != nil {
		logger.Fatal("Failed to render chart", "path", path, "err", err)
	}
	logger.Info("Chart written", "path", path)
}

func writePie(outDir, name, title string, labels []string, values []int) {
	path := filepath.Join(outDir, name)
	if err := chart.WritePie(path, title, labels, values); err != nil {
		logger.Fatal("Failed to render chart", "path", path, "err", err)
	}
	logger.Info("Chart written", "path", path)
}

func entityLabels(ranking []analysis.EntityCount) []string {
	labels := make([]string, len(ranking))
	for i, entry := range ranking {
		labels[i] = entry.Name
	}
	return labels
}

func entityValues(ranking []analysis.EntityCount) []int {
	values := make([]int, len(ranking))
	for i, entry := range ranking {
		values[i] = entry.Count
	}
	return values
}

func valueLabels(counts []analysis.ValueCount) []string {
	labels := make([]string, len(counts))
	for i, entry := range counts {
		labels[i] = entry.Value
	}
	return labels
}

func valueValues(counts []analysis.ValueCount) []int {
	values := make([]int, len(counts))
	for i, entry := range counts {
		values[i] = entry.Count
	}
	return values
}
