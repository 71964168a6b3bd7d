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
	"vantage/pkg/dataset"
	"vantage/pkg/export"
	"vantage/pkg/logger"
)

var internationalFiles = []string{
	analysis.TableInvestor,
	analysis.TableServiceProvider,
	analysis.TableLimitedPartner,
	analysis.TableCompanyInvestor,
	analysis.TableCompanyServiceProvider,
	analysis.TableFundLimitedPartner,
}

var entityHeader = []string{
	"EntityType",
	"EntityID",
	"EntityName",
	"HQCountry",
	"HQLocation",
	"Website",
}

func main() {
	cfg := run.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := dataset.Load(ctx, dataset.LoadParams{
		Loader:      run.NewLoader(ctx, cfg),
		Dir:         cfg.DataDir,
		Files:       internationalFiles,
		MaxFileSize: cfg.MaxFileSize(),
		Comma:       cfg.Comma(),
	})
	if err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}

	report.Banner("INTERNATIONAL ENTITY ANALYSIS")

	var international []analysis.EntityRecord
	var nullCountry []analysis.EntityRecord
	for _, kind := range analysis.EntityKinds {
		partition := analysis.PartitionByCountry(data, kind)
		report.Section(kind.Name + "s")
		report.Item("Total", partition.Total)
		report.Item("International", partition.International)
		report.Item("Without HQ country", partition.NullCountry)

		international = append(international, analysis.InternationalEntities(data, kind)...)
		nullCountry = append(nullCountry, analysis.NullCountryEntities(data, kind)...)
	}

	report.Section("Company connections involving international entities")
	investorLinks := analysis.InternationalConnectionCount(data, analysis.KindInvestor,
		analysis.EntityIDSet(analysis.InternationalEntities(data, analysis.EntityKinds[0])))
	providerLinks := analysis.InternationalConnectionCount(data, analysis.KindServiceProvider,
		analysis.EntityIDSet(analysis.InternationalEntities(data, analysis.EntityKinds[1])))
	report.Item("Investor links", investorLinks)
	report.Item("Service provider links", providerLinks)

	countries := analysis.CountryStats(data)
	report.Section("Entities per HQ country")
	for i, entry := range countries {
		if i >= cfg.TopN {
			report.Linef("  ... and %d more countries", len(countries)-cfg.TopN)
			break
		}
		report.Linef("  %-44s %5d", entry.Country, entry.Count)
	}
	report.Blank()

	writeEntities(cfg.OutDir, "international_entities_compliance.csv", international)
	writeEntities(cfg.OutDir, "null_country_entities_summary.csv", nullCountry)

	countryRecords := make([][]string, 0, len(countries))
	for _, entry := range countries {
		countryRecords = append(countryRecords, []string{entry.Country, fmt.Sprint(entry.Count)})
	}
	path := filepath.Join(cfg.OutDir, "country_statistics.csv")
	if err := export.WriteCSV(path, []string{"Country", "Entities"}, countryRecords); err != nil {
		logger.Fatal("Failed to write country statistics", "err", err)
	}
	logger.Info("Country statistics written", "path", path, "rows", len(countryRecords))
}

func writeEntities(outDir, name string, records []analysis.EntityRecord) {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.EntityType,
			record.EntityID,
			record.EntityName,
			record.HQCountry,
			record.HQLocation,
			record.Website,
		})
	}
	path := filepath.Join(outDir, name)
	if err := export.WriteCSV(path, entityHeader, rows); err != nil {
		logger.Fatal("Failed to write entity extract", "path", path, "err", err)
	}
	logger.Info("Entity extract written", "path", path, "rows", len(rows))
}
