package base

import (
	"context"

	"vantage/pkg/analysis"
)

// SummaryStore persists company summary rows across runs. Each run is
// tagged with an id so historical snapshots can be compared in SQL.
type SummaryStore interface {
	Migrate(ctx context.Context) error
	SaveSummary(ctx context.Context, runID string, rows []analysis.SummaryRow) error
	Close()
}
