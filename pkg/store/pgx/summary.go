package pgx

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"

	"vantage/pkg/analysis"
	"vantage/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	SendBatch(ctx context.Context, b *pgxv5.Batch) pgxv5.BatchResults
}

// SummaryDBStore persists company summary rows to PostgreSQL. Schema
// setup runs through the embedded migrations.
type SummaryDBStore struct {
	conn pgxIConn
	pool *pgxpool.Pool
	url  string
}

// NewSummaryDBStore connects to the database at url and verifies the
// connection.
func NewSummaryDBStore(ctx context.Context, url string) (*SummaryDBStore, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &SummaryDBStore{conn: pool, pool: pool, url: url}, nil
}

// NewSummaryDBStoreWithConnection creates a store over an existing
// connection. Migrations are unavailable in this mode.
func NewSummaryDBStoreWithConnection(conn pgxIConn) *SummaryDBStore {
	return &SummaryDBStore{conn: conn}
}

// Migrate applies the embedded schema migrations. An already-current
// schema is not an error.
func (s *SummaryDBStore) Migrate(ctx context.Context) error {
	if s.url == "" {
		return errors.New("migrate requires a database url")
	}

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}

	// The migrate pgx/v5 driver registers itself under the pgx5 scheme.
	url := strings.Replace(s.url, "postgres://", "pgx5://", 1)
	url = strings.Replace(url, "postgresql://", "pgx5://", 1)

	m, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

var summaryColumns = []string{
	"company_id",
	"company_name",
	"website",
	"employees",
	"employee_board_members",
	"other_board_members",
	"employee_affiliations",
	"international_employee_affiliations",
	"null_country_employee_affiliations",
	"international_board_members",
	"null_country_board_members",
	"affiliates",
	"affiliate_affiliations",
	"international_affiliate_affiliations",
	"null_country_affiliate_affiliations",
	"international_affiliates",
	"lead_partners",
	"lead_partner_affiliations",
	"international_lead_partner_affiliations",
	"null_country_lead_partner_affiliations",
	"international_lead_partners",
	"investors",
	"investor_affiliations",
	"international_investor_affiliations",
	"null_country_investor_affiliations",
	"international_investors",
	"null_country_investors",
	"service_providers",
	"service_provider_affiliations",
	"international_service_provider_affiliations",
	"null_country_service_provider_affiliations",
	"international_service_providers",
	"null_country_service_providers",
	"limited_partner_affiliations",
	"international_limited_partner_affiliations",
	"null_country_limited_partner_affiliations",
	"second_level_people",
	"international_second_level_people",
	"null_country_second_level_people",
	"deal_level_people",
	"international_deal_level_people",
	"null_country_deal_level_people",
	"deals",
	"patents",
}

// insertSummarySQL lines the persisted columns up with the CSV record
// order, prefixed by the run id.
func insertSummarySQL() string {
	placeholders := make([]string, 0, len(summaryColumns)+1)
	for i := 0; i < len(summaryColumns)+1; i++ {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	return fmt.Sprintf(
		"INSERT INTO company_summary (run_id, %s) VALUES (%s)",
		strings.Join(summaryColumns, ", "),
		strings.Join(placeholders, ", "),
	)
}

// SaveSummary inserts one row per company, tagged with the run id. The
// rows go out as a single batch.
func (s *SummaryDBStore) SaveSummary(ctx context.Context, runID string, rows []analysis.SummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	sql := insertSummarySQL()
	batch := &pgxv5.Batch{}
	for _, row := range rows {
		record := row.Record()
		args := make([]any, 0, len(record)+1)
		args = append(args, runID)
		for _, value := range record {
			args = append(args, value)
		}
		batch.Queue(sql, args...)
	}

	results := s.conn.SendBatch(ctx, batch)
	defer results.Close()
	for range rows {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert summary row: %w", err)
		}
	}

	logger.Debug("persisted summary rows", "run", runID, "rows", len(rows))
	return nil
}

// Close releases the connection pool, if the store owns one.
func (s *SummaryDBStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
