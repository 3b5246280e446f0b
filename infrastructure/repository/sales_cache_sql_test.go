package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/database/sqlite"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

var (
	_ SQLConn = (*postgres.Connection)(nil)
	_ SQLConn = (*sqlite.Connection)(nil)
)

func newSQLiteRepository(t *testing.T) *SalesCacheSQLRepository {
	t.Helper()
	ctx := context.Background()

	conn, err := sqlite.NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewSalesCacheSQLiteRepository(conn)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))
	return repo
}

func TestSalesCacheSQLRepository_SQLite(t *testing.T) {
	repo := newSQLiteRepository(t)
	ctx := context.Background()

	first := []*domain.SalesRecord{
		{Date: "2024/01/11", CountryCode: "US", GrossSalesUSD: decimal.RequireFromString("19.99"), NetTaxUSD: decimal.RequireFromString("0.000001"), GrossUnitsSold: 1, LastFetched: "2024/01/12"},
		{Date: "2024/01/10", CountryCode: "BR", GrossReturnsUSD: decimal.RequireFromString("-4.5"), GrossUnitsReturned: -1, LastFetched: "2024/01/12"},
	}
	require.NoError(t, repo.AppendRows(ctx, first))
	require.NoError(t, repo.AppendRows(ctx, []*domain.SalesRecord{{Date: "2024/01/11", CountryCode: "US", LastFetched: "2024/01/13", FetchID: "fetch-k3v9x2q1"}}))

	records, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, domain.ReportDate("2024/01/11"), records[0].Date)
	assert.Equal(t, "19.99", records[0].GrossSalesUSD.String())
	assert.Equal(t, "0.000001", records[0].NetTaxUSD.String())
	assert.Equal(t, "-4.5", records[1].GrossReturnsUSD.String())
	assert.Equal(t, int64(-1), records[1].GrossUnitsReturned)
	assert.Equal(t, domain.ReportDate("2024/01/13"), records[2].LastFetched)
	assert.Equal(t, "fetch-k3v9x2q1", records[2].FetchID)
	assert.Empty(t, records[0].FetchID)

	require.NoError(t, repo.ClearAll(ctx))
	records, err = repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSalesCacheSQLRepository_TabelaAntigaSemFetchID(t *testing.T) {
	ctx := context.Background()

	conn, err := sqlite.NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.ExecContext(ctx, `
CREATE TABLE financial_sales_cache (
	id                    INTEGER PRIMARY KEY AUTOINCREMENT,
	date                  TEXT NOT NULL,
	country_code          TEXT NOT NULL DEFAULT '',
	gross_sales_usd       TEXT NOT NULL DEFAULT '0',
	net_sales_usd         TEXT NOT NULL DEFAULT '0',
	gross_returns_usd     TEXT NOT NULL DEFAULT '0',
	net_tax_usd           TEXT NOT NULL DEFAULT '0',
	gross_units_sold      INTEGER NOT NULL DEFAULT 0,
	gross_units_returned  INTEGER NOT NULL DEFAULT 0,
	gross_units_activated INTEGER NOT NULL DEFAULT 0,
	last_fetched          TEXT NOT NULL,
	created_at            TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
INSERT INTO financial_sales_cache (date, country_code, gross_sales_usd, last_fetched) VALUES ('2024/01/09', 'US', '5', '2024/01/10');
`)
	require.NoError(t, err)

	repo := NewSalesCacheSQLiteRepository(conn)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.EnsureSchema(ctx))

	require.NoError(t, repo.AppendRows(ctx, []*domain.SalesRecord{{Date: "2024/01/10", LastFetched: "2024/01/12", FetchID: "fetch-novo"}}))

	records, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[0].FetchID)
	assert.Equal(t, "5", records[0].GrossSalesUSD.String())
	assert.Equal(t, "fetch-novo", records[1].FetchID)
}

func TestSalesCacheSQLRepository_VariosLotes(t *testing.T) {
	repo := newSQLiteRepository(t)
	ctx := context.Background()

	records := make([]*domain.SalesRecord, 0, insertChunkSize+10)
	for i := 0; i < insertChunkSize+10; i++ {
		records = append(records, &domain.SalesRecord{
			Date:        "2024/01/10",
			CountryCode: fmt.Sprintf("C%d", i),
			LastFetched: "2024/01/12",
		})
	}

	require.NoError(t, repo.AppendRows(ctx, records))

	stored, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, stored, insertChunkSize+10)
	assert.Equal(t, "C0", stored[0].CountryCode)
	assert.Equal(t, fmt.Sprintf("C%d", insertChunkSize+9), stored[len(stored)-1].CountryCode)
}

func TestSalesCacheSQLRepository_Placeholders(t *testing.T) {
	records := []*domain.SalesRecord{{Date: "2024/01/10", LastFetched: "2024/01/12"}}

	pgQuery, _, err := NewSalesCachePostgresRepository(nil).insertQuery(records)
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "$10")

	sqliteQuery, args, err := NewSalesCacheSQLiteRepository(nil).insertQuery(records)
	require.NoError(t, err)
	assert.NotContains(t, sqliteQuery, "$1")
	assert.Len(t, args, len(salesCacheColumns))
}
