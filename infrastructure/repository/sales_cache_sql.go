package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

const (
	salesCacheTable = "financial_sales_cache"
	// linhas por INSERT; mantém o total de parâmetros abaixo do limite do SQLite e do Postgres
	insertChunkSize = 500
)

// postgresSalesCacheSchema usa um id serial para preservar a ordem de escrita
const postgresSalesCacheSchema = `
CREATE TABLE IF NOT EXISTS financial_sales_cache (
	id                    BIGSERIAL PRIMARY KEY,
	date                  VARCHAR(10) NOT NULL,
	country_code          VARCHAR(8)  NOT NULL DEFAULT '',
	gross_sales_usd       NUMERIC(18, 6) NOT NULL DEFAULT 0,
	net_sales_usd         NUMERIC(18, 6) NOT NULL DEFAULT 0,
	gross_returns_usd     NUMERIC(18, 6) NOT NULL DEFAULT 0,
	net_tax_usd           NUMERIC(18, 6) NOT NULL DEFAULT 0,
	gross_units_sold      BIGINT NOT NULL DEFAULT 0,
	gross_units_returned  BIGINT NOT NULL DEFAULT 0,
	gross_units_activated BIGINT NOT NULL DEFAULT 0,
	last_fetched          VARCHAR(10) NOT NULL,
	fetch_id              VARCHAR(32) NOT NULL DEFAULT '',
	created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_financial_sales_cache_date ON financial_sales_cache (date);
`

// sqliteSalesCacheSchema guarda os valores monetários como texto para não perder precisão
const sqliteSalesCacheSchema = `
CREATE TABLE IF NOT EXISTS financial_sales_cache (
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
	fetch_id              TEXT NOT NULL DEFAULT '',
	created_at            TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_financial_sales_cache_date ON financial_sales_cache (date);
`

// tabelas criadas antes da coluna fetch_id
const (
	postgresAddFetchID = `ALTER TABLE financial_sales_cache ADD COLUMN IF NOT EXISTS fetch_id VARCHAR(32) NOT NULL DEFAULT ''`
	sqliteAddFetchID   = `ALTER TABLE financial_sales_cache ADD COLUMN fetch_id TEXT NOT NULL DEFAULT ''`
)

var salesCacheColumns = []string{
	"date",
	"country_code",
	"gross_sales_usd",
	"net_sales_usd",
	"gross_returns_usd",
	"net_tax_usd",
	"gross_units_sold",
	"gross_units_returned",
	"gross_units_activated",
	"last_fetched",
	"fetch_id",
}

// SQLConn é o que o cache precisa de postgres.Connection e sqlite.Connection
type SQLConn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type sqlDialect struct {
	name        string
	schema      string
	addFetchID  string
	placeholder squirrel.PlaceholderFormat
}

var (
	postgresDialect = sqlDialect{
		name:        "postgres",
		schema:      postgresSalesCacheSchema,
		addFetchID:  postgresAddFetchID,
		placeholder: squirrel.Dollar,
	}
	sqliteDialect = sqlDialect{
		name:        "sqlite",
		schema:      sqliteSalesCacheSchema,
		addFetchID:  sqliteAddFetchID,
		placeholder: squirrel.Question,
	}
)

// SalesCacheSQLRepository guarda o cache em uma tabela; a ordem de leitura segue o id
type SalesCacheSQLRepository struct {
	conn    SQLConn
	dialect sqlDialect
}

// NewSalesCachePostgresRepository usa o PostgreSQL como cache dos relatórios
func NewSalesCachePostgresRepository(conn SQLConn) *SalesCacheSQLRepository {
	return &SalesCacheSQLRepository{conn: conn, dialect: postgresDialect}
}

// NewSalesCacheSQLiteRepository usa um arquivo SQLite local como cache dos relatórios
func NewSalesCacheSQLiteRepository(conn SQLConn) *SalesCacheSQLRepository {
	return &SalesCacheSQLRepository{conn: conn, dialect: sqliteDialect}
}

// EnsureSchema cria a tabela caso ainda não exista e adiciona fetch_id em tabelas antigas
func (r *SalesCacheSQLRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, r.dialect.schema); err != nil {
		return fmt.Errorf("erro ao criar tabela %s (%s): %w", salesCacheTable, r.dialect.name, err)
	}

	// o SQLite não tem ADD COLUMN IF NOT EXISTS
	if _, err := r.conn.ExecContext(ctx, r.dialect.addFetchID); err != nil &&
		!strings.Contains(strings.ToLower(err.Error()), "duplicate column") {
		return fmt.Errorf("erro ao adicionar fetch_id em %s (%s): %w", salesCacheTable, r.dialect.name, err)
	}

	return nil
}

func (r *SalesCacheSQLRepository) ReadAll(ctx context.Context) ([]*domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(salesCacheColumns...).
		From(salesCacheTable).
		OrderBy("id ASC").
		PlaceholderFormat(r.dialect.placeholder).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(ErrCacheUnavailable, "erro ao executar a query: %v", err)
	}
	defer rows.Close()

	records := make([]*domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, errors.Wrapf(ErrCacheUnavailable, "erro ao escanear registro: %v", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(ErrCacheUnavailable, "erro durante a iteração de linhas: %v", err)
	}

	return records, nil
}

// AppendRows grava todos os registros em uma única transação
func (r *SalesCacheSQLRepository) AppendRows(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertChunkSize {
			end := min(start+insertChunkSize, len(records))

			query, args, err := r.insertQuery(records[start:end])
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return errors.Wrapf(ErrCacheUnavailable, "erro no banco de dados: %v (código: %s)", pqErr, pqErr.Code)
		}
		return errors.Wrapf(ErrCacheUnavailable, "erro ao executar a query: %v", err)
	}

	return nil
}

func (r *SalesCacheSQLRepository) insertQuery(records []*domain.SalesRecord) (string, []any, error) {
	builder := squirrel.StatementBuilder.
		Insert(salesCacheTable).
		Columns(salesCacheColumns...).
		PlaceholderFormat(r.dialect.placeholder)

	for _, record := range records {
		builder = builder.Values(
			record.Date.String(),
			record.CountryCode,
			record.GrossSalesUSD.String(),
			record.NetSalesUSD.String(),
			record.GrossReturnsUSD.String(),
			record.NetTaxUSD.String(),
			record.GrossUnitsSold,
			record.GrossUnitsReturned,
			record.GrossUnitsActivated,
			record.LastFetched.String(),
			record.FetchID,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}
	return query, args, nil
}

func (r *SalesCacheSQLRepository) ClearAll(ctx context.Context) error {
	query, args, err := squirrel.Delete(salesCacheTable).PlaceholderFormat(r.dialect.placeholder).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(ErrCacheUnavailable, "erro ao limpar cache: %v", err)
	}

	return nil
}

func scanSalesRecord(rows *sql.Rows) (*domain.SalesRecord, error) {
	var (
		record      domain.SalesRecord
		date        string
		lastFetched string
	)

	err := rows.Scan(
		&date,
		&record.CountryCode,
		&record.GrossSalesUSD,
		&record.NetSalesUSD,
		&record.GrossReturnsUSD,
		&record.NetTaxUSD,
		&record.GrossUnitsSold,
		&record.GrossUnitsReturned,
		&record.GrossUnitsActivated,
		&lastFetched,
		&record.FetchID,
	)
	if err != nil {
		return nil, err
	}

	record.Date = domain.ReportDate(date)
	record.LastFetched = domain.ReportDate(lastFetched)

	return &record, nil
}
