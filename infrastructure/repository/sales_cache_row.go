package repository

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/utils"
)

const (
	columnDate                = "date"
	columnCountryCode         = "country_code"
	columnGrossSalesUSD       = "gross_sales_usd"
	columnNetSalesUSD         = "net_sales_usd"
	columnGrossReturnsUSD     = "gross_returns_usd"
	columnNetTaxUSD           = "net_tax_usd"
	columnGrossUnitsSold      = "gross_units_sold"
	columnGrossUnitsActivated = "gross_units_activated"
	columnLastFetched         = "last_fetched"
	columnGrossUnitsReturned  = "gross_units_returned"
	columnFetchID             = "fetch_id"
)

// SalesCacheHeaders é a ordem das colunas na aba de cache. Abas antigas com nove
// colunas não têm gross_units_returned nem fetch_id, lidos como zero e vazio.
var SalesCacheHeaders = []string{
	columnDate,
	columnCountryCode,
	columnGrossSalesUSD,
	columnNetSalesUSD,
	columnGrossReturnsUSD,
	columnNetTaxUSD,
	columnGrossUnitsSold,
	columnGrossUnitsActivated,
	columnLastFetched,
	columnGrossUnitsReturned,
	columnFetchID,
}

// EncodeSalesCacheRow converte um registro em células na ordem de SalesCacheHeaders
func EncodeSalesCacheRow(record *domain.SalesRecord) []string {
	return []string{
		record.Date.String(),
		record.CountryCode,
		record.GrossSalesUSD.String(),
		record.NetSalesUSD.String(),
		record.GrossReturnsUSD.String(),
		record.NetTaxUSD.String(),
		strconv.FormatInt(record.GrossUnitsSold, 10),
		strconv.FormatInt(record.GrossUnitsActivated, 10),
		record.LastFetched.String(),
		strconv.FormatInt(record.GrossUnitsReturned, 10),
		record.FetchID,
	}
}

// DecodeSalesCacheRows interpreta as linhas da aba de cache. Se a primeira linha for um
// cabeçalho, as colunas são mapeadas pelo nome; caso contrário vale a ordem padrão.
// Linhas sem data são ignoradas e células numéricas inválidas viram zero.
func DecodeSalesCacheRows(rows [][]string) []*domain.SalesRecord {
	records := make([]*domain.SalesRecord, 0, len(rows))
	if len(rows) == 0 {
		return records
	}

	index := defaultColumnIndex()
	start := 0
	if isHeaderRow(rows[0]) {
		index = columnIndex(rows[0])
		start = 1
	}

	for _, row := range rows[start:] {
		cell := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date := cell(columnDate)
		if date == "" {
			continue
		}

		records = append(records, &domain.SalesRecord{
			Date:                domain.ReportDate(date),
			CountryCode:         cell(columnCountryCode),
			GrossSalesUSD:       parseDecimal(cell(columnGrossSalesUSD)),
			NetSalesUSD:         parseDecimal(cell(columnNetSalesUSD)),
			GrossReturnsUSD:     parseDecimal(cell(columnGrossReturnsUSD)),
			NetTaxUSD:           parseDecimal(cell(columnNetTaxUSD)),
			GrossUnitsSold:      utils.ParseIntLenient(cell(columnGrossUnitsSold)),
			GrossUnitsReturned:  utils.ParseIntLenient(cell(columnGrossUnitsReturned)),
			GrossUnitsActivated: utils.ParseIntLenient(cell(columnGrossUnitsActivated)),
			LastFetched:         domain.ReportDate(cell(columnLastFetched)),
			FetchID:             cell(columnFetchID),
		})
	}

	return records
}

func isHeaderRow(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), columnDate)
}

func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

func defaultColumnIndex() map[string]int {
	return columnIndex(SalesCacheHeaders)
}

func parseDecimal(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
