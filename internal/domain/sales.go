package domain

import (
	"github.com/shopspring/decimal"
)

// SalesRecord é uma linha do relatório detalhado de vendas da Steam para um dia e país.
// Registros não são alterados depois de criados; uma nova busca do dia substitui os anteriores.
type SalesRecord struct {
	Date                ReportDate      `json:"date"`
	CountryCode         string          `json:"country_code"`
	GrossSalesUSD       decimal.Decimal `json:"gross_sales_usd"`
	NetSalesUSD         decimal.Decimal `json:"net_sales_usd"`
	GrossReturnsUSD     decimal.Decimal `json:"gross_returns_usd"`
	NetTaxUSD           decimal.Decimal `json:"net_tax_usd"`
	GrossUnitsSold      int64           `json:"gross_units_sold"`
	GrossUnitsReturned  int64           `json:"gross_units_returned"`
	GrossUnitsActivated int64           `json:"gross_units_activated"`
	LastFetched         ReportDate      `json:"last_fetched"`
	// FetchID identifica a gravação no cache; requisições simultâneas do mesmo dia geram ids diferentes
	FetchID string `json:"-"`
}

type CountryInfo struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Region      string `json:"region"`
}

// DailySales é o resultado de uma busca na Steam para um único dia
type DailySales struct {
	Date        ReportDate
	Records     []*SalesRecord
	CountryInfo []*CountryInfo
}

// CacheEntry agrupa os registros em cache de um dia
type CacheEntry struct {
	Date        ReportDate
	Records     []*SalesRecord
	LastFetched ReportDate
}

type DateRange struct {
	From ReportDate `json:"from"`
	To   ReportDate `json:"to"`
}

// SalesRange é a resposta consolidada de um intervalo de datas
type SalesRange struct {
	Results     []*SalesRecord  `json:"results"`
	CountryInfo []*CountryInfo  `json:"country_info"`
	Fetched     int             `json:"fetched"`
	Cached      int             `json:"cached"`
	Failed      int             `json:"failed"`
	DateRange   DateRange       `json:"dateRange"`
	Summary     *RevenueSummary `json:"summary,omitempty"`
}

// NewEmptySalesRange retorna a resposta para uma requisição sem datas
func NewEmptySalesRange() *SalesRange {
	return &SalesRange{
		Results:     []*SalesRecord{},
		CountryInfo: []*CountryInfo{},
	}
}
