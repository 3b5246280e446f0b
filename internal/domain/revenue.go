package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// PlatformShare é a fatia da Steam sobre o valor após impostos e devoluções
	PlatformShare = decimal.NewFromFloat(0.30)
	// DeveloperShare é a fatia do desenvolvedor sobre o mesmo valor
	DeveloperShare = decimal.NewFromFloat(0.70)
	// USWithholdingRate é a retenção de imposto americana sobre a fatia do desenvolvedor
	USWithholdingRate = decimal.NewFromFloat(0.15)

	hundred = decimal.NewFromInt(100)
)

// RevenueSummary é derivado dos registros de vendas e nunca é persistido
type RevenueSummary struct {
	GrossSales    decimal.Decimal `json:"gross_sales"`
	NetSales      decimal.Decimal `json:"net_sales"`
	Returns       decimal.Decimal `json:"returns"`
	Tax           decimal.Decimal `json:"tax"`
	AfterTax      decimal.Decimal `json:"after_tax"`
	PlatformCut   decimal.Decimal `json:"platform_cut"`
	DeveloperCut  decimal.Decimal `json:"developer_cut"`
	USWithholding decimal.Decimal `json:"us_withholding"`
	FinalPayout   decimal.Decimal `json:"final_payout"`
	DailyAverage  decimal.Decimal `json:"daily_average"`
	Days          int             `json:"days"`

	UnitsSold     int64 `json:"units_sold"`
	UnitsReturned int64 `json:"units_returned"`
	Activations   int64 `json:"activations"`
	NetUnits      int64 `json:"net_units"`
	TotalUnits    int64 `json:"total_units"`

	Percentages RevenuePercentages `json:"percentages"`
	Countries   []*CountryRevenue  `json:"countries"`
	Daily       []*DailyPayout     `json:"daily"`
	Converted   *ConvertedPayout   `json:"converted,omitempty"`
}

// RevenuePercentages expressa cada componente como percentual da receita bruta
type RevenuePercentages struct {
	Tax           decimal.Decimal `json:"tax"`
	Returns       decimal.Decimal `json:"returns"`
	PlatformCut   decimal.Decimal `json:"platform_cut"`
	DeveloperCut  decimal.Decimal `json:"developer_cut"`
	USWithholding decimal.Decimal `json:"us_withholding"`
	FinalPayout   decimal.Decimal `json:"final_payout"`
}

type CountryRevenue struct {
	CountryCode string          `json:"country_code"`
	CountryName string          `json:"country_name"`
	Region      string          `json:"region"`
	GrossSales  decimal.Decimal `json:"gross_sales"`
	NetSales    decimal.Decimal `json:"net_sales"`
	Units       int64           `json:"units"`
}

type DailyPayout struct {
	Date        ReportDate      `json:"date"`
	GrossSales  decimal.Decimal `json:"gross_sales"`
	Tax         decimal.Decimal `json:"tax"`
	Returns     decimal.Decimal `json:"returns"`
	FinalPayout decimal.Decimal `json:"final_payout"`
}

// ConvertedPayout é o repasse convertido para outra moeda
type ConvertedPayout struct {
	Currency     string          `json:"currency"`
	Rate         decimal.Decimal `json:"rate"`
	FinalPayout  decimal.Decimal `json:"final_payout"`
	DailyAverage decimal.Decimal `json:"daily_average"`
}

// Payout aplica a cascata de repasse sobre os totais de um período
func Payout(grossSales, tax, returns decimal.Decimal) (afterTax, platformCut, developerCut, withholding, finalPayout decimal.Decimal) {
	afterTax = grossSales.Sub(tax).Sub(returns.Abs())
	platformCut = afterTax.Mul(PlatformShare)
	developerCut = afterTax.Mul(DeveloperShare)
	withholding = developerCut.Mul(USWithholdingRate)
	finalPayout = developerCut.Sub(withholding)
	return
}

// CalculateRevenueSummary agrega os registros e calcula a cascata de repasse
func CalculateRevenueSummary(records []*SalesRecord, countryInfo []*CountryInfo) *RevenueSummary {
	summary := &RevenueSummary{
		Countries: []*CountryRevenue{},
		Daily:     []*DailyPayout{},
	}

	names := make(map[string]*CountryInfo, len(countryInfo))
	for _, info := range countryInfo {
		names[info.CountryCode] = info
	}

	countries := make(map[string]*CountryRevenue)
	daily := make(map[ReportDate]*DailyPayout)

	for _, record := range records {
		summary.GrossSales = summary.GrossSales.Add(record.GrossSalesUSD)
		summary.NetSales = summary.NetSales.Add(record.NetSalesUSD)
		summary.Returns = summary.Returns.Add(record.GrossReturnsUSD)
		summary.Tax = summary.Tax.Add(record.NetTaxUSD)
		summary.UnitsSold += record.GrossUnitsSold
		summary.UnitsReturned += record.GrossUnitsReturned
		summary.Activations += record.GrossUnitsActivated

		country, ok := countries[record.CountryCode]
		if !ok {
			country = &CountryRevenue{CountryCode: record.CountryCode}
			if info, found := names[record.CountryCode]; found {
				country.CountryName = info.CountryName
				country.Region = info.Region
			}
			countries[record.CountryCode] = country
		}
		country.GrossSales = country.GrossSales.Add(record.GrossSalesUSD)
		country.NetSales = country.NetSales.Add(record.NetSalesUSD)
		country.Units += record.GrossUnitsSold + record.GrossUnitsActivated

		day, ok := daily[record.Date]
		if !ok {
			day = &DailyPayout{Date: record.Date}
			daily[record.Date] = day
		}
		day.GrossSales = day.GrossSales.Add(record.GrossSalesUSD)
		day.Tax = day.Tax.Add(record.NetTaxUSD)
		day.Returns = day.Returns.Add(record.GrossReturnsUSD)
	}

	summary.AfterTax, summary.PlatformCut, summary.DeveloperCut, summary.USWithholding, summary.FinalPayout =
		Payout(summary.GrossSales, summary.Tax, summary.Returns)

	summary.NetUnits = summary.UnitsSold - abs(summary.UnitsReturned)
	summary.TotalUnits = summary.UnitsSold + summary.Activations

	summary.Days = len(daily)
	if summary.Days > 0 {
		summary.DailyAverage = summary.FinalPayout.Div(decimal.NewFromInt(int64(summary.Days)))
	}

	summary.Percentages = RevenuePercentages{
		Tax:           percentOf(summary.Tax, summary.GrossSales),
		Returns:       percentOf(summary.Returns.Abs(), summary.GrossSales),
		PlatformCut:   percentOf(summary.PlatformCut, summary.GrossSales),
		DeveloperCut:  percentOf(summary.DeveloperCut, summary.GrossSales),
		USWithholding: percentOf(summary.USWithholding, summary.GrossSales),
		FinalPayout:   percentOf(summary.FinalPayout, summary.GrossSales),
	}

	for _, country := range countries {
		summary.Countries = append(summary.Countries, country)
	}
	sort.SliceStable(summary.Countries, func(i, j int) bool {
		cmp := summary.Countries[i].GrossSales.Cmp(summary.Countries[j].GrossSales)
		if cmp == 0 {
			return summary.Countries[i].CountryCode < summary.Countries[j].CountryCode
		}
		return cmp > 0
	})

	for _, day := range daily {
		_, _, _, _, day.FinalPayout = Payout(day.GrossSales, day.Tax, day.Returns)
		summary.Daily = append(summary.Daily, day)
	}
	sort.Slice(summary.Daily, func(i, j int) bool {
		return summary.Daily[i].Date < summary.Daily[j].Date
	})

	return summary
}

// Convert preenche o repasse convertido usando a cotação informada
func (s *RevenueSummary) Convert(currency string, rate decimal.Decimal) {
	s.Converted = &ConvertedPayout{
		Currency:     currency,
		Rate:         rate,
		FinalPayout:  s.FinalPayout.Mul(rate),
		DailyAverage: s.DailyAverage.Mul(rate),
	}
}

func percentOf(value, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred).Round(2)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
