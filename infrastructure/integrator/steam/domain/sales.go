package steamdomain

// ChangedDatesResponse representa a resposta de GetChangedDatesForPartner
type ChangedDatesResponse struct {
	Response struct {
		Dates               []string   `json:"dates"`
		ResultHighwatermark FlexString `json:"result_highwatermark"`
	} `json:"response"`
}

// DetailedSalesResponse representa uma página de GetDetailedSales
type DetailedSalesResponse struct {
	Response struct {
		Results     []DetailedSalesResult `json:"results"`
		CountryInfo []CountryInfo         `json:"country_info"`
		MaxID       FlexString            `json:"max_id"`
	} `json:"response"`
}

// DetailedSalesResult é uma linha do relatório. Apenas os campos usados pelo painel são mapeados.
type DetailedSalesResult struct {
	Date                FlexString `json:"date"`
	LineItemType        string     `json:"line_item_type"`
	PrimaryAppID        FlexString `json:"primary_appid"`
	PackageID           FlexString `json:"packageid"`
	CountryCode         string     `json:"country_code"`
	Platform            string     `json:"platform"`
	Currency            string     `json:"currency"`
	GrossUnitsSold      FlexString `json:"gross_units_sold"`
	GrossUnitsReturned  FlexString `json:"gross_units_returned"`
	GrossUnitsActivated FlexString `json:"gross_units_activated"`
	NetUnitsSold        FlexString `json:"net_units_sold"`
	GrossSalesUSD       FlexString `json:"gross_sales_usd"`
	GrossReturnsUSD     FlexString `json:"gross_returns_usd"`
	NetTaxUSD           FlexString `json:"net_tax_usd"`
	NetSalesUSD         FlexString `json:"net_sales_usd"`
}

type CountryInfo struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Region      string `json:"region"`
}
