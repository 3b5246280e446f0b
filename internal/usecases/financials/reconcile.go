package financials

import (
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

// NeedsFetch indica se o cache de uma data ainda pode mudar na Steam.
// O relatório de um dia só é final quando foi buscado depois daquele dia.
func NeedsFetch(date, lastFetched domain.ReportDate) bool {
	day, err := date.Time()
	if err != nil {
		return true
	}

	fetchedAt, err := lastFetched.Time()
	if err != nil {
		return true
	}

	return !fetchedAt.After(day)
}

// GroupCacheEntries agrupa as linhas do cache por data. Linhas de uma mesma gravação
// ficam contíguas e compartilham o FetchID; quando a data aparece em mais de um bloco, vale o último.
func GroupCacheEntries(rows []*domain.SalesRecord, today domain.ReportDate) map[domain.ReportDate]*domain.CacheEntry {
	entries := make(map[domain.ReportDate]*domain.CacheEntry)

	var previous *domain.SalesRecord
	for _, row := range rows {
		if row == nil || row.Date == "" {
			continue
		}

		sameBlock := previous != nil &&
			previous.Date == row.Date &&
			previous.LastFetched == row.LastFetched &&
			previous.FetchID == row.FetchID

		if !sameBlock {
			lastFetched := row.LastFetched
			if lastFetched == "" {
				lastFetched = today
			}
			entries[row.Date] = &domain.CacheEntry{
				Date:        row.Date,
				Records:     []*domain.SalesRecord{},
				LastFetched: lastFetched,
			}
		}

		entry := entries[row.Date]
		entry.Records = append(entry.Records, row)
		previous = row
	}

	return entries
}

// assemble monta a resposta na ordem das datas pedidas
func assemble(
	requested []domain.ReportDate,
	datesToFetch []domain.ReportDate,
	entries map[domain.ReportDate]*domain.CacheEntry,
	fetched map[domain.ReportDate]*domain.DailySales,
	failed int,
) *domain.SalesRange {
	result := domain.NewEmptySalesRange()

	toFetch := make(map[domain.ReportDate]struct{}, len(datesToFetch))
	for _, date := range datesToFetch {
		toFetch[date] = struct{}{}
	}

	countryPosition := make(map[string]int)
	addCountry := func(info *domain.CountryInfo) {
		if info == nil {
			return
		}
		if i, ok := countryPosition[info.CountryCode]; ok {
			result.CountryInfo[i] = info
			return
		}
		countryPosition[info.CountryCode] = len(result.CountryInfo)
		result.CountryInfo = append(result.CountryInfo, info)
	}

	for _, date := range requested {
		if _, refetched := toFetch[date]; refetched {
			day, ok := fetched[date]
			if !ok {
				continue
			}
			result.Results = append(result.Results, day.Records...)
			for _, info := range day.CountryInfo {
				addCountry(info)
			}
			continue
		}

		if entry, ok := entries[date]; ok {
			result.Results = append(result.Results, entry.Records...)
		}
	}

	result.Fetched = len(datesToFetch)
	result.Cached = len(requested) - len(datesToFetch)
	result.Failed = failed

	from, to := requested[0], requested[0]
	for _, date := range requested[1:] {
		if date < from {
			from = date
		}
		if date > to {
			to = date
		}
	}
	result.DateRange = domain.DateRange{From: from, To: to}

	result.Summary = domain.CalculateRevenueSummary(result.Results, result.CountryInfo)

	return result
}
