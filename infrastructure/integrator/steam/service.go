package steam

import (
	"context"
	"math"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/steamclient"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

const defaultMaxSalesPages = 20

type SteamIntegrator interface {
	ListChangedDates(ctx context.Context) ([]domain.ReportDate, error)
	GetDailySales(ctx context.Context, date domain.ReportDate) (*domain.DailySales, error)
	GetCurrentPlayers(ctx context.Context, appID string) (*int, error)
	GetReviewSummary(ctx context.Context, appID string) (*domain.ReviewSummary, error)
	GetAppDetails(ctx context.Context, appID string) (*domain.AppDetails, error)
	GetRecentReviews(ctx context.Context, appID string, cursor string) (*domain.ReviewPage, error)
}

type SteamService struct {
	cfg    *config.Config
	Client steamclient.Client
}

func New(cfg *config.Config, client steamclient.Client) SteamIntegrator {
	return &SteamService{
		cfg:    cfg,
		Client: client,
	}
}

// ListChangedDates retorna as datas com dados financeiros disponíveis, em ordem crescente
func (s *SteamService) ListChangedDates(ctx context.Context) ([]domain.ReportDate, error) {
	resp, err := s.Client.GetChangedDatesForPartner(ctx, "0")
	if err != nil {
		logrus.WithError(err).Error("steam: failed to list changed dates")
		return nil, err
	}

	dates := make([]domain.ReportDate, 0, len(resp.Response.Dates))
	for _, date := range resp.Response.Dates {
		dates = append(dates, domain.ReportDate(date))
	}
	domain.SortReportDates(dates)

	logrus.WithField("dates", len(dates)).Debug("steam: changed dates listed")

	return dates, nil
}

// GetDailySales busca o relatório detalhado de um dia, percorrendo as páginas por highwatermark_id
func (s *SteamService) GetDailySales(ctx context.Context, date domain.ReportDate) (*domain.DailySales, error) {
	maxPages := s.cfg.Steam.MaxSalesPages
	if maxPages <= 0 {
		maxPages = defaultMaxSalesPages
	}

	sales := &domain.DailySales{
		Date:        date,
		Records:     []*domain.SalesRecord{},
		CountryInfo: []*domain.CountryInfo{},
	}

	highwatermark := "0"
	for page := 0; page < maxPages; page++ {
		resp, err := s.Client.GetDetailedSales(ctx, date.String(), highwatermark)
		if err != nil {
			return nil, err
		}

		for _, result := range resp.Response.Results {
			sales.Records = append(sales.Records, FactorySalesRecord(date, result))
		}
		for _, info := range resp.Response.CountryInfo {
			sales.CountryInfo = append(sales.CountryInfo, &domain.CountryInfo{
				CountryCode: info.CountryCode,
				CountryName: info.CountryName,
				Region:      info.Region,
			})
		}

		next := resp.Response.MaxID.String()
		if len(resp.Response.Results) == 0 || next == "" || next == highwatermark {
			break
		}
		highwatermark = next

		if page == maxPages-1 {
			logrus.WithFields(logrus.Fields{
				"date":      date,
				"max_pages": maxPages,
			}).Warn("steam: detailed sales page limit reached")
		}
	}

	return sales, nil
}

// FactorySalesRecord converte uma linha da Steam para o domínio, sempre com a data pedida
func FactorySalesRecord(date domain.ReportDate, result steamdomain.DetailedSalesResult) *domain.SalesRecord {
	return &domain.SalesRecord{
		Date:                date,
		CountryCode:         result.CountryCode,
		GrossSalesUSD:       parseAmount(result.GrossSalesUSD),
		NetSalesUSD:         parseAmount(result.NetSalesUSD),
		GrossReturnsUSD:     parseAmount(result.GrossReturnsUSD),
		NetTaxUSD:           parseAmount(result.NetTaxUSD),
		GrossUnitsSold:      result.GrossUnitsSold.Int64(),
		GrossUnitsReturned:  result.GrossUnitsReturned.Int64(),
		GrossUnitsActivated: result.GrossUnitsActivated.Int64(),
	}
}

func parseAmount(value steamdomain.FlexString) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(value.String()))
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func (s *SteamService) GetCurrentPlayers(ctx context.Context, appID string) (*int, error) {
	resp, err := s.Client.GetNumberOfCurrentPlayers(ctx, appID)
	if err != nil {
		return nil, err
	}
	return resp.Response.PlayerCount, nil
}

func (s *SteamService) GetReviewSummary(ctx context.Context, appID string) (*domain.ReviewSummary, error) {
	params := url.Values{}
	params.Set("purchase_type", "all")

	resp, err := s.Client.GetAppReviews(ctx, appID, params)
	if err != nil {
		return nil, err
	}

	summary := resp.QuerySummary
	scoreDesc := summary.ReviewScoreDesc
	if scoreDesc == "" {
		scoreDesc = "No reviews"
	}

	return &domain.ReviewSummary{
		Total:     summary.TotalReviews,
		Positive:  summary.TotalPositive,
		Negative:  summary.TotalNegative,
		Score:     summary.ReviewScore,
		ScoreDesc: scoreDesc,
	}, nil
}

func (s *SteamService) GetAppDetails(ctx context.Context, appID string) (*domain.AppDetails, error) {
	resp, err := s.Client.GetAppDetails(ctx, appID)
	if err != nil {
		return nil, err
	}

	entry, ok := resp[appID]
	if !ok || !entry.Success {
		return &domain.AppDetails{}, nil
	}

	details := &domain.AppDetails{
		Name:        entry.Data.Name,
		HeaderImage: entry.Data.HeaderImage,
		IsFree:      entry.Data.IsFree,
	}
	if entry.Data.PriceOverview != nil {
		details.Price = entry.Data.PriceOverview.FinalFormatted
	}

	return details, nil
}

// GetRecentReviews busca uma página de avaliações recentes a partir do cursor
func (s *SteamService) GetRecentReviews(ctx context.Context, appID string, cursor string) (*domain.ReviewPage, error) {
	if cursor == "" {
		cursor = "*"
	}

	params := url.Values{}
	params.Set("cursor", cursor)
	params.Set("num_per_page", "20")
	params.Set("filter", "recent")

	resp, err := s.Client.GetAppReviews(ctx, appID, params)
	if err != nil {
		return nil, err
	}

	reviews := make([]*domain.SteamReview, 0, len(resp.Reviews))
	for _, r := range resp.Reviews {
		reviews = append(reviews, &domain.SteamReview{
			ID:            r.RecommendationID,
			Positive:      r.VotedUp,
			Text:          r.Review,
			HoursPlayed:   minutesToHours(r.Author.PlaytimeForever),
			HoursAtReview: minutesToHours(r.Author.PlaytimeAtReview),
			Posted:        r.TimestampCreated,
			Updated:       r.TimestampUpdated,
			VotesUp:       r.VotesUp,
			VotesFunny:    r.VotesFunny,
			SteamDeck:     r.PrimarilySteamDeck,
			EarlyAccess:   r.WrittenDuringEarlyAccess,
			Language:      r.Language,
		})
	}

	page := &domain.ReviewPage{
		Reviews: reviews,
		HasMore: len(reviews) == domain.ReviewPageSize,
	}
	if resp.Cursor != "" {
		next := resp.Cursor
		page.Cursor = &next
	}

	return page, nil
}

func minutesToHours(minutes int) int {
	return int(math.Round(float64(minutes) / 60))
}
