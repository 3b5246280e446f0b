package handler

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/publisher-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/financials"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/steamstats"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/utmlinks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/middleware"
)

func Healthcheck(clock clockwork.Clock) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(clock),
		},
	}
}

func Financials(service financials.FinancialsService, auth authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/financials",
			Method:      http.MethodGet,
			Handler:     GetFinancials(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
	}
}

func SteamStats(service steamstats.SteamStatsService, auth authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/steam/stats",
			Method:      http.MethodGet,
			Handler:     GetSteamStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
	}
}

func SheetData(service sheetdata.SheetDataService, auth authorizing.Authorizer) []router.Route {
	allowed := []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)}

	return []router.Route{
		{
			Path:        "/v1/quick-links",
			Method:      http.MethodGet,
			Handler:     GetQuickLinks(service),
			Middlewares: allowed,
		},
		{
			Path:        "/v1/admin-users",
			Method:      http.MethodGet,
			Handler:     GetAdminUsers(service),
			Middlewares: allowed,
		},
		{
			Path:        "/v1/supported-games",
			Method:      http.MethodGet,
			Handler:     GetSupportedGames(service),
			Middlewares: allowed,
		},
		{
			Path:        "/v1/localization",
			Method:      http.MethodGet,
			Handler:     GetLocalization(service),
			Middlewares: allowed,
		},
		{
			Path:        "/v1/spreadsheets",
			Method:      http.MethodGet,
			Handler:     GetSpreadsheets(service),
			Middlewares: allowed,
		},
	}
}

func UTMLinks(service utmlinks.UTMLinkService, auth authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/utm-links",
			Method:      http.MethodGet,
			Handler:     ListUTMLinks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
		{
			Path:        "/v1/utm-links",
			Method:      http.MethodPost,
			Handler:     ChangeUTMLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
	}
}

func ExchangeRates(provider exchange.RateProvider, auth authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exchange-rates",
			Method:      http.MethodGet,
			Handler:     GetExchangeRate(provider),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
	}
}

func Authorization(service authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/allowed-emails",
			Method:  http.MethodGet,
			Handler: ListAllowedEmails(service),
		},
		{
			Path:    "/v1/auth/allowed-emails",
			Method:  http.MethodPost,
			Handler: CheckAllowedEmail(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func CronJobs(services CronJobServices, auth authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllowedEmailOnly(auth)},
		},
	}
}
