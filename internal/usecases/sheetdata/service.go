package sheetdata

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/publishedsheet"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/cache"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

const defaultCacheTTL = 30 * time.Minute

// SheetDataService expõe os dados das planilhas publicadas
type SheetDataService interface {
	QuickLinks(ctx context.Context, forceRefresh bool) ([]*domain.QuickLink, bool, error)
	AdminUsers(ctx context.Context, forceRefresh bool) ([]*domain.AdminUser, error)
	AllowedEmails(ctx context.Context, forceRefresh bool) ([]string, error)
	IsAllowed(ctx context.Context, email string) (bool, error)
	SupportedGames(ctx context.Context, forceRefresh bool) ([]*domain.SupportedGame, error)
	Localization(ctx context.Context, forceRefresh bool) (*domain.LocalizationReport, error)
	SpreadsheetLinks(path string) []*domain.SpreadsheetLink
	Warmup(ctx context.Context) error
}

type Service struct {
	cfg    config.PublishedSheets
	client publishedsheet.Client

	quickLinks     *cache.TTL[[]*domain.QuickLink]
	adminUsers     *cache.TTL[[]*domain.AdminUser]
	allowedEmails  *cache.TTL[[]string]
	supportedGames *cache.TTL[[]*domain.SupportedGame]
	localization   *cache.TTL[*domain.LocalizationReport]
}

func NewService(cfg *config.Config, client publishedsheet.Client, clock clockwork.Clock) SheetDataService {
	ttl := cfg.PublishedSheets.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Service{
		cfg:            cfg.PublishedSheets,
		client:         client,
		quickLinks:     cache.NewTTL[[]*domain.QuickLink](ttl, clock),
		adminUsers:     cache.NewTTL[[]*domain.AdminUser](ttl, clock),
		allowedEmails:  cache.NewTTL[[]string](ttl, clock),
		supportedGames: cache.NewTTL[[]*domain.SupportedGame](ttl, clock),
		localization:   cache.NewTTL[*domain.LocalizationReport](ttl, clock),
	}
}

// QuickLinks também informa se a lista veio do cache
func (s *Service) QuickLinks(ctx context.Context, forceRefresh bool) ([]*domain.QuickLink, bool, error) {
	return s.quickLinks.Get(ctx, forceRefresh, func(ctx context.Context) ([]*domain.QuickLink, error) {
		rows, err := s.client.FetchRows(ctx, s.cfg.QuickLinksCSVURL)
		if err != nil {
			return nil, err
		}
		return ParseQuickLinks(rows), nil
	})
}

func (s *Service) AdminUsers(ctx context.Context, forceRefresh bool) ([]*domain.AdminUser, error) {
	users, _, err := s.adminUsers.Get(ctx, forceRefresh, func(ctx context.Context) ([]*domain.AdminUser, error) {
		rows, err := s.client.FetchRows(ctx, s.cfg.AdminUsersCSVURL)
		if err != nil {
			return nil, err
		}
		return ParseAdminUsers(rows), nil
	})
	return users, err
}

func (s *Service) AllowedEmails(ctx context.Context, forceRefresh bool) ([]string, error) {
	emails, _, err := s.allowedEmails.Get(ctx, forceRefresh, func(ctx context.Context) ([]string, error) {
		rows, err := s.client.FetchRows(ctx, s.cfg.AllowedEmailsCSVURL)
		if err != nil {
			return nil, err
		}
		return ParseAllowedEmails(rows), nil
	})
	return emails, err
}

// IsAllowed compara o e-mail sem diferenciar maiúsculas
func (s *Service) IsAllowed(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}

	emails, err := s.AllowedEmails(ctx, false)
	if err != nil {
		return false, err
	}

	return slices.Contains(emails, email), nil
}

func (s *Service) SupportedGames(ctx context.Context, forceRefresh bool) ([]*domain.SupportedGame, error) {
	games, _, err := s.supportedGames.Get(ctx, forceRefresh, func(ctx context.Context) ([]*domain.SupportedGame, error) {
		rows, err := s.client.FetchRows(ctx, s.cfg.SupportedGamesCSVURL)
		if err != nil {
			return nil, err
		}
		return ParseSupportedGames(rows), nil
	})
	return games, err
}

// Localization lê as três planilhas de tradução. Uma fonte com erro é ignorada.
func (s *Service) Localization(ctx context.Context, forceRefresh bool) (*domain.LocalizationReport, error) {
	report, _, err := s.localization.Get(ctx, forceRefresh, func(ctx context.Context) (*domain.LocalizationReport, error) {
		sources := s.localizationSources()
		report := &domain.LocalizationReport{
			Rows:    []*domain.LocalizationRow{},
			Sources: sources,
		}

		for _, source := range sources {
			rows, err := s.client.FetchRows(ctx, source.CSVURL)
			if err != nil {
				log.ForContext(ctx).WithError(err).WithField("source", source.Name).
					Warn("localization: falha ao ler a planilha, fonte ignorada")
				continue
			}
			report.Rows = append(report.Rows, ParseLocalization(source.Name, rows)...)
		}

		return report, nil
	})
	return report, err
}

func (s *Service) localizationSources() []*domain.LocalizationSource {
	sources := make([]*domain.LocalizationSource, 0, 3)
	for _, source := range []*domain.LocalizationSource{
		{Name: "Backend", CSVURL: s.cfg.LocalizationBackendCSVURL, EditURL: s.cfg.LocalizationBackendEditURL},
		{Name: "Frontend", CSVURL: s.cfg.LocalizationFrontendCSVURL, EditURL: s.cfg.LocalizationFrontendEditURL},
		{Name: "Games", CSVURL: s.cfg.LocalizationGamesCSVURL, EditURL: s.cfg.LocalizationGamesEditURL},
	} {
		if source.CSVURL == "" {
			continue
		}
		sources = append(sources, source)
	}
	return sources
}

// SpreadsheetLinks lista as planilhas editáveis por página do painel.
// Com path informado, devolve apenas as da página.
func (s *Service) SpreadsheetLinks(path string) []*domain.SpreadsheetLink {
	all := []*domain.SpreadsheetLink{
		{Path: "/dashboard/quick-links", SheetName: "Quick Links", EditURL: s.cfg.QuickLinksEditURL},
		{Path: "/dashboard/admin-users", SheetName: "Admin Users", EditURL: s.cfg.AdminUsersEditURL},
		{Path: "/dashboard/supported-games", SheetName: "Supported Games", EditURL: s.cfg.SupportedGamesEditURL},
	}
	for _, source := range s.localizationSources() {
		all = append(all, &domain.SpreadsheetLink{
			Path:      "/dashboard/localization",
			SheetName: "Localization " + source.Name,
			EditURL:   source.EditURL,
		})
	}

	links := make([]*domain.SpreadsheetLink, 0, len(all))
	for _, link := range all {
		if link.EditURL == "" {
			continue
		}
		if path != "" && link.Path != path {
			continue
		}
		links = append(links, link)
	}
	return links
}

// Warmup recarrega todas as planilhas e junta os erros
func (s *Service) Warmup(ctx context.Context) error {
	_, _, quickLinksErr := s.QuickLinks(ctx, true)
	_, adminUsersErr := s.AdminUsers(ctx, true)
	_, allowedErr := s.AllowedEmails(ctx, true)
	_, gamesErr := s.SupportedGames(ctx, true)
	_, localizationErr := s.Localization(ctx, true)

	return errors.Join(quickLinksErr, adminUsersErr, allowedErr, gamesErr, localizationErr)
}
