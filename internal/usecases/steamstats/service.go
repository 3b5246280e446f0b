package steamstats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

const (
	placeholderAppID = "YOUR_APP_ID_HERE"
	unknownName      = "Unknown"
	freePrice        = "Free"
	noReviews        = "No reviews"
)

var (
	ErrMissingAppID  = errors.New("STEAM_APP_ID not configured")
	ErrReviewsFailed = errors.New("failed to fetch Steam reviews")
)

// SteamStatsService reúne os dados públicos da loja para o jogo configurado
type SteamStatsService interface {
	GetStats(ctx context.Context) (*domain.SteamStats, error)
	GetReviews(ctx context.Context, cursor string) (*domain.ReviewPage, error)
}

type Service struct {
	cfg   *config.Config
	steam steam.SteamIntegrator
	clock clockwork.Clock
}

func NewService(cfg *config.Config, steamIntegrator steam.SteamIntegrator, clock clockwork.Clock) SteamStatsService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		cfg:   cfg,
		steam: steamIntegrator,
		clock: clock,
	}
}

func (s *Service) appID() (string, error) {
	appID := strings.TrimSpace(s.cfg.Steam.AppID)
	if appID == "" || appID == placeholderAppID {
		return "", ErrMissingAppID
	}
	return appID, nil
}

// GetStats consulta jogadores, avaliações e detalhes em paralelo.
// Cada consulta que falhar cai no valor padrão.
func (s *Service) GetStats(ctx context.Context) (*domain.SteamStats, error) {
	appID, err := s.appID()
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("app_id", appID)

	var (
		wg      sync.WaitGroup
		players *int
		reviews *domain.ReviewSummary
		details *domain.AppDetails
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		count, err := s.steam.GetCurrentPlayers(ctx, appID)
		if err != nil {
			logger.WithError(err).Warn("steam stats: falha ao buscar jogadores atuais")
			return
		}
		players = count
	}()
	go func() {
		defer wg.Done()
		summary, err := s.steam.GetReviewSummary(ctx, appID)
		if err != nil {
			logger.WithError(err).Warn("steam stats: falha ao buscar resumo de avaliações")
			return
		}
		reviews = summary
	}()
	go func() {
		defer wg.Done()
		appDetails, err := s.steam.GetAppDetails(ctx, appID)
		if err != nil {
			logger.WithError(err).Warn("steam stats: falha ao buscar detalhes do app")
			return
		}
		details = appDetails
	}()
	wg.Wait()

	stats := &domain.SteamStats{
		AppID:          appID,
		CurrentPlayers: players,
		Reviews:        domain.ReviewSummary{ScoreDesc: noReviews},
		Name:           unknownName,
		FetchedAt:      s.clock.Now().UTC(),
	}

	if reviews != nil {
		stats.Reviews = *reviews
	}

	if details != nil {
		if details.Name != "" {
			stats.Name = details.Name
		}
		if details.HeaderImage != "" {
			headerImage := details.HeaderImage
			stats.HeaderImage = &headerImage
		}
		switch {
		case details.Price != "":
			price := details.Price
			stats.Price = &price
		case details.IsFree:
			price := freePrice
			stats.Price = &price
		}
	}

	return stats, nil
}

// GetReviews devolve uma página de avaliações recentes; "*" é a primeira página
func (s *Service) GetReviews(ctx context.Context, cursor string) (*domain.ReviewPage, error) {
	appID, err := s.appID()
	if err != nil {
		return nil, err
	}

	page, err := s.steam.GetRecentReviews(ctx, appID, cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReviewsFailed, err)
	}

	return page, nil
}
