package authorizing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

type Authorizer interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IsAllowed(ctx context.Context, email string) (bool, error)
	AllowedEmails(ctx context.Context) ([]string, error)
	Me(ctx context.Context, claims *domain.Claims) (*domain.Me, error)
	Disabled() bool
}

type Service struct {
	cfg   config.Auth
	sheet sheetdata.SheetDataService
	clock clockwork.Clock
}

func NewService(cfg *config.Config, sheet sheetdata.SheetDataService, clock clockwork.Clock) Authorizer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Service{
		cfg:   cfg.Auth,
		sheet: sheet,
		clock: clock,
	}
}

// Disabled indica se a checagem de sessão foi desligada por AUTH_DISABLED
func (s *Service) Disabled() bool {
	return s.cfg.Disabled
}

// ValidateToken valida o token HS256 emitido pelo login do painel
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "Token de sessão não informado")
	}

	if s.cfg.Secret == "" {
		return nil, NewAuthError(ErrMissingSecret, apiErrors.ErrMissingConfiguration, "Segredo de sessão não configurado")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token de sessão inválido")
	}

	claims.Email = domain.NormalizeEmail(claims.Email)
	if claims.Email == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token sem e-mail")
	}

	return claims, nil
}

func (s *Service) IsAllowed(ctx context.Context, email string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return false, NewAuthError(ErrMissingEmail, apiErrors.ErrMissingRequiredData, "Informe o e-mail")
	}

	allowed, err := s.sheet.IsAllowed(ctx, email)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("auth: falha ao ler a lista de e-mails permitidos")
		return false, NewEmailAuthError(err, apiErrors.ErrExternalService, email, "Falha ao consultar a lista de acesso")
	}

	return allowed, nil
}

func (s *Service) AllowedEmails(ctx context.Context) ([]string, error) {
	emails, err := s.sheet.AllowedEmails(ctx, false)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrExternalService, "Falha ao consultar a lista de acesso")
	}

	if emails == nil {
		emails = []string{}
	}

	return emails, nil
}

// Me monta o perfil da sessão com a indicação de acesso
func (s *Service) Me(ctx context.Context, claims *domain.Claims) (*domain.Me, error) {
	if claims == nil {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrInvalidToken, "Sessão não encontrada")
	}

	allowed, err := s.IsAllowed(ctx, claims.Email)
	if err != nil {
		return nil, err
	}

	return &domain.Me{
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
		Allowed: allowed,
	}, nil
}
