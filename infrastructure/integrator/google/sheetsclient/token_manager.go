package sheetsclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
)

const (
	jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	assertionLifetime  = time.Hour
	// margem de renovação antes do vencimento
	refreshMargin = time.Minute
)

var (
	ErrMissingCredentials = errors.New("google service account not configured")
	ErrTokenUnavailable   = errors.New("Failed to get access token")
)

// TokenResponse representa a resposta do endpoint de token do Google
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenProvider fornece um access token válido para a API do Sheets
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenManager troca uma asserção JWT assinada pela conta de serviço por um access token
// e mantém o token em memória até perto do vencimento
type TokenManager struct {
	cfg        config.Google
	httpClient *http.Client
	clock      clockwork.Clock

	mutex       sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewTokenManager(cfg *config.Config, clock clockwork.Clock) *TokenManager {
	return &TokenManager{
		cfg: cfg.Google,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		clock: clock,
	}
}

// AccessToken retorna o token em cache ou obtém um novo
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if !tm.cfg.HasCredentials() {
		return "", ErrMissingCredentials
	}

	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	now := tm.clock.Now()
	if tm.accessToken != "" && now.Add(refreshMargin).Before(tm.expiresAt) {
		return tm.accessToken, nil
	}

	assertion, err := tm.signAssertion(now)
	if err != nil {
		return "", err
	}

	token, err := tm.exchange(ctx, assertion)
	if err != nil {
		return "", err
	}

	tm.accessToken = token.AccessToken
	tm.expiresAt = now.Add(time.Duration(token.ExpiresIn) * time.Second)

	logrus.WithField("expires_at", tm.expiresAt.Format(time.RFC3339)).Debug("google: access token renovado")

	return tm.accessToken, nil
}

// signAssertion assina com RS256 as claims exigidas pelo fluxo de conta de serviço
func (tm *TokenManager) signAssertion(now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(tm.cfg.PrivateKey))
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a chave privada da conta de serviço")
	}

	claims := jwt.MapClaims{
		"iss":   tm.cfg.ServiceAccountEmail,
		"scope": tm.cfg.Scope,
		"aud":   tm.cfg.TokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionLifetime).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "erro ao assinar a asserção JWT")
	}

	return signed, nil
}

func (tm *TokenManager) exchange(ctx context.Context, assertion string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", jwtBearerGrantType)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tm.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição de token")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter token do Google")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta de token")
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo token do Google. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, errors.Wrapf(ErrTokenUnavailable, "status %d", resp.StatusCode)
	}

	var token TokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar resposta de token")
	}

	if token.AccessToken == "" {
		return nil, ErrTokenUnavailable
	}

	return &token, nil
}
