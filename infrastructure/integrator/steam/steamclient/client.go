package steamclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	steamdomain "github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/steam/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetChangedDatesForPartner(ctx context.Context, highwatermark string) (*steamdomain.ChangedDatesResponse, error)
	GetDetailedSales(ctx context.Context, date string, highwatermarkID string) (*steamdomain.DetailedSalesResponse, error)
	GetNumberOfCurrentPlayers(ctx context.Context, appID string) (*steamdomain.PlayerCountResponse, error)
	GetAppReviews(ctx context.Context, appID string, params url.Values) (*steamdomain.AppReviewsResponse, error)
	GetAppDetails(ctx context.Context, appID string) (steamdomain.AppDetailsResponse, error)
}

type SteamClient struct {
	httpClient *http.Client
	cfg        config.Steam
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Steam.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SteamClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg.Steam,
	}
}

// getJSON executa um GET e decodifica o corpo em out.
// 403 vira ErrUnauthorized; demais status fora de 2xx viram StatusError.
func (c *SteamClient) getJSON(ctx context.Context, baseURL, path string, query url.Values, out any) error {
	endpoint, err := url.Parse(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL da Steam")
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar a requisição para %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return errors.WithStack(steamdomain.ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &steamdomain.StatusError{
			StatusCode: resp.StatusCode,
			Endpoint:   path,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta de %s", path)
	}

	return nil
}
