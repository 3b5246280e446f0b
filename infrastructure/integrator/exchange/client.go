package exchange

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrRateUnavailable = errors.New("exchange rate unavailable")

type RateProvider interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

type latestResponse struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg *config.Config) RateProvider {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Exchange.URL, "/"),
	}
}

// GetRate consulta a cotação mais recente publicada pelo Banco Central Europeu
func (c *Client) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+query.Encode(), nil)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "erro ao criar a requisição de câmbio")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "erro ao consultar câmbio")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, errors.Wrapf(ErrRateUnavailable, "status %s", resp.Status)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, errors.Wrap(err, "erro ao decodificar câmbio")
	}

	rate, ok := payload.Rates[to]
	if !ok || rate.IsZero() {
		return decimal.Zero, errors.Wrapf(ErrRateUnavailable, "%s->%s", from, to)
	}

	return rate, nil
}
