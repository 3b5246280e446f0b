package sheetsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSheetsRequest indica uma resposta fora de 2xx da API do Sheets
var ErrSheetsRequest = errors.New("google sheets request failed")

// Client acessa os valores de uma planilha pela API v4
type Client interface {
	GetValues(ctx context.Context, spreadsheetID, valuesRange string) ([][]string, error)
	AppendValues(ctx context.Context, spreadsheetID, valuesRange string, values [][]string) error
	UpdateValues(ctx context.Context, spreadsheetID, valuesRange string, values [][]string) error
	ClearValues(ctx context.Context, spreadsheetID, valuesRange string) error
}

type SheetsClient struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenProvider
}

func NewClient(cfg *config.Config, tokens TokenProvider) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.Google.SheetsURL, "/"),
		tokens:  tokens,
	}
}

type valueRange struct {
	Range          string  `json:"range,omitempty"`
	MajorDimension string  `json:"majorDimension,omitempty"`
	Values         [][]any `json:"values"`
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, valuesRange string) ([][]string, error) {
	var response valueRange
	if err := c.do(ctx, http.MethodGet, c.valuesURL(spreadsheetID, valuesRange, ""), nil, &response); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(response.Values))
	for _, row := range response.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellString(cell)
		}
		rows = append(rows, cells)
	}

	return rows, nil
}

func (c *SheetsClient) AppendValues(ctx context.Context, spreadsheetID, valuesRange string, values [][]string) error {
	endpoint := c.valuesURL(spreadsheetID, valuesRange, ":append") + "?valueInputOption=RAW"
	return c.do(ctx, http.MethodPost, endpoint, toValueRange(values), nil)
}

func (c *SheetsClient) UpdateValues(ctx context.Context, spreadsheetID, valuesRange string, values [][]string) error {
	endpoint := c.valuesURL(spreadsheetID, valuesRange, "") + "?valueInputOption=RAW"
	return c.do(ctx, http.MethodPut, endpoint, toValueRange(values), nil)
}

func (c *SheetsClient) ClearValues(ctx context.Context, spreadsheetID, valuesRange string) error {
	return c.do(ctx, http.MethodPost, c.valuesURL(spreadsheetID, valuesRange, ":clear"), struct{}{}, nil)
}

func (c *SheetsClient) valuesURL(spreadsheetID, valuesRange, suffix string) string {
	return fmt.Sprintf("%s/%s/values/%s%s", c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(valuesRange), suffix)
}

func (c *SheetsClient) do(ctx context.Context, method, endpoint string, payload any, out any) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição ao Sheets")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Wrapf(ErrSheetsRequest, "status %d: %s", resp.StatusCode, string(detail))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta do Sheets")
	}

	return nil
}

func toValueRange(values [][]string) valueRange {
	rows := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		rows[i] = cells
	}
	return valueRange{Values: rows}
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
