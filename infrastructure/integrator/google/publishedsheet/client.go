package publishedsheet

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotConfigured = errors.New("published sheet url not configured")
	ErrFetchFailed   = errors.New("failed to fetch published sheet")
)

// Client baixa planilhas publicadas como CSV (Arquivo > Publicar na Web)
type Client interface {
	FetchRows(ctx context.Context, csvURL string) ([][]string, error)
}

type PublishedSheetClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &PublishedSheetClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchRows retorna todas as linhas do CSV, incluindo o cabeçalho, com as células aparadas
func (c *PublishedSheetClient) FetchRows(ctx context.Context, csvURL string) ([][]string, error) {
	if strings.TrimSpace(csvURL) == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao baixar a planilha publicada")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFetchFailed, "status %s", resp.Status)
	}

	return ParseCSV(resp.Body)
}

// ParseCSV lê um CSV tolerante: aspas soltas, linhas com quantidades diferentes de colunas
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar o CSV")
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		rows = append(rows, record)
	}

	return rows, nil
}
