package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/sheetsclient"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
)

// ErrCacheUnavailable indica que o cache não pôde ser lido ou escrito
var ErrCacheUnavailable = errors.New("sales cache unavailable")

// SalesCacheRepository guarda os registros de vendas já buscados na Steam.
// A ordem de leitura é a ordem de escrita.
type SalesCacheRepository interface {
	ReadAll(ctx context.Context) ([]*domain.SalesRecord, error)
	AppendRows(ctx context.Context, records []*domain.SalesRecord) error
	ClearAll(ctx context.Context) error
}

type salesCacheSheetRepository struct {
	client    sheetsclient.Client
	sheetID   string
	sheetName string
}

// NewSalesCacheSheetRepository usa uma aba do Google Sheets como cache
func NewSalesCacheSheetRepository(client sheetsclient.Client, sheetID, sheetName string) SalesCacheRepository {
	return &salesCacheSheetRepository{
		client:    client,
		sheetID:   sheetID,
		sheetName: sheetName,
	}
}

func (r *salesCacheSheetRepository) dataRange() string {
	return fmt.Sprintf("%s!A:%s", r.sheetName, columnLetter(len(SalesCacheHeaders)))
}

func (r *salesCacheSheetRepository) headerRange() string {
	return fmt.Sprintf("%s!A1:%s1", r.sheetName, columnLetter(len(SalesCacheHeaders)))
}

func (r *salesCacheSheetRepository) ReadAll(ctx context.Context) ([]*domain.SalesRecord, error) {
	rows, err := r.client.GetValues(ctx, r.sheetID, r.dataRange())
	if err != nil {
		return nil, errors.Wrapf(ErrCacheUnavailable, "leitura da aba %s: %v", r.sheetName, err)
	}

	records := DecodeSalesCacheRows(rows)

	logrus.WithFields(logrus.Fields{
		"sheet_range": r.dataRange(),
		"rows":        len(records),
	}).Debug("cache: linhas lidas da planilha")

	return records, nil
}

// AppendRows garante o cabeçalho completo e depois anexa os registros
func (r *salesCacheSheetRepository) AppendRows(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	if err := r.ensureHeader(ctx); err != nil {
		return err
	}

	values := make([][]string, 0, len(records))
	for _, record := range records {
		values = append(values, EncodeSalesCacheRow(record))
	}

	if err := r.client.AppendValues(ctx, r.sheetID, r.dataRange(), values); err != nil {
		return errors.Wrapf(ErrCacheUnavailable, "escrita de %d linhas: %v", len(values), err)
	}

	return nil
}

// ensureHeader grava o cabeçalho numa aba vazia. Numa aba antiga, com menos colunas
// mas na mesma ordem, completa a linha 1 para que as colunas novas sejam lidas pelo nome.
func (r *salesCacheSheetRepository) ensureHeader(ctx context.Context) error {
	rows, err := r.client.GetValues(ctx, r.sheetID, r.headerRange())
	if err != nil {
		return errors.Wrapf(ErrCacheUnavailable, "leitura do cabeçalho: %v", err)
	}

	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	if len(header) == 0 || strings.TrimSpace(header[0]) == "" {
		if err := r.client.AppendValues(ctx, r.sheetID, r.dataRange(), [][]string{SalesCacheHeaders}); err != nil {
			return errors.Wrapf(ErrCacheUnavailable, "escrita do cabeçalho: %v", err)
		}
		return nil
	}

	if len(header) >= len(SalesCacheHeaders) {
		return nil
	}

	if !isHeaderPrefix(header) {
		logrus.WithFields(logrus.Fields{
			"sheet_range": r.headerRange(),
			"header":      header,
		}).Warn("cache: cabeçalho da aba em ordem diferente, colunas novas não serão lidas")
		return nil
	}

	if err := r.client.UpdateValues(ctx, r.sheetID, r.headerRange(), [][]string{SalesCacheHeaders}); err != nil {
		return errors.Wrapf(ErrCacheUnavailable, "atualização do cabeçalho: %v", err)
	}

	logrus.WithField("sheet_range", r.headerRange()).Info("cache: cabeçalho da aba completado")
	return nil
}

func isHeaderPrefix(header []string) bool {
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), SalesCacheHeaders[i]) {
			return false
		}
	}
	return true
}

func (r *salesCacheSheetRepository) ClearAll(ctx context.Context) error {
	if err := r.client.ClearValues(ctx, r.sheetID, r.dataRange()); err != nil {
		return errors.Wrapf(ErrCacheUnavailable, "limpeza da aba %s: %v", r.sheetName, err)
	}
	return nil
}

// columnLetter converte 1 -> A, 10 -> J, 27 -> AA
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
