package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/integrator/google/sheetsclient"
)

// UTMLinkRepository lê e altera as linhas da planilha de links UTM
type UTMLinkRepository interface {
	ReadRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, values []string) error
	UpdateRow(ctx context.Context, rowIndex int, values []string) error
	ClearRow(ctx context.Context, rowIndex int, width int) error
}

type utmLinkRepository struct {
	client     sheetsclient.Client
	sheetID    string
	valueRange string
}

// NewUTMLinkRepository recebe o range no formato "Aba!A:Z"
func NewUTMLinkRepository(client sheetsclient.Client, sheetID, valueRange string) UTMLinkRepository {
	return &utmLinkRepository{
		client:     client,
		sheetID:    sheetID,
		valueRange: valueRange,
	}
}

func (r *utmLinkRepository) ReadRows(ctx context.Context) ([][]string, error) {
	rows, err := r.client.GetValues(ctx, r.sheetID, r.valueRange)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler links UTM")
	}
	return rows, nil
}

func (r *utmLinkRepository) AppendRow(ctx context.Context, values []string) error {
	if err := r.client.AppendValues(ctx, r.sheetID, r.valueRange, [][]string{values}); err != nil {
		return errors.Wrap(err, "erro ao adicionar link UTM")
	}
	return nil
}

func (r *utmLinkRepository) UpdateRow(ctx context.Context, rowIndex int, values []string) error {
	if err := r.client.UpdateValues(ctx, r.sheetID, r.rowRange(rowIndex), [][]string{values}); err != nil {
		return errors.Wrapf(err, "erro ao atualizar link UTM da linha %d", rowIndex)
	}
	return nil
}

// ClearRow sobrescreve a linha com células vazias, mantendo a posição das demais
func (r *utmLinkRepository) ClearRow(ctx context.Context, rowIndex int, width int) error {
	blanks := make([]string, width)
	if err := r.client.UpdateValues(ctx, r.sheetID, r.rowRange(rowIndex), [][]string{blanks}); err != nil {
		return errors.Wrapf(err, "erro ao remover link UTM da linha %d", rowIndex)
	}
	return nil
}

// rowRange converte "Sheet1!A:Z" e 5 em "Sheet1!A5:Z5"
func (r *utmLinkRepository) rowRange(rowIndex int) string {
	sheet, cols := "", r.valueRange
	if i := strings.LastIndex(r.valueRange, "!"); i >= 0 {
		sheet, cols = r.valueRange[:i+1], r.valueRange[i+1:]
	}

	first, last := cols, cols
	if i := strings.Index(cols, ":"); i >= 0 {
		first, last = cols[:i], cols[i+1:]
	}

	return fmt.Sprintf("%s%s%d:%s%d", sheet, trimDigits(first), rowIndex, trimDigits(last), rowIndex)
}

func trimDigits(column string) string {
	return strings.TrimRight(column, "0123456789")
}
