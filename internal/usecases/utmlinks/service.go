package utmlinks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

var (
	ErrInvalidAction   = errors.New("invalid action")
	ErrMissingHeaders  = errors.New("headers are required")
	ErrInvalidRowIndex = errors.New("rowIndex must point to a data row")
	ErrSheetAccess     = errors.New("failed to access UTM links sheet")
)

// UTMLinkService lê e altera a planilha de links UTM
type UTMLinkService interface {
	List(ctx context.Context) (*domain.UTMLinkTable, error)
	Apply(ctx context.Context, change *domain.UTMLinkChange) error
}

type Service struct {
	repository repository.UTMLinkRepository
}

func NewService(repo repository.UTMLinkRepository) UTMLinkService {
	return &Service{
		repository: repo,
	}
}

// List devolve as linhas indexadas pelo cabeçalho e os valores distintos de cada coluna
func (s *Service) List(ctx context.Context) (*domain.UTMLinkTable, error) {
	rows, err := s.repository.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSheetAccess, err)
	}

	table := &domain.UTMLinkTable{
		Headers:      []string{},
		Rows:         []map[string]string{},
		UniqueValues: map[string][]string{},
	}
	if len(rows) == 0 {
		return table, nil
	}

	table.Headers = rows[0]
	distinct := make([]map[string]struct{}, len(table.Headers))
	for i := range distinct {
		distinct[i] = make(map[string]struct{})
	}

	for idx, row := range rows[1:] {
		item := map[string]string{
			domain.UTMRowIndexKey: strconv.Itoa(idx + domain.UTMFirstDataRow),
		}
		for i, header := range table.Headers {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			item[header] = value
			if value != "" {
				distinct[i][value] = struct{}{}
			}
		}
		table.Rows = append(table.Rows, item)
	}

	for i, header := range table.Headers {
		values := make([]string, 0, len(distinct[i]))
		for value := range distinct[i] {
			values = append(values, value)
		}
		sort.Strings(values)
		table.UniqueValues[header] = values
	}

	return table, nil
}

// Apply adiciona, atualiza ou limpa uma linha. A linha 1 é o cabeçalho e não pode ser alterada.
func (s *Service) Apply(ctx context.Context, change *domain.UTMLinkChange) error {
	if change == nil {
		return ErrInvalidAction
	}

	switch change.Action {
	case domain.UTMLinkActionAdd, domain.UTMLinkActionUpdate, domain.UTMLinkActionDelete:
	default:
		return ErrInvalidAction
	}

	if len(change.Headers) == 0 {
		return ErrMissingHeaders
	}

	if change.Action != domain.UTMLinkActionAdd && change.RowIndex < domain.UTMFirstDataRow {
		return ErrInvalidRowIndex
	}

	var err error
	switch change.Action {
	case domain.UTMLinkActionAdd:
		err = s.repository.AppendRow(ctx, change.Values())
	case domain.UTMLinkActionUpdate:
		err = s.repository.UpdateRow(ctx, change.RowIndex, change.Values())
	case domain.UTMLinkActionDelete:
		err = s.repository.ClearRow(ctx, change.RowIndex, len(change.Headers))
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSheetAccess, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"action":    change.Action,
		"row_index": change.RowIndex,
	}).Info("utm links: planilha alterada")

	return nil
}
