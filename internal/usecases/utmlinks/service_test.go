package utmlinks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publisher-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUTMLinkRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().ReadRows(gomock.Any()).Return([][]string{
		{"campaign", "source", "url"},
		{"launch", "twitter", "https://a"},
		{"launch", "reddit"},
		{"sale", "twitter", "https://c"},
	}, nil)

	table, err := service.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"campaign", "source", "url"}, table.Headers)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "2", table.Rows[0][domain.UTMRowIndexKey])
	assert.Equal(t, "4", table.Rows[2][domain.UTMRowIndexKey])
	assert.Equal(t, "", table.Rows[1]["url"])
	assert.Equal(t, []string{"launch", "sale"}, table.UniqueValues["campaign"])
	assert.Equal(t, []string{"reddit", "twitter"}, table.UniqueValues["source"])
	assert.Equal(t, []string{"https://a", "https://c"}, table.UniqueValues["url"])
}

func TestService_List_PlanilhaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockUTMLinkRepository(ctrl)
	repo.EXPECT().ReadRows(gomock.Any()).Return([][]string{}, nil)

	table, err := NewService(repo).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.UniqueValues)
}

func TestService_Apply(t *testing.T) {
	headers := []string{"campaign", "source"}
	rowData := map[string]string{"campaign": "launch", "source": "twitter", "extra": "ignorado"}

	tests := []struct {
		name    string
		change  *domain.UTMLinkChange
		setup   func(repo *mocks.MockUTMLinkRepository)
		wantErr error
	}{
		{
			name:   "Adiciona linha na ordem dos cabeçalhos",
			change: &domain.UTMLinkChange{Action: domain.UTMLinkActionAdd, RowData: rowData, Headers: headers},
			setup: func(repo *mocks.MockUTMLinkRepository) {
				repo.EXPECT().AppendRow(gomock.Any(), []string{"launch", "twitter"}).Return(nil)
			},
		},
		{
			name:   "Atualiza linha existente",
			change: &domain.UTMLinkChange{Action: domain.UTMLinkActionUpdate, RowIndex: 3, RowData: rowData, Headers: headers},
			setup: func(repo *mocks.MockUTMLinkRepository) {
				repo.EXPECT().UpdateRow(gomock.Any(), 3, []string{"launch", "twitter"}).Return(nil)
			},
		},
		{
			name:   "Remove linha limpando as células",
			change: &domain.UTMLinkChange{Action: domain.UTMLinkActionDelete, RowIndex: 5, Headers: headers},
			setup: func(repo *mocks.MockUTMLinkRepository) {
				repo.EXPECT().ClearRow(gomock.Any(), 5, 2).Return(nil)
			},
		},
		{
			name:    "Não altera o cabeçalho",
			change:  &domain.UTMLinkChange{Action: domain.UTMLinkActionUpdate, RowIndex: 1, RowData: rowData, Headers: headers},
			setup:   func(repo *mocks.MockUTMLinkRepository) {},
			wantErr: ErrInvalidRowIndex,
		},
		{
			name:    "Sem cabeçalhos",
			change:  &domain.UTMLinkChange{Action: domain.UTMLinkActionAdd, RowData: rowData},
			setup:   func(repo *mocks.MockUTMLinkRepository) {},
			wantErr: ErrMissingHeaders,
		},
		{
			name:    "Ação desconhecida",
			change:  &domain.UTMLinkChange{Action: "move", Headers: headers},
			setup:   func(repo *mocks.MockUTMLinkRepository) {},
			wantErr: ErrInvalidAction,
		},
		{
			name:   "Falha na planilha",
			change: &domain.UTMLinkChange{Action: domain.UTMLinkActionAdd, RowData: rowData, Headers: headers},
			setup: func(repo *mocks.MockUTMLinkRepository) {
				repo.EXPECT().AppendRow(gomock.Any(), gomock.Any()).Return(errors.New("403"))
			},
			wantErr: ErrSheetAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockUTMLinkRepository(ctrl)
			tt.setup(repo)

			err := NewService(repo).Apply(context.Background(), tt.change)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
