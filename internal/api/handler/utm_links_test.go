package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/publisher-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/utmlinks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestFlexibleInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "Número", input: `5`, expected: 5},
		{name: "Texto numérico", input: `"7"`, expected: 7},
		{name: "Nulo", input: `null`, expected: 0},
		{name: "Texto vazio", input: `""`, expected: 0},
		{name: "Texto inválido", input: `"sete"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value flexibleInt
			err := value.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, int(value))
		})
	}
}

func TestChangeUTMLink(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(repo *repomocks.MockUTMLinkRepository)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Atualiza linha com rowIndex em texto",
			body: `{"action":"update","rowIndex":"3","headers":["campaign","source"],"rowData":{"campaign":"launch","source":"x"}}`,
			setup: func(repo *repomocks.MockUTMLinkRepository) {
				repo.EXPECT().UpdateRow(gomock.Any(), 3, []string{"launch", "x"}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Ação desconhecida",
			body:       `{"action":"rename","headers":["campaign"]}`,
			setup:      func(repo *repomocks.MockUTMLinkRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "Sem cabeçalhos",
			body:       `{"action":"add","rowData":{"campaign":"launch"}}`,
			setup:      func(repo *repomocks.MockUTMLinkRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:       "Exclusão do cabeçalho é recusada",
			body:       `{"action":"delete","rowIndex":1,"headers":["campaign"]}`,
			setup:      func(repo *repomocks.MockUTMLinkRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "Corpo inválido",
			body:       `{"action":`,
			setup:      func(repo *repomocks.MockUTMLinkRepository) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Falha na planilha - 502",
			body: `{"action":"add","headers":["campaign"],"rowData":{"campaign":"launch"}}`,
			setup: func(repo *repomocks.MockUTMLinkRepository) {
				repo.EXPECT().AppendRow(gomock.Any(), []string{"launch"}).Return(errors.New("quota"))
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockUTMLinkRepository(ctrl)
			tt.setup(repo)

			req := httptest.NewRequest(http.MethodPost, "/v1/utm-links", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			ChangeUTMLink(utmlinks.NewService(repo)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeBody(t, rec)["code"])
			}
		})
	}
}

func TestListUTMLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockUTMLinkRepository(ctrl)
	repo.EXPECT().ReadRows(gomock.Any()).Return([][]string{
		{"campaign", "source"},
		{"launch", "x"},
	}, nil)

	rec := httptest.NewRecorder()
	ListUTMLinks(utmlinks.NewService(repo)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/utm-links", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{"campaign", "source"}, body["headers"])
	rows := body["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].(map[string]any)["_rowIndex"])
}
