package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	sheetmocks "github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetQuickLinks(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(mock *sheetmocks.MockSheetDataService)
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:  "Lista vinda do cache",
			query: "",
			setup: func(mock *sheetmocks.MockSheetDataService) {
				mock.EXPECT().QuickLinks(gomock.Any(), false).
					Return([]*domain.QuickLink{{Name: "Steamworks", URL: "https://partner.steamgames.com", Tag: "steam"}}, true, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["cached"])
				assert.Len(t, body["links"], 1)
			},
		},
		{
			name:  "Refresh ignora o cache",
			query: "?refresh=true",
			setup: func(mock *sheetmocks.MockSheetDataService) {
				mock.EXPECT().QuickLinks(gomock.Any(), true).Return([]*domain.QuickLink{}, false, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["cached"])
			},
		},
		{
			name:  "Erro responde 500 com lista vazia",
			query: "",
			setup: func(mock *sheetmocks.MockSheetDataService) {
				mock.EXPECT().QuickLinks(gomock.Any(), false).Return(nil, false, errors.New("csv indisponível"))
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, []any{}, body["links"])
				assert.NotEmpty(t, body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := sheetmocks.NewMockSheetDataService(ctrl)
			tt.setup(mock)

			rec := httptest.NewRecorder()
			GetQuickLinks(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/quick-links"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			tt.validate(t, decodeBody(t, rec))
		})
	}
}

func TestGetLocalization_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := sheetmocks.NewMockSheetDataService(ctrl)
	mock.EXPECT().Localization(gomock.Any(), false).Return(nil, errors.New("sem fontes"))

	rec := httptest.NewRecorder()
	GetLocalization(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/localization", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{}, body["rows"])
	assert.Equal(t, []any{}, body["sources"])
}

func TestGetSpreadsheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := sheetmocks.NewMockSheetDataService(ctrl)
	mock.EXPECT().SpreadsheetLinks("/dashboard/quick-links").Return([]*domain.SpreadsheetLink{
		{Path: "/dashboard/quick-links", SheetName: "Quick Links", EditURL: "https://sheets/edit"},
	})

	rec := httptest.NewRecorder()
	GetSpreadsheets(mock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/spreadsheets?path=/dashboard/quick-links", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["spreadsheets"], 1)
}
