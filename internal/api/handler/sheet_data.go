package handler

import (
	"net/http"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/sheetdata"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

// As rotas de planilha respondem 500 com a lista vazia para a tela continuar renderizando

func GetQuickLinks(service sheetdata.SheetDataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, cached, err := service.QuickLinks(r.Context(), isRefresh(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sheets: erro ao carregar quick links")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "Erro ao carregar quick links",
				"links": []*domain.QuickLink{},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"links": links, "cached": cached})
	}
}

func GetAdminUsers(service sheetdata.SheetDataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.AdminUsers(r.Context(), isRefresh(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sheets: erro ao carregar admin users")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "Erro ao carregar admin users",
				"users": []*domain.AdminUser{},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"users": users})
	}
}

func GetSupportedGames(service sheetdata.SheetDataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := service.SupportedGames(r.Context(), isRefresh(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sheets: erro ao carregar supported games")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": "Erro ao carregar supported games",
				"games": []*domain.SupportedGame{},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"games": games})
	}
}

func GetLocalization(service sheetdata.SheetDataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Localization(r.Context(), isRefresh(r))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("sheets: erro ao carregar localização")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":   "Erro ao carregar localização",
				"rows":    []*domain.LocalizationRow{},
				"sources": []*domain.LocalizationSource{},
			})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// GetSpreadsheets lista os links de edição das planilhas, opcionalmente por página
func GetSpreadsheets(service sheetdata.SheetDataService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links := service.SpreadsheetLinks(r.URL.Query().Get("path"))
		writeJSON(w, http.StatusOK, map[string]any{"spreadsheets": links})
	}
}
