package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/utmlinks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

// flexibleInt aceita rowIndex como número ou texto
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	value := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if value == "" || value == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*f = flexibleInt(n)
	return nil
}

type utmLinkRequest struct {
	Action   string            `json:"action"`
	RowIndex flexibleInt       `json:"rowIndex"`
	RowData  map[string]string `json:"rowData"`
	Headers  []string          `json:"headers"`
}

func ListUTMLinks(service utmlinks.UTMLinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		table, err := service.List(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("utm: erro ao ler a planilha")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao ler links UTM", nil)
			return
		}

		writeJSON(w, http.StatusOK, table)
	}
}

func ChangeUTMLink(service utmlinks.UTMLinkService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req utmLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		change := &domain.UTMLinkChange{
			Action:   domain.UTMLinkAction(strings.ToLower(strings.TrimSpace(req.Action))),
			RowIndex: int(req.RowIndex),
			RowData:  req.RowData,
			Headers:  req.Headers,
		}

		err := service.Apply(r.Context(), change)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, map[string]any{"success": true, "action": change.Action})
		case errors.Is(err, utmlinks.ErrInvalidAction):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação inválida. Valores aceitos: add, update, delete", nil)
		case errors.Is(err, utmlinks.ErrMissingHeaders):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe os cabeçalhos da planilha", nil)
		case errors.Is(err, utmlinks.ErrInvalidRowIndex):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "rowIndex deve apontar para uma linha de dados", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("utm: erro ao alterar a planilha")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao alterar links UTM", nil)
		}
	}
}
