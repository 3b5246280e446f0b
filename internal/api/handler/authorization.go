package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/middleware"
)

type allowedEmailRequest struct {
	Email string `json:"email"`
}

// CheckAllowedEmail é usada pelo login para saber se o e-mail pode entrar
func CheckAllowedEmail(service authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req allowedEmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		allowed, err := service.IsAllowed(r.Context(), req.Email)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"allowed": allowed})
	}
}

func ListAllowedEmails(service authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emails, err := service.AllowedEmails(r.Context())
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"emails": emails})
	}
}

func GetMe(service authorizing.Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			if service.Disabled() {
				writeJSON(w, http.StatusOK, &domain.Me{Allowed: true})
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		me, err := service.Me(r.Context(), claims)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, me)
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	var authErr *authorizing.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao verificar acesso", nil)
}
