package middleware

import (
	"net/http"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

// AllowedEmailOnly restringe a rota aos e-mails presentes na planilha de acesso
func AllowedEmailOnly(authService authorizing.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authService.Disabled() {
				next.ServeHTTP(w, r)
				return
			}

			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			allowed, err := authService.IsAllowed(r.Context(), userClaims.Email)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Error("auth: lista de acesso indisponível")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível verificar o acesso", nil)
				return
			}

			if !allowed {
				log.ForContext(r.Context()).WithField("user_email", userClaims.Email).Warn("Acesso negado para e-mail fora da lista")
				apiErrors.WriteError(w, apiErrors.ErrEmailNotAllowed, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
