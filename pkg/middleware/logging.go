package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/publisher-dashboard-api/internal/domain"
	"github.com/vfg2006/publisher-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/publisher-dashboard-api/pkg/log"
)

// CorrelationIDHeader é aceito na entrada e devolvido com o ID usado nos logs
const CorrelationIDHeader = "X-Correlation-ID"

const slowRequestThreshold = 2 * time.Second

// requestUser recebe a sessão validada pelo AuthMiddleware para o log de fim da requisição
type requestUser struct {
	claims *domain.Claims
}

const contextKeyRequestUser contextKey = "request_user"

// quietPaths não geram log de início e fim
var quietPaths = map[string]struct{}{
	"/healthcheck": {},
}

// LoggingMiddleware registra cada requisição com o ID de correlação e o e-mail da sessão
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.ContextWithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			holder := &requestUser{}
			ctx = context.WithValue(ctx, contextKeyRequestUser, holder)
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			if _, quiet := quietPaths[r.URL.Path]; quiet {
				next.ServeHTTP(w, r)
				return
			}

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"query":  r.URL.RawQuery,
			}).Debug("→ Iniciando requisição")

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			}
			if holder.claims != nil {
				fields["user_email"] = holder.claims.Email
			}
			logger := log.ForContext(ctx).WithFields(fields)

			msg := fmt.Sprintf("Requisição finalizada em %s", formatDuration(elapsed))
			switch {
			case lrw.statusCode >= 500:
				logger.Error(msg)
			case lrw.statusCode >= 400:
				logger.Warn(msg)
			default:
				logger.Info(msg)
			}

			// a consolidação do financeiro pode levar vários segundos em cache frio
			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s %s", r.Method, r.URL.Path)
			}
		})
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

// loggingResponseWriter captura o status code
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic em 500 padronizado
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackTrace := string(stack[:runtime.Stack(stack, false)])

					logger := log.ForContext(r.Context()).WithFields(log.Fields{
						"error":  fmt.Sprint(err),
						"method": r.Method,
						"path":   r.URL.Path,
					})
					logger.Error("❌ PANIC na aplicação")

					if log.IsDevelopment() {
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
