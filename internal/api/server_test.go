package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
	authmocks "github.com/vfg2006/publisher-dashboard-api/internal/usecases/authorizing/mocks"
	"github.com/vfg2006/publisher-dashboard-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, authDisabled bool) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthorizer(ctrl)
	auth.EXPECT().Disabled().Return(authDisabled).AnyTimes()

	cfg := &config.Config{CORS: config.CORS{AllowedOrigins: []string{"https://painel.example.com"}}}
	server, err := New(cfg, Services{Authorizer: auth}, clockwork.NewFakeClock())
	require.NoError(t, err)

	return server.Handler()
}

func TestServer_Cadeia(t *testing.T) {
	tests := []struct {
		name         string
		authDisabled bool
		method       string
		path         string
		headers      map[string]string
		wantStatus   int
		validate     func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "Healthcheck é público",
			method:     http.MethodGet,
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
			},
		},
		{
			name:       "Rota protegida sem token",
			method:     http.MethodGet,
			path:       "/v1/financials",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Preflight responde antes da autenticação",
			method:     http.MethodOptions,
			path:       "/v1/financials",
			headers: map[string]string{
				"Origin":                        "https://painel.example.com",
				"Access-Control-Request-Method": http.MethodGet,
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "https://painel.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
			},
		},
		{
			name:         "Rota inexistente com autenticação desligada",
			authDisabled: true,
			method:       http.MethodGet,
			path:         "/v1/nada",
			wantStatus:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(t, tt.authDisabled)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}
