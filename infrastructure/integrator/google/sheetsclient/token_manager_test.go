package sheetsclient

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publisher-dashboard-api/internal/config"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	block := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	return key, string(block)
}

func TestTokenManager_AccessToken(t *testing.T) {
	key, keyPEM := generateKey(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))

	calls := 0
	var tokenURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, jwtBearerGrantType, r.PostForm.Get("grant_type"))

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(r.PostForm.Get("assertion"), claims, func(token *jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithTimeFunc(clock.Now))
		assert.NoError(t, err)
		assert.Equal(t, "bot@projeto.iam.gserviceaccount.com", claims["iss"])
		assert.Equal(t, tokenURL, claims["aud"])

		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, calls)
	}))
	defer server.Close()
	tokenURL = server.URL

	cfg := &config.Config{Google: config.Google{
		ServiceAccountEmail: "bot@projeto.iam.gserviceaccount.com",
		PrivateKey:          keyPEM,
		TokenURL:            server.URL,
		Scope:               "https://www.googleapis.com/auth/spreadsheets",
	}}
	tm := NewTokenManager(cfg, clock)
	ctx := context.Background()

	token, err := tm.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	clock.Advance(30 * time.Minute)
	token, err = tm.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)
	assert.Equal(t, 1, calls)

	clock.Advance(29*time.Minute + 30*time.Second)
	token, err = tm.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
	assert.Equal(t, 2, calls)
}

func TestTokenManager_Erros(t *testing.T) {
	_, keyPEM := generateKey(t)
	clock := clockwork.NewFakeClock()

	tests := []struct {
		name    string
		google  config.Google
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "Sem credenciais",
			google:  config.Google{},
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "Google recusa a asserção",
			google:  config.Google{ServiceAccountEmail: "bot@x", PrivateKey: keyPEM},
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant"}`,
			wantErr: ErrTokenUnavailable,
		},
		{
			name:    "Resposta sem token",
			google:  config.Google{ServiceAccountEmail: "bot@x", PrivateKey: keyPEM},
			status:  http.StatusOK,
			body:    `{"token_type":"Bearer"}`,
			wantErr: ErrTokenUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			tt.google.TokenURL = server.URL
			tm := NewTokenManager(&config.Config{Google: tt.google}, clock)

			_, err := tm.AccessToken(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenManager_ChaveInvalida(t *testing.T) {
	tm := NewTokenManager(&config.Config{Google: config.Google{
		ServiceAccountEmail: "bot@x",
		PrivateKey:          "não é pem",
		TokenURL:            "http://127.0.0.1:0",
	}}, clockwork.NewFakeClock())

	_, err := tm.AccessToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chave privada")
}
