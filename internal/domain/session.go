package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados da sessão emitida pelo login do painel
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// NormalizeEmail deixa o e-mail em minúsculas e sem espaços
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Me struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	Allowed bool   `json:"allowed"`
}
