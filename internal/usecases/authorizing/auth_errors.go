package authorizing

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken    = errors.New("token ausente")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrMissingSecret   = errors.New("AUTH_SECRET not configured")
	ErrEmailNotAllowed = errors.New("e-mail sem acesso ao painel")
	ErrMissingEmail    = errors.New("e-mail é obrigatório")
)

// AuthError é um erro com contexto adicional para autorização
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Email   string // E-mail envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsTokenError verifica se o erro vem de um token ausente, inválido ou expirado
func IsTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewEmailAuthError(baseErr error, code string, email string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Email:   email,
		Details: details,
	}
}
