package financials

import (
	"errors"
	"fmt"
)

var (
	// Erros de configuração
	ErrMissingAPIKey = errors.New("STEAM_FINANCIAL_API_KEY not configured")

	// Erros de validação
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingDates  = errors.New("dates or period is required")
)

// FinancialsError é um erro com o código de API correspondente
type FinancialsError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *FinancialsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *FinancialsError) Unwrap() error {
	return e.Err
}

func NewFinancialsError(err error, code string, details string) *FinancialsError {
	return &FinancialsError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
