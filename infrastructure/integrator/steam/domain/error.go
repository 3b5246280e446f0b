package steamdomain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnauthorized indica que a chave da API financeira foi recusada (HTTP 403)
	ErrUnauthorized = errors.New("Invalid Financial API key")
	// ErrUpstream indica qualquer outra falha de resposta da Steam
	ErrUpstream = errors.New("steam upstream error")
)

// StatusError carrega o status HTTP de uma resposta inesperada da Steam
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("steam: %s respondeu com status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}
