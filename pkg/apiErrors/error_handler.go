package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken    = "AUTH_001" // Token de sessão ausente ou inválido
	ErrEmailNotAllowed = "AUTH_002" // E-mail fora da lista de acesso
	ErrExpiredToken    = "AUTH_003" // Token de sessão expirado

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de configuração
	ErrMissingConfiguration = "CFG_001" // Variável de ambiente obrigatória ausente

	// Erros da Steam
	ErrSteamUnauthorized = "STEAM_001" // Chave da Financial API recusada

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrCacheOperation  = "SRV_002" // Erro no cache de relatórios
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrEmailNotAllowed:      http.StatusForbidden,
	ErrExpiredToken:         http.StatusUnauthorized,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrMissingConfiguration: http.StatusInternalServerError,
	ErrSteamUnauthorized:    http.StatusForbidden,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrCacheOperation:       http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrCommunication:        http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem descritiva
	Code    string `json:"code"`              // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	WriteErrorWithStatus(w, StatusFor(code), code, message, details)
}

// WriteErrorWithStatus é usada quando o status não deriva do código
func WriteErrorWithStatus(w http.ResponseWriter, status int, code string, message string, details any) {
	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}
