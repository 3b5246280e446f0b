package utils

import (
	"strings"
	"time"
)

// ISODateLayout é o formato de data aceito nos filtros da API
const ISODateLayout = "2006-01-02"

// ParseDate lê uma data YYYY-MM-DD como meia-noite UTC. Texto vazio retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(ISODateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

