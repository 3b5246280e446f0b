package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const runIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRunID identifica uma execução de job nos logs e no status, ex.: "financials-k3v9x2q1"
func NewRunID(job string) (string, error) {
	id, err := gonanoid.Generate(runIDAlphabet, 8)
	if err != nil {
		return "", err
	}
	return job + "-" + id, nil
}
