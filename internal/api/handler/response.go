package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// isRefresh interpreta ?refresh=true
func isRefresh(r *http.Request) bool {
	refresh, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get("refresh")))
	return err == nil && refresh
}
