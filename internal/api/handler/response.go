package handler

import (
	"context"
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errorRules traduz os erros dos casos de uso para códigos da API
var errorRules = []apiErrors.Rule{
	{Target: domain.ErrInvalidFilter, Code: apiErrors.ErrInvalidRequest},
	{Target: source.ErrSourceUnavailable, Code: apiErrors.ErrDatabaseOperation},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError registra o erro e responde com o código correspondente. Erros de
// validação expõem a mensagem, os demais apenas a mensagem genérica.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error, message string) {
	code := apiErrors.CodeFor(err, errorRules...)

	logger := log.ForContext(ctx).WithError(err)
	if code == apiErrors.ErrInvalidRequest {
		logger.Warn(message)
		apiErrors.WriteError(w, code, err.Error(), nil)
		return
	}

	logger.Error(message)
	apiErrors.WriteError(w, code, message, nil)
}
