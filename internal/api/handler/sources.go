package handler

import (
	"context"
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/julienschmidt/httprouter"
)

const sourceTypeAll = "all"

// SourceRegistry é a visão administrativa das fontes de dados
type SourceRegistry interface {
	Lookup(name string) (source.Refresher, bool)
	RefreshAll(ctx context.Context) error
	Statuses() []source.Status
}

// RefreshSource recarrega uma fonte pelo nome, ou todas com o tipo "all"
func RefreshSource(sources SourceRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sourceType := httprouter.ParamsFromContext(ctx).ByName("type")

		logger := log.ForContext(ctx).WithField(log.FieldSource, sourceType)
		logger.Info("sources: atualização manual solicitada")

		var err error
		if sourceType == sourceTypeAll {
			err = sources.RefreshAll(ctx)
		} else {
			refresher, exists := sources.Lookup(sourceType)
			if !exists {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Fonte de dados desconhecida", map[string]string{"type": sourceType})
				return
			}
			err = refresher.Refresh(ctx)
		}

		if err != nil {
			writeServiceError(ctx, w, err, "Erro ao atualizar fonte de dados")
			return
		}

		writeJSON(ctx, w, http.StatusOK, sources.Statuses())
	})
}

// GetSourcesStatus retorna quando cada fonte foi carregada e se está expirada
func GetSourcesStatus(sources SourceRegistry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, sources.Statuses())
	})
}
