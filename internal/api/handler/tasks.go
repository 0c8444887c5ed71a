package handler

import (
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/usecases/tasking"
)

// GetTaskAnalytics retorna indicadores, lead time e séries das tarefas
func GetTaskAnalytics(service tasking.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.Analyze(ctx, reportFiltersFromQuery(r.URL.Query()))
		if err != nil {
			writeServiceError(ctx, w, err, "Erro ao montar análise de tarefas")
			return
		}

		writeJSON(ctx, w, http.StatusOK, report)
	})
}
