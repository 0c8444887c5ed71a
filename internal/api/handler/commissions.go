package handler

import (
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/usecases/commissioning"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
)

// GetCommissionReport monta o relatório de comissões com os filtros global, de vendedor e de SDR
func GetCommissionReport(service commissioning.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		filters := reportFiltersFromQuery(r.URL.Query())

		logger := log.ForContext(ctx)
		logger.WithFilters(commissioning.StageGlobal, filters.Global).Debug("commissions: filtros recebidos")
		logger.WithFilters(commissioning.StageOwner, filters.Owner).Debug("commissions: filtros recebidos")
		logger.WithFilters(commissioning.StageSDR, filters.SDR).Debug("commissions: filtros recebidos")

		report, err := service.Report(ctx, filters)
		if err != nil {
			writeServiceError(ctx, w, err, "Erro ao montar relatório de comissões")
			return
		}

		writeJSON(ctx, w, http.StatusOK, report)
	})
}
