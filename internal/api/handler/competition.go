package handler

import (
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/usecases/ranking"
)

// GetCompetitionReport retorna o ranking ao vivo da competição e o acompanhamento de metas
func GetCompetitionReport(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		report, err := service.GetCompetitionReport(ctx, filterStateFromQuery(r.URL.Query()))
		if err != nil {
			writeServiceError(ctx, w, err, "Erro ao montar ranking da competição")
			return
		}

		writeJSON(ctx, w, http.StatusOK, report)
	})
}

// GetCompetitionRanking retorna o ranking gravado de um mês (?month=mm-aaaa)
func GetCompetitionRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snapshot, err := service.GetCompetitionRanking(ctx, r.URL.Query().Get("month"))
		if err != nil {
			writeServiceError(ctx, w, err, "Erro ao buscar ranking gravado")
			return
		}

		writeJSON(ctx, w, http.StatusOK, snapshot)
	})
}
