package handler

import (
	"net/http"
	"sort"

	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeSources            = "sources"
	CronJobTypeCompetitionRanking = "competition-ranking"
	CronJobTypeAll                = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices reúne os agendadores por tipo
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		cronType := httprouter.ParamsFromContext(ctx).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType == CronJobTypeAll {
			for _, job := range services {
				job.TriggerManualSync()
			}
		} else {
			job, exists := services[cronType]
			if !exists || job == nil {
				accepted := []string{CronJobTypeAll}
				for name := range services {
					accepted = append(accepted, name)
				}
				sort.Strings(accepted)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{"accepted": accepted})
				return
			}
			job.TriggerManualSync()
		}

		log.ForContext(ctx).WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(ctx, w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(r.Context(), w, http.StatusOK, status)
	})
}
