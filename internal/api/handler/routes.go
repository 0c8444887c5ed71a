package handler

import (
	"net/http"

	"github.com/goworksistemas/matriz-sub000/internal/api/handler/router"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/commissioning"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/ranking"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/tasking"
	"github.com/goworksistemas/matriz-sub000/pkg/middleware"
	"github.com/justinas/alice"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Commissions(service commissioning.Reporter, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commissions/report",
			Method:      http.MethodGet,
			Handler:     GetCommissionReport(service),
			Middlewares: []alice.Constructor{middleware.ReportAccess(auth, authenticating.ReportCommissions)},
		},
	}
}

func Competition(service ranking.RankingService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/competition/ranking",
			Method:      http.MethodGet,
			Handler:     GetCompetitionReport(service),
			Middlewares: []alice.Constructor{middleware.ReportAccess(auth, authenticating.ReportCompetition)},
		},
		{
			Path:        "/v1/competition/ranking/snapshot",
			Method:      http.MethodGet,
			Handler:     GetCompetitionRanking(service),
			Middlewares: []alice.Constructor{middleware.ReportAccess(auth, authenticating.ReportCompetition)},
		},
	}
}

func Tasks(service tasking.Analyzer, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tasks/analytics",
			Method:      http.MethodGet,
			Handler:     GetTaskAnalytics(service),
			Middlewares: []alice.Constructor{middleware.ReportAccess(auth, authenticating.ReportTasks)},
		},
	}
}

func Sources(sources SourceRegistry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sources/status",
			Method:      http.MethodGet,
			Handler:     GetSourcesStatus(sources),
			Middlewares: []alice.Constructor{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/sources/:type/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSource(sources),
			Middlewares: []alice.Constructor{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []alice.Constructor{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []alice.Constructor{middleware.AdminOrSupervisor()},
		},
	}
}
