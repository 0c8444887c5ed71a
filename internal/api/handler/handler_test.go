package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/goworksistemas/matriz-sub000/internal/api/handler/router"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	sourcemocks "github.com/goworksistemas/matriz-sub000/internal/source/mocks"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating"
	authmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating/mocks"
	commissionmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/commissioning/mocks"
	rankingmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/ranking/mocks"
	taskmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/tasking/mocks"
	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/goworksistemas/matriz-sub000/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func withParams(req *http.Request, params ...httprouter.Param) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params(params)))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestReportFiltersFromQuery(t *testing.T) {
	query := url.Values{
		"global.owner":     {"42"},
		"owner.produto":    {"Sala"},
		"sdr.sdr":          {"7"},
		"status.status":    {"Em andamento"},
		"ano":              {"2024"},
		"global.etapa":     {"  "},
		"desconhecido.foo": {"bar"},
	}

	filters := reportFiltersFromQuery(query)

	assert.Equal(t, domain.FilterState{"owner": "42", "ano": "2024"}, filters.Global)
	assert.Equal(t, domain.FilterState{"produto": "Sala"}, filters.Owner)
	assert.Equal(t, domain.FilterState{"sdr": "7"}, filters.SDR)
	assert.Equal(t, domain.FilterState{"status": "Em andamento"}, filters.Status)
}

func TestGetCommissionReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := commissionmocks.NewMockReporter(ctrl)

	expectedFilters := domain.ReportFilters{
		Global: domain.FilterState{domain.FilterStartDate: "2024-01-01"},
		Owner:  domain.FilterState{domain.FilterOwner: "ana"},
		SDR:    domain.FilterState{},
		Status: domain.FilterState{},
	}
	service.EXPECT().Report(gomock.Any(), expectedFilters).Return(&domain.CommissionReport{
		Totals: domain.CommissionTotals{Deals: 3},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/commissions/report?global.dataInicio=2024-01-01&owner.owner=ana", nil)
	rec := httptest.NewRecorder()
	GetCommissionReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report domain.CommissionReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 3, report.Totals.Deals)
}

func TestServiceErrorsAreMapped(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "filtro inválido",
			err:    errors.Wrap(domain.ErrInvalidFilter, "filtro dataInicio com data inválida"),
			status: http.StatusBadRequest,
			code:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "fonte indisponível",
			err:    errors.Wrap(fmt.Errorf("%w (deals): timeout", source.ErrSourceUnavailable), "erro ao buscar negócios"),
			status: http.StatusInternalServerError,
			code:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:   "erro inesperado",
			err:    errors.New("falha"),
			status: http.StatusInternalServerError,
			code:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := taskmocks.NewMockAnalyzer(ctrl)
			service.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			GetTaskAnalytics(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/tasks/analytics", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestGetCompetitionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := rankingmocks.NewMockRankingService(ctrl)

	service.EXPECT().
		GetCompetitionReport(gomock.Any(), domain.FilterState{domain.FilterYear: "2024", domain.FilterMonth: "5"}).
		Return(&domain.CompetitionReport{Threshold: 105}, nil)
	service.EXPECT().
		GetCompetitionRanking(gomock.Any(), "05-2024").
		Return(&domain.CompetitionRankingResponse{Ranking: []domain.CompetitionRankingItem{{OwnerID: "ana", Position: 1}}}, nil)

	rec := httptest.NewRecorder()
	GetCompetitionReport(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competition/ranking?ano=2024&mes=5", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meta_seats":105`)

	rec = httptest.NewRecorder()
	GetCompetitionRanking(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/competition/ranking/snapshot?month=05-2024", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_id":"ana"`)
}

type fakeRegistry struct {
	refreshers map[string]source.Refresher
	refreshErr error
	refreshed  bool
}

func (f *fakeRegistry) Lookup(name string) (source.Refresher, bool) {
	refresher, exists := f.refreshers[name]
	return refresher, exists
}

func (f *fakeRegistry) RefreshAll(context.Context) error {
	f.refreshed = true
	return f.refreshErr
}

func (f *fakeRegistry) Statuses() []source.Status {
	return []source.Status{{Name: source.DealsSource, Records: 10}}
}

func TestRefreshSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	deals := sourcemocks.NewMockRefresher(ctrl)
	deals.EXPECT().Refresh(gomock.Any()).Return(nil)

	registry := &fakeRegistry{refreshers: map[string]source.Refresher{source.DealsSource: deals}}
	handler := RefreshSource(registry)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withParams(httptest.NewRequest(http.MethodPost, "/v1/sources/deals/refresh", nil), httprouter.Param{Key: "type", Value: source.DealsSource}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":10`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withParams(httptest.NewRequest(http.MethodPost, "/v1/sources/all/refresh", nil), httprouter.Param{Key: "type", Value: sourceTypeAll}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, registry.refreshed)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withParams(httptest.NewRequest(http.MethodPost, "/v1/sources/vendas/refresh", nil), httprouter.Param{Key: "type", Value: "vendas"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}

func TestRefreshSourceUnavailable(t *testing.T) {
	registry := &fakeRegistry{refreshErr: fmt.Errorf("%w (tasks): conexão recusada", source.ErrSourceUnavailable)}

	rec := httptest.NewRecorder()
	RefreshSource(registry).ServeHTTP(rec, withParams(httptest.NewRequest(http.MethodPost, "/v1/sources/all/refresh", nil), httprouter.Param{Key: "type", Value: sourceTypeAll}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

func TestCronJobs(t *testing.T) {
	sources := &fakeCronJob{}
	competition := &fakeCronJob{}
	services := CronJobServices{
		CronJobTypeSources:            sources,
		CronJobTypeCompetitionRanking: competition,
	}

	run := func(cronType string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := withParams(httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil), httprouter.Param{Key: "type", Value: cronType})
		RunCronJob(services).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, run(CronJobTypeSources).Code)
	assert.Equal(t, 1, sources.triggered)
	assert.Equal(t, 0, competition.triggered)

	assert.Equal(t, http.StatusAccepted, run(CronJobTypeAll).Code)
	assert.Equal(t, 2, sources.triggered)
	assert.Equal(t, 1, competition.triggered)

	rec := run("meta")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), CronJobTypeCompetitionRanking)

	rec = httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"competition-ranking":{"sync_enabled":true}`)
}

func TestRoutesEnforceReportAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	service := taskmocks.NewMockAnalyzer(ctrl)

	admin := &domain.Claims{UserID: 1, UserRoleID: authenticating.RoleAdmin}
	client := &domain.Claims{UserID: 9, UserRoleID: authenticating.RoleClient}

	auth.EXPECT().CanAccessReport(admin, authenticating.ReportTasks).Return(true)
	auth.EXPECT().CanAccessReport(client, authenticating.ReportTasks).Return(false)
	service.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(&domain.TaskReport{}, nil)

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Tasks(service, auth)...),
	)

	request := func(method, path string, claims *domain.Claims) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if claims != nil {
			req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
		}
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, request(http.MethodGet, "/v1/tasks/analytics", admin).Code)
	assert.Equal(t, http.StatusForbidden, request(http.MethodGet, "/v1/tasks/analytics", client).Code)
	assert.Equal(t, http.StatusOK, request(http.MethodGet, "/healthcheck", nil).Code)

	rec := request(http.MethodGet, "/v1/inexistente", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = request(http.MethodDelete, "/v1/tasks/analytics", admin)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
