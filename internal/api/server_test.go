package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goworksistemas/matriz-sub000/internal/api/handler"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating"
	authmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/authenticating/mocks"
	commissionmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/commissioning/mocks"
	rankingmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/ranking/mocks"
	taskmocks "github.com/goworksistemas/matriz-sub000/internal/usecases/tasking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServerHandlerChain(t *testing.T) {
	ctrl := gomock.NewController(t)

	auth := authmocks.NewMockAuthenticator(ctrl)
	commissions := commissionmocks.NewMockReporter(ctrl)

	supervisor := &domain.Claims{UserID: 5, UserRoleID: authenticating.RoleSupervisor, UserReports: []string{authenticating.ReportCommissions}}
	auth.EXPECT().ValidateToken("Bearer token-supervisor").Return(supervisor, nil).Times(2)
	auth.EXPECT().CanAccessReport(supervisor, authenticating.ReportCommissions).Return(true)
	commissions.EXPECT().Report(gomock.Any(), gomock.Any()).Return(&domain.CommissionReport{}, nil)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
	}

	server, err := New(cfg, Services{
		Commissions:   commissions,
		Competition:   rankingmocks.NewMockRankingService(ctrl),
		Tasks:         taskmocks.NewMockAnalyzer(ctrl),
		Authenticator: auth,
		CronJobs:      handler.CronJobServices{},
	})
	require.NoError(t, err)

	send := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		server.Handler().ServeHTTP(rec, req)
		return rec
	}

	rec := send(http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	assert.Equal(t, http.StatusUnauthorized, send(http.MethodGet, "/v1/commissions/report", "").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/v1/commissions/report?global.owner=ana", "token-supervisor").Code)

	// Supervisor não executa cron jobs
	assert.Equal(t, http.StatusForbidden, send(http.MethodPost, "/v1/cron/all/run", "token-supervisor").Code)
}
