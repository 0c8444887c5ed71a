package tasking

import (
	"context"
	"testing"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/source/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

func at(month time.Month, day int) *time.Time {
	date := time.Date(2024, month, day, 9, 0, 0, 0, time.Local)
	return &date
}

func tasksFixture() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Contrato", Status: "aberta", Priority: "Alta", Department: "Jurídico", Executors: []string{"ana", "bruno"}, CreatedAt: *at(5, 2), DateEnd: at(5, 8), DueStatus: domain.DueStatusOverdue, DaysOverdue: 2},
		{ID: "2", Title: "Auditoria", Status: "aberta", Priority: "Baixa", Department: "Financeiro", Executors: []string{"ana"}, CreatedAt: *at(4, 2), DateEnd: at(5, 10), DueStatus: domain.DueStatusToday},
		{ID: "3", Title: "Boleto", Status: "concluida", Priority: "Alta", Department: "Financeiro", Executors: []string{"carla"}, CreatedAt: *at(4, 1), DateStart: at(4, 1), DateEnd: at(4, 5), DueStatus: domain.DueStatusOverdue, DaysOverdue: 35},
		{ID: "4", Title: "Aditivo", Status: "aberta", Priority: "Alta", Department: "Jurídico", CreatedAt: *at(5, 1), DueStatus: domain.DueStatusNoDate},
	}
}

func newService(t *testing.T) (*mocks.MockTaskSource, Analyzer) {
	ctrl := gomock.NewController(t)
	tasks := mocks.NewMockTaskSource(ctrl)

	service := NewService(tasks, &config.Config{}).WithClock(func() time.Time { return now })
	return tasks, service
}

func TestAnalyze(t *testing.T) {
	tasks, service := newService(t)
	tasks.EXPECT().Get(gomock.Any()).Return(tasksFixture(), nil)

	report, err := service.Analyze(context.Background(), domain.ReportFilters{})
	require.NoError(t, err)

	assert.Equal(t, 4, report.Indicators.Total)
	assert.Equal(t, 3, report.Indicators.Active)
	assert.Equal(t, 1, report.Indicators.Overdue)
	assert.Equal(t, 33.0, report.Indicators.RiskScore)
	assert.Equal(t, 25.0, report.Indicators.CompletionRate)

	require.Len(t, report.LeadTime, 2)
	assert.Equal(t, domain.LeadTimeStats{Priority: "Alta", AverageDays: 4, Eligible: 1, Total: 3}, report.LeadTime[0])

	require.Len(t, report.Demand, 12)
	assert.Equal(t, domain.DemandPoint{Month: "2024-05", Created: 2, Completed: 0}, report.Demand[11])
	assert.Equal(t, domain.DemandPoint{Month: "2024-04", Created: 2, Completed: 1}, report.Demand[10])

	assert.Equal(t, domain.ChartItem{Name: "ana", Value: 2}, report.ByExecutor[0])

	ids := make([]string, 0, len(report.Tasks))
	for _, task := range report.Tasks {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids)
}

func TestAnalyzeStatusFilterOnlyScopesList(t *testing.T) {
	tasks, service := newService(t)
	tasks.EXPECT().Get(gomock.Any()).Return(tasksFixture(), nil)

	report, err := service.Analyze(context.Background(), domain.ReportFilters{
		Global: domain.FilterState{domain.FilterDepartment: "Jurídico"},
		Status: domain.FilterState{domain.FilterDueStatus: string(domain.DueStatusNoDate)},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Indicators.Total)
	require.Len(t, report.Tasks, 1)
	assert.Equal(t, "4", report.Tasks[0].ID)
}

func TestAnalyzeInvalidFilter(t *testing.T) {
	_, service := newService(t)

	report, err := service.Analyze(context.Background(), domain.ReportFilters{
		Global: domain.FilterState{domain.FilterEndDate: "amanhã"},
	})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
