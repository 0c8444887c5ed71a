package leadtime

import (
	"testing"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) *time.Time {
	date := time.Date(year, month, d, 10, 0, 0, 0, time.Local)
	return &date
}

func TestCompletion(t *testing.T) {
	completion := NewCompletion(nil)

	assert.True(t, completion.IsCompleted("Concluída"))
	assert.True(t, completion.IsCompleted(" DONE "))
	assert.False(t, completion.IsCompleted("Em andamento"))
	assert.False(t, completion.IsCompleted(""))

	custom := NewCompletion([]string{"Entregue", " "})
	assert.True(t, custom.IsCompleted("entregue"))
	assert.False(t, custom.IsCompleted("done"))
}

func TestByPriority(t *testing.T) {
	completion := NewCompletion(nil)

	tasks := []domain.Task{
		{Priority: "Baixa", Status: "concluida", DateStart: day(2024, 1, 1), DateEnd: day(2024, 1, 11)},
		{Priority: "Alta", Status: "concluida", DateStart: day(2024, 1, 1), DateEnd: day(2024, 1, 3)},
		{Priority: "Alta", Status: "concluida", DateStart: day(2024, 1, 1), DateEnd: day(2024, 1, 6)},
		{Priority: "Alta", Status: "concluida", DateStart: day(2024, 1, 1)},
		{Priority: "Alta", Status: "em andamento", DateStart: day(2024, 1, 1), DateEnd: day(2024, 2, 1)},
		{Priority: "Urgente", Status: "aberta"},
		{Priority: "", Status: "concluida", DateStart: day(2024, 1, 5), DateEnd: day(2024, 1, 2)},
	}

	stats := completion.ByPriority(tasks)
	require.Len(t, stats, 4)

	assert.Equal(t, domain.LeadTimeStats{Priority: "Urgente", AverageDays: 0, Eligible: 0, Total: 1}, stats[0])
	assert.Equal(t, domain.LeadTimeStats{Priority: "Alta", AverageDays: 3.5, Eligible: 2, Total: 4}, stats[1])
	assert.Equal(t, domain.LeadTimeStats{Priority: "Baixa", AverageDays: 10, Eligible: 1, Total: 1}, stats[2])
	assert.Equal(t, "Sem prioridade", stats[3].Priority)
	assert.Equal(t, 0, stats[3].Eligible)
}

func TestDemandVsCompletion(t *testing.T) {
	completion := NewCompletion(nil)
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.Local)

	tasks := []domain.Task{
		{CreatedAt: *day(2024, 3, 1), Status: "aberta"},
		{CreatedAt: *day(2024, 1, 15), Status: "concluida", DateEnd: day(2024, 3, 2)},
		{CreatedAt: *day(2023, 4, 1), Status: "concluida", DateEnd: day(2023, 4, 30)},
		{CreatedAt: *day(2023, 3, 31), Status: "concluida", DateEnd: day(2024, 2, 1)},
		{CreatedAt: *day(2024, 2, 10), Status: "aberta", DateEnd: day(2024, 2, 11)},
	}

	points := completion.DemandVsCompletion(tasks, now, DemandWindow)
	require.Len(t, points, 12)

	assert.Equal(t, "2023-04", points[0].Month)
	assert.Equal(t, "2024-03", points[11].Month)

	assert.Equal(t, domain.DemandPoint{Month: "2023-04", Created: 1, Completed: 1}, points[0])
	assert.Equal(t, domain.DemandPoint{Month: "2024-01", Created: 1, Completed: 0}, points[9])
	assert.Equal(t, domain.DemandPoint{Month: "2024-02", Created: 1, Completed: 1}, points[10])
	assert.Equal(t, domain.DemandPoint{Month: "2024-03", Created: 1, Completed: 1}, points[11])

	created, completed := 0, 0
	for _, point := range points {
		created += point.Created
		completed += point.Completed
	}
	assert.LessOrEqual(t, created, len(tasks))
	assert.LessOrEqual(t, completed, len(tasks))
}

func TestIndicators(t *testing.T) {
	completion := NewCompletion(nil)

	tasks := []domain.Task{
		{Status: "concluida", DueStatus: domain.DueStatusOverdue},
		{Status: "aberta", DueStatus: domain.DueStatusOverdue},
		{Status: "aberta", DueStatus: domain.DueStatusToday},
		{Status: "aberta", DueStatus: domain.DueStatusOnTime},
		{Status: "aberta", DueStatus: domain.DueStatusNoDate},
	}

	indicators := completion.Indicators(tasks)

	assert.Equal(t, domain.TaskIndicators{
		Total:          5,
		Active:         4,
		Completed:      1,
		Overdue:        1,
		DueToday:       1,
		OnTime:         1,
		NoDate:         1,
		RiskScore:      25,
		CompletionRate: 20,
	}, indicators)
}

func TestIndicatorsEmpty(t *testing.T) {
	indicators := NewCompletion(nil).Indicators(nil)

	assert.Equal(t, 0.0, indicators.RiskScore)
	assert.Equal(t, 0.0, indicators.CompletionRate)
}
