package leadtime

import (
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
)

// DemandWindow é a quantidade de meses da série de demanda x conclusão
const DemandWindow = 12

// DemandVsCompletion conta tarefas criadas e concluídas por mês nos últimos months meses,
// terminando no mês de now. As datas são lidas no fuso de now e meses sem movimento
// aparecem zerados.
func (c Completion) DemandVsCompletion(tasks []domain.Task, now time.Time, months int) []domain.DemandPoint {
	if months <= 0 {
		months = DemandWindow
	}

	first := utils.GetFirstDayOfMonth(now).AddDate(0, -(months - 1), 0)

	points := make([]domain.DemandPoint, months)
	index := make(map[string]int, months)
	for i := range points {
		key := utils.MonthKey(first.AddDate(0, i, 0))
		points[i].Month = key
		index[key] = i
	}

	for _, task := range tasks {
		if !task.CreatedAt.IsZero() {
			if i, exists := index[utils.MonthKey(task.CreatedAt.In(now.Location()))]; exists {
				points[i].Created++
			}
		}

		if task.DateEnd != nil && c.IsCompleted(task.Status) {
			if i, exists := index[utils.MonthKey(task.DateEnd.In(now.Location()))]; exists {
				points[i].Completed++
			}
		}
	}

	return points
}

// Indicators calcula os indicadores escalares. Os buckets de prazo consideram apenas
// tarefas ativas e o risco é vencidas ÷ ativas em porcentagem.
func (c Completion) Indicators(tasks []domain.Task) domain.TaskIndicators {
	indicators := domain.TaskIndicators{Total: len(tasks)}

	for _, task := range tasks {
		if c.IsCompleted(task.Status) {
			indicators.Completed++
			continue
		}

		indicators.Active++
		switch task.DueStatus {
		case domain.DueStatusOverdue:
			indicators.Overdue++
		case domain.DueStatusToday:
			indicators.DueToday++
		case domain.DueStatusOnTime:
			indicators.OnTime++
		default:
			indicators.NoDate++
		}
	}

	indicators.RiskScore = utils.Percent(indicators.Overdue, indicators.Active)
	indicators.CompletionRate = utils.Percent(indicators.Completed, indicators.Total)

	return indicators
}
