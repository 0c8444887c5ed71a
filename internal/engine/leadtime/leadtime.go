// Package leadtime calcula lead time, séries mensais e indicadores do tracker de tarefas
package leadtime

import (
	"sort"
	"strings"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
)

// DefaultCompletedStatuses são os status tratados como concluídos quando nada é configurado
var DefaultCompletedStatuses = []string{"concluida", "concluída", "concluido", "concluído", "finalizada", "done"}

// Completion decide quais status representam tarefas concluídas
type Completion struct {
	statuses map[string]struct{}
}

func NewCompletion(statuses []string) Completion {
	if len(statuses) == 0 {
		statuses = DefaultCompletedStatuses
	}

	completion := Completion{statuses: make(map[string]struct{}, len(statuses))}
	for _, status := range statuses {
		status = strings.ToLower(strings.TrimSpace(status))
		if status != "" {
			completion.statuses[status] = struct{}{}
		}
	}
	return completion
}

// IsCompleted compara o status sem diferenciar maiúsculas
func (c Completion) IsCompleted(status string) bool {
	_, exists := c.statuses[strings.ToLower(strings.TrimSpace(status))]
	return exists
}

var priorityOrder = map[string]int{
	"urgente": 0,
	"alta":    1,
	"media":   2,
	"média":   2,
	"baixa":   3,
}

func priorityRank(priority string) int {
	rank, exists := priorityOrder[strings.ToLower(priority)]
	if !exists {
		return len(priorityOrder)
	}
	return rank
}

// Days retorna o lead time da tarefa em dias inteiros, contados no fuso local, e se ela
// entra na média
func (c Completion) Days(task domain.Task) (int, bool) {
	if !c.IsCompleted(task.Status) || task.DateStart == nil || task.DateEnd == nil {
		return 0, false
	}

	days := utils.DaysBetween(*task.DateStart, *task.DateEnd, time.Local)
	if days < 0 {
		return 0, false
	}
	return days, true
}

// ByPriority calcula a média de lead time por prioridade. Total conta todas as tarefas da
// prioridade e Eligible apenas as concluídas com início e fim.
func (c Completion) ByPriority(tasks []domain.Task) []domain.LeadTimeStats {
	type bucket struct {
		stats domain.LeadTimeStats
		days  int
	}

	buckets := make(map[string]*bucket)
	for _, task := range tasks {
		priority := task.Priority
		if priority == "" {
			priority = "Sem prioridade"
		}

		b, exists := buckets[priority]
		if !exists {
			b = &bucket{stats: domain.LeadTimeStats{Priority: priority}}
			buckets[priority] = b
		}

		b.stats.Total++
		if days, ok := c.Days(task); ok {
			b.stats.Eligible++
			b.days += days
		}
	}

	result := make([]domain.LeadTimeStats, 0, len(buckets))
	for _, b := range buckets {
		if b.stats.Eligible > 0 {
			b.stats.AverageDays = utils.RoundWithTwoDecimalPlace(float64(b.days) / float64(b.stats.Eligible))
		}
		result = append(result, b.stats)
	}

	sort.Slice(result, func(i, j int) bool {
		ri, rj := priorityRank(result[i].Priority), priorityRank(result[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return result[i].Priority < result[j].Priority
	})

	return result
}
