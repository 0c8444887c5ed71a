package domain

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type DueStatus string

const (
	DueStatusOverdue DueStatus = "vencida"
	DueStatusToday   DueStatus = "hoje"
	DueStatusOnTime  DueStatus = "no_prazo"
	DueStatusNoDate  DueStatus = "sem_data"
)

// Task representa uma tarefa do tracker de demandas
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"titulo"`
	Status      string     `json:"status"`
	Priority    string     `json:"prioridade"`
	Executors   []string   `json:"executores"`
	Requester   string     `json:"solicitante"`
	Department  string     `json:"departamento"`
	DateStart   *time.Time `json:"date_start"`
	DateEnd     *time.Time `json:"date_end"`
	CreatedAt   time.Time  `json:"created_at"`
	URL         string     `json:"url"`
	DaysOverdue int        `json:"diasAtraso"`
	DueStatus   DueStatus  `json:"statusPrazo"`
}

// ParseExecutors converte a lista de executores separada por vírgula em um conjunto ordenado
func ParseExecutors(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})

	return lo.Uniq(lo.Compact(parts))
}

// HasExecutor verifica se a pessoa informada executa a tarefa
func (t Task) HasExecutor(executor string) bool {
	return lo.ContainsBy(t.Executors, func(e string) bool {
		return strings.EqualFold(e, executor)
	})
}
