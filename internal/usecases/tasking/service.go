// Package tasking monta os indicadores do tracker de tarefas
package tasking

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/aggregating"
	"github.com/goworksistemas/matriz-sub000/internal/engine/filtering"
	"github.com/goworksistemas/matriz-sub000/internal/engine/leadtime"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/pkg/errors"
)

const (
	StageGlobal = "global"
	StageStatus = "status"
)

var ErrInvalidFilter = domain.ErrInvalidFilter

type Analyzer interface {
	Analyze(ctx context.Context, filters domain.ReportFilters) (*domain.TaskReport, error)
}

type Service struct {
	tasks      source.TaskSource
	completion leadtime.Completion
	now        func() time.Time
}

func NewService(tasks source.TaskSource, cfg *config.Config) *Service {
	return &Service{
		tasks:      tasks,
		completion: leadtime.NewCompletion(cfg.Task.CompletedStatuses),
		now:        time.Now,
	}
}

// WithClock troca o relógio usado na janela da série mensal
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Analyze calcula indicadores, lead time e séries sobre o filtro global. O filtro de
// status restringe apenas a lista de tarefas.
func (s *Service) Analyze(ctx context.Context, filters domain.ReportFilters) (*domain.TaskReport, error) {
	pipeline := filtering.NewPipeline(filtering.TaskSchema).
		Stage(StageGlobal, filtering.RawStage, filters.Global).
		Stage(StageStatus, StageGlobal, filters.Status)

	if err := pipeline.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	tasks, err := s.tasks.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar tarefas")
	}

	result, err := pipeline.Run(tasks)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao aplicar filtros de tarefas")
	}

	global := result.Get(StageGlobal)
	scoped := result.Get(StageStatus)

	byExecutor := aggregating.GroupByMany(global, func(t domain.Task) []string { return t.Executors }, aggregating.Count[domain.Task])
	byStatus := aggregating.GroupBy(global, func(t domain.Task) string { return t.Status }, aggregating.Count[domain.Task])
	byDepartment := aggregating.GroupBy(global, func(t domain.Task) string { return t.Department }, aggregating.Count[domain.Task])
	byPriority := aggregating.GroupBy(global, func(t domain.Task) string { return t.Priority }, aggregating.Count[domain.Task])

	report := &domain.TaskReport{
		Filters:      filters,
		Indicators:   s.completion.Indicators(global),
		LeadTime:     s.completion.ByPriority(global),
		Demand:       s.completion.DemandVsCompletion(global, s.now(), leadtime.DemandWindow),
		ByStatus:     aggregating.TopN(byStatus, 0),
		ByDepartment: aggregating.TopN(byDepartment, 0),
		ByPriority:   byPriority,
		ByExecutor:   aggregating.TopN(byExecutor, 0),
		Tasks:        sortByUrgency(scoped),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"tasks":        len(tasks),
		"global_tasks": len(global),
		"listed_tasks": len(scoped),
	}).Debug("Indicadores de tarefas calculados")

	return report, nil
}

var dueOrder = map[domain.DueStatus]int{
	domain.DueStatusOverdue: 0,
	domain.DueStatusToday:   1,
	domain.DueStatusOnTime:  2,
	domain.DueStatusNoDate:  3,
}

// sortByUrgency coloca primeiro as tarefas vencidas há mais tempo
func sortByUrgency(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		oi, oj := dueOrder[sorted[i].DueStatus], dueOrder[sorted[j].DueStatus]
		if oi != oj {
			return oi < oj
		}
		if sorted[i].DaysOverdue != sorted[j].DaysOverdue {
			return sorted[i].DaysOverdue > sorted[j].DaysOverdue
		}
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	return sorted
}
