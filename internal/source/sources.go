package source

import (
	"context"
	"errors"
	"time"

	"github.com/goworksistemas/matriz-sub000/infrastructure/repository"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/tiering"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
)

const (
	DealsSource     = "deals"
	LineItemsSource = "line-items"
	GoalsSource     = "goals"
	TasksSource     = "tasks"
)

type DealSource interface {
	Get(ctx context.Context) ([]domain.Deal, error)
}

type LineItemSource interface {
	Get(ctx context.Context) ([]domain.LineItem, error)
}

type GoalSource interface {
	Get(ctx context.Context) ([]domain.SalesGoal, error)
}

type TaskSource interface {
	Get(ctx context.Context) ([]domain.Task, error)
}

// Refresher é a visão administrativa de um cache
type Refresher interface {
	Name() string
	Refresh(ctx context.Context) error
	Invalidate()
	Status() Status
}

// Sources reúne as fontes de todos os relatórios
type Sources struct {
	Deals     *Cache[domain.Deal]
	LineItems *Cache[domain.LineItem]
	Goals     *Cache[domain.SalesGoal]
	Tasks     *Cache[domain.Task]
}

func New(
	dealRepo repository.DealRepository,
	lineItemRepo repository.LineItemRepository,
	goalRepo repository.SalesGoalRepository,
	taskRepo repository.TaskRepository,
	ttl time.Duration,
	now func() time.Time,
) *Sources {
	if now == nil {
		now = time.Now
	}

	lineItemLoader := func(ctx context.Context) ([]domain.LineItem, error) {
		return lineItemRepo.ListLineItems(ctx, nil)
	}

	return &Sources{
		Deals:     NewCache[domain.Deal](DealsSource, ttl, dealRepo.ListDeals).WithClock(now),
		LineItems: NewCache[domain.LineItem](LineItemsSource, ttl, lineItemLoader).WithClock(now),
		Goals:     NewCache[domain.SalesGoal](GoalsSource, ttl, goalRepo.ListGoals).WithClock(now),
		Tasks:     NewCache[domain.Task](TasksSource, ttl, TaskLoader(taskRepo, now)).WithClock(now),
	}
}

// TaskLoader classifica o prazo das tarefas uma única vez, na leitura
func TaskLoader(taskRepo repository.TaskRepository, now func() time.Time) Loader[domain.Task] {
	return func(ctx context.Context) ([]domain.Task, error) {
		tasks, err := taskRepo.ListTasks(ctx)
		if err != nil {
			return nil, err
		}
		return tiering.AnnotateDue(tasks, now()), nil
	}
}

func (s *Sources) All() []Refresher {
	return []Refresher{s.Deals, s.LineItems, s.Goals, s.Tasks}
}

// Lookup encontra uma fonte pelo nome
func (s *Sources) Lookup(name string) (Refresher, bool) {
	for _, refresher := range s.All() {
		if refresher.Name() == name {
			return refresher, true
		}
	}
	return nil, false
}

// RefreshAll atualiza todas as fontes e devolve os erros combinados
func (s *Sources) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, refresher := range s.All() {
		if err := refresher.Refresh(ctx); err != nil {
			log.ForContext(ctx).WithError(err).WithField(log.FieldSource, refresher.Name()).Error("Erro ao atualizar fonte de dados")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Sources) Statuses() []Status {
	statuses := make([]Status, 0, 4)
	for _, refresher := range s.All() {
		statuses = append(statuses, refresher.Status())
	}
	return statuses
}
