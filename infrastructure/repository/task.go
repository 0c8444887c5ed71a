package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

const (
	tasksTable = "tasks t"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
}

type taskRepository struct {
	conn     postgres.Queryer
	pageSize int
}

func NewTaskRepository(conn postgres.Queryer, pageSize int) TaskRepository {
	return &taskRepository{
		conn:     conn,
		pageSize: pageSize,
	}
}

func (r *taskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	query := squirrel.
		Select(
			"t.id",
			"t.titulo",
			"COALESCE(t.status, '')",
			"COALESCE(t.prioridade, '')",
			"COALESCE(t.executores, '')",
			"COALESCE(t.solicitante, '')",
			"COALESCE(t.departamento, '')",
			"t.date_start",
			"t.date_end",
			"t.created_at",
			"COALESCE(t.url, '')",
		).
		From(tasksTable).
		OrderBy("t.created_at DESC", "t.id ASC")

	return listAll(ctx, r.conn, query, r.pageSize, r.scanTask)
}

// scanTask converte a lista de executores em conjunto na leitura
func (r *taskRepository) scanTask(rows *sql.Rows) (domain.Task, error) {
	var (
		task                          domain.Task
		executors                     string
		dateStart, dateEnd, createdAt sql.NullTime
	)

	err := rows.Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.Priority,
		&executors,
		&task.Requester,
		&task.Department,
		&dateStart,
		&dateEnd,
		&createdAt,
		&task.URL,
	)
	if err != nil {
		return domain.Task{}, err
	}

	task.Executors = domain.ParseExecutors(executors)
	task.DateStart = nullableTime(dateStart)
	task.DateEnd = nullableTime(dateEnd)
	// sem data de criação a tarefa fica fora da série de demanda
	if createdAt.Valid {
		task.CreatedAt = createdAt.Time
	}

	return task, nil
}
