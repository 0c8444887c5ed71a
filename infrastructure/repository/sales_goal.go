package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

const (
	salesGoalsTable = "sales_goals sg"
)

type SalesGoalRepository interface {
	ListGoals(ctx context.Context) ([]domain.SalesGoal, error)
	SaveGoals(ctx context.Context, goals []domain.SalesGoal) error
}

type salesGoalRepository struct {
	conn     postgres.Queryer
	pageSize int
}

func NewSalesGoalRepository(conn postgres.Queryer, pageSize int) SalesGoalRepository {
	return &salesGoalRepository{
		conn:     conn,
		pageSize: pageSize,
	}
}

func (r *salesGoalRepository) ListGoals(ctx context.Context) ([]domain.SalesGoal, error) {
	query := squirrel.
		Select(
			"sg.id",
			"sg.ano",
			"sg.mes",
			"COALESCE(sg.meta_faturamento_mensal, '')",
			"COALESCE(sg.meta_seats_mensal, '')",
			"COALESCE(sg.meta_negocios_mensal, '')",
			"COALESCE(sg.meta_faturamento_anual, '')",
			"COALESCE(sg.meta_seats_anual, '')",
			"COALESCE(sg.meta_negocios_anual, '')",
		).
		From(salesGoalsTable).
		OrderBy("sg.ano ASC", "sg.mes ASC")

	return listAll(ctx, r.conn, query, r.pageSize, r.scanGoal)
}

// SaveGoals grava as metas. Linhas já existentes para o mesmo ano e mês são mantidas.
func (r *salesGoalRepository) SaveGoals(ctx context.Context, goals []domain.SalesGoal) error {
	if len(goals) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("sales_goals").
		Columns(
			"id",
			"ano",
			"mes",
			"meta_faturamento_mensal",
			"meta_seats_mensal",
			"meta_negocios_mensal",
			"meta_faturamento_anual",
			"meta_seats_anual",
			"meta_negocios_anual",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, goal := range goals {
		query = query.Values(
			goal.ID,
			goal.Year,
			goal.Month,
			goal.MonthlyRevenue,
			goal.MonthlySeats,
			goal.MonthlyDeals,
			goal.AnnualRevenue,
			goal.AnnualSeats,
			goal.AnnualDeals,
		)
	}

	sqlQuery, args, err := query.Suffix("ON CONFLICT (ano, mes) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *salesGoalRepository) scanGoal(rows *sql.Rows) (domain.SalesGoal, error) {
	goal := domain.SalesGoal{}

	err := rows.Scan(
		&goal.ID,
		&goal.Year,
		&goal.Month,
		&goal.MonthlyRevenue,
		&goal.MonthlySeats,
		&goal.MonthlyDeals,
		&goal.AnnualRevenue,
		&goal.AnnualSeats,
		&goal.AnnualDeals,
	)
	if err != nil {
		return domain.SalesGoal{}, err
	}

	return goal, nil
}
