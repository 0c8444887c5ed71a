package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

const (
	competitionRankingTable = "competition_ranking cr"
)

type CompetitionRankingRepository interface {
	GetByMonth(ctx context.Context, month string) (*domain.CompetitionRankingResponse, error)
	ListByMonth(ctx context.Context, month string) ([]domain.CompetitionRankingItem, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.CompetitionRankingItem) error
}

type competitionRankingRepository struct {
	conn postgres.Queryer
}

func NewCompetitionRankingRepository(conn postgres.Queryer) CompetitionRankingRepository {
	return &competitionRankingRepository{
		conn: conn,
	}
}

// GetByMonth retorna o ranking persistido do mês (formato mm-yyyy) ordenado por posição
func (r *competitionRankingRepository) GetByMonth(ctx context.Context, month string) (*domain.CompetitionRankingResponse, error) {
	rankings, err := r.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	var lastUpdate time.Time
	for _, item := range rankings {
		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	return &domain.CompetitionRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *competitionRankingRepository) ListByMonth(ctx context.Context, month string) ([]domain.CompetitionRankingItem, error) {
	query := squirrel.
		Select(
			"cr.id",
			"cr.owner_id",
			"cr.month",
			"cr.owner_name",
			"cr.seats_capped",
			"cr.seats_raw",
			"cr.deals_count",
			"cr.position",
			"cr.position_change",
			"cr.previous_position",
			"cr.created_at",
			"cr.updated_at",
		).
		From(competitionRankingTable).
		Where(squirrel.Eq{"cr.month": month}).
		OrderBy("cr.position ASC")

	rankings, err := listPage(ctx, r.conn, query, r.scanCompetitionRankingItem)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking do mês %s: %w", month, err)
	}

	return rankings, nil
}

func (r *competitionRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.CompetitionRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("competition_ranking").
		Columns(
			"owner_id",
			"month",
			"owner_name",
			"seats_capped",
			"seats_raw",
			"deals_count",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.OwnerID,
			ranking.Month,
			ranking.OwnerName,
			ranking.SeatsCapped,
			ranking.SeatsRaw,
			ranking.DealsCount,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (owner_id, month) DO UPDATE SET
			owner_name = EXCLUDED.owner_name,
			seats_capped = EXCLUDED.seats_capped,
			seats_raw = EXCLUDED.seats_raw,
			deals_count = EXCLUDED.deals_count,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *competitionRankingRepository) scanCompetitionRankingItem(rows *sql.Rows) (domain.CompetitionRankingItem, error) {
	item := domain.CompetitionRankingItem{}

	err := rows.Scan(
		&item.ID,
		&item.OwnerID,
		&item.Month,
		&item.OwnerName,
		&item.SeatsCapped,
		&item.SeatsRaw,
		&item.DealsCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return domain.CompetitionRankingItem{}, err
	}

	return item, nil
}
