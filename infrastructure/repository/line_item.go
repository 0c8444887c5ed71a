package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/lib/pq"
)

const (
	lineItemsTable = "line_items li"
)

type LineItemRepository interface {
	// ListLineItems retorna os itens dos negócios ganhos. Sem anos informados retorna todos.
	ListLineItems(ctx context.Context, years []int) ([]domain.LineItem, error)
}

type lineItemRepository struct {
	conn     postgres.Queryer
	pageSize int
}

func NewLineItemRepository(conn postgres.Queryer, pageSize int) LineItemRepository {
	return &lineItemRepository{
		conn:     conn,
		pageSize: pageSize,
	}
}

func (r *lineItemRepository) ListLineItems(ctx context.Context, years []int) ([]domain.LineItem, error) {
	query := squirrel.
		Select(
			"li.id",
			"li.deal_id",
			"li.owner_id",
			"li.owner_name",
			"li.nome",
			"li.quantidade",
			"li.quantidade_limitada",
			"li.valor",
			"li.data_fechamento",
		).
		From(lineItemsTable).
		OrderBy("li.id ASC")

	if len(years) > 0 {
		query = query.Where(squirrel.Expr("EXTRACT(YEAR FROM li.data_fechamento)::int = ANY(?)", pq.Array(years)))
	}

	return listAll(ctx, r.conn, query, r.pageSize, r.scanLineItem)
}

func (r *lineItemRepository) scanLineItem(rows *sql.Rows) (domain.LineItem, error) {
	var (
		item          domain.LineItem
		ownerName     sql.NullString
		capped, value sql.NullFloat64
		closeDate     sql.NullTime
	)

	err := rows.Scan(
		&item.ID,
		&item.DealID,
		&item.OwnerID,
		&ownerName,
		&item.Name,
		&item.Quantity,
		&capped,
		&value,
		&closeDate,
	)
	if err != nil {
		return domain.LineItem{}, err
	}

	item.OwnerName = ownerName.String
	item.CappedQuantity = capped.Float64
	if !capped.Valid {
		item.CappedQuantity = item.Quantity
	}
	item.Value = value.Float64
	item.CloseDate = nullableDate(closeDate)

	return item.WithPeriodFromCloseDate(), nil
}
