package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/goworksistemas/matriz-sub000/infrastructure/database/postgres"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
)

const (
	dealsTable = "deals d"
)

type DealRepository interface {
	ListDeals(ctx context.Context) ([]domain.Deal, error)
}

type dealRepository struct {
	conn     postgres.Queryer
	pageSize int
}

func NewDealRepository(conn postgres.Queryer, pageSize int) DealRepository {
	return &dealRepository{
		conn:     conn,
		pageSize: pageSize,
	}
}

func (r *dealRepository) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	query := squirrel.
		Select(
			"d.id",
			"d.cliente",
			"d.owner_id",
			"d.owner_name",
			"d.sdr_id",
			"d.sdr_name",
			"d.produto",
			"d.valor",
			"d.posicoes",
			"d.posicoes_calculadas",
			"d.peso",
			"d.venda_impacto",
			"d.tipo_produto",
			"d.etapa",
			"d.status_comercial",
			"d.status_financeiro",
			"d.status_juridico",
			"d.data_fechamento",
			"d.comissao_simples",
		).
		From(dealsTable).
		OrderBy("d.id ASC")

	return listAll(ctx, r.conn, query, r.pageSize, r.scanDeal)
}

func (r *dealRepository) scanDeal(rows *sql.Rows) (domain.Deal, error) {
	var (
		deal                         domain.Deal
		sdrID, sdrName               sql.NullString
		weighted, weight, commission sql.NullFloat64
		productKind, stage           sql.NullString
		commercial, financial, legal sql.NullString
		closeDate                    sql.NullTime
	)

	err := rows.Scan(
		&deal.ID,
		&deal.ClientName,
		&deal.OwnerID,
		&deal.OwnerName,
		&sdrID,
		&sdrName,
		&deal.Product,
		&deal.Amount,
		&deal.Positions,
		&weighted,
		&weight,
		&deal.ImpactSale,
		&productKind,
		&stage,
		&commercial,
		&financial,
		&legal,
		&closeDate,
		&commission,
	)
	if err != nil {
		return domain.Deal{}, err
	}

	deal.SDRID = nullableString(sdrID)
	deal.SDRName = nullableString(sdrName)
	deal.WeightedPositions = weighted.Float64
	deal.Weight = weight.Float64
	deal.ProductKind = domain.ProductKind(productKind.String)
	deal.Stage = stage.String
	deal.CommercialStatus = commercial.String
	deal.FinancialStatus = financial.String
	deal.LegalStatus = legal.String
	deal.CloseDate = nullableDate(closeDate)
	deal.SimpleCommission = commission.Float64

	return deal, nil
}
