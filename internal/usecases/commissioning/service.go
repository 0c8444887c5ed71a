// Package commissioning monta o relatório de comissões de vendedores e SDRs
package commissioning

import (
	"context"
	"sort"

	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/aggregating"
	"github.com/goworksistemas/matriz-sub000/internal/engine/filtering"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	StageGlobal = "global"
	StageOwner  = "owner"
	StageSDR    = "sdr"

	topOwnersLimit = 10
)

var ErrInvalidFilter = domain.ErrInvalidFilter

type Reporter interface {
	Report(ctx context.Context, filters domain.ReportFilters) (*domain.CommissionReport, error)
}

type Service struct {
	deals   source.DealSource
	sdrRate float64
}

func NewService(deals source.DealSource, cfg *config.Config) Reporter {
	return &Service{
		deals:   deals,
		sdrRate: cfg.Commission.SDRRate,
	}
}

// Report aplica o filtro global e, sobre o resultado dele, os filtros de vendedor e de SDR
func (s *Service) Report(ctx context.Context, filters domain.ReportFilters) (*domain.CommissionReport, error) {
	pipeline := filtering.NewPipeline(filtering.DealSchema).
		Stage(StageGlobal, filtering.RawStage, filters.Global).
		Stage(StageOwner, StageGlobal, filters.Owner).
		Stage(StageSDR, StageGlobal, filters.SDR)

	if err := pipeline.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidFilter, err.Error())
	}

	deals, err := s.deals.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar negócios")
	}

	result, err := pipeline.Run(deals)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao aplicar filtros de comissões")
	}

	global := result.Get(StageGlobal)
	ownerDeals := result.Get(StageOwner)
	sdrDeals := lo.Filter(result.Get(StageSDR), func(deal domain.Deal, _ int) bool {
		return deal.HasSDR()
	})

	owners := aggregating.OwnerSummaries(ownerDeals)
	sort.SliceStable(owners, func(i, j int) bool {
		return owners[i].TotalToReceive > owners[j].TotalToReceive
	})

	sdrs := aggregating.SDRSummaries(sdrDeals, s.sdrRate)
	sort.SliceStable(sdrs, func(i, j int) bool {
		return sdrs[i].Commission > sdrs[j].Commission
	})

	byStage := aggregating.GroupBy(global, func(d domain.Deal) string { return d.Stage }, aggregating.Count[domain.Deal])
	byProduct := aggregating.GroupBy(global, func(d domain.Deal) string { return d.Product }, dealAmount)
	byOwner := aggregating.GroupBy(global, func(d domain.Deal) string { return d.OwnerName }, dealAmount)

	report := &domain.CommissionReport{
		Filters:      filters,
		Totals:       aggregating.Totals(global),
		OwnerTotals:  aggregating.Totals(ownerDeals),
		SDRTotals:    aggregating.Totals(sdrDeals),
		Owners:       owners,
		Consolidated: aggregating.Consolidate(owners),
		SDRs:         sdrs,
		ByStage:      byStage,
		ByProduct:    byProduct,
		TopOwners:    aggregating.TopN(byOwner, topOwnersLimit),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"deals":        len(deals),
		"global_deals": len(global),
		"owner_deals":  len(ownerDeals),
		"sdr_deals":    len(sdrDeals),
	}).Debug("Relatório de comissões calculado")

	return report, nil
}

func dealAmount(d domain.Deal) float64 {
	return d.Amount
}
