package aggregating

import (
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/tiering"
	"github.com/shopspring/decimal"
)

type ownerAccumulator struct {
	id, name           string
	deals              int
	positions          decimal.Decimal
	weightedPhysical   decimal.Decimal
	weightedVirtual    decimal.Decimal
	amount             decimal.Decimal
	physicalCommission decimal.Decimal
	virtualCommission  decimal.Decimal
}

func (acc *ownerAccumulator) add(deal domain.Deal) {
	weighted := decimal.NewFromFloat(deal.EffectiveWeightedPositions())
	commission := decimal.NewFromFloat(deal.EffectiveSimpleCommission())

	acc.deals++
	acc.positions = acc.positions.Add(decimal.NewFromFloat(deal.Positions))
	acc.amount = acc.amount.Add(decimal.NewFromFloat(deal.Amount))

	if deal.ProductKind == domain.ProductKindVirtual {
		acc.weightedVirtual = acc.weightedVirtual.Add(weighted)
		acc.virtualCommission = acc.virtualCommission.Add(commission)
		return
	}

	acc.weightedPhysical = acc.weightedPhysical.Add(weighted)
	acc.physicalCommission = acc.physicalCommission.Add(commission)
}

func (acc *ownerAccumulator) summary() domain.OwnerCommission {
	weightedPhysical := round(acc.weightedPhysical)
	weightedVirtual := round(acc.weightedVirtual)
	physicalCommission := round(acc.physicalCommission)
	virtualCommission := round(acc.virtualCommission)

	// a faixa é definida pela soma exata; o arredondamento vale só para exibição
	physicalTier := tiering.PhysicalTable.Premium(acc.weightedPhysical.InexactFloat64(), acc.physicalCommission.InexactFloat64())
	virtualTier := tiering.VirtualTable.Premium(acc.weightedVirtual.InexactFloat64(), acc.virtualCommission.InexactFloat64())

	simple := acc.physicalCommission.Add(acc.virtualCommission)
	total := simple.
		Add(decimal.NewFromFloat(physicalTier.Premium)).
		Add(decimal.NewFromFloat(virtualTier.Premium))

	return domain.OwnerCommission{
		OwnerID:            acc.id,
		OwnerName:          acc.name,
		Deals:              acc.deals,
		Positions:          round(acc.positions),
		WeightedPhysical:   weightedPhysical,
		WeightedVirtual:    weightedVirtual,
		Amount:             round(acc.amount),
		SimpleCommission:   round(simple),
		PhysicalCommission: physicalCommission,
		VirtualCommission:  virtualCommission,
		PhysicalTier:       physicalTier,
		VirtualTier:        virtualTier,
		TotalToReceive:     round(total),
	}
}

// OwnerSummaries consolida os negócios por vendedor. A faixa de cada tipo de produto é
// definida pela soma das posições calculadas do vendedor naquele tipo, e o prêmio incide
// sobre a comissão simples dos negócios do mesmo tipo. A ordem é a da primeira aparição.
func OwnerSummaries(deals []domain.Deal) []domain.OwnerCommission {
	accumulators := make(map[string]*ownerAccumulator)
	order := make([]string, 0)

	for _, deal := range deals {
		acc, exists := accumulators[deal.OwnerID]
		if !exists {
			acc = &ownerAccumulator{id: deal.OwnerID, name: deal.OwnerName}
			accumulators[deal.OwnerID] = acc
			order = append(order, deal.OwnerID)
		}
		if acc.name == "" {
			acc.name = deal.OwnerName
		}
		acc.add(deal)
	}

	summaries := make([]domain.OwnerCommission, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, accumulators[id].summary())
	}

	return summaries
}

// Consolidate soma os resumos de todos os vendedores
func Consolidate(owners []domain.OwnerCommission) domain.ConsolidatedCommission {
	var amount, simple, physical, virtual, total decimal.Decimal
	deals := 0

	for _, owner := range owners {
		deals += owner.Deals
		amount = amount.Add(decimal.NewFromFloat(owner.Amount))
		simple = simple.Add(decimal.NewFromFloat(owner.SimpleCommission))
		physical = physical.Add(decimal.NewFromFloat(owner.PhysicalTier.Premium))
		virtual = virtual.Add(decimal.NewFromFloat(owner.VirtualTier.Premium))
		total = total.Add(decimal.NewFromFloat(owner.TotalToReceive))
	}

	return domain.ConsolidatedCommission{
		Owners:           len(owners),
		Deals:            deals,
		Amount:           round(amount),
		SimpleCommission: round(simple),
		PhysicalPremium:  round(physical),
		VirtualPremium:   round(virtual),
		TotalToReceive:   round(total),
	}
}

// SDRSummaries calcula a comissão fixa de cada SDR. Negócios sem SDR são ignorados.
func SDRSummaries(deals []domain.Deal, rate float64) []domain.SDRCommission {
	type sdrAccumulator struct {
		id, name string
		deals    int
		amount   decimal.Decimal
	}

	accumulators := make(map[string]*sdrAccumulator)
	order := make([]string, 0)

	for _, deal := range deals {
		if !deal.HasSDR() {
			continue
		}

		acc, exists := accumulators[*deal.SDRID]
		if !exists {
			acc = &sdrAccumulator{id: *deal.SDRID}
			accumulators[acc.id] = acc
			order = append(order, acc.id)
		}
		if acc.name == "" && deal.SDRName != nil {
			acc.name = *deal.SDRName
		}

		acc.deals++
		acc.amount = acc.amount.Add(decimal.NewFromFloat(deal.Amount))
	}

	summaries := make([]domain.SDRCommission, 0, len(order))
	for _, id := range order {
		acc := accumulators[id]
		amount := round(acc.amount)

		summaries = append(summaries, domain.SDRCommission{
			SDRID:      acc.id,
			SDRName:    acc.name,
			Deals:      acc.deals,
			Amount:     amount,
			Rate:       rate,
			Commission: tiering.SDRCommission(amount, rate),
		})
	}

	return summaries
}
