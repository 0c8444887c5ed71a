// Package tiering classifica métricas em faixas de regras de negócio
package tiering

import (
	"fmt"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Tier é uma faixa com limite inferior fechado
type Tier struct {
	Threshold float64
	Rate      float64
}

// Label retorna o rótulo da faixa, vazio para a faixa zero
func (t Tier) Label() string {
	if t.Rate == 0 {
		return ""
	}
	return fmt.Sprintf("≥%g", t.Threshold)
}

// Table é uma tabela de faixas em ordem decrescente de limite
type Table struct {
	Name  string
	tiers []Tier
}

// zeroTier é a faixa terminal abaixo do menor limite
var zeroTier = Tier{}

var (
	// PhysicalTable é a tabela de prêmio dos produtos físicos
	PhysicalTable = Table{
		Name: string(domain.ProductKindPhysical),
		tiers: []Tier{
			{Threshold: 65, Rate: 0.35},
			{Threshold: 45, Rate: 0.30},
			{Threshold: 35, Rate: 0.25},
		},
	}

	// VirtualTable é a tabela de prêmio dos produtos virtuais
	VirtualTable = Table{
		Name: string(domain.ProductKindVirtual),
		tiers: []Tier{
			{Threshold: 55, Rate: 0.45},
			{Threshold: 45, Rate: 0.35},
			{Threshold: 30, Rate: 0.25},
		},
	}
)

// TableFor retorna a tabela aplicável ao tipo de produto
func TableFor(kind domain.ProductKind) Table {
	if kind == domain.ProductKindVirtual {
		return VirtualTable
	}
	return PhysicalTable
}

// Classify retorna a maior faixa cujo limite é atingido pela métrica
func (t Table) Classify(metric float64) Tier {
	for _, tier := range t.tiers {
		if metric >= tier.Threshold {
			return tier
		}
	}
	return zeroTier
}

// Premium calcula o prêmio de uma base de comissão simples
func (t Table) Premium(weightedPositions, simpleCommission float64) domain.TierResult {
	tier := t.Classify(weightedPositions)

	return domain.TierResult{
		Label:   tier.Label(),
		Rate:    tier.Rate,
		Premium: applyRate(tier.Rate, simpleCommission),
	}
}

// SDRCommission calcula a comissão fixa do SDR sobre o valor do negócio
func SDRCommission(amount, rate float64) float64 {
	return applyRate(rate, amount)
}

func applyRate(rate, base float64) float64 {
	if rate <= 0 || base <= 0 {
		return 0
	}

	return decimal.NewFromFloat(rate).
		Mul(decimal.NewFromFloat(base)).
		Round(2).
		InexactFloat64()
}
