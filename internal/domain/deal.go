// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type ProductKind string

const (
	ProductKindPhysical ProductKind = "fisico"
	ProductKindVirtual  ProductKind = "virtual"
)

// Deal representa um negócio ganho com os dados usados no cálculo de comissões
type Deal struct {
	ID                string      `json:"id"`
	ClientName        string      `json:"cliente"`
	OwnerID           string      `json:"owner_id"`
	OwnerName         string      `json:"owner_name"`
	SDRID             *string     `json:"sdr_id"`
	SDRName           *string     `json:"sdr_name"`
	Product           string      `json:"produto"`
	Amount            float64     `json:"valor"`
	Positions         float64     `json:"posicoes"`
	WeightedPositions float64     `json:"posicoesCalculadas"`
	Weight            float64     `json:"peso"`
	ImpactSale        bool        `json:"vendaImpacto"`
	ProductKind       ProductKind `json:"tipoProduto"`
	Stage             string      `json:"etapa"`
	CommercialStatus  string      `json:"statusComercial"`
	FinancialStatus   string      `json:"statusFinanceiro"`
	LegalStatus       string      `json:"statusJuridico"`
	CloseDate         *time.Time  `json:"dataFechamento"`
	SimpleCommission  float64     `json:"comissaoSimples"`
}

// HasSDR indica se o negócio tem um SDR associado
func (d Deal) HasSDR() bool {
	return d.SDRID != nil && *d.SDRID != ""
}

// EffectiveWeightedPositions retorna as posições calculadas do negócio.
// Quando a origem não enviou o valor, ele é derivado de posicoes * peso.
func (d Deal) EffectiveWeightedPositions() float64 {
	if d.WeightedPositions > 0 || d.Positions <= 0 {
		return d.WeightedPositions
	}

	weight := d.Weight
	if weight <= 0 {
		weight = 1
	}

	return d.Positions * weight
}

// EffectiveSimpleCommission nunca retorna valores negativos
func (d Deal) EffectiveSimpleCommission() float64 {
	if d.SimpleCommission < 0 {
		return 0
	}
	return d.SimpleCommission
}
