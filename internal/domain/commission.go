package domain

// TierResult é a faixa de premiação encontrada para uma métrica
type TierResult struct {
	Label   string  `json:"faixa"`
	Rate    float64 `json:"percentual"`
	Premium float64 `json:"premio"`
}

// CommissionTotals são os totais simples de um conjunto de negócios
type CommissionTotals struct {
	Deals            int     `json:"negocios"`
	Positions        float64 `json:"posicoes"`
	Amount           float64 `json:"valor"`
	SimpleCommission float64 `json:"comissaoSimples"`
}

// OwnerCommission é o resumo consolidado de um vendedor
type OwnerCommission struct {
	OwnerID            string     `json:"owner_id"`
	OwnerName          string     `json:"owner_name"`
	Deals              int        `json:"negocios"`
	Positions          float64    `json:"posicoes"`
	WeightedPhysical   float64    `json:"posicoesCalculadasFisico"`
	WeightedVirtual    float64    `json:"posicoesCalculadasVirtual"`
	Amount             float64    `json:"valor"`
	SimpleCommission   float64    `json:"comissaoSimples"`
	PhysicalCommission float64    `json:"comissaoFisico"`
	VirtualCommission  float64    `json:"comissaoVirtual"`
	PhysicalTier       TierResult `json:"premioFisico"`
	VirtualTier        TierResult `json:"premioVirtual"`
	TotalToReceive     float64    `json:"totalAReceber"`
}

// ConsolidatedCommission soma os resumos de todos os vendedores
type ConsolidatedCommission struct {
	Owners           int     `json:"vendedores"`
	Deals            int     `json:"negocios"`
	Amount           float64 `json:"valor"`
	SimpleCommission float64 `json:"comissaoSimples"`
	PhysicalPremium  float64 `json:"premioFisico"`
	VirtualPremium   float64 `json:"premioVirtual"`
	TotalToReceive   float64 `json:"totalAReceber"`
}

// SDRCommission é a comissão fixa de um SDR
type SDRCommission struct {
	SDRID      string  `json:"sdr_id"`
	SDRName    string  `json:"sdr_name"`
	Deals      int     `json:"negocios"`
	Amount     float64 `json:"valor"`
	Rate       float64 `json:"percentual"`
	Commission float64 `json:"comissao"`
}

// CommissionReport é o view-model do módulo de comissões
type CommissionReport struct {
	Filters      ReportFilters          `json:"filtros"`
	Totals       CommissionTotals       `json:"totais"`
	OwnerTotals  CommissionTotals       `json:"totaisVendedor"`
	SDRTotals    CommissionTotals       `json:"totaisSdr"`
	Owners       []OwnerCommission      `json:"vendedores"`
	Consolidated ConsolidatedCommission `json:"consolidado"`
	SDRs         []SDRCommission        `json:"sdrs"`
	ByStage      []ChartItem            `json:"porEtapa"`
	ByProduct    []ChartItem            `json:"porProduto"`
	TopOwners    []ChartItem            `json:"topVendedores"`
}
