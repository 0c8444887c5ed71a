package domain

// FilterState é o estado de filtros controlado pelo usuário. Valor vazio significa sem restrição.
type FilterState map[string]string

// Chaves de filtro aceitas pelos relatórios
const (
	FilterClient           = "cliente"
	FilterOwner            = "owner"
	FilterSDR              = "sdr"
	FilterProduct          = "produto"
	FilterProductKind      = "tipoProduto"
	FilterStage            = "etapa"
	FilterCommercialStatus = "statusComercial"
	FilterFinancialStatus  = "statusFinanceiro"
	FilterLegalStatus      = "statusJuridico"
	FilterImpactSale       = "vendaImpacto"
	FilterStartDate        = "dataInicio"
	FilterEndDate          = "dataFim"

	FilterYear  = "ano"
	FilterMonth = "mes"

	FilterSearch     = "busca"
	FilterStatus     = "status"
	FilterPriority   = "prioridade"
	FilterExecutor   = "executor"
	FilterRequester  = "solicitante"
	FilterDepartment = "departamento"
	FilterDueStatus  = "statusPrazo"
)

// Get retorna o valor do filtro, vazio quando ausente
func (f FilterState) Get(key string) string {
	if f == nil {
		return ""
	}
	return f[key]
}

// Active retorna apenas os filtros preenchidos
func (f FilterState) Active() FilterState {
	active := make(FilterState, len(f))
	for key, value := range f {
		if value != "" {
			active[key] = value
		}
	}
	return active
}

// Reset devolve um estado sem restrições
func (FilterState) Reset() FilterState {
	return FilterState{}
}

// ReportFilters agrupa as instâncias de filtro de um relatório
type ReportFilters struct {
	Global FilterState `json:"global"`
	Owner  FilterState `json:"owner"`
	SDR    FilterState `json:"sdr"`
	Status FilterState `json:"status"`
}
