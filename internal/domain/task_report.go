package domain

// LeadTimeStats é o lead time médio de uma prioridade
type LeadTimeStats struct {
	Priority    string  `json:"prioridade"`
	AverageDays float64 `json:"mediaDias"`
	Eligible    int     `json:"elegiveis"`
	Total       int     `json:"total"`
}

// DemandPoint é um mês da série de demanda x conclusão
type DemandPoint struct {
	Month     string `json:"mes"` // Formato yyyy-mm
	Created   int    `json:"criadas"`
	Completed int    `json:"concluidas"`
}

// TaskIndicators são os indicadores escalares do tracker de tarefas
type TaskIndicators struct {
	Total          int     `json:"total"`
	Active         int     `json:"ativas"`
	Completed      int     `json:"concluidas"`
	Overdue        int     `json:"vencidas"`
	DueToday       int     `json:"vencemHoje"`
	OnTime         int     `json:"noPrazo"`
	NoDate         int     `json:"semData"`
	RiskScore      float64 `json:"risco"`
	CompletionRate float64 `json:"taxaConclusao"`
}

// TaskReport é o view-model do módulo de tarefas
type TaskReport struct {
	Filters      ReportFilters   `json:"filtros"`
	Indicators   TaskIndicators  `json:"indicadores"`
	LeadTime     []LeadTimeStats `json:"leadTimePorPrioridade"`
	Demand       []DemandPoint   `json:"demandaVsConclusao"`
	ByStatus     []ChartItem     `json:"porStatus"`
	ByDepartment []ChartItem     `json:"porDepartamento"`
	ByPriority   []ChartItem     `json:"porPrioridade"`
	ByExecutor   []ChartItem     `json:"porExecutor"`
	Tasks        []Task          `json:"tarefas"`
}
