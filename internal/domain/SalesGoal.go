package domain

// SalesGoal guarda as metas de um mês. As metas anuais se repetem em todas as linhas do ano.
// Os valores são textos digitados pelos usuários e são convertidos na leitura.
type SalesGoal struct {
	ID             string `json:"id"`
	Year           int    `json:"ano"`
	Month          int    `json:"mes"`
	MonthlyRevenue string `json:"meta_faturamento_mensal"`
	MonthlySeats   string `json:"meta_seats_mensal"`
	MonthlyDeals   string `json:"meta_negocios_mensal"`
	AnnualRevenue  string `json:"meta_faturamento_anual"`
	AnnualSeats    string `json:"meta_seats_anual"`
	AnnualDeals    string `json:"meta_negocios_anual"`
}
