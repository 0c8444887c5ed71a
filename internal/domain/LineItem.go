package domain

import "time"

// LineItem é uma unidade vendida de um negócio ganho, usada na competição de vendas
type LineItem struct {
	ID             string     `json:"id"`
	DealID         string     `json:"deal_id"`
	OwnerID        string     `json:"owner_id"`
	OwnerName      string     `json:"owner_name"`
	Name           string     `json:"nome"`
	Quantity       float64    `json:"quantidade"`
	CappedQuantity float64    `json:"quantidadeLimitada"`
	Value          float64    `json:"valor"`
	Year           int        `json:"ano"`
	Month          int        `json:"mes"`
	CloseDate      *time.Time `json:"dataFechamento"`
}

// WithPeriodFromCloseDate preenche ano e mês a partir da data de fechamento
func (li LineItem) WithPeriodFromCloseDate() LineItem {
	if li.CloseDate == nil {
		return li
	}

	li.Year = li.CloseDate.Year()
	li.Month = int(li.CloseDate.Month())
	return li
}

// EffectiveCappedQuantity retorna a quantidade limitada do item.
// Sem limite informado vale a quantidade bruta.
func (li LineItem) EffectiveCappedQuantity() float64 {
	if li.CappedQuantity > 0 || li.Quantity <= 0 {
		return li.CappedQuantity
	}
	return li.Quantity
}
