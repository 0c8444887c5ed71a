// Package aggregating reduz listas filtradas em totais e séries para gráficos
package aggregating

import (
	"sort"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

func round(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}

// Totals soma negócios, posições, valor e comissão simples
func Totals(deals []domain.Deal) domain.CommissionTotals {
	var positions, amount, commission decimal.Decimal

	for _, deal := range deals {
		positions = positions.Add(decimal.NewFromFloat(deal.Positions))
		amount = amount.Add(decimal.NewFromFloat(deal.Amount))
		commission = commission.Add(decimal.NewFromFloat(deal.EffectiveSimpleCommission()))
	}

	return domain.CommissionTotals{
		Deals:            len(deals),
		Positions:        round(positions),
		Amount:           round(amount),
		SimpleCommission: round(commission),
	}
}

// GroupBy acumula value por chave e devolve pares nome/valor na ordem em que as chaves aparecem.
// Registros com chave vazia entram no grupo "Não informado".
func GroupBy[T any](records []T, key func(T) string, value func(T) float64) []domain.ChartItem {
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	for _, record := range records {
		name := key(record)
		if name == "" {
			name = Unknown
		}

		current, exists := sums[name]
		if !exists {
			order = append(order, name)
		}
		sums[name] = current.Add(decimal.NewFromFloat(value(record)))
	}

	items := make([]domain.ChartItem, 0, len(order))
	for _, name := range order {
		items = append(items, domain.ChartItem{Name: name, Value: round(sums[name])})
	}

	return items
}

// Unknown é o nome do grupo de registros sem valor na chave
const Unknown = "Não informado"

// Count é o acumulador de contagem para GroupBy
func Count[T any](T) float64 {
	return 1
}

// GroupByMany é como GroupBy para registros que pertencem a vários grupos. Cada chave
// distinta de um registro conta uma vez.
func GroupByMany[T any](records []T, keys func(T) []string, value func(T) float64) []domain.ChartItem {
	type pair struct {
		record T
		key    string
	}

	expanded := make([]pair, 0, len(records))
	for _, record := range records {
		seen := make(map[string]struct{})
		for _, key := range keys(record) {
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			expanded = append(expanded, pair{record: record, key: key})
		}
	}

	return GroupBy(expanded,
		func(p pair) string { return p.key },
		func(p pair) float64 { return value(p.record) },
	)
}

// TopN ordena de forma estável por valor decrescente e mantém os n primeiros. n <= 0 mantém todos.
func TopN(items []domain.ChartItem, n int) []domain.ChartItem {
	sorted := make([]domain.ChartItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
