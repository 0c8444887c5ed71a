// Package leaderboard monta o ranking da competição de vendas e o acompanhamento de metas
package leaderboard

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/filtering"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
	"github.com/samber/lo"
)

// DefaultCategories são as categorias de produto que contam seats na competição
var DefaultCategories = []string{"open space", "sala", "estação de trabalho"}

// DefaultThreshold é o mínimo de seats para entrar na competição
const DefaultThreshold = 105

// Rules são os parâmetros da competição
type Rules struct {
	Threshold  float64
	Categories []string
}

// InCategory verifica se o nome contém alguma das categorias, sem diferenciar maiúsculas
func (r Rules) InCategory(name string) bool {
	lowered := strings.ToLower(name)
	return lo.ContainsBy(r.Categories, func(category string) bool {
		category = strings.ToLower(strings.TrimSpace(category))
		return category != "" && strings.Contains(lowered, category)
	})
}

type ownerSeats struct {
	id, name    string
	seatsCapped float64
	seatsRaw    float64
	deals       []string
}

// Rank aplica o escopo de ano/mês, mantém apenas produtos das categorias da competição e
// ordena os vendedores por seats limitados. Empates mantêm a ordem de entrada.
func Rank(items []domain.LineItem, state domain.FilterState, rules Rules) []domain.LeaderboardEntry {
	scoped := filtering.Apply(items, state, filtering.LineItemSchema)
	eligible := lo.Filter(scoped, func(item domain.LineItem, _ int) bool {
		return rules.InCategory(item.Name)
	})

	owners := make(map[string]*ownerSeats)
	order := make([]*ownerSeats, 0)

	for _, item := range eligible {
		owner, exists := owners[item.OwnerID]
		if !exists {
			owner = &ownerSeats{id: item.OwnerID, name: item.OwnerName}
			owners[item.OwnerID] = owner
			order = append(order, owner)
		}
		if owner.name == "" {
			owner.name = item.OwnerName
		}

		owner.seatsCapped += item.EffectiveCappedQuantity()
		owner.seatsRaw += item.Quantity
		owner.deals = append(owner.deals, item.DealID)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].seatsCapped > order[j].seatsCapped
	})

	entries := make([]domain.LeaderboardEntry, 0, len(order))
	for i, owner := range order {
		capped := utils.RoundWithTwoDecimalPlace(owner.seatsCapped)
		entry := domain.LeaderboardEntry{
			Position:    i + 1,
			OwnerID:     owner.id,
			OwnerName:   owner.name,
			SeatsCapped: capped,
			SeatsRaw:    utils.RoundWithTwoDecimalPlace(owner.seatsRaw),
			DealsCount:  len(lo.Uniq(lo.Compact(owner.deals))),
		}
		entry.Eligible, entry.MissingSeats, entry.Status = rules.eligibility(capped)

		entries = append(entries, entry)
	}

	return entries
}

func (r Rules) eligibility(seatsCapped float64) (bool, float64, string) {
	if seatsCapped >= r.Threshold {
		return true, 0, domain.CompetitionStatusWithin
	}

	missing := math.Ceil(r.Threshold - seatsCapped)
	return false, missing, fmt.Sprintf("Faltam %d seats", int(missing))
}

// ApplyPreviousPositions preenche a variação de posição em relação ao ranking anterior.
// Valor positivo indica que o vendedor subiu.
func ApplyPreviousPositions(entries []domain.LeaderboardEntry, previous []domain.CompetitionRankingItem) []domain.LeaderboardEntry {
	before := lo.SliceToMap(previous, func(item domain.CompetitionRankingItem) (string, int) {
		return item.OwnerID, item.Position
	})

	updated := make([]domain.LeaderboardEntry, len(entries))
	for i, entry := range entries {
		if position, exists := before[entry.OwnerID]; exists && position > 0 {
			entry.PreviousPosition = position
			entry.PositionChange = position - entry.Position
		}
		updated[i] = entry
	}

	return updated
}
