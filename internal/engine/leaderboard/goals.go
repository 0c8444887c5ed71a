package leaderboard

import (
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/pkg/utils"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Realize calcula os totais realizados do ano e do mês, sem o filtro de categorias
func Realize(items []domain.LineItem, year, month int) (annual, monthly domain.Realized) {
	yearItems := lo.Filter(items, func(item domain.LineItem, _ int) bool {
		return item.Year == year
	})
	monthItems := lo.Filter(yearItems, func(item domain.LineItem, _ int) bool {
		return item.Month == month
	})

	return realize(yearItems), realize(monthItems)
}

func realize(items []domain.LineItem) domain.Realized {
	var revenue, seats decimal.Decimal
	deals := make([]string, 0, len(items))

	for _, item := range items {
		revenue = revenue.Add(decimal.NewFromFloat(item.Value))
		seats = seats.Add(decimal.NewFromFloat(item.Quantity))
		deals = append(deals, item.DealID)
	}

	return domain.Realized{
		Revenue: revenue.Round(2).InexactFloat64(),
		Seats:   seats.Round(2).InexactFloat64(),
		Deals:   len(lo.Uniq(lo.Compact(deals))),
	}
}

// TrackGoals compara o realizado com as metas. A meta mensal vem da linha do mês e a anual de
// qualquer linha do ano. Sem linha a meta é zero e o atingimento fica nulo.
func TrackGoals(goals []domain.SalesGoal, annual, monthly domain.Realized, year, month int) domain.GoalTracking {
	tracking := domain.GoalTracking{Year: year, Month: month}

	monthGoal, _ := lo.Find(goals, func(goal domain.SalesGoal) bool {
		return goal.Year == year && goal.Month == month
	})
	yearGoal, _ := lo.Find(goals, func(goal domain.SalesGoal) bool {
		return goal.Year == year && (goal.AnnualRevenue != "" || goal.AnnualSeats != "" || goal.AnnualDeals != "")
	})

	tracking.Monthly = domain.GoalScope{
		Revenue: attainment(monthly.Revenue, utils.ParseLocaleNumber(monthGoal.MonthlyRevenue)),
		Seats:   attainment(monthly.Seats, utils.ParseLocaleNumber(monthGoal.MonthlySeats)),
		Deals:   attainment(float64(monthly.Deals), utils.ParseLocaleNumber(monthGoal.MonthlyDeals)),
	}
	tracking.Annual = domain.GoalScope{
		Revenue: attainment(annual.Revenue, utils.ParseLocaleNumber(yearGoal.AnnualRevenue)),
		Seats:   attainment(annual.Seats, utils.ParseLocaleNumber(yearGoal.AnnualSeats)),
		Deals:   attainment(float64(annual.Deals), utils.ParseLocaleNumber(yearGoal.AnnualDeals)),
	}

	return tracking
}

// attainment retorna o percentual atingido com duas casas
func attainment(realized, target float64) domain.GoalAttainment {
	result := domain.GoalAttainment{Realized: realized, Target: target}
	if target <= 0 {
		return result
	}

	percent := utils.RoundWithTwoDecimalPlace(realized / target * 100)
	result.Attainment = &percent
	return result
}
