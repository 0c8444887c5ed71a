package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	repomocks "github.com/goworksistemas/matriz-sub000/infrastructure/repository/mocks"
	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/engine/leaderboard"
	"github.com/goworksistemas/matriz-sub000/internal/source/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	lineItems   *mocks.MockLineItemSource
	goals       *mocks.MockGoalSource
	rankingRepo *repomocks.MockCompetitionRankingRepository
	service     RankingService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		lineItems:   mocks.NewMockLineItemSource(ctrl),
		goals:       mocks.NewMockGoalSource(ctrl),
		rankingRepo: repomocks.NewMockCompetitionRankingRepository(ctrl),
	}
	f.service = NewCompetitionRankingService(f.lineItems, f.goals, f.rankingRepo, &config.Config{}).
		WithClock(func() time.Time { return time.Date(2024, 5, 20, 10, 0, 0, 0, time.Local) })

	return f
}

func lineItemsFixture() []domain.LineItem {
	return []domain.LineItem{
		{DealID: "d1", OwnerID: "ana", OwnerName: "Ana", Name: "Open Space - Sala 4", Quantity: 50, CappedQuantity: 48, Value: 20000, Year: 2024, Month: 5},
		{DealID: "d2", OwnerID: "bruno", OwnerName: "Bruno", Name: "Sala privativa", Quantity: 110, CappedQuantity: 110, Value: 50000, Year: 2024, Month: 5},
		{DealID: "d3", OwnerID: "bruno", OwnerName: "Bruno", Name: "Endereço fiscal", Quantity: 1, CappedQuantity: 1, Value: 300, Year: 2024, Month: 5},
		{DealID: "d4", OwnerID: "ana", OwnerName: "Ana", Name: "Sala", Quantity: 10, CappedQuantity: 10, Value: 4000, Year: 2024, Month: 2},
	}
}

func TestGetCompetitionReportDefaultsToCurrentMonth(t *testing.T) {
	f := newFixture(t)

	f.lineItems.EXPECT().Get(gomock.Any()).Return(lineItemsFixture(), nil)
	f.goals.EXPECT().Get(gomock.Any()).Return([]domain.SalesGoal{
		{Year: 2024, Month: 5, MonthlySeats: "200", AnnualRevenue: "1.000.000"},
	}, nil)
	f.rankingRepo.EXPECT().ListByMonth(gomock.Any(), "05-2024").Return([]domain.CompetitionRankingItem{
		{OwnerID: "ana", Position: 1},
		{OwnerID: "bruno", Position: 2},
	}, nil)

	report, err := f.service.GetCompetitionReport(context.Background(), domain.FilterState{})
	require.NoError(t, err)

	assert.Equal(t, "2024", report.Filters[domain.FilterYear])
	assert.Equal(t, "5", report.Filters[domain.FilterMonth])
	assert.Equal(t, float64(leaderboard.DefaultThreshold), report.Threshold)

	require.Len(t, report.Leaderboard, 2)
	assert.Equal(t, "bruno", report.Leaderboard[0].OwnerID)
	assert.Equal(t, domain.CompetitionStatusWithin, report.Leaderboard[0].Status)
	assert.Equal(t, 1, report.Leaderboard[0].PositionChange)
	assert.Equal(t, "Faltam 57 seats", report.Leaderboard[1].Status)
	assert.Equal(t, -1, report.Leaderboard[1].PositionChange)

	assert.Equal(t, 161.0, report.Goals.Monthly.Seats.Realized)
	assert.Equal(t, 80.5, *report.Goals.Monthly.Seats.Attainment)
	assert.False(t, report.Goals.Monthly.Revenue.HasGoal())
	assert.Equal(t, 74300.0, report.Goals.Annual.Revenue.Realized)
	assert.Equal(t, 7.43, *report.Goals.Annual.Revenue.Attainment)
}

func TestGetCompetitionReportPreviousRankingFailureIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.lineItems.EXPECT().Get(gomock.Any()).Return(lineItemsFixture(), nil)
	f.goals.EXPECT().Get(gomock.Any()).Return(nil, nil)
	f.rankingRepo.EXPECT().ListByMonth(gomock.Any(), "02-2024").Return(nil, errors.New("timeout"))

	report, err := f.service.GetCompetitionReport(context.Background(), domain.FilterState{
		domain.FilterYear:  "2024",
		domain.FilterMonth: "02",
	})
	require.NoError(t, err)

	require.Len(t, report.Leaderboard, 1)
	assert.Equal(t, "ana", report.Leaderboard[0].OwnerID)
	assert.Equal(t, 0, report.Leaderboard[0].PreviousPosition)
}

func TestGetCompetitionReportYearOnly(t *testing.T) {
	f := newFixture(t)

	f.lineItems.EXPECT().Get(gomock.Any()).Return(lineItemsFixture(), nil)
	f.goals.EXPECT().Get(gomock.Any()).Return(nil, nil)

	report, err := f.service.GetCompetitionReport(context.Background(), domain.FilterState{domain.FilterYear: "2024"})
	require.NoError(t, err)

	require.Len(t, report.Leaderboard, 2)
	assert.Equal(t, 110.0, report.Leaderboard[0].SeatsCapped)
	assert.Equal(t, 58.0, report.Leaderboard[1].SeatsCapped)
}

func TestGetCompetitionReportInvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GetCompetitionReport(context.Background(), domain.FilterState{domain.FilterYear: "dois mil"})

	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestGetCompetitionRanking(t *testing.T) {
	f := newFixture(t)

	expected := &domain.CompetitionRankingResponse{Ranking: []domain.CompetitionRankingItem{{OwnerID: "ana", Position: 1}}}
	f.rankingRepo.EXPECT().GetByMonth(gomock.Any(), "05-2024").Return(expected, nil)

	ranking, err := f.service.GetCompetitionRanking(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, expected, ranking)

	_, err = f.service.GetCompetitionRanking(context.Background(), "2024-05")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
