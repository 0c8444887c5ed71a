package commissioning

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/goworksistemas/matriz-sub000/internal/config"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/goworksistemas/matriz-sub000/internal/source"
	"github.com/goworksistemas/matriz-sub000/internal/source/mocks"
	"github.com/goworksistemas/matriz-sub000/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func stringPtr(s string) *string {
	return &s
}

func dealsFixture() []domain.Deal {
	return []domain.Deal{
		{ID: "1", OwnerID: "ana", OwnerName: "Ana", SDRID: stringPtr("sdr1"), SDRName: stringPtr("Carla"), Product: "Sala", ProductKind: domain.ProductKindPhysical, Stage: "Ganho", Positions: 65, WeightedPositions: 65, Amount: 10000, SimpleCommission: 1000},
		{ID: "2", OwnerID: "bruno", OwnerName: "Bruno", Product: "Endereço fiscal", ProductKind: domain.ProductKindVirtual, Stage: "Ganho", Positions: 10, WeightedPositions: 10, Amount: 2000, SimpleCommission: 200},
		{ID: "3", OwnerID: "ana", OwnerName: "Ana", SDRID: stringPtr("sdr2"), Product: "Sala", ProductKind: domain.ProductKindPhysical, Stage: "Contrato", Positions: 1, WeightedPositions: 1, Amount: 500, SimpleCommission: 50},
	}
}

func newService(t *testing.T) (*mocks.MockDealSource, Reporter) {
	ctrl := gomock.NewController(t)
	deals := mocks.NewMockDealSource(ctrl)

	cfg := &config.Config{Commission: config.Commission{SDRRate: 0.05}}
	return deals, NewService(deals, cfg)
}

func TestReport(t *testing.T) {
	deals, service := newService(t)
	deals.EXPECT().Get(gomock.Any()).Return(dealsFixture(), nil)

	report, err := service.Report(context.Background(), domain.ReportFilters{
		Global: domain.FilterState{domain.FilterStage: "Ganho"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Totals.Deals)
	assert.Equal(t, 12000.0, report.Totals.Amount)

	require.Len(t, report.Owners, 2)
	assert.Equal(t, "ana", report.Owners[0].OwnerID)
	assert.Equal(t, "≥65", report.Owners[0].PhysicalTier.Label)
	assert.Equal(t, 350.0, report.Owners[0].PhysicalTier.Premium)
	assert.Equal(t, 1350.0, report.Owners[0].TotalToReceive)
	assert.Equal(t, 1550.0, report.Consolidated.TotalToReceive)

	require.Len(t, report.SDRs, 1)
	assert.Equal(t, "sdr1", report.SDRs[0].SDRID)
	assert.Equal(t, 500.0, report.SDRs[0].Commission)

	assert.ElementsMatch(t, []domain.ChartItem{{Name: "Ganho", Value: 2}}, report.ByStage)
	assert.Equal(t, []domain.ChartItem{{Name: "Ana", Value: 10000}, {Name: "Bruno", Value: 2000}}, report.TopOwners)
}

func TestReportOwnerFilterIsScopedByGlobal(t *testing.T) {
	deals, service := newService(t)
	deals.EXPECT().Get(gomock.Any()).Return(dealsFixture(), nil)

	report, err := service.Report(context.Background(), domain.ReportFilters{
		Global: domain.FilterState{domain.FilterStage: "Contrato"},
		Owner:  domain.FilterState{domain.FilterOwner: "bruno"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Totals.Deals)
	assert.Equal(t, 0, report.OwnerTotals.Deals)
	assert.Empty(t, report.Owners)
	assert.Equal(t, 1, report.SDRTotals.Deals)
}

func TestReportInvalidFilter(t *testing.T) {
	_, service := newService(t)

	report, err := service.Report(context.Background(), domain.ReportFilters{
		Global: domain.FilterState{domain.FilterStartDate: "31/12/2024"},
	})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestReportSourceError(t *testing.T) {
	deals, service := newService(t)
	deals.EXPECT().Get(gomock.Any()).Return(nil, source.ErrSourceUnavailable)

	report, err := service.Report(context.Background(), domain.ReportFilters{})

	assert.Nil(t, report)
	assert.True(t, errors.Is(err, source.ErrSourceUnavailable))
}
