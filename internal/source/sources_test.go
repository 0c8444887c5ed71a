package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goworksistemas/matriz-sub000/infrastructure/repository/mocks"
	"github.com/goworksistemas/matriz-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sourcesFixture struct {
	deals     *mocks.MockDealRepository
	lineItems *mocks.MockLineItemRepository
	goals     *mocks.MockSalesGoalRepository
	tasks     *mocks.MockTaskRepository
	sources   *Sources
}

func newSourcesFixture(t *testing.T, now time.Time) sourcesFixture {
	ctrl := gomock.NewController(t)

	f := sourcesFixture{
		deals:     mocks.NewMockDealRepository(ctrl),
		lineItems: mocks.NewMockLineItemRepository(ctrl),
		goals:     mocks.NewMockSalesGoalRepository(ctrl),
		tasks:     mocks.NewMockTaskRepository(ctrl),
	}
	f.sources = New(f.deals, f.lineItems, f.goals, f.tasks, time.Minute, func() time.Time { return now })

	return f
}

func TestTaskSourceClassifiesDueStatus(t *testing.T) {
	today := time.Date(2024, 5, 10, 9, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	f := newSourcesFixture(t, today)

	f.tasks.EXPECT().
		ListTasks(gomock.Any()).
		Return([]domain.Task{
			{ID: "1", Status: "aberta", DateEnd: &yesterday},
			{ID: "2", Status: "aberta"},
		}, nil).
		Times(1)

	tasks, err := f.sources.Tasks.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, domain.DueStatusOverdue, tasks[0].DueStatus)
	assert.Equal(t, 1, tasks[0].DaysOverdue)
	assert.Equal(t, domain.DueStatusNoDate, tasks[1].DueStatus)

	_, err = f.sources.Tasks.Get(context.Background())
	require.NoError(t, err)
}

func TestLineItemSourceLoadsAllYears(t *testing.T) {
	f := newSourcesFixture(t, time.Now())

	f.lineItems.EXPECT().
		ListLineItems(gomock.Any(), gomock.Nil()).
		Return([]domain.LineItem{{ID: "li1"}}, nil)

	items, err := f.sources.LineItems.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestSourcesLookup(t *testing.T) {
	f := newSourcesFixture(t, time.Now())

	for _, name := range []string{DealsSource, LineItemsSource, GoalsSource, TasksSource} {
		refresher, exists := f.sources.Lookup(name)
		require.True(t, exists, name)
		assert.Equal(t, name, refresher.Name())
	}

	_, exists := f.sources.Lookup("desconhecida")
	assert.False(t, exists)
}

func TestSourcesRefreshAll(t *testing.T) {
	f := newSourcesFixture(t, time.Now())
	dbErr := errors.New("banco fora do ar")

	f.deals.EXPECT().ListDeals(gomock.Any()).Return([]domain.Deal{{ID: "d1"}}, nil)
	f.lineItems.EXPECT().ListLineItems(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	f.goals.EXPECT().ListGoals(gomock.Any()).Return([]domain.SalesGoal{}, nil)
	f.tasks.EXPECT().ListTasks(gomock.Any()).Return([]domain.Task{}, nil)

	err := f.sources.RefreshAll(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	statuses := f.sources.Statuses()
	require.Len(t, statuses, 4)
	assert.Equal(t, 1, statuses[0].Records)
	assert.False(t, statuses[0].Stale)
	assert.True(t, statuses[1].Stale)
}
