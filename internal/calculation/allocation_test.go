package calculation

import (
	"errors"
	"testing"

	"github.com/edusave/education-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchedule() *AllocationSchedule {
	return NewAllocationSchedule(domain.DefaultAssumptions())
}

func TestComputeStartAllocation_LongHorizonPlateau(t *testing.T) {
	as := newTestSchedule()

	// Ten years or more always yields the maximally aggressive mix.
	for _, horizon := range []int{10, 15, 25} {
		alloc := as.ComputeStartAllocation(horizon)
		assert.True(t, alloc.Stocks.Equal(decimal.NewFromInt(59)), "horizon %d stocks = %s", horizon, alloc.Stocks)
		assert.True(t, alloc.Bonds.Equal(decimal.NewFromInt(41)), "horizon %d bonds = %s", horizon, alloc.Bonds)
		assert.True(t, alloc.Cash.Equal(decimal.Zero), "horizon %d cash = %s", horizon, alloc.Cash)
	}
}

func TestComputeStartAllocation_ZeroHorizon(t *testing.T) {
	as := newTestSchedule()

	alloc := as.ComputeStartAllocation(0)
	assert.True(t, alloc.Stocks.Equal(decimal.NewFromInt(20)), "stocks = %s", alloc.Stocks)
	assert.True(t, alloc.Bonds.Equal(decimal.NewFromInt(41)), "bonds = %s", alloc.Bonds)
	assert.True(t, alloc.Cash.Equal(decimal.NewFromInt(39)), "cash = %s", alloc.Cash)
}

func TestComputeStartAllocation_SumsToExactlyOneHundred(t *testing.T) {
	as := newTestSchedule()

	for horizon := 0; horizon <= 20; horizon++ {
		alloc := as.ComputeStartAllocation(horizon)
		assert.True(t, alloc.Sum().Equal(decimal.NewFromInt(100)),
			"horizon %d sums to %s", horizon, alloc.Sum())
		assert.NoError(t, alloc.Validate())
	}
}

func TestComputeStartAllocation_StocksMonotonicInHorizon(t *testing.T) {
	as := newTestSchedule()

	prev := decimal.NewFromInt(-1)
	for horizon := 0; horizon <= 10; horizon++ {
		alloc := as.ComputeStartAllocation(horizon)
		assert.True(t, alloc.Stocks.GreaterThanOrEqual(prev),
			"stocks decreased at horizon %d: %s -> %s", horizon, prev, alloc.Stocks)
		prev = alloc.Stocks
	}
}

func TestGenerateGlidePath_Endpoints(t *testing.T) {
	as := newTestSchedule()

	path, err := as.GenerateGlidePath(4)
	require.NoError(t, err)
	require.Len(t, path, 5)

	start := as.ComputeStartAllocation(4)
	assert.True(t, path[0].Allocation.Stocks.Equal(start.Stocks))
	assert.True(t, path[0].Allocation.Bonds.Equal(start.Bonds))
	assert.True(t, path[0].Allocation.Cash.Equal(start.Cash))

	end := path[4].Allocation
	assert.True(t, end.Stocks.Equal(decimal.NewFromInt(20)), "end stocks = %s", end.Stocks)
	assert.True(t, end.Bonds.Equal(decimal.NewFromInt(43)), "end bonds = %s", end.Bonds)
	assert.True(t, end.Cash.Equal(decimal.NewFromInt(37)), "end cash = %s", end.Cash)
}

func TestGenerateGlidePath_EveryYearSumsToOneHundred(t *testing.T) {
	as := newTestSchedule()
	tolerance := decimal.NewFromFloat(0.02)

	for _, horizon := range []int{1, 3, 4, 7, 10, 18} {
		path, err := as.GenerateGlidePath(horizon)
		require.NoError(t, err)
		require.Len(t, path, horizon+1)

		for _, point := range path {
			diff := point.Allocation.Sum().Sub(decimal.NewFromInt(100)).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"horizon %d year %d sums to %s", horizon, point.Year, point.Allocation.Sum())
			assert.NoError(t, point.Allocation.Validate())
		}
	}
}

func TestGenerateGlidePath_StocksDeclineTowardTarget(t *testing.T) {
	as := newTestSchedule()

	path, err := as.GenerateGlidePath(10)
	require.NoError(t, err)

	for i := 1; i < len(path); i++ {
		assert.True(t, path[i].Allocation.Stocks.LessThanOrEqual(path[i-1].Allocation.Stocks),
			"stocks rose from year %d to %d", i-1, i)
		assert.True(t, path[i].Allocation.Cash.GreaterThanOrEqual(path[i-1].Allocation.Cash),
			"cash fell from year %d to %d", i-1, i)
	}
}

func TestGenerateGlidePath_InvalidHorizon(t *testing.T) {
	as := newTestSchedule()

	for _, horizon := range []int{0, -1, -5} {
		path, err := as.GenerateGlidePath(horizon)
		assert.Nil(t, path)
		assert.True(t, errors.Is(err, ErrInvalidHorizon), "horizon %d returned %v", horizon, err)
	}
}

func TestGenerateGlidePath_SingleYearHorizon(t *testing.T) {
	as := newTestSchedule()

	path, err := as.GenerateGlidePath(1)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, 0, path[0].Year)
	assert.Equal(t, 1, path[1].Year)
	assert.True(t, path[1].Allocation.Stocks.Equal(decimal.NewFromInt(20)))
}
