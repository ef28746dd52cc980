package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDefault(t *testing.T) *ViewModel {
	t.Helper()
	vm, err := New(DefaultSeed(), zap.NewNop())
	require.NoError(t, err)
	return vm
}

func TestTotalValueOnSeed(t *testing.T) {
	vm := newDefault(t)

	assert.True(t, vm.TotalValue().Equal(decimal.RequireFromString("44372.5")),
		"total = %s", vm.TotalValue())
}

func TestDistributionOnSeed(t *testing.T) {
	vm := newDefault(t)

	want := []Slice{
		{Label: "AAPL", Value: 4383.0},
		{Label: "GOOGL", Value: 28211.2},
		{Label: "TSLA", Value: 11778.3},
	}
	got := vm.Distribution()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Label, got[i].Label)
		assert.InDelta(t, want[i].Value, got[i].Value, 1e-9)
	}

	// order survives selection changes and repeated reads
	require.NoError(t, vm.SelectTicker("TSLA"))
	assert.Equal(t, got, vm.Distribution())
}

func TestSelectTicker(t *testing.T) {
	vm := newDefault(t)
	seed := DefaultSeed()

	for _, ticker := range []string{"GOOGL", "TSLA", "AAPL", "AAPL", "GOOGL"} {
		require.NoError(t, vm.SelectTicker(ticker))
		assert.Equal(t, ticker, vm.SelectedTicker())

		series, err := vm.PerformanceFor(vm.SelectedTicker())
		require.NoError(t, err)
		assert.Equal(t, seed.Performance[ticker], series)
	}
}

func TestSelectUnknownTicker(t *testing.T) {
	vm := newDefault(t)
	require.NoError(t, vm.SelectTicker("GOOGL"))

	err := vm.SelectTicker("DOES_NOT_EXIST")
	assert.ErrorIs(t, err, ErrUnknownTicker)
	assert.Equal(t, "GOOGL", vm.SelectedTicker())

	_, err = vm.PerformanceFor("DOES_NOT_EXIST")
	assert.ErrorIs(t, err, ErrUnknownTicker)
}

func TestAddHolding(t *testing.T) {
	vm := newDefault(t)
	before := vm.TotalValue()

	h, series := MockAddition()
	require.NoError(t, vm.AddHolding(h, series))

	delta := vm.TotalValue().Sub(before)
	assert.True(t, delta.Equal(decimal.RequireFromString("2551.65")), "delta = %s", delta)
	assert.Equal(t, "NFLX", vm.SelectedTicker())
	assert.Equal(t, 4, vm.Len())
	assert.Equal(t, 3, vm.IndexOf("NFLX"))

	got, err := vm.PerformanceFor("NFLX")
	require.NoError(t, err)
	assert.Equal(t, series, got)

	slices := vm.Distribution()
	assert.Equal(t, "NFLX", slices[len(slices)-1].Label)
}

func TestAddHoldingDuplicate(t *testing.T) {
	vm := newDefault(t)
	h, series := MockAddition()
	require.NoError(t, vm.AddHolding(h, series))
	require.NoError(t, vm.SelectTicker("AAPL"))

	holdings := vm.Holdings()
	total := vm.TotalValue()

	other := Series{{Label: "Mon", Value: 1}}
	err := vm.AddHolding(h, other)
	assert.ErrorIs(t, err, ErrDuplicateTicker)

	assert.Equal(t, holdings, vm.Holdings())
	assert.True(t, total.Equal(vm.TotalValue()))
	assert.Equal(t, "AAPL", vm.SelectedTicker())

	kept, err := vm.PerformanceFor("NFLX")
	require.NoError(t, err)
	assert.Equal(t, series, kept)
}

func TestAddHoldingRejectsOrphanSeries(t *testing.T) {
	seed := DefaultSeed()
	_, series := MockAddition()
	seed.Performance["NFLX"] = series

	vm, err := New(seed, zap.NewNop())
	require.NoError(t, err)

	h, _ := MockAddition()
	err = vm.AddHolding(h, series)
	assert.ErrorIs(t, err, ErrDuplicateTicker)
	assert.Equal(t, 3, vm.Len())
	_, found := vm.Holding("NFLX")
	assert.False(t, found)
}

func TestAddHoldingInvalid(t *testing.T) {
	_, series := MockAddition()

	tests := []struct {
		name    string
		holding Holding
		series  Series
	}{
		{name: "empty ticker", holding: Holding{Ticker: "  ", Price: 1, Shares: 1}, series: series},
		{name: "negative price", holding: Holding{Ticker: "X", Price: -1, Shares: 1}, series: series},
		{name: "negative shares", holding: Holding{Ticker: "X", Price: 1, Shares: -1}, series: series},
		{name: "empty series", holding: Holding{Ticker: "X", Price: 1, Shares: 1}, series: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := newDefault(t)
			err := vm.AddHolding(tt.holding, tt.series)
			assert.ErrorIs(t, err, ErrInvalidHolding)
			assert.Equal(t, 3, vm.Len())
			assert.Equal(t, "AAPL", vm.SelectedTicker())
		})
	}
}

func TestNewValidatesSeed(t *testing.T) {
	dup := DefaultSeed()
	dup.Holdings = append(dup.Holdings, dup.Holdings[0])
	_, err := New(dup, nil)
	assert.ErrorIs(t, err, ErrDuplicateTicker)

	missing := DefaultSeed()
	delete(missing.Performance, "AAPL")
	_, err = New(missing, nil)
	assert.ErrorIs(t, err, ErrUnknownTicker)

	noSelection := DefaultSeed()
	noSelection.Selected = ""
	vm, err := New(noSelection, nil)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", vm.SelectedTicker())
}

func TestReturnedDataIsCopied(t *testing.T) {
	vm := newDefault(t)

	holdings := vm.Holdings()
	holdings[0].Shares = 1000

	series, err := vm.PerformanceFor("AAPL")
	require.NoError(t, err)
	series[0].Value = -1

	h, ok := vm.Holding("AAPL")
	require.True(t, ok)
	assert.Equal(t, 25.0, h.Shares)

	again, err := vm.PerformanceFor("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 170.0, again[0].Value)
}

func TestWeights(t *testing.T) {
	vm := newDefault(t)

	weights := vm.Weights()
	require.Len(t, weights, 3)
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
	assert.InDelta(t, 4383.0/44372.5*100, weights[0], 1e-9)

	empty, err := New(Seed{}, nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Weights())
	assert.True(t, empty.TotalValue().IsZero())
}
