// =============================
// File: internal/portfolio/viewmodel.go
// =============================
package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ViewModel owns the holdings, their performance series and the selected ticker.
// It is driven by a single actor and is not safe for concurrent mutation.
type ViewModel struct {
	holdings    []Holding
	index       map[string]int
	performance map[string]Series
	selected    string
	logger      *zap.Logger
}

// New builds a view model from an explicit seed.
func New(seed Seed, logger *zap.Logger) (*ViewModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	vm := &ViewModel{
		holdings:    make([]Holding, 0, len(seed.Holdings)),
		index:       make(map[string]int, len(seed.Holdings)),
		performance: make(map[string]Series, len(seed.Performance)),
		logger:      logger.Named("portfolio"),
	}

	for _, h := range seed.Holdings {
		if err := h.validate(); err != nil {
			return nil, err
		}
		if _, exists := vm.index[h.Ticker]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTicker, h.Ticker)
		}
		vm.index[h.Ticker] = len(vm.holdings)
		vm.holdings = append(vm.holdings, h)
	}
	for ticker, series := range seed.Performance {
		vm.performance[ticker] = series.clone()
	}

	selected := seed.Selected
	if selected == "" && len(vm.holdings) > 0 {
		selected = vm.holdings[0].Ticker
	}
	if selected != "" {
		if _, ok := vm.performance[selected]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, selected)
		}
	}
	vm.selected = selected

	vm.logger.Debug("Portfolio loaded",
		zap.Int("holdings", len(vm.holdings)),
		zap.Int("series", len(vm.performance)),
		zap.String("selected", vm.selected))

	return vm, nil
}

// AddHolding appends h and registers its series in one step, then selects it.
// On error nothing is changed.
func (vm *ViewModel) AddHolding(h Holding, series Series) error {
	if err := h.validate(); err != nil {
		return err
	}
	if len(series) == 0 {
		return fmt.Errorf("%w: %s: empty performance series", ErrInvalidHolding, h.Ticker)
	}
	if _, exists := vm.index[h.Ticker]; exists {
		vm.logger.Debug("Holding rejected", zap.String("ticker", h.Ticker))
		return fmt.Errorf("%w: %s", ErrDuplicateTicker, h.Ticker)
	}
	if _, exists := vm.performance[h.Ticker]; exists {
		return fmt.Errorf("%w: %s already has a performance series", ErrDuplicateTicker, h.Ticker)
	}

	vm.index[h.Ticker] = len(vm.holdings)
	vm.holdings = append(vm.holdings, h)
	vm.performance[h.Ticker] = series.clone()
	vm.selected = h.Ticker

	vm.logger.Info("Holding added",
		zap.String("ticker", h.Ticker),
		zap.Float64("shares", h.Shares),
		zap.Float64("price", h.Price))
	return nil
}

// SelectTicker changes the ticker shown in the performance chart.
func (vm *ViewModel) SelectTicker(ticker string) error {
	if _, ok := vm.performance[ticker]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	vm.selected = ticker
	return nil
}

// SelectedTicker returns the ticker shown in the performance chart.
func (vm *ViewModel) SelectedTicker() string {
	return vm.selected
}

// TotalValue sums price × shares over all holdings in insertion order.
func (vm *ViewModel) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range vm.holdings {
		total = total.Add(h.Value())
	}
	return total
}

// Distribution returns one slice per holding, in insertion order.
func (vm *ViewModel) Distribution() []Slice {
	slices := make([]Slice, len(vm.holdings))
	for i, h := range vm.holdings {
		slices[i] = Slice{Label: h.Ticker, Value: h.Value().InexactFloat64()}
	}
	return slices
}

// Weights returns each holding's share of the total value in percent,
// aligned with Distribution. All weights are zero for an empty or worthless portfolio.
func (vm *ViewModel) Weights() []float64 {
	weights := make([]float64, len(vm.holdings))
	total := vm.TotalValue()
	if total.IsZero() {
		return weights
	}
	hundred := decimal.NewFromInt(100)
	for i, h := range vm.holdings {
		weights[i] = h.Value().Mul(hundred).Div(total).InexactFloat64()
	}
	return weights
}

// PerformanceFor returns a copy of the series registered for ticker.
func (vm *ViewModel) PerformanceFor(ticker string) (Series, error) {
	series, ok := vm.performance[ticker]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTicker, ticker)
	}
	return series.clone(), nil
}

// Holdings returns a copy of the holdings in display order.
func (vm *ViewModel) Holdings() []Holding {
	out := make([]Holding, len(vm.holdings))
	copy(out, vm.holdings)
	return out
}

// Holding looks up a holding by ticker.
func (vm *ViewModel) Holding(ticker string) (Holding, bool) {
	i, ok := vm.index[ticker]
	if !ok {
		return Holding{}, false
	}
	return vm.holdings[i], true
}

// IndexOf returns the display position of ticker, or -1.
func (vm *ViewModel) IndexOf(ticker string) int {
	if i, ok := vm.index[ticker]; ok {
		return i
	}
	return -1
}

// Len returns the number of holdings.
func (vm *ViewModel) Len() int {
	return len(vm.holdings)
}
