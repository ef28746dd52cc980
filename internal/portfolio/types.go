package portfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Holding is a single position shown as a card on the dashboard.
type Holding struct {
	Ticker        string  `json:"ticker" mapstructure:"ticker"`
	Name          string  `json:"name" mapstructure:"name"`
	Price         float64 `json:"price" mapstructure:"price"`
	ChangePercent float64 `json:"change_percent" mapstructure:"change_percent"`
	Shares        float64 `json:"shares" mapstructure:"shares"`
}

// Value returns price × shares.
func (h Holding) Value() decimal.Decimal {
	return decimal.NewFromFloat(h.Price).Mul(decimal.NewFromFloat(h.Shares))
}

func (h Holding) validate() error {
	if strings.TrimSpace(h.Ticker) == "" {
		return fmt.Errorf("%w: empty ticker", ErrInvalidHolding)
	}
	if h.Price < 0 {
		return fmt.Errorf("%w: %s: negative price %v", ErrInvalidHolding, h.Ticker, h.Price)
	}
	if h.Shares < 0 {
		return fmt.Errorf("%w: %s: negative shares %v", ErrInvalidHolding, h.Ticker, h.Shares)
	}
	return nil
}

// Point is one sample of a weekly performance trace.
type Point struct {
	Label string  `json:"label" mapstructure:"label"`
	Value float64 `json:"value" mapstructure:"value"`
}

// Series is an ordered performance trace.
type Series []Point

// Values returns the y values of the series in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// Labels returns the x labels of the series in order.
func (s Series) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

func (s Series) clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// Slice is one weight of the distribution chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
