package portfolio

// Seed is the initial state handed to New.
type Seed struct {
	Holdings    []Holding
	Performance map[string]Series
	// Selected defaults to the first holding when empty.
	Selected string
}

func weekly(values ...float64) Series {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	series := make(Series, 0, len(values))
	for i, v := range values {
		series = append(series, Point{Label: days[i%len(days)], Value: v})
	}
	return series
}

// DefaultSeed returns a fresh copy of the mock portfolio.
func DefaultSeed() Seed {
	return Seed{
		Holdings: []Holding{
			{Ticker: "AAPL", Name: "Apple Inc.", Price: 175.32, ChangePercent: 1.23, Shares: 25},
			{Ticker: "GOOGL", Name: "Alphabet Inc.", Price: 2821.12, ChangePercent: -0.45, Shares: 10},
			{Ticker: "TSLA", Name: "Tesla Inc.", Price: 785.22, ChangePercent: 2.75, Shares: 15},
		},
		Performance: map[string]Series{
			"AAPL":  weekly(170, 172, 174, 175, 175.32),
			"GOOGL": weekly(2780, 2795, 2810, 2820, 2821.12),
			"TSLA":  weekly(765, 770, 775, 780, 785.22),
		},
		Selected: "AAPL",
	}
}

// MockAddition returns the holding and series appended by the dashboard's add control.
func MockAddition() (Holding, Series) {
	return Holding{Ticker: "NFLX", Name: "Netflix Inc.", Price: 510.33, ChangePercent: 1.15, Shares: 5},
		weekly(500, 502, 507, 509, 510.33)
}
