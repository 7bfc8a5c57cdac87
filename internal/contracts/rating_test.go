package contracts

import (
	"math"
	"testing"
)

func TestParseTrend(t *testing.T) {
	tests := []struct {
		in   string
		want Trend
	}{
		{"strongBuy", TrendStrongBuy},
		{"strong_buy", TrendStrongBuy},
		{"buy", TrendBuy},
		{"outperform", TrendBuy},
		{"hold", TrendHold},
		{"neutral", TrendHold},
		{"sell", TrendSell},
		{"underperform", TrendSell},
		{"strongSell", TrendStrongSell},
		{"strong_sell", TrendStrongSell},
		{"", TrendUnknown},
		{"none", TrendUnknown},
	}

	for _, tt := range tests {
		if got := ParseTrend(tt.in); got != tt.want {
			t.Errorf("ParseTrend(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTrendWeight(t *testing.T) {
	tests := []struct {
		trend Trend
		want  int
	}{
		{TrendStrongBuy, 5},
		{TrendBuy, 4},
		{TrendHold, 3},
		{TrendSell, 2},
		{TrendStrongSell, 1},
		{TrendUnknown, 0},
		{Trend("garbage"), 0},
	}

	for _, tt := range tests {
		if got := tt.trend.Weight(); got != tt.want {
			t.Errorf("%s.Weight() = %d, want %d", tt.trend, got, tt.want)
		}
	}
}

func TestUpsidePct(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		price  *float64
		target *float64
		want   *float64
	}{
		{"positive upside", f(100), f(150), f(50)},
		{"negative upside", f(200), f(150), f(-25)},
		{"flat", f(100), f(100), f(0)},
		{"missing price", nil, f(150), nil},
		{"missing target", f(100), nil, nil},
		{"zero price", f(0), f(150), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpsidePct(tt.price, tt.target)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("UpsidePct() = %v, want %v", got, tt.want)
			}
			if got != nil && math.Abs(*got-*tt.want) > 1e-9 {
				t.Errorf("UpsidePct() = %v, want %v", *got, *tt.want)
			}
		})
	}
}

func TestAnalysisResultOutcomes(t *testing.T) {
	// no tickers found
	empty := &AnalysisResult{}
	if empty.HasTickers() || empty.HasRatings() {
		t.Error("empty result should have neither tickers nor ratings")
	}

	// tickers found but no ratings resolved is a valid, distinct outcome
	partial := &AnalysisResult{Tickers: []string{"AAPL", "MSFT"}}
	if !partial.HasTickers() {
		t.Error("expected HasTickers() = true")
	}
	if partial.HasRatings() {
		t.Error("expected HasRatings() = false")
	}
}
