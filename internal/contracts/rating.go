package contracts

// Trend is the categorical analyst consensus bucket
// ⭐ SSOT: 애널리스트 컨센서스 버킷은 여기서만 정의
type Trend string

const (
	TrendStrongBuy  Trend = "strongBuy"
	TrendBuy        Trend = "buy"
	TrendHold       Trend = "hold"
	TrendSell       Trend = "sell"
	TrendStrongSell Trend = "strongSell"
	TrendUnknown    Trend = "unknown"
)

// ParseTrend normalizes a provider consensus label into a Trend bucket.
// Accepts both camelCase buckets and Yahoo recommendationKey values
// (strong_buy, underperform, ...). Unrecognized input maps to unknown.
func ParseTrend(s string) Trend {
	switch s {
	case "strongBuy", "strong_buy":
		return TrendStrongBuy
	case "buy", "overweight", "outperform":
		return TrendBuy
	case "hold", "neutral":
		return TrendHold
	case "sell", "underweight", "underperform":
		return TrendSell
	case "strongSell", "strong_sell":
		return TrendStrongSell
	default:
		return TrendUnknown
	}
}

// Weight returns the ordinal strength of the trend bucket (5 best, 0 unknown)
func (t Trend) Weight() int {
	switch t {
	case TrendStrongBuy:
		return 5
	case TrendBuy:
		return 4
	case TrendHold:
		return 3
	case TrendSell:
		return 2
	case TrendStrongSell:
		return 1
	default:
		return 0
	}
}

// Rating is one analyst rating record for a ticker.
// Created per successful provider fetch, never persisted.
type Rating struct {
	Symbol      string   `json:"symbol"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price,omitempty"`
	TargetPrice *float64 `json:"target_price,omitempty"`
	Label       string   `json:"rating"` // free text, e.g. "Buy", "Strong Buy", "Unknown"
	Analysts    int      `json:"analysts"`
	Trend       Trend    `json:"trend"`
	Upside      *float64 `json:"upside,omitempty"` // percent, absent if either price is absent
}

// UpsidePct computes the target-vs-current upside percentage.
// Returns nil when either price is absent or current is zero.
func UpsidePct(price, target *float64) *float64 {
	if price == nil || target == nil || *price == 0 {
		return nil
	}
	upside := (*target - *price) / *price * 100
	return &upside
}
