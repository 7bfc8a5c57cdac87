package yahoo

import (
	"encoding/json"
	"fmt"

	"github.com/wonny/tickerpulse/internal/contracts"
)

// quoteSummary v10 response shapes. Numeric fields arrive as
// {"raw": 123.45, "fmt": "123.45"} objects; only raw is used.

type rawNumber struct {
	Raw *float64 `json:"raw"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	Price *struct {
		ShortName          string    `json:"shortName"`
		LongName           string    `json:"longName"`
		RegularMarketPrice rawNumber `json:"regularMarketPrice"`
	} `json:"price"`

	FinancialData *struct {
		CurrentPrice            rawNumber `json:"currentPrice"`
		TargetMeanPrice         rawNumber `json:"targetMeanPrice"`
		RecommendationKey       string    `json:"recommendationKey"`
		NumberOfAnalystOpinions struct {
			Raw *int `json:"raw"`
		} `json:"numberOfAnalystOpinions"`
	} `json:"financialData"`

	RecommendationTrend *struct {
		Trend []trendPeriod `json:"trend"`
	} `json:"recommendationTrend"`
}

type trendPeriod struct {
	Period     string `json:"period"`
	StrongBuy  int    `json:"strongBuy"`
	Buy        int    `json:"buy"`
	Hold       int    `json:"hold"`
	Sell       int    `json:"sell"`
	StrongSell int    `json:"strongSell"`
}

// parseQuoteSummary maps a raw quoteSummary body into a Rating record
func parseQuoteSummary(data []byte, symbol string) (*contracts.Rating, error) {
	var parsed quoteSummaryResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if apiErr := parsed.QuoteSummary.Error; apiErr != nil {
		return nil, fmt.Errorf("API error: %s (%s)", apiErr.Description, apiErr.Code)
	}
	if len(parsed.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}

	result := parsed.QuoteSummary.Result[0]

	rating := &contracts.Rating{
		Symbol: symbol,
		Name:   symbol,
		Label:  "Unknown",
		Trend:  contracts.TrendUnknown,
	}

	if result.Price != nil {
		if result.Price.ShortName != "" {
			rating.Name = result.Price.ShortName
		} else if result.Price.LongName != "" {
			rating.Name = result.Price.LongName
		}
		rating.Price = result.Price.RegularMarketPrice.Raw
	}

	if fd := result.FinancialData; fd != nil {
		// financialData.currentPrice is fresher than the price module
		if fd.CurrentPrice.Raw != nil {
			rating.Price = fd.CurrentPrice.Raw
		}
		rating.TargetPrice = fd.TargetMeanPrice.Raw

		if fd.RecommendationKey != "" && fd.RecommendationKey != "none" {
			rating.Trend = contracts.ParseTrend(fd.RecommendationKey)
			rating.Label = labelForTrend(rating.Trend)
		}
		if fd.NumberOfAnalystOpinions.Raw != nil {
			rating.Analysts = *fd.NumberOfAnalystOpinions.Raw
		}
	}

	// Fall back to the consensus vote counts when financialData carries
	// no recommendation key (common for smaller symbols)
	if rating.Trend == contracts.TrendUnknown && result.RecommendationTrend != nil {
		if trend, ok := dominantTrend(result.RecommendationTrend.Trend); ok {
			rating.Trend = trend
			rating.Label = labelForTrend(trend)
		}
	}

	rating.Upside = contracts.UpsidePct(rating.Price, rating.TargetPrice)

	return rating, nil
}

// labelForTrend renders the display label for a trend bucket
func labelForTrend(trend contracts.Trend) string {
	switch trend {
	case contracts.TrendStrongBuy:
		return "Strong Buy"
	case contracts.TrendBuy:
		return "Buy"
	case contracts.TrendHold:
		return "Hold"
	case contracts.TrendSell:
		return "Sell"
	case contracts.TrendStrongSell:
		return "Strong Sell"
	default:
		return "Unknown"
	}
}

// dominantTrend picks the current-period bucket with the most votes
func dominantTrend(periods []trendPeriod) (contracts.Trend, bool) {
	for _, p := range periods {
		if p.Period != "0m" {
			continue
		}

		votes := []struct {
			trend contracts.Trend
			count int
		}{
			{contracts.TrendStrongBuy, p.StrongBuy},
			{contracts.TrendBuy, p.Buy},
			{contracts.TrendHold, p.Hold},
			{contracts.TrendSell, p.Sell},
			{contracts.TrendStrongSell, p.StrongSell},
		}

		best, bestCount := contracts.TrendUnknown, 0
		for _, v := range votes {
			if v.count > bestCount {
				best, bestCount = v.trend, v.count
			}
		}
		if bestCount > 0 {
			return best, true
		}
	}
	return contracts.TrendUnknown, false
}
