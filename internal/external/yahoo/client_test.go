package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/httputil"
	"github.com/wonny/tickerpulse/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:       "test",
		LogLevel:  "error",
		LogFormat: "json",
	})
}

const fullSummary = `{
	"quoteSummary": {
		"result": [{
			"price": {
				"shortName": "Apple Inc.",
				"regularMarketPrice": {"raw": 180.5, "fmt": "180.50"}
			},
			"financialData": {
				"currentPrice": {"raw": 181.0, "fmt": "181.00"},
				"targetMeanPrice": {"raw": 217.2, "fmt": "217.20"},
				"recommendationKey": "buy",
				"numberOfAnalystOpinions": {"raw": 38, "fmt": "38"}
			},
			"recommendationTrend": {
				"trend": [
					{"period": "0m", "strongBuy": 12, "buy": 20, "hold": 5, "sell": 1, "strongSell": 0}
				]
			}
		}],
		"error": null
	}
}`

func TestParseQuoteSummary(t *testing.T) {
	rating, err := parseQuoteSummary([]byte(fullSummary), "AAPL")
	if err != nil {
		t.Fatalf("parseQuoteSummary() error = %v", err)
	}

	if rating.Symbol != "AAPL" {
		t.Errorf("Symbol = %s, want AAPL", rating.Symbol)
	}
	if rating.Name != "Apple Inc." {
		t.Errorf("Name = %s, want Apple Inc.", rating.Name)
	}
	// financialData.currentPrice wins over price module
	if rating.Price == nil || *rating.Price != 181.0 {
		t.Errorf("Price = %v, want 181.0", rating.Price)
	}
	if rating.TargetPrice == nil || *rating.TargetPrice != 217.2 {
		t.Errorf("TargetPrice = %v, want 217.2", rating.TargetPrice)
	}
	if rating.Trend != contracts.TrendBuy {
		t.Errorf("Trend = %s, want buy", rating.Trend)
	}
	if rating.Label != "Buy" {
		t.Errorf("Label = %s, want Buy", rating.Label)
	}
	if rating.Analysts != 38 {
		t.Errorf("Analysts = %d, want 38", rating.Analysts)
	}

	// upside = (217.2 - 181.0) / 181.0 * 100
	want := (217.2 - 181.0) / 181.0 * 100
	if rating.Upside == nil {
		t.Fatal("Upside is nil")
	}
	if diff := *rating.Upside - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Upside = %v, want %v", *rating.Upside, want)
	}
}

func TestParseQuoteSummary_MissingPrices(t *testing.T) {
	body := `{
		"quoteSummary": {
			"result": [{
				"price": {"shortName": "Mystery Corp"},
				"financialData": {"recommendationKey": "hold"}
			}],
			"error": null
		}
	}`

	rating, err := parseQuoteSummary([]byte(body), "MYST")
	if err != nil {
		t.Fatalf("parseQuoteSummary() error = %v", err)
	}

	if rating.Price != nil || rating.TargetPrice != nil {
		t.Error("expected absent prices")
	}
	if rating.Upside != nil {
		t.Error("upside must be absent when prices are absent")
	}
	if rating.Trend != contracts.TrendHold {
		t.Errorf("Trend = %s, want hold", rating.Trend)
	}
}

func TestParseQuoteSummary_TrendFallbackToVotes(t *testing.T) {
	body := `{
		"quoteSummary": {
			"result": [{
				"recommendationTrend": {
					"trend": [
						{"period": "0m", "strongBuy": 9, "buy": 3, "hold": 1, "sell": 0, "strongSell": 0},
						{"period": "-1m", "strongBuy": 1, "buy": 8, "hold": 2, "sell": 0, "strongSell": 0}
					]
				}
			}],
			"error": null
		}
	}`

	rating, err := parseQuoteSummary([]byte(body), "SMOL")
	if err != nil {
		t.Fatalf("parseQuoteSummary() error = %v", err)
	}

	if rating.Trend != contracts.TrendStrongBuy {
		t.Errorf("Trend = %s, want strongBuy (current-period vote leader)", rating.Trend)
	}
	if rating.Label != "Strong Buy" {
		t.Errorf("Label = %s, want Strong Buy", rating.Label)
	}
}

func TestParseQuoteSummary_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"api error", `{"quoteSummary":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`},
		{"empty result", `{"quoteSummary":{"result":[],"error":null}}`},
		{"malformed json", `{"quoteSummary":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseQuoteSummary([]byte(tt.body), "XXXX"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFetchRating(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v10/finance/quoteSummary/AAPL" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != browserUserAgent {
			t.Errorf("missing browser User-Agent, got %s", ua)
		}
		fmt.Fprint(w, fullSummary)
	}))
	defer server.Close()

	cfg := &config.Config{Env: "test", LogLevel: "error"}
	httpClient := httputil.New(cfg, testLogger()).DisableRetry()
	client := NewClient(httpClient, server.URL, testLogger())

	rating, err := client.FetchRating(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchRating() error = %v", err)
	}
	if rating.Symbol != "AAPL" || rating.Analysts != 38 {
		t.Errorf("unexpected rating: %+v", rating)
	}
}

func TestFetchRating_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cfg := &config.Config{Env: "test", LogLevel: "error"}
	httpClient := httputil.New(cfg, testLogger()).DisableRetry()
	client := NewClient(httpClient, server.URL, testLogger())

	if _, err := client.FetchRating(context.Background(), "ZZZZZ"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestFetchRating_Live(t *testing.T) {
	if testing.Short() || os.Getenv("YAHOO_LIVE_TEST") == "" {
		t.Skip("live API test; set YAHOO_LIVE_TEST=1 to run")
	}

	cfg := &config.Config{Env: "test", LogLevel: "error"}
	httpClient := httputil.New(cfg, testLogger()).DisableRetry()
	client := NewClient(httpClient, "", testLogger())

	rating, err := client.FetchRating(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FetchRating() error = %v", err)
	}
	if rating.Analysts == 0 {
		t.Error("expected nonzero analyst coverage for AAPL")
	}
}
