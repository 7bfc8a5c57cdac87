package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/httputil"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// Client handles communication with the unofficial Yahoo Finance API
// ⭐ SSOT: Yahoo Finance 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// Yahoo rejects requests without a browser-looking User-Agent
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// quoteSummary modules carrying price and analyst consensus data
const summaryModules = "financialData,recommendationTrend,price"

// NewClient creates a new Yahoo Finance client.
// The HTTP client should have transport retries disabled: a failed
// lookup is dropped by the aggregator, never retried.
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://query2.finance.yahoo.com"
	}
	return &Client{
		httpClient: httpClient,
		logger:     log.WithField("module", "yahoo"),
		baseURL:    baseURL,
	}
}

// FetchRating fetches the quote and analyst rating record for a ticker.
// Returns an error on any lookup failure (unknown symbol, network
// error, malformed response); callers treat that as "absent".
func (c *Client) FetchRating(ctx context.Context, symbol string) (*contracts.Rating, error) {
	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(summaryModules))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	rating, err := parseQuoteSummary(body, symbol)
	if err != nil {
		return nil, fmt.Errorf("parse quoteSummary for %s: %w", symbol, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"symbol":   symbol,
		"trend":    rating.Trend,
		"analysts": rating.Analysts,
	}).Debug("Rating fetched")

	return rating, nil
}
