package ratings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/config"
	"github.com/wonny/tickerpulse/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{
		Env:       "test",
		LogLevel:  "error", // Reduce log noise
		LogFormat: "json",
	})
}

// fakeProvider is an in-memory RatingProvider that records call timing
// and concurrency, and fails on demand for selected symbols.
type fakeProvider struct {
	mu          sync.Mutex
	callTimes   map[string]time.Time
	inFlight    int
	maxInFlight int
	fail        map[string]bool
	delay       time.Duration
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		callTimes: make(map[string]time.Time),
		fail:      make(map[string]bool),
	}
}

func (f *fakeProvider) FetchRating(ctx context.Context, symbol string) (*contracts.Rating, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.callTimes[symbol] = time.Now()
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if f.fail[symbol] {
		return nil, errors.New("provider unavailable")
	}

	price, target := 100.0, 120.0
	return &contracts.Rating{
		Symbol:      symbol,
		Name:        symbol + " Inc",
		Price:       &price,
		TargetPrice: &target,
		Label:       "Buy",
		Analysts:    8,
		Trend:       contracts.TrendBuy,
		Upside:      contracts.UpsidePct(&price, &target),
	}, nil
}

func TestFetchMultiple_AllSucceed(t *testing.T) {
	provider := newFakeProvider()
	agg := NewAggregator(provider, DefaultConfig(), testLogger())

	tickers := []string{"AAPL", "MSFT", "NVDA"}
	got := agg.FetchMultiple(context.Background(), tickers)

	require.Len(t, got, 3)
	symbols := map[string]bool{}
	for _, r := range got {
		symbols[r.Symbol] = true
	}
	for _, tk := range tickers {
		assert.True(t, symbols[tk], "missing rating for %s", tk)
	}
}

func TestFetchMultiple_EmptyInput(t *testing.T) {
	agg := NewAggregator(newFakeProvider(), DefaultConfig(), testLogger())

	got := agg.FetchMultiple(context.Background(), nil)
	assert.Empty(t, got)
}

func TestFetchMultiple_FailuresAreAbsorbed(t *testing.T) {
	provider := newFakeProvider()
	provider.fail["MSFT"] = true
	provider.fail["TSLA"] = true

	cfg := Config{BatchSize: 2, BatchDelay: time.Millisecond}
	agg := NewAggregator(provider, cfg, testLogger())

	// MSFT fails mid-batch, TSLA fails in a later batch; every other
	// ticker in the same and later batches must still resolve
	got := agg.FetchMultiple(context.Background(), []string{"AAPL", "MSFT", "NVDA", "TSLA", "AMZN"})

	require.Len(t, got, 3)
	for _, r := range got {
		assert.NotEqual(t, "MSFT", r.Symbol)
		assert.NotEqual(t, "TSLA", r.Symbol)
	}
}

func TestFetchMultiple_BatchConcurrencyBounded(t *testing.T) {
	provider := newFakeProvider()
	provider.delay = 20 * time.Millisecond

	cfg := Config{BatchSize: 5, BatchDelay: time.Millisecond}
	agg := NewAggregator(provider, cfg, testLogger())

	tickers := make([]string, 12)
	for i := range tickers {
		tickers[i] = fmt.Sprintf("TK%c", 'A'+i)
	}

	got := agg.FetchMultiple(context.Background(), tickers)

	assert.Len(t, got, 12)
	// All calls within a batch run concurrently, never across batches
	assert.LessOrEqual(t, provider.maxInFlight, 5, "in-flight calls exceeded batch size")
	assert.GreaterOrEqual(t, provider.maxInFlight, 2, "batch calls should overlap")
}

func TestFetchMultiple_InterBatchDelay(t *testing.T) {
	provider := newFakeProvider()
	provider.delay = 10 * time.Millisecond

	cfg := Config{BatchSize: 2, BatchDelay: 50 * time.Millisecond}
	agg := NewAggregator(provider, cfg, testLogger())

	agg.FetchMultiple(context.Background(), []string{"AAA", "BBB", "CCC"})

	// CCC (batch 2) starts only after batch 1 settled plus the delay
	first := provider.callTimes["AAA"]
	if provider.callTimes["BBB"].Before(first) {
		first = provider.callTimes["BBB"]
	}
	gap := provider.callTimes["CCC"].Sub(first)
	assert.GreaterOrEqual(t, gap, 55*time.Millisecond, "second batch started too early")
}

func TestFetchMultiple_CancelledBetweenBatches(t *testing.T) {
	provider := newFakeProvider()

	ctx, cancel := context.WithCancel(context.Background())

	cfg := Config{BatchSize: 2, BatchDelay: time.Second}
	agg := NewAggregator(provider, cfg, testLogger())

	// Cancel while the aggregator sits in the inter-batch pause
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	got := agg.FetchMultiple(ctx, []string{"AAA", "BBB", "CCC", "DDD"})

	// First batch resolved, second never started
	assert.Len(t, got, 2)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	_, calledCCC := provider.callTimes["CCC"]
	assert.False(t, calledCCC, "batch after cancellation must not run")
}
