package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/tickerpulse/internal/contracts"
)

func f(v float64) *float64 { return &v }

func rec(symbol string, trend contracts.Trend, upside *float64, analysts int) contracts.Rating {
	return contracts.Rating{
		Symbol:   symbol,
		Trend:    trend,
		Upside:   upside,
		Analysts: analysts,
	}
}

func TestScore(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	tests := []struct {
		name string
		rec  contracts.Rating
		want float64
	}{
		{
			name: "strong buy with moderate upside",
			rec:  rec("AAPL", contracts.TrendStrongBuy, f(25), 8),
			want: 5*20 + 25 + 8*2, // 141
		},
		{
			name: "upside clamped at cap",
			rec:  rec("MOON", contracts.TrendBuy, f(400), 3),
			want: 4*20 + 50 + 3*2, // 136
		},
		{
			name: "negative upside subtracts, no floor clamp",
			rec:  rec("DIP", contracts.TrendHold, f(-30), 5),
			want: 3*20 + -30 + 5*2, // 40
		},
		{
			name: "absent upside contributes zero",
			rec:  rec("NOPX", contracts.TrendBuy, nil, 5),
			want: 4*20 + 0 + 5*2, // 90
		},
		{
			name: "analyst coverage clamped at cap",
			rec:  rec("BIGCO", contracts.TrendHold, f(10), 45),
			want: 3*20 + 10 + 10*2, // 90
		},
		{
			name: "unknown trend scores zero trend component",
			rec:  rec("MYST", contracts.TrendUnknown, f(5), 0),
			want: 0 + 5 + 0, // 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ranker.Score(&tt.rec), 1e-9)
		})
	}
}

func TestTopPicks_SortedDescendingAndBounded(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	records := []contracts.Rating{
		rec("LOW1", contracts.TrendSell, f(-10), 1),       // 32
		rec("TOP1", contracts.TrendStrongBuy, f(40), 10),  // 160
		rec("MID1", contracts.TrendHold, f(15), 4),        // 83
		rec("TOP2", contracts.TrendStrongBuy, f(10), 10),  // 130
		rec("MID2", contracts.TrendBuy, f(5), 2),          // 89
		rec("LOW2", contracts.TrendStrongSell, f(-20), 0), // 0
		rec("MID3", contracts.TrendBuy, nil, 6),           // 92
	}

	picks := ranker.TopPicks(records, 5)

	require.Len(t, picks, 5)
	for i := 1; i < len(picks); i++ {
		assert.GreaterOrEqual(t,
			ranker.Score(&picks[i-1]), ranker.Score(&picks[i]),
			"picks not in descending score order at %d", i)
	}
	assert.Equal(t, "TOP1", picks[0].Symbol)
	assert.Equal(t, "TOP2", picks[1].Symbol)

	// Input slice untouched
	assert.Equal(t, "LOW1", records[0].Symbol)
}

func TestTopPicks_FewerRecordsThanCount(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	records := []contracts.Rating{
		rec("BBB", contracts.TrendHold, nil, 0),
		rec("AAA", contracts.TrendBuy, nil, 0),
	}

	picks := ranker.TopPicks(records, 5)

	require.Len(t, picks, 2)
	assert.Equal(t, "AAA", picks[0].Symbol) // still sorted by score
}

func TestTopPicks_StableOnTies(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	// Identical scores: relative input order must be preserved
	records := []contracts.Rating{
		rec("FIRST", contracts.TrendBuy, f(10), 5),
		rec("SECOND", contracts.TrendBuy, f(10), 5),
		rec("THIRD", contracts.TrendBuy, f(10), 5),
	}

	picks := ranker.TopPicks(records, 3)

	require.Len(t, picks, 3)
	assert.Equal(t, []string{"FIRST", "SECOND", "THIRD"},
		[]string{picks[0].Symbol, picks[1].Symbol, picks[2].Symbol})
}

func TestTopPicks_DefaultCount(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	records := make([]contracts.Rating, 8)
	for i := range records {
		records[i] = rec("SYM", contracts.TrendHold, nil, i)
	}

	picks := ranker.TopPicks(records, 0)
	assert.Len(t, picks, DefaultTopCount)
}

func TestTopPicks_EmptyInput(t *testing.T) {
	ranker := NewRanker(DefaultScoreConfig(), testLogger())

	picks := ranker.TopPicks(nil, 5)
	assert.Empty(t, picks)
}
