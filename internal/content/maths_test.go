package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoleludique/internal/game"
)

func TestRangeFor(t *testing.T) {
	tests := []struct {
		period int
		min    int
		max    int
	}{
		{period: 1, min: 0, max: 20},
		{period: 2, min: 0, max: 60},
		{period: 3, min: 0, max: 69},
	}

	for _, tt := range tests {
		r, err := rangeFor(tt.period)
		require.NoError(t, err)
		assert.Equal(t, tt.min, r.Min)
		assert.Equal(t, tt.max, r.Max)
	}
}

func TestUnknownPeriodIsRejectedByEveryProvider(t *testing.T) {
	providers := map[string]game.Provider{
		"arithmetic":     ArithmeticProvider{},
		"ordering":       OrderingProvider{},
		"comparison":     ComparisonProvider{},
		"clock":          ClockProvider{},
		"punctuation":    PunctuationProvider{},
		"pronouns":       PronounProvider{},
		"alphabet":       AlphabetProvider{},
		"matching":       MatchingProvider{Universe: englishMatches, Count: 5},
		"classification": ClassificationProvider{Universe: discoveryThemes, Count: 5},
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			for _, period := range []int{0, 4, -1} {
				_, err := p.NextPrompt("", period)
				assert.ErrorIs(t, err, game.ErrInvalidConfiguration, "period %d", period)
			}
		})
	}
}

func TestArithmeticProvider(t *testing.T) {
	for _, period := range []int{1, 2, 3} {
		r := periodRanges[period]
		for i := 0; i < 200; i++ {
			p, err := ArithmeticProvider{}.NextPrompt("", period)
			require.NoError(t, err)
			require.Len(t, p.Items, 2)

			a, b := p.Items[0].Value, p.Items[1].Value
			assert.GreaterOrEqual(t, a, b, "larger operand comes first")
			for _, v := range []int{a, b} {
				assert.GreaterOrEqual(t, v, r.Min)
				assert.LessOrEqual(t, v, r.Max)
			}

			switch p.Answer.Operator {
			case "+":
				assert.Equal(t, a+b, p.Answer.Value)
			case "-":
				assert.Equal(t, a-b, p.Answer.Value)
				assert.GreaterOrEqual(t, p.Answer.Value, 0, "subtractions never go negative")
			default:
				t.Fatalf("unexpected operator %q", p.Answer.Operator)
			}
		}
	}
}

func TestOrderingProvider(t *testing.T) {
	for i := 0; i < 100; i++ {
		p, err := OrderingProvider{Count: 6}.NextPrompt("", 1)
		require.NoError(t, err)
		require.Len(t, p.Items, 6)
		require.Len(t, p.Start[game.SlotSequence], 6)

		seen := make(map[int]bool)
		for _, it := range p.Items {
			assert.False(t, seen[it.Value], "values are distinct")
			seen[it.Value] = true
			assert.GreaterOrEqual(t, it.Value, 0)
			assert.LessOrEqual(t, it.Value, 20)
		}

		assert.Contains(t, []game.SortOrder{game.OrderAsc, game.OrderDesc}, p.Order)
	}
}

func TestOrderingProviderDefaultCount(t *testing.T) {
	p, err := OrderingProvider{}.NextPrompt("", 1)
	require.NoError(t, err)
	assert.Len(t, p.Items, 6)
}

func TestComparisonProvider(t *testing.T) {
	for i := 0; i < 200; i++ {
		p, err := ComparisonProvider{}.NextPrompt("", 2)
		require.NoError(t, err)
		require.Len(t, p.Items, 2)

		a, b := p.Items[0].Value, p.Items[1].Value
		switch {
		case a < b:
			assert.Equal(t, "<", p.Answer.Operator)
		case a > b:
			assert.Equal(t, ">", p.Answer.Operator)
		default:
			assert.Equal(t, "=", p.Answer.Operator)
		}
	}
}

func TestClockProvider(t *testing.T) {
	for i := 0; i < 200; i++ {
		p, err := ClockProvider{}.NextPrompt("", 1)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, p.Answer.Hours, 1)
		assert.LessOrEqual(t, p.Answer.Hours, 12)
		assert.GreaterOrEqual(t, p.Answer.Minutes, 0)
		assert.LessOrEqual(t, p.Answer.Minutes, 55)
		assert.Zero(t, p.Answer.Minutes%5, "minutes land on five minute steps")
	}
}
