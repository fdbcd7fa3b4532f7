package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoleludique/internal/game"
)

func TestPronounProvider(t *testing.T) {
	p, err := PronounProvider{}.NextPrompt("", 1)
	require.NoError(t, err)

	assert.Equal(t, game.KindSentence, p.Kind)
	assert.Contains(t, pronounSentences, p.Sentence)
	assert.Equal(t, pronounAccepted, p.Accepted)

	var tools []string
	for _, it := range p.Items {
		tools = append(tools, it.Display)
	}
	assert.Equal(t, pronounTools, tools)
}

func TestPunctuationProvider(t *testing.T) {
	p, err := PunctuationProvider{}.NextPrompt("", 1)
	require.NoError(t, err)

	assert.Equal(t, game.KindSentence, p.Kind)
	assert.Equal(t, punctuationAccepted, p.Accepted)

	// The shown sentence is the drawn word list, space separated, and each
	// word is an item in order.
	words := strings.Split(p.Sentence, " ")
	require.Len(t, p.Items, len(words))
	for i, w := range words {
		assert.Equal(t, w, p.Items[i].Display)
	}

	found := false
	for _, s := range punctuationSentences {
		if strings.Join(s, " ") == p.Sentence {
			found = true
			break
		}
	}
	assert.True(t, found, "sentence comes from the curriculum table")
}

func TestPunctuationCorpusAligned(t *testing.T) {
	// Each stripped sentence has its canonical corrected form at the same
	// index.
	require.Len(t, punctuationAccepted, len(punctuationSentences))
	for i, words := range punctuationSentences {
		lowered := strings.ToLower(punctuationAccepted[i])
		for _, w := range words {
			assert.Contains(t, lowered, strings.ToLower(w), "sentence %d", i)
		}
	}
}

func TestAlphabetProvider(t *testing.T) {
	for i := 0; i < 100; i++ {
		p, err := AlphabetProvider{}.NextPrompt("", 1)
		require.NoError(t, err)

		assert.Equal(t, game.KindFillIn, p.Kind)
		require.Len(t, p.Items, 26)

		assert.GreaterOrEqual(t, len(p.Blanks), 3)
		assert.LessOrEqual(t, len(p.Blanks), 7)

		for j, it := range p.Items {
			letter := string(alphabet[j])
			if want, blanked := p.Blanks[it.ID]; blanked {
				assert.Empty(t, it.Display, "blanked letters are hidden")
				assert.Equal(t, letter, want)
			} else {
				assert.Equal(t, letter, it.Display)
			}
		}
	}
}

func TestFrenchVerbMatchesComplete(t *testing.T) {
	subjects := map[string]bool{"je": true, "j'": true, "tu": true, "il,elle": true, "nous": true, "vous": true, "ils,elles": true}
	for verb, matches := range frenchVerbMatches {
		assert.Len(t, matches, 6, "verb %s", verb)
		for _, m := range matches {
			assert.True(t, subjects[m.Word], "verb %s has subject %q", verb, m.Word)
			assert.NotEmpty(t, m.Target)
		}
	}
}
