package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoleludique/internal/game"
)

func TestNewPromptViewStripsGroundTruth(t *testing.T) {
	t.Run("classification hides item labels", func(t *testing.T) {
		p := &game.Prompt{
			Kind:       game.KindClassification,
			Theme:      "marin-terrestre-aerien",
			Items:      []game.Item{{ID: "requin", Display: "requin", Label: "Marin"}},
			Categories: []game.Category{{Name: "Marin", Definition: "Les créatures marines vivent dans l'eau."}},
		}

		raw, err := json.Marshal(newPromptView(p))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"label"`)
	})

	t.Run("matching hides the expected pairs", func(t *testing.T) {
		p := &game.Prompt{
			Kind:  game.KindMatching,
			Items: []game.Item{{ID: "je", Display: "je", Label: "mange"}},
			Pairs: map[string]string{"je": "mange"},
			Right: []game.Item{{ID: "r0", Display: "mange"}},
		}

		view := newPromptView(p)
		assert.Equal(t, []itemView{{ID: "r0", Display: "mange"}}, view.Right, "the shuffled right column is shown")

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"pairs"`)
	})

	t.Run("arithmetic hides the result but shows the operator", func(t *testing.T) {
		p := &game.Prompt{
			Kind:   game.KindArithmetic,
			Items:  []game.Item{{ID: "a", Display: "12", Value: 12}, {ID: "b", Display: "5", Value: 5}},
			Answer: game.Answer{Value: 17, Operator: "+"},
		}

		view := newPromptView(p)
		assert.Equal(t, "+", view.Operator)

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "17")
	})

	t.Run("comparison hides the expected sign", func(t *testing.T) {
		p := &game.Prompt{
			Kind:   game.KindComparison,
			Items:  []game.Item{{ID: "a", Display: "3", Value: 3}, {ID: "b", Display: "8", Value: 8}},
			Answer: game.Answer{Operator: "<"},
		}

		view := newPromptView(p)
		assert.Empty(t, view.Operator)
	})

	t.Run("clock exposes the time to draw the face", func(t *testing.T) {
		p := &game.Prompt{Kind: game.KindClock, Answer: game.Answer{Hours: 3, Minutes: 25}}

		view := newPromptView(p)
		require.NotNil(t, view.Clock)
		assert.Equal(t, 3, view.Clock.Hours)
		assert.Equal(t, 25, view.Clock.Minutes)
	})

	t.Run("fill-in hides the blanked letters", func(t *testing.T) {
		p := &game.Prompt{
			Kind:   game.KindFillIn,
			Items:  []game.Item{{ID: "l0", Display: "A"}, {ID: "l1", Display: ""}},
			Blanks: map[string]string{"l1": "B"},
		}

		raw, err := json.Marshal(newPromptView(p))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), `"blanks"`)
		assert.NotContains(t, string(raw), `"B"`)
	})

	t.Run("sentence hides the accepted set", func(t *testing.T) {
		p := &game.Prompt{
			Kind:     game.KindSentence,
			Sentence: "Les filles vont au cours de potions.",
			Accepted: []string{"elles vont au cours de potions."},
		}

		view := newPromptView(p)
		assert.Equal(t, p.Sentence, view.Sentence)

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "elles vont")
	})

	t.Run("nil prompt", func(t *testing.T) {
		assert.Nil(t, newPromptView(nil))
	})
}
