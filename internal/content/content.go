// Package content holds the static theme tables of every mini-game and
// the content providers that draw prompts from them. Tables are read-only
// input: providers copy what they sample and never mutate the tables.
package content

import (
	"fmt"
	"math/rand"
	"sort"

	"ecoleludique/internal/game"
)

// Entry is one classifiable word with its ground-truth category.
type Entry struct {
	Word     string
	Category string
}

// Theme groups classification entries under named categories.
type Theme struct {
	Categories []game.Category
	Entries    []Entry
}

// Match is one left-right vocabulary pair for a matching ("relier") game.
// Target may be a translation, an image path or a color code; the game
// treats it as an opaque display value.
type Match struct {
	Word   string
	Target string
}

// pickTheme selects a theme name uniformly, resampling until it differs
// from the previous one. With a single theme the constraint is waived.
func pickTheme(names []string, previous string) string {
	if len(names) == 1 {
		return names[0]
	}
	for {
		name := names[rand.Intn(len(names))]
		if name != previous {
			return name
		}
	}
}

// sortedKeys returns map keys in a stable order so that theme selection
// is uniform regardless of map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sampleEntries draws count entries without replacement.
func sampleEntries(entries []Entry, count int) []Entry {
	if count > len(entries) {
		count = len(entries)
	}
	out := make([]Entry, 0, count)
	for _, i := range rand.Perm(len(entries))[:count] {
		out = append(out, entries[i])
	}
	return out
}

// sampleMatches draws count pairs without replacement.
func sampleMatches(matches []Match, count int) []Match {
	if count > len(matches) {
		count = len(matches)
	}
	out := make([]Match, 0, count)
	for _, i := range rand.Perm(len(matches))[:count] {
		out = append(out, matches[i])
	}
	return out
}

// ClassificationProvider builds classification prompts from a theme
// universe: a draw of items to drag into category bins.
type ClassificationProvider struct {
	Universe map[string]Theme
	Count    int
}

func (p ClassificationProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	name := pickTheme(sortedKeys(p.Universe), previousTheme)
	theme := p.Universe[name]
	drawn := sampleEntries(theme.Entries, p.Count)

	items := make([]game.Item, 0, len(drawn))
	tray := make([]string, 0, len(drawn))
	for _, e := range drawn {
		items = append(items, game.Item{ID: e.Word, Display: e.Word, Label: e.Category})
		tray = append(tray, e.Word)
	}

	start := map[string][]string{game.SlotTray: tray}
	for _, cat := range theme.Categories {
		start[cat.Name] = nil
	}

	return &game.Prompt{
		Kind:       game.KindClassification,
		Theme:      name,
		Items:      items,
		Categories: theme.Categories,
		Start:      start,
	}, nil
}

// MatchingProvider builds matching prompts: a draw of words on the left,
// their shuffled targets on the right, connected pair by pair.
type MatchingProvider struct {
	Universe map[string][]Match
	Count    int
}

func (p MatchingProvider) NextPrompt(previousTheme string, period int) (*game.Prompt, error) {
	if err := checkPeriod(period); err != nil {
		return nil, err
	}

	name := pickTheme(sortedKeys(p.Universe), previousTheme)
	drawn := sampleMatches(p.Universe[name], p.Count)

	items := make([]game.Item, 0, len(drawn))
	pairs := make(map[string]string, len(drawn))
	values := make([]string, 0, len(drawn))
	for _, m := range drawn {
		items = append(items, game.Item{ID: m.Word, Display: m.Word, Label: m.Target})
		pairs[m.Word] = m.Target
		values = append(values, m.Target)
	}
	rand.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })

	// Conjugation tables repeat forms, so right-hand elements get their
	// own IDs: connections address an element, never a display value.
	right := make([]game.Item, 0, len(values))
	for i, v := range values {
		right = append(right, game.Item{ID: fmt.Sprintf("r%d", i), Display: v})
	}

	return &game.Prompt{
		Kind:  game.KindMatching,
		Theme: name,
		Items: items,
		Pairs: pairs,
		Right: right,
	}, nil
}
