package game

// Kind identifies which family of rules a prompt plays by.
type Kind string

const (
	KindClassification Kind = "classification"
	KindMatching       Kind = "matching"
	KindOrdering       Kind = "ordering"
	KindArithmetic     Kind = "arithmetic"
	KindComparison     Kind = "comparison"
	KindClock          Kind = "clock"
	KindFillIn         Kind = "fill-in"
	KindSentence       Kind = "sentence"
)

// Well-known draft slot names shared between providers, validators and
// the HTTP layer.
const (
	SlotTray     = "tray"
	SlotSequence = "sequence"
	SlotAnswer   = "answer"
	SlotSign     = "sign"
	SlotTime     = "time"
	SlotSentence = "sentence"
)

// SortOrder is the requested direction for ordering prompts.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Item is one atomic piece of content in a prompt: a word, a number, an
// image reference. Items are created with the prompt and never mutated.
type Item struct {
	ID      string
	Display string
	// Label carries the ground truth for classification (the category
	// name) and matching (the expected right-hand value).
	Label string
	// Value is set for numeric games.
	Value int
}

// Category describes one classification bin shown to the student.
type Category struct {
	Name       string
	Definition string
}

// Answer holds the precomputed ground truth for numeric prompts.
type Answer struct {
	Value    int
	Operator string
	Hours    int
	Minutes  int
}

// Prompt is one challenge instance. A prompt is immutable once generated;
// a new round always gets a fresh prompt.
type Prompt struct {
	Kind  Kind
	Theme string

	Items      []Item
	Categories []Category

	// Pairs is the ground-truth pairing table for matching prompts
	// (left item ID to expected right display value).
	Pairs map[string]string
	// Right is the shuffled right-hand side as presented to the student.
	// Each element carries its own ID: conjugation tables repeat forms
	// ("je fais"/"tu fais"), so two elements may display the same value
	// and connections must address one element, not a value.
	Right []Item

	Order  SortOrder
	Answer Answer

	// Sentence is the raw sentence to correct for sentence prompts.
	Sentence string
	// Accepted is the fixed set of acceptable corrected sentences.
	Accepted []string

	// Blanks maps a text slot to its expected content for fill-in prompts.
	Blanks map[string]string

	// Start describes the initial slot layout of the draft: which item IDs
	// sit in which container when the round begins.
	Start map[string][]string
}

// Item returns the prompt item with the given ID.
func (p *Prompt) Item(id string) (Item, bool) {
	for _, it := range p.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
