package game

// Pair is one left-right connection made by the student in a matching game.
type Pair struct {
	Left  string
	Right string
}

// Draft holds the student's in-progress answer for the current prompt.
// It is pure bookkeeping: no validation happens at this layer.
type Draft struct {
	slots map[string][]string
	text  map[string]string
	pairs []Pair
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	d := &Draft{}
	d.Clear()
	return d
}

// Clear drops every slot, text entry and pair. It must run before a new
// prompt is generated so that no stale item reference can survive into
// the next round.
func (d *Draft) Clear() {
	d.slots = make(map[string][]string)
	d.text = make(map[string]string)
	d.pairs = nil
}

// Init creates the draft containers for a prompt and places items
// according to the prompt's starting layout.
func (d *Draft) Init(p *Prompt) {
	for slot, ids := range p.Start {
		d.slots[slot] = append([]string(nil), ids...)
	}
}

// Reset clears the draft and re-initializes it for the given prompt.
func (d *Draft) Reset(p *Prompt) {
	d.Clear()
	d.Init(p)
}

// ApplyMove relocates one item from the source slot to the destination
// slot at the given position. A negative position appends. Moves to an
// unknown destination are a no-op.
func (d *Draft) ApplyMove(src, dst, itemID string, pos int) {
	dstList, ok := d.slots[dst]
	if !ok {
		return
	}

	srcList, ok := d.slots[src]
	if !ok {
		return
	}

	idx := -1
	for i, id := range srcList {
		if id == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	srcList = append(srcList[:idx], srcList[idx+1:]...)
	d.slots[src] = srcList

	if src == dst {
		dstList = srcList
	}
	if pos < 0 || pos > len(dstList) {
		pos = len(dstList)
	}

	dstList = append(dstList, "")
	copy(dstList[pos+1:], dstList[pos:])
	dstList[pos] = itemID
	d.slots[dst] = dstList
}

// SetFreeText stores a raw text answer keyed by slot.
func (d *Draft) SetFreeText(slot, text string) {
	d.text[slot] = text
}

// Connect records a left-right pairing, replacing any previous pairing
// involving either endpoint.
func (d *Draft) Connect(left, right string) {
	kept := d.pairs[:0]
	for _, p := range d.pairs {
		if p.Left != left && p.Right != right {
			kept = append(kept, p)
		}
	}
	d.pairs = append(kept, Pair{Left: left, Right: right})
}

// ClearPairs removes every pairing.
func (d *Draft) ClearPairs() {
	d.pairs = nil
}

// KeepPairs prunes the pairings down to the given subset. Used after an
// incorrect matching verdict: wrong pairs are discarded, right pairs stay
// connected.
func (d *Draft) KeepPairs(keep []Pair) {
	kept := d.pairs[:0]
	for _, p := range d.pairs {
		for _, k := range keep {
			if p == k {
				kept = append(kept, p)
				break
			}
		}
	}
	d.pairs = kept
}

// Slot returns a copy of the item IDs currently in a slot.
func (d *Draft) Slot(name string) []string {
	return append([]string(nil), d.slots[name]...)
}

// Slots returns a copy of every slot and its contents.
func (d *Draft) Slots() map[string][]string {
	out := make(map[string][]string, len(d.slots))
	for name, ids := range d.slots {
		out[name] = append([]string(nil), ids...)
	}
	return out
}

// Text returns the raw text stored for a slot.
func (d *Draft) Text(slot string) string {
	return d.text[slot]
}

// Texts returns a copy of every text entry.
func (d *Draft) Texts() map[string]string {
	out := make(map[string]string, len(d.text))
	for slot, text := range d.text {
		out[slot] = text
	}
	return out
}

// Pairs returns a copy of the current pairings.
func (d *Draft) Pairs() []Pair {
	return append([]Pair(nil), d.pairs...)
}

// Empty reports whether the draft holds no items, text or pairs.
func (d *Draft) Empty() bool {
	for _, ids := range d.slots {
		if len(ids) > 0 {
			return false
		}
	}
	return len(d.text) == 0 && len(d.pairs) == 0
}
