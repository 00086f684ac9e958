package aggregation

import "github.com/shopspring/decimal"

// TallyEntry is one author's accumulated value.
type TallyEntry struct {
	Author string
	Value  decimal.Decimal
}

// Tally groups values by author and remembers the order in which authors
// were first seen. That order decides ties in Leader.
type Tally struct {
	agg   Aggregator
	index map[string]int // author → position in entries
	order []TallyEntry
}

// NewTally creates an empty tally reducing with agg.
func NewTally(agg Aggregator) *Tally {
	return &Tally{
		agg:   agg,
		index: make(map[string]int),
	}
}

// Add folds v into the author's entry, creating it on first sight.
func (t *Tally) Add(author string, v decimal.Decimal) {
	pos, ok := t.index[author]
	if !ok {
		t.index[author] = len(t.order)
		t.order = append(t.order, TallyEntry{Author: author, Value: t.agg.Initial(v)})
		return
	}
	t.order[pos].Value = t.agg.Apply(t.order[pos].Value, v)
}

// Leader returns the entry with the highest value.
// Strict comparison keeps the earliest-seen author on ties.
func (t *Tally) Leader() (TallyEntry, bool) {
	if len(t.order) == 0 {
		return TallyEntry{}, false
	}
	best := t.order[0]
	for _, e := range t.order[1:] {
		if e.Value.GreaterThan(best.Value) {
			best = e
		}
	}
	return best, true
}

// Entries returns a copy of all entries in first-seen order.
func (t *Tally) Entries() []TallyEntry {
	out := make([]TallyEntry, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of distinct authors.
func (t *Tally) Len() int {
	return len(t.order)
}
