package ranklist

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Entry is one ranked document: its ground-truth label and the score the
// current model assigned to it.
type Entry struct {
	DocID uuid.UUID
	Label float64
	Score float64
}

// List is an ordered sequence of entries; position 0 is the top of the
// ranking. It is not safe for concurrent use.
type List struct {
	id      string
	entries []Entry
}

func New(id string, entries []Entry) *List {
	return &List{id: id, entries: entries}
}

// FromLabels builds a list in the given order with fresh doc ids and scores
// descending by position, so the order is already the predicted ranking.
func FromLabels(id string, labels ...float64) *List {
	entries := make([]Entry, len(labels))
	for i, l := range labels {
		entries[i] = Entry{
			DocID: uuid.New(),
			Label: l,
			Score: float64(len(labels) - i),
		}
	}
	return New(id, entries)
}

func (l *List) ID() string { return l.id }

func (l *List) Size() int { return len(l.entries) }

func (l *List) Get(i int) Entry { return l.entries[i] }

func (l *List) LabelAt(i int) float64 { return l.entries[i].Label }

func (l *List) ScoreAt(i int) float64 { return l.entries[i].Score }

// Swap exchanges the entries at positions i and j. Calling it twice with the
// same arguments restores the list.
func (l *List) Swap(i, j int) {
	l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
}

// Entries returns a copy of the entries in ranking order.
func (l *List) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l *List) Labels() []float64 {
	labels := make([]float64, len(l.entries))
	for i, e := range l.entries {
		labels[i] = e.Label
	}
	return labels
}

// SortByScore reorders the list by descending score. Entries with equal
// scores keep their relative order.
func (l *List) SortByScore() {
	slices.SortStableFunc(l.entries, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
