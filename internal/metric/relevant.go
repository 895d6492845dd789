package metric

import (
	"fmt"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
)

// RelevantCounts maps a list id to the number of truly relevant documents
// for that list. It is immutable once built and may be shared by any number
// of scorers.
type RelevantCounts struct {
	counts map[string]int
}

// NewRelevantCounts validates and copies counts. Empty ids and negative
// counts are configuration errors.
func NewRelevantCounts(counts map[string]int) (*RelevantCounts, error) {
	rc := &RelevantCounts{counts: make(map[string]int, len(counts))}
	for id, c := range counts {
		if id == "" {
			return nil, apperr.NewConfig("relevant_counts", "empty list id")
		}
		if c < 0 {
			return nil, apperr.NewConfig("relevant_counts", fmt.Sprintf("negative count %d for %q", c, id))
		}
		rc.counts[id] = c
	}
	return rc, nil
}

func (rc *RelevantCounts) Lookup(id string) (int, bool) {
	if rc == nil {
		return 0, false
	}
	c, ok := rc.counts[id]
	return c, ok
}

func (rc *RelevantCounts) Len() int {
	if rc == nil {
		return 0
	}
	return len(rc.counts)
}

// CountFor returns the relevant count recorded for rl, or the number of
// positively labeled entries in rl when none is recorded.
func (rc *RelevantCounts) CountFor(rl RankedList) int {
	if c, ok := rc.Lookup(rl.ID()); ok {
		return c
	}
	var n int
	for i := 0; i < rl.Size(); i++ {
		if rl.LabelAt(i) > 0 {
			n++
		}
	}
	return n
}
