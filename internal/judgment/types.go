package judgment

import "github.com/google/uuid"

// GradedDoc is one judged document. A negative grade marks a document that
// was pooled but never judged.
type GradedDoc struct {
	DocID uuid.UUID `yaml:"doc_id"`
	Grade int       `yaml:"grade"`
}

type JudgmentFile struct {
	Strategy string          `yaml:"strategy"`
	Queries  []JudgmentEntry `yaml:"queries"`
}

// JudgmentEntry holds the judgments of one query. QueryID matches the id of
// the ranked list produced for that query.
type JudgmentEntry struct {
	QueryID string      `yaml:"query_id"`
	Docs    []GradedDoc `yaml:"docs"`
}

func (e JudgmentEntry) RelevantCount(threshold int) int {
	var n int
	for _, d := range e.Docs {
		if d.Grade >= 0 && d.Grade >= threshold {
			n++
		}
	}
	return n
}
