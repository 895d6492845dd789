package judgment

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*JudgmentFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read judgment file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*JudgmentFile, error) {
	var jf JudgmentFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, apperr.NewValidationWrap("parse judgment file", err)
	}
	if err := validate(&jf); err != nil {
		return nil, err
	}
	return &jf, nil
}

func validate(jf *JudgmentFile) error {
	seen := make(map[string]bool, len(jf.Queries))
	for i, q := range jf.Queries {
		if q.QueryID == "" {
			return apperr.NewValidation(fmt.Sprintf("query at index %d has no query_id", i))
		}
		if seen[q.QueryID] {
			return apperr.NewValidation(fmt.Sprintf("query %q is judged twice", q.QueryID))
		}
		seen[q.QueryID] = true
	}
	return nil
}

// RelevantCounts counts, per query, the documents graded at or above
// threshold.
func (jf *JudgmentFile) RelevantCounts(threshold int) map[string]int {
	counts := make(map[string]int, len(jf.Queries))
	for _, q := range jf.Queries {
		counts[q.QueryID] = q.RelevantCount(threshold)
	}
	return counts
}

// Merge returns base extended with the judged counts. Counts already present
// in base win, so explicitly configured values override judgments.
func Merge(base map[string]int, jf *JudgmentFile, threshold int) map[string]int {
	merged := jf.RelevantCounts(threshold)
	for id, c := range base {
		merged[id] = c
	}
	return merged
}
