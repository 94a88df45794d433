// Package cvmatch scores a CV against a job listing by keyword overlap.
package cvmatch

import (
	"errors"
	"fmt"
	"math"

	"github.com/spigell/career-coach/internal/keywords"
)

// ErrEmptyDocument reports that a document produced no keywords at all.
var ErrEmptyDocument = errors.New("document has no usable content")

// Result is the outcome of matching a CV against a job listing. Matching and
// Missing are disjoint; both follow each keyword's first occurrence in the
// job listing, so they read in the listing's natural order.
type Result struct {
	Score    int      `json:"score"`
	Matching []string `json:"matching_keywords"`
	Missing  []string `json:"missing_keywords"`
}

// Analyze tokenizes both documents and reports their overlap. It fails with
// ErrEmptyDocument when either document yields no keywords.
func Analyze(cvText, jobText string) (*Result, error) {
	cv := keywords.Extract(cvText)
	if len(cv) == 0 {
		return nil, fmt.Errorf("cv: %w", ErrEmptyDocument)
	}

	// Sequence carries the same tokens as Extract, in first-occurrence order.
	job := keywords.Sequence(jobText)
	if len(job) == 0 {
		return nil, fmt.Errorf("job listing: %w", ErrEmptyDocument)
	}

	result := &Result{Score: score(cv, job)}
	for _, token := range job {
		if cv.Contains(token) {
			result.Matching = append(result.Matching, token)
			continue
		}
		result.Missing = append(result.Missing, token)
	}

	return result, nil
}

// score is round(100 * |CV∩Job| / |Job|), clamped to [0,100]. An empty job
// keyword set scores zero.
func score(cv keywords.Set, job []string) int {
	if len(job) == 0 {
		return 0
	}

	overlap := 0
	for _, token := range job {
		if cv.Contains(token) {
			overlap++
		}
	}

	s := int(math.Round(100 * float64(overlap) / float64(len(job))))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
