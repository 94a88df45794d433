package coaching

import (
	"strings"

	"github.com/spigell/career-coach/internal/keywords"
)

// Category is the roadblock classification a user message falls into. It
// selects which block of coaching strategies a reply draws from.
type Category string

const (
	CategoryCommunication   Category = "communication"
	CategoryConflict        Category = "conflict"
	CategoryWorkload        Category = "workload"
	CategoryBurnout         Category = "burnout"
	CategoryCareerDirection Category = "career-direction"
	CategoryTeamwork        Category = "teamwork"
	CategoryLeadership      Category = "leadership"
	CategoryMotivation      Category = "motivation"
	// CategoryGeneral is the fallback when no roadblock stem matches.
	CategoryGeneral Category = "general"
)

// roadblock ties a category to the keyword stems that signal it. A token
// hits when a stem is its prefix, so "exhausted" and "exhaustion" both hit
// "exhaust".
type roadblock struct {
	category Category
	stems    []string
}

// roadblocks is scanned in declaration order; on equal hit counts the
// category declared first wins.
var roadblocks = []roadblock{
	{CategoryCommunication, []string{"communicat", "misunderstand", "misunderstood", "talk", "discuss", "explain"}},
	{CategoryConflict, []string{"conflict", "disagree", "argu", "fight", "tension"}},
	{CategoryWorkload, []string{"workload", "overwhelm", "overload", "busy", "deadline", "pressure", "swamp"}},
	{CategoryBurnout, []string{"burn", "exhaust", "stress", "anxious", "worr", "tired", "drained"}},
	{CategoryCareerDirection, []string{"career", "promotion", "advance", "growth", "stuck", "progress", "direction"}},
	{CategoryTeamwork, []string{"team", "colleague", "coworker", "collaborat"}},
	{CategoryLeadership, []string{"lead", "manag", "supervisor", "boss", "director"}},
	{CategoryMotivation, []string{"motivat", "unmotivat", "bored", "uninterest", "passion"}},
}

// Classify maps a user message to the roadblock category with the most
// distinct keyword hits. Messages that hit nothing fall back to
// CategoryGeneral.
func Classify(message string) Category {
	tokens := keywords.Sequence(message)

	best := CategoryGeneral
	bestHits := 0
	for _, rb := range roadblocks {
		hits := 0
		for _, token := range tokens {
			if matchesAny(token, rb.stems) {
				hits++
			}
		}
		if hits > bestHits {
			best = rb.category
			bestHits = hits
		}
	}

	return best
}

func matchesAny(token string, stems []string) bool {
	for _, stem := range stems {
		if strings.HasPrefix(token, stem) {
			return true
		}
	}

	return false
}
