package assessment

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidAnswerIndex reports a malformed answer sequence: wrong length or
// a choice outside its question's option range.
var ErrInvalidAnswerIndex = errors.New("invalid answer index")

const topTraitCount = 3

// styleLabel ties one style label to the traits that feed its score.
type styleLabel struct {
	label  string
	traits []string
}

// Dimension tables. A label's score is the summed tally of its traits;
// declaration order is the tie-break order.
var (
	communicationLabels = []styleLabel{
		{string(CommunicationDirect), []string{"concise", "direct", "efficient"}},
		{string(CommunicationEnthusiastic), []string{"enthusiastic", "energetic"}},
		{string(CommunicationThoughtful), []string{"thoughtful", "measured", "reflective"}},
		{string(CommunicationThorough), []string{"thorough", "comprehensive", "detail-oriented", "informed"}},
	}

	workLabels = []styleLabel{
		{string(WorkCollaborative), []string{"collaborative", "supportive", "communicative", "support-seeking", "consensus-driven"}},
		{string(WorkIndependent), []string{"independent", "focused"}},
		{string(WorkStructured), []string{"structured", "organized", "methodical", "systematic"}},
		{string(WorkFlexible), []string{"flexible", "adaptable", "dynamic", "versatile"}},
	}

	motivationLabels = []styleLabel{
		{string(MotivationResultsDriven), []string{"goal-oriented", "results-driven", "ambitious", "growth-oriented"}},
		{string(MotivationCreative), []string{"creative", "innovative", "curious", "exploratory"}},
		{string(MotivationProblemSolving), []string{"problem-solver", "analytical"}},
		{string(MotivationImpactDriven), []string{"altruistic", "impactful", "relationship-focused", "harmonious"}},
	}
)

// Score tallies an answer sequence into a personality profile. answers must
// hold one choice index per question, in question order.
func Score(answers []int) (*Profile, error) {
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("expected %d answers, got %d: %w", len(questions), len(answers), ErrInvalidAnswerIndex)
	}

	tally := make(map[string]int)
	for i, choice := range answers {
		q := questions[i]
		if choice < 0 || choice >= len(q.Options) {
			return nil, fmt.Errorf("question %d: choice %d outside [0..%d]: %w",
				i+1, choice, len(q.Options)-1, ErrInvalidAnswerIndex)
		}

		opt := q.Options[choice]
		tally[opt.Primary] += primaryWeight
		tally[opt.Secondary] += secondaryWeight
	}

	return &Profile{
		TopTraits:          topTraits(tally, topTraitCount),
		CommunicationStyle: CommunicationStyle(pickLabel(communicationLabels, tally)),
		WorkStyle:          WorkStyle(pickLabel(workLabels, tally)),
		MotivationStyle:    MotivationStyle(pickLabel(motivationLabels, tally)),
		TraitScores:        tally,
		TakenAt:            time.Now().UTC(),
	}, nil
}

// topTraits ranks traits by tally descending. Ties go to the trait that
// appears first in the question bank.
func topTraits(tally map[string]int, n int) []string {
	traits := make([]string, 0, len(tally))
	for trait := range tally {
		traits = append(traits, trait)
	}

	sort.SliceStable(traits, func(i, j int) bool {
		if tally[traits[i]] != tally[traits[j]] {
			return tally[traits[i]] > tally[traits[j]]
		}
		return traitOrder[traits[i]] < traitOrder[traits[j]]
	})

	if len(traits) > n {
		traits = traits[:n]
	}
	return traits
}

// pickLabel returns the dimension label with the highest summed trait tally,
// keeping the earlier label on ties.
func pickLabel(dimension []styleLabel, tally map[string]int) string {
	best := dimension[0].label
	bestScore := -1

	for _, candidate := range dimension {
		score := 0
		for _, trait := range candidate.traits {
			score += tally[trait]
		}
		if score > bestScore {
			best = candidate.label
			bestScore = score
		}
	}

	return best
}
