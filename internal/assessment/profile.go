// Package assessment scores the multiple-choice personality quiz and owns
// the resulting profile document.
package assessment

import (
	"fmt"
	"time"
)

// CommunicationStyle labels how a person prefers to exchange information.
// Coaching templates are keyed by this type.
type CommunicationStyle string

const (
	CommunicationDirect       CommunicationStyle = "direct"
	CommunicationEnthusiastic CommunicationStyle = "enthusiastic"
	CommunicationThoughtful   CommunicationStyle = "thoughtful"
	CommunicationThorough     CommunicationStyle = "thorough"
)

// WorkStyle labels the working environment a person performs best in.
type WorkStyle string

const (
	WorkCollaborative WorkStyle = "collaborative"
	WorkIndependent   WorkStyle = "independent"
	WorkStructured    WorkStyle = "structured"
	WorkFlexible      WorkStyle = "flexible"
)

// MotivationStyle labels what keeps a person engaged at work.
type MotivationStyle string

const (
	MotivationResultsDriven  MotivationStyle = "results-driven"
	MotivationCreative       MotivationStyle = "creative"
	MotivationProblemSolving MotivationStyle = "problem-solving"
	MotivationImpactDriven   MotivationStyle = "impact-driven"
)

// Profile is the immutable outcome of a completed assessment. A new
// assessment replaces the whole document; nothing updates it in place.
type Profile struct {
	TopTraits          []string           `json:"top_traits"`
	CommunicationStyle CommunicationStyle `json:"communication_style"`
	WorkStyle          WorkStyle          `json:"work_style"`
	MotivationStyle    MotivationStyle    `json:"motivation_style"`
	TraitScores        map[string]int     `json:"trait_scores,omitempty"`
	TakenAt            time.Time          `json:"taken_at,omitempty"`
}

var communicationInsights = map[CommunicationStyle]string{
	CommunicationDirect:       "You favor short, direct exchanges. Lead with the point and skip the preamble.",
	CommunicationEnthusiastic: "Your energy carries conversations. Pair it with concrete asks so momentum turns into outcomes.",
	CommunicationThoughtful:   "You process before you speak. Ask for time to reflect rather than forcing instant answers.",
	CommunicationThorough:     "You communicate in full context. Summarize up front so the detail lands with busy readers.",
}

var workInsights = map[WorkStyle]string{
	WorkCollaborative: "You do your best work with others. Look for roles with open communication and shared ownership.",
	WorkIndependent:   "You thrive with autonomy. Negotiate focus time and clear hand-off points.",
	WorkStructured:    "Clear processes and deadlines keep you effective. Bring that structure to ambiguous projects.",
	WorkFlexible:      "You adapt quickly. Variety and changing priorities play to your strengths.",
}

var motivationInsights = map[MotivationStyle]string{
	MotivationResultsDriven:  "Measurable goals drive you. Keep progress visible to stay engaged.",
	MotivationCreative:       "Creative expression fuels you. Carve out room to experiment in any role.",
	MotivationProblemSolving: "Complex challenges energize you. Volunteer for the problems others avoid.",
	MotivationImpactDriven:   "Purpose matters most to you. Connect daily tasks to the people they help.",
}

// Insights returns short guidance lines derived from the profile.
func (p *Profile) Insights() []string {
	insights := make([]string, 0, 4)

	if len(p.TopTraits) > 0 {
		insights = append(insights, fmt.Sprintf(
			"Your leading trait is %q, so favor environments that value it.", p.TopTraits[0]))
	}
	if line, ok := communicationInsights[p.CommunicationStyle]; ok {
		insights = append(insights, line)
	}
	if line, ok := workInsights[p.WorkStyle]; ok {
		insights = append(insights, line)
	}
	if line, ok := motivationInsights[p.MotivationStyle]; ok {
		insights = append(insights, line)
	}

	return insights
}
