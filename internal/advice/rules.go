// Package advice turns a CV match result into improvement suggestions.
//
// Suggestions come from a fixed list of rules evaluated in declaration
// order, so the same analysis always produces the same advice in the same
// order.
package advice

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spigell/career-coach/internal/cvmatch"
)

// maxMissingShown caps how many absent job keywords a suggestion lists.
const maxMissingShown = 5

// actionVerbs are the markers the action-verb rule looks for in a CV.
var actionVerbs = []string{
	"led", "built", "managed", "delivered", "improved",
	"launched", "designed", "increased", "created",
}

// Input carries everything the rules inspect.
type Input struct {
	CVText string
	Match  *cvmatch.Result
}

// Suggestion is one piece of advice, tagged with the rule that produced it.
type Suggestion struct {
	Rule string
	Text string
}

type rule struct {
	name  string
	apply func(in Input) (string, bool)
}

// rules fire in this order. The score band goes first so the summary line
// always opens the advice list.
var rules = []rule{
	{"score-band", scoreBand},
	{"missing-keywords", missingKeywords},
	{"skills-section", skillsSection},
	{"experience-section", experienceSection},
	{"summary-opener", summaryOpener},
	{"quantified-achievements", quantifiedAchievements},
	{"action-verbs", actionVerbRule},
}

// Evaluate runs every rule against the analysis and collects the ones that
// fire.
func Evaluate(in Input) []Suggestion {
	var out []Suggestion
	for _, r := range rules {
		if text, ok := r.apply(in); ok {
			out = append(out, Suggestion{Rule: r.name, Text: text})
		}
	}

	return out
}

// scoreBand always fires; the text depends on which band the score falls in.
func scoreBand(in Input) (string, bool) {
	switch score := in.Match.Score; {
	case score < 30:
		return "Low match with this listing. Highlight more of the required skills and experience, or consider closer-fitting roles.", true
	case score < 50:
		return "Moderate match. There is room to better align your CV with the job requirements.", true
	case score < 70:
		return "Good match. A few targeted additions would make your CV even stronger.", true
	default:
		return "Strong match with the job listing. Great alignment!", true
	}
}

func missingKeywords(in Input) (string, bool) {
	missing := in.Match.Missing
	if len(missing) == 0 {
		return "", false
	}
	if len(missing) > maxMissingShown {
		missing = missing[:maxMissingShown]
	}

	return fmt.Sprintf("Consider adding or emphasizing these keywords from the job listing: %s.",
		strings.Join(missing, ", ")), true
}

func skillsSection(in Input) (string, bool) {
	if containsFold(in.CVText, "skills") {
		return "", false
	}

	return "Add a dedicated skills section that mirrors the listing's requirements.", true
}

func experienceSection(in Input) (string, bool) {
	if containsFold(in.CVText, "experience") {
		return "", false
	}

	return "Add a work experience section and put your most relevant roles at the top.", true
}

func summaryOpener(in Input) (string, bool) {
	if containsFold(in.CVText, "summary") || containsFold(in.CVText, "objective") {
		return "", false
	}

	return "Open with a short summary or objective tailored to this role.", true
}

func quantifiedAchievements(in Input) (string, bool) {
	for _, r := range in.CVText {
		if unicode.IsDigit(r) {
			return "", false
		}
	}

	return "Quantify achievements with numbers, for example \"increased sales by 25%\".", true
}

func actionVerbRule(in Input) (string, bool) {
	for _, verb := range actionVerbs {
		if containsFold(in.CVText, verb) {
			return "", false
		}
	}

	return "Start bullet points with action verbs such as \"led\", \"built\" or \"delivered\".", true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
