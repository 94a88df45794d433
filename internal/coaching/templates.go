package coaching

import (
	"fmt"
	"strings"

	"github.com/spigell/career-coach/internal/assessment"
)

// strategiesPerReply is how many strategies one coach reply lists.
const strategiesPerReply = 2

const closingLine = "Remember, every challenge is an opportunity to grow. " +
	"Tell me more, or type 'exit' to end the session."

const farewellLine = "Thank you for the conversation. Remember, I'm here whenever you need support!"

// neutralIntroTemplate opens a reply when no profile is loaded. The
// placeholder is the category topic.
const neutralIntroTemplate = "I understand you're facing a %s challenge. Here are some strategies that might help:"

// introTemplates phrase the opening line per communication style.
var introTemplates = map[assessment.CommunicationStyle]string{
	assessment.CommunicationDirect:       "Straight to it: this sounds like a %s challenge. Try these steps:",
	assessment.CommunicationEnthusiastic: "Thanks for sharing! A %s challenge is also a chance to grow. Let's dig in:",
	assessment.CommunicationThoughtful:   "Let's think through this together. What you describe sounds like a %s challenge. Some approaches to consider:",
	assessment.CommunicationThorough:     "From what you've described, this maps to a %s challenge. Here are the strategies I'd work through, in order:",
}

// topics spell the category out inside the intro line.
var topics = map[Category]string{
	CategoryCommunication:   "communication",
	CategoryConflict:        "conflict",
	CategoryWorkload:        "workload",
	CategoryBurnout:         "burnout",
	CategoryCareerDirection: "career direction",
	CategoryTeamwork:        "teamwork",
	CategoryLeadership:      "leadership",
	CategoryMotivation:      "motivation",
	CategoryGeneral:         "workplace",
}

// strategies hold the canned coaching content per category.
var strategies = map[Category][]string{
	CategoryCommunication: {
		"Practice active listening - focus on understanding before responding",
		"Use 'I' statements to express your perspective without blame",
		"Schedule regular check-ins to prevent misunderstandings",
		"Clarify expectations upfront to avoid assumptions",
		"Consider different communication styles - some prefer email, others face-to-face",
	},
	CategoryConflict: {
		"Identify the root cause, not just the symptoms",
		"Find common ground and shared goals",
		"Focus on the issue, not the person",
		"Consider mediation if the conflict persists",
		"Document incidents if necessary for HR involvement",
	},
	CategoryWorkload: {
		"Prioritize tasks using the Eisenhower Matrix (urgent vs important)",
		"Learn to say 'no' or negotiate deadlines when overwhelmed",
		"Break large tasks into smaller, manageable chunks",
		"Use time-blocking to focus on specific tasks",
		"Communicate with your manager about capacity and priorities",
	},
	CategoryBurnout: {
		"Practice mindfulness and deep breathing exercises",
		"Maintain work-life boundaries - set specific work hours",
		"Take regular breaks throughout the day",
		"Exercise regularly to manage stress levels",
		"Consider speaking with a professional counselor if stress is overwhelming",
	},
	CategoryCareerDirection: {
		"Set clear, measurable career goals with timelines",
		"Seek feedback from mentors and supervisors",
		"Identify skill gaps and create a learning plan",
		"Volunteer for challenging projects to gain experience",
		"Build a professional network both inside and outside your organization",
	},
	CategoryTeamwork: {
		"Clarify roles and responsibilities to avoid overlap",
		"Establish regular team meetings for alignment",
		"Celebrate team successes together",
		"Address issues directly but constructively",
		"Build trust through consistent, reliable actions",
	},
	CategoryLeadership: {
		"Lead by example - demonstrate the behaviors you expect",
		"Provide clear direction and context for decisions",
		"Empower team members by delegating appropriately",
		"Give regular, constructive feedback",
		"Invest in your team's development and growth",
	},
	CategoryMotivation: {
		"Reconnect with your 'why' - remember your purpose",
		"Set small, achievable goals to build momentum",
		"Find meaning in your daily tasks",
		"Seek new challenges to prevent stagnation",
		"Celebrate your progress and accomplishments",
	},
	CategoryGeneral: {
		"Take a step back to gain perspective on the situation",
		"Break the problem down into smaller parts",
		"Seek advice from trusted colleagues or mentors",
		"Consider multiple solutions before deciding",
		"Focus on what you can control, not what you can't",
	},
}

// intro picks the opening line for a category, personalized when a profile
// is present and its communication style is known.
func intro(category Category, profile *assessment.Profile) string {
	tmpl := neutralIntroTemplate
	if profile != nil {
		if t, ok := introTemplates[profile.CommunicationStyle]; ok {
			tmpl = t
		}
	}

	return fmt.Sprintf(tmpl, topics[category])
}

// compose builds one coach reply from the intro line and a numbered slice
// of strategies.
func compose(category Category, profile *assessment.Profile, picked []string) string {
	var b strings.Builder
	b.WriteString(intro(category, profile))
	for i, strategy := range picked {
		fmt.Fprintf(&b, "\n%d. %s", i+1, strategy)
	}
	b.WriteString("\n")
	b.WriteString(closingLine)

	return b.String()
}
