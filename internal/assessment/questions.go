package assessment

// Question is a single multiple-choice assessment item. Choosing an option
// adds two points to its primary trait and one point to its secondary trait.
type Question struct {
	Text    string
	Options []Option
}

// Option is one answer choice together with the traits it signals.
type Option struct {
	Text      string
	Primary   string
	Secondary string
}

const (
	primaryWeight   = 2
	secondaryWeight = 1
)

// questions is the assessment instrument. Order matters twice here: answers
// are matched to questions by position, and a trait's first appearance in
// the bank decides ranking ties.
var questions = []Question{
	{
		Text: "When facing a challenging problem, you prefer to:",
		Options: []Option{
			{"Work through it systematically step by step", "methodical", "analytical"},
			{"Brainstorm creative solutions with others", "collaborative", "creative"},
			{"Take immediate action and adapt as you go", "action-oriented", "adaptable"},
			{"Analyze all possible outcomes before deciding", "analytical", "cautious"},
		},
	},
	{
		Text: "In a team setting, you typically:",
		Options: []Option{
			{"Take charge and lead the group", "leadership", "assertive"},
			{"Support others and ensure harmony", "supportive", "harmonious"},
			{"Focus on completing your assigned tasks efficiently", "reliable", "focused"},
			{"Generate innovative ideas and solutions", "innovative", "creative"},
		},
	},
	{
		Text: "Your ideal work environment is:",
		Options: []Option{
			{"Structured with clear processes and deadlines", "structured", "organized"},
			{"Dynamic and fast-paced with variety", "dynamic", "flexible"},
			{"Collaborative with open communication", "collaborative", "communicative"},
			{"Quiet and independent with minimal interruptions", "independent", "focused"},
		},
	},
	{
		Text: "When receiving feedback, you:",
		Options: []Option{
			{"Appreciate direct, honest feedback immediately", "direct", "resilient"},
			{"Prefer feedback delivered gently and constructively", "sensitive", "empathetic"},
			{"Want specific examples and actionable steps", "detail-oriented", "practical"},
			{"Reflect on it privately before discussing", "reflective", "thoughtful"},
		},
	},
	{
		Text: "Your communication style is best described as:",
		Options: []Option{
			{"Concise and to the point", "concise", "efficient"},
			{"Detailed and thorough", "thorough", "comprehensive"},
			{"Enthusiastic and engaging", "enthusiastic", "energetic"},
			{"Thoughtful and measured", "thoughtful", "measured"},
		},
	},
	{
		Text: "When learning something new, you:",
		Options: []Option{
			{"Read documentation and study thoroughly first", "studious", "methodical"},
			{"Jump in and learn by doing", "hands-on", "practical"},
			{"Find a mentor or take a course", "collaborative", "guided"},
			{"Experiment and explore different approaches", "exploratory", "curious"},
		},
	},
	{
		Text: "Your biggest motivation at work comes from:",
		Options: []Option{
			{"Achieving goals and measurable results", "goal-oriented", "results-driven"},
			{"Helping others and making a positive impact", "altruistic", "impactful"},
			{"Solving complex problems and challenges", "problem-solver", "analytical"},
			{"Creative expression and innovation", "creative", "innovative"},
		},
	},
	{
		Text: "When stressed, you tend to:",
		Options: []Option{
			{"Create a plan and tackle issues systematically", "organized", "systematic"},
			{"Seek support from colleagues or friends", "support-seeking", "collaborative"},
			{"Take a break and return with fresh perspective", "balanced", "self-aware"},
			{"Push through and work harder", "resilient", "determined"},
		},
	},
	{
		Text: "You prefer to make decisions:",
		Options: []Option{
			{"Quickly based on intuition and experience", "intuitive", "decisive"},
			{"After gathering all available information", "informed", "thorough"},
			{"Through discussion and consensus", "collaborative", "consensus-driven"},
			{"By weighing pros and cons carefully", "analytical", "careful"},
		},
	},
	{
		Text: "Your ideal career growth involves:",
		Options: []Option{
			{"Rapid advancement and new challenges", "ambitious", "growth-oriented"},
			{"Deepening expertise in your field", "specialized", "expert"},
			{"Building relationships and leading teams", "leadership", "relationship-focused"},
			{"Exploring different roles and industries", "exploratory", "versatile"},
		},
	},
}

// Questions returns the assessment items in presentation order. Callers
// must treat the result as read-only.
func Questions() []Question {
	return questions
}

// traitOrder records each trait's first appearance in the bank: questions in
// order, options by position, primary before secondary.
var traitOrder = func() map[string]int {
	order := make(map[string]int)
	note := func(trait string) {
		if _, ok := order[trait]; !ok {
			order[trait] = len(order)
		}
	}
	for _, q := range questions {
		for _, opt := range q.Options {
			note(opt.Primary)
			note(opt.Secondary)
		}
	}
	return order
}()
