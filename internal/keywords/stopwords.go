package keywords

// stopWords holds English function words carrying no signal for keyword
// matching. Domain nouns (team, work, career, skills, ...) are deliberately
// absent: the roadblock classifier and the CV matcher rely on them.
var stopWords = map[string]struct{}{
	"am":      {},
	"an":      {},
	"and":     {},
	"any":     {},
	"are":     {},
	"as":      {},
	"at":      {},
	"be":      {},
	"been":    {},
	"being":   {},
	"but":     {},
	"by":      {},
	"can":     {},
	"could":   {},
	"did":     {},
	"do":      {},
	"does":    {},
	"every":   {},
	"for":     {},
	"from":    {},
	"had":     {},
	"has":     {},
	"have":    {},
	"he":      {},
	"her":     {},
	"hers":    {},
	"him":     {},
	"his":     {},
	"how":     {},
	"if":      {},
	"in":      {},
	"into":    {},
	"is":      {},
	"it":      {},
	"its":     {},
	"me":      {},
	"my":      {},
	"no":      {},
	"nor":     {},
	"not":     {},
	"of":      {},
	"off":     {},
	"on":      {},
	"or":      {},
	"our":     {},
	"ours":    {},
	"out":     {},
	"she":     {},
	"should":  {},
	"so":      {},
	"some":    {},
	"such":    {},
	"than":    {},
	"that":    {},
	"the":     {},
	"their":   {},
	"theirs":  {},
	"them":    {},
	"then":    {},
	"there":   {},
	"these":   {},
	"they":    {},
	"this":    {},
	"those":   {},
	"to":      {},
	"too":     {},
	"up":      {},
	"us":      {},
	"very":    {},
	"was":     {},
	"we":      {},
	"were":    {},
	"what":    {},
	"when":    {},
	"where":   {},
	"which":   {},
	"while":   {},
	"who":     {},
	"whom":    {},
	"why":     {},
	"will":    {},
	"with":    {},
	"would":   {},
	"you":     {},
	"your":    {},
	"yours":   {},
}
