// Package keywords normalizes free text into keyword tokens shared by the
// CV matcher and the coaching responder.
package keywords

import "unicode"

// minTokenLen drops fragments like "a" or a stray initial.
const minTokenLen = 2

// Set is a deduplicated collection of normalized keyword tokens.
type Set map[string]struct{}

// Contains reports whether the token is present in the set.
func (s Set) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Extract returns the keyword set for text: lowercase alphanumeric tokens,
// stop words removed, tokens shorter than two characters discarded. Empty or
// whitespace-only input yields an empty set.
func Extract(text string) Set {
	set := make(Set)
	scan(text, func(token string) {
		set[token] = struct{}{}
	})
	return set
}

// Sequence returns the keywords of text in first-occurrence order. The
// result holds the same tokens as Extract(text).
func Sequence(text string) []string {
	var seq []string
	seen := make(Set)
	scan(text, func(token string) {
		if seen.Contains(token) {
			return
		}
		seen[token] = struct{}{}
		seq = append(seq, token)
	})
	return seq
}

// scan walks text rune by rune, cutting it into lowercase alphanumeric
// tokens and emitting every token that survives the length and stop-word
// rules. Tokens are emitted in document order, duplicates included.
func scan(text string, emit func(string)) {
	var current []rune

	flush := func() {
		if len(current) < minTokenLen {
			current = current[:0]
			return
		}
		token := string(current)
		current = current[:0]

		if _, stop := stopWords[token]; stop {
			return
		}
		emit(token)
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()
}
