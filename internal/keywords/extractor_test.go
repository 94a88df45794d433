package keywords

import (
	"reflect"
	"sort"
	"testing"
)

func sorted(s Set) []string {
	tokens := make([]string, 0, len(s))
	for token := range s {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: []string{},
		},
		{
			name: "punctuation only",
			text: "... --- !!!",
			want: []string{},
		},
		{
			name: "job listing example",
			text: "Python, SQL, communication skills required",
			want: []string{"communication", "python", "required", "skills", "sql"},
		},
		{
			name: "stop words and short tokens dropped",
			text: "Experienced in Python and leadership",
			want: []string{"experienced", "leadership", "python"},
		},
		{
			name: "case folded and deduplicated",
			text: "Go go GO gopher",
			want: []string{"go", "gopher"},
		},
		{
			name: "digits kept",
			text: "5 years of Kubernetes, 10 teams",
			want: []string{"10", "kubernetes", "teams", "years"},
		},
		{
			name: "punctuation splits tokens",
			text: "node.js ci/cd rest-api",
			want: []string{"api", "cd", "ci", "js", "node", "rest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) returned %d tokens %v, want %d %v",
					tt.text, len(got), sorted(got), len(tt.want), tt.want)
			}
			if len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(sorted(got), tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, sorted(got), tt.want)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "Managing a growing team while shipping Go services on tight deadlines"

	first := Extract(text)
	second := Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different sets: %v vs %v", sorted(first), sorted(second))
	}
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "first occurrence order",
			text: "Python, SQL, communication skills required",
			want: []string{"python", "sql", "communication", "skills", "required"},
		},
		{
			name: "duplicates collapse to first position",
			text: "python sql python communication sql",
			want: []string{"python", "sql", "communication"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sequence(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sequence(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSequenceMatchesExtract(t *testing.T) {
	text := "Designing reliable APIs, mentoring engineers, mentoring interns"

	set := Extract(text)
	seq := Sequence(text)

	if len(seq) != len(set) {
		t.Fatalf("sequence has %d tokens, set has %d", len(seq), len(set))
	}
	for _, token := range seq {
		if !set.Contains(token) {
			t.Errorf("sequence token %q missing from set", token)
		}
	}
}
