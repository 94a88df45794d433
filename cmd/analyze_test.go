package cmd

import (
	"strings"
	"testing"
)

func TestReadMultiline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "two empty lines end the paste",
			in:   "Senior Go engineer wanted.\nKubernetes experience required.\n\n\nnever read",
			want: "Senior Go engineer wanted.\nKubernetes experience required.",
		},
		{
			name: "single blank lines survive",
			in:   "Requirements:\n\n- Go\n\n\n",
			want: "Requirements:\n\n- Go",
		},
		{
			name: "eof ends the paste",
			in:   "only line\n",
			want: "only line",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readMultiline(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("readMultiline: %v", err)
			}
			if got != tt.want {
				t.Fatalf("readMultiline = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCapKeywords(t *testing.T) {
	long := make([]string, 0, shownKeywords+3)
	for i := 0; i < shownKeywords+3; i++ {
		long = append(long, "kw")
	}

	if got := capKeywords(long); len(got) != shownKeywords {
		t.Errorf("capKeywords(long) kept %d entries, want %d", len(got), shownKeywords)
	}

	short := []string{"go", "sql"}
	if got := capKeywords(short); len(got) != 2 {
		t.Errorf("capKeywords(short) kept %d entries, want 2", len(got))
	}
}
