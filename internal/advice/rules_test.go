package advice

import (
	"strings"
	"testing"

	"github.com/spigell/career-coach/internal/cvmatch"
)

// completeCV satisfies every structural rule: it has a summary, a skills
// section, an experience section, a number and an action verb.
const completeCV = "Summary: senior engineer. Skills: Go, SQL. Experience: led the 2021 billing migration."

func TestEvaluateScoreBands(t *testing.T) {
	cases := []struct {
		score    int
		wantText string
	}{
		{0, "Low match"},
		{29, "Low match"},
		{30, "Moderate match"},
		{49, "Moderate match"},
		{50, "Good match"},
		{69, "Good match"},
		{70, "Strong match"},
		{100, "Strong match"},
	}

	for _, tc := range cases {
		got := Evaluate(Input{CVText: completeCV, Match: &cvmatch.Result{Score: tc.score}})
		if len(got) == 0 {
			t.Fatalf("score %d: no suggestions", tc.score)
		}
		if got[0].Rule != "score-band" {
			t.Errorf("score %d: first rule = %q, want score-band", tc.score, got[0].Rule)
		}
		if !strings.HasPrefix(got[0].Text, tc.wantText) {
			t.Errorf("score %d: text = %q, want prefix %q", tc.score, got[0].Text, tc.wantText)
		}
	}
}

func TestEvaluateCompleteCV(t *testing.T) {
	got := Evaluate(Input{CVText: completeCV, Match: &cvmatch.Result{Score: 85}})

	if len(got) != 1 {
		t.Fatalf("Evaluate() returned %d suggestions, want only the score band: %+v", len(got), got)
	}
}

func TestEvaluateStructureRules(t *testing.T) {
	in := Input{
		CVText: "python developer",
		Match: &cvmatch.Result{
			Score:   20,
			Missing: []string{"sql", "kubernetes", "terraform", "ansible", "docker", "kafka", "redis"},
		},
	}

	got := Evaluate(in)

	wantOrder := []string{
		"score-band",
		"missing-keywords",
		"skills-section",
		"experience-section",
		"summary-opener",
		"quantified-achievements",
		"action-verbs",
	}
	if len(got) != len(wantOrder) {
		t.Fatalf("Evaluate() returned %d suggestions, want %d: %+v", len(got), len(wantOrder), got)
	}
	for i, want := range wantOrder {
		if got[i].Rule != want {
			t.Errorf("suggestion %d: rule = %q, want %q", i, got[i].Rule, want)
		}
	}
}

func TestMissingKeywordsCapped(t *testing.T) {
	in := Input{
		CVText: completeCV,
		Match: &cvmatch.Result{
			Score:   70,
			Missing: []string{"sql", "kubernetes", "terraform", "ansible", "docker", "kafka", "redis"},
		},
	}

	got := Evaluate(in)

	var keywordsText string
	for _, s := range got {
		if s.Rule == "missing-keywords" {
			keywordsText = s.Text
		}
	}
	if keywordsText == "" {
		t.Fatal("missing-keywords rule did not fire")
	}

	if !strings.Contains(keywordsText, "sql, kubernetes, terraform, ansible, docker") {
		t.Errorf("text %q does not list the first five keywords", keywordsText)
	}
	if strings.Contains(keywordsText, "kafka") || strings.Contains(keywordsText, "redis") {
		t.Errorf("text %q lists more than five keywords", keywordsText)
	}
}
