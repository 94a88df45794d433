package cvmatch

import (
	"errors"
	"reflect"
	"testing"
)

func TestAnalyze(t *testing.T) {
	cases := []struct {
		name         string
		cv           string
		job          string
		wantScore    int
		wantMatching []string
		wantMissing  []string
	}{
		{
			name:         "partial overlap",
			cv:           "Experienced in Python and leadership",
			job:          "Python, SQL, communication skills required",
			wantScore:    20,
			wantMatching: []string{"python"},
			wantMissing:  []string{"sql", "communication", "skills", "required"},
		},
		{
			name:         "full overlap",
			cv:           "Python developer with SQL background",
			job:          "python sql",
			wantScore:    100,
			wantMatching: []string{"python", "sql"},
			wantMissing:  nil,
		},
		{
			name:         "no overlap",
			cv:           "Accountant, payroll, bookkeeping",
			job:          "kubernetes terraform golang",
			wantScore:    0,
			wantMatching: nil,
			wantMissing:  []string{"kubernetes", "terraform", "golang"},
		},
		{
			name:         "score is rounded",
			cv:           "python and sql",
			job:          "python sql kubernetes",
			wantScore:    67,
			wantMatching: []string{"python", "sql"},
			wantMissing:  []string{"kubernetes"},
		},
		{
			name:         "repeated job keywords counted once",
			cv:           "python",
			job:          "Python, python and PYTHON. Then sql.",
			wantScore:    50,
			wantMatching: []string{"python"},
			wantMissing:  []string{"sql"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Analyze(tc.cv, tc.job)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}

			if got.Score != tc.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tc.wantScore)
			}
			if !reflect.DeepEqual(got.Matching, tc.wantMatching) {
				t.Errorf("Matching = %v, want %v", got.Matching, tc.wantMatching)
			}
			if !reflect.DeepEqual(got.Missing, tc.wantMissing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tc.wantMissing)
			}
		})
	}
}

func TestAnalyzeEmptyDocuments(t *testing.T) {
	cases := []struct {
		name string
		cv   string
		job  string
	}{
		{"empty cv", "", "Python required"},
		{"punctuation-only cv", "!!! ... ---", "Python required"},
		{"empty job", "Experienced in Python", ""},
		{"stop-words-only job", "Experienced in Python", "the and of"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Analyze(tc.cv, tc.job)
			if !errors.Is(err, ErrEmptyDocument) {
				t.Fatalf("Analyze() error = %v, want ErrEmptyDocument", err)
			}
			if got != nil {
				t.Errorf("Analyze() = %+v, want nil result", got)
			}
		})
	}
}

// The score depends only on which keywords appear, not on where they appear.
func TestAnalyzeScoreIgnoresOrder(t *testing.T) {
	cv := "Built data pipelines in Python, owned SQL reporting, mentored juniors"

	first, err := Analyze(cv, "We need Python and SQL. Mentoring is a plus.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := Analyze(cv, "Mentoring is a plus. We need SQL and Python.")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if first.Score != second.Score {
		t.Errorf("scores differ after reordering: %d vs %d", first.Score, second.Score)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	cv := "Go engineer, gRPC services, PostgreSQL"
	job := "Looking for Go, PostgreSQL and Kafka experience"

	first, err := Analyze(cv, job)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := Analyze(cv, job)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs: %+v vs %+v", first, second)
	}
}
