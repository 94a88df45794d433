package textsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spigell/career-coach/internal/extract"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cvPath := filepath.Join(dir, "cv.txt")
	if err := os.WriteFile(cvPath, []byte("  Experienced in Python and leadership \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	emptyPath := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(emptyPath, []byte("   \n\t"), 0o644); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "inline text",
			src:  Source{Name: "cv", Text: " Python developer "},
			want: "Python developer",
		},
		{
			name: "file content",
			src:  Source{Name: "cv", File: cvPath},
			want: "Experienced in Python and leadership",
		},
		{
			name: "file wins over inline text",
			src:  Source{Name: "cv", Text: "inline", File: cvPath},
			want: "Experienced in Python and leadership",
		},
		{
			name:    "empty file",
			src:     Source{Name: "cv", File: emptyPath},
			wantErr: "is empty",
		},
		{
			name:    "nothing provided",
			src:     Source{Name: "job listing"},
			wantErr: "job listing is not provided",
		},
		{
			name:    "blank name falls back to document",
			src:     Source{},
			wantErr: "document is not provided",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)

			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("Load() = %q, want error containing %q", got, tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("error = %v, want it to contain %q", err, tc.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Load() = %q, want %q", got, tc.want)
			}
		})
	}
}

// File resolution goes through the extract collaborator, so its sentinels
// surface wrapped but intact.
func TestLoadPropagatesExtractErrors(t *testing.T) {
	_, err := Load(Source{Name: "cv", File: filepath.Join(t.TempDir(), "cv.odt")})
	if !errors.Is(err, extract.ErrUnsupportedFormat) {
		t.Fatalf("error = %v, want ErrUnsupportedFormat", err)
	}

	_, err = Load(Source{Name: "cv", File: filepath.Join(t.TempDir(), "absent.txt")})
	if !errors.Is(err, extract.ErrFileNotFound) {
		t.Fatalf("error = %v, want ErrFileNotFound", err)
	}
}
