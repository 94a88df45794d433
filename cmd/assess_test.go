package cmd

import "testing"

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{
			name: "plain list",
			raw:  "0,1,2,3,0,1,2,3,0,1",
			want: []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1},
		},
		{
			name: "spaces tolerated",
			raw:  " 1, 0 ,3",
			want: []int{1, 0, 3},
		},
		{
			name:    "not a number",
			raw:     "1,two,3",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswers(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAnswers(%q) expected an error, got %v", tt.raw, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("parseAnswers(%q): %v", tt.raw, err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("parseAnswers(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseAnswers(%q)[%d] = %d, want %d", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}
