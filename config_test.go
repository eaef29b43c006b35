package flexlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tobyns/go-flexlay/pkg/layout"
)

func TestParseRules(t *testing.T) {
	tests := map[string]struct {
		toml    string
		want    layout.Rules
		wantErr bool
	}{
		"full config": {
			toml: `
direction = "column"
wrap = true
justify = "space-between"
align = "center"
gap = 4.0
main_size = 600.0
cross_size = 200.0
`,
			want: layout.Rules{
				Direction: layout.Column,
				Wrap:      true,
				Justify:   layout.JustifySpaceBetween,
				Align:     layout.AlignCenter,
				Gap:       4,
				MainSize:  600,
				CrossSize: 200,
			},
		},
		"empty config keeps defaults": {
			toml: ``,
			want: layout.DefaultRules(),
		},
		"partial config": {
			toml: `justify = "space-evenly"`,
			want: func() layout.Rules {
				r := layout.DefaultRules()
				r.Justify = layout.JustifySpaceEvenly
				return r
			}(),
		},
		"bonus align modes": {
			toml: `align = "fit-end"`,
			want: func() layout.Rules {
				r := layout.DefaultRules()
				r.Align = layout.AlignFitEnd
				return r
			}(),
		},
		"unknown direction": {
			toml:    `direction = "diagonal"`,
			wantErr: true,
		},
		"unknown justify": {
			toml:    `justify = "left"`,
			wantErr: true,
		},
		"unknown align": {
			toml:    `align = "baseline"`,
			wantErr: true,
		},
		"malformed toml": {
			toml:    `direction = `,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRules([]byte(tt.toml))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("expected rules %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "rules.toml")
	if err := os.WriteFile(path, []byte(`direction = "column"`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rules.Direction != layout.Column {
		t.Errorf("expected column direction, got %v", rules.Direction)
	}

	if _, err := LoadRules(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
