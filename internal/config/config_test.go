package config

import (
	"errors"
	"testing"
)

func lookupFrom(env map[string]string) EnvLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

var emptyEnv = lookupFrom(nil)

func TestNewMissingArguments(t *testing.T) {
	tests := []struct {
		args []string
		name string
	}{
		{[]string{"prog"}, "query"},
		{[]string{}, "query"},
		{[]string{"prog", "hello"}, "filename"},
	}
	for _, tt := range tests {
		_, _, err := New(tt.args, emptyEnv)
		if !errors.Is(err, ErrMissingArgument) {
			t.Fatalf("New(%q) error = %v, want ErrMissingArgument", tt.args, err)
		}
		var missing *MissingArgumentError
		if !errors.As(err, &missing) {
			t.Fatalf("New(%q) error is %T, want *MissingArgumentError", tt.args, err)
		}
		if missing.Name != tt.name {
			t.Errorf("New(%q) missing %q, want %q", tt.args, missing.Name, tt.name)
		}
	}
}

func TestNewDefaults(t *testing.T) {
	cfg, warnings, err := New([]string{"prog", "q", "poem.txt"}, emptyEnv)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("New() warnings = %v, want none", warnings)
	}
	want := Config{Query: "q", Filename: "poem.txt", Style: 0, CaseSensitive: true}
	if cfg != want {
		t.Errorf("New() = %+v, want %+v", cfg, want)
	}
}

func TestNewStyle(t *testing.T) {
	tests := []struct {
		raw       string
		want      uint8
		wantWarns int
	}{
		{"1", 1, 0},
		{"9", 9, 0},
		{"+5", 5, 0},
		{"200", 200, 0},
		{"255", 255, 0},
		{"256", 0, 1},
		{"-1", 0, 1},
		{"notanumber", 0, 1},
		{"", 0, 1},
	}
	for _, tt := range tests {
		cfg, warnings, err := New([]string{"prog", "q", "f", tt.raw}, emptyEnv)
		if err != nil {
			t.Fatalf("New(style=%q) error = %v", tt.raw, err)
		}
		if cfg.Style != tt.want {
			t.Errorf("New(style=%q).Style = %d, want %d", tt.raw, cfg.Style, tt.want)
		}
		if len(warnings) != tt.wantWarns {
			t.Errorf("New(style=%q) warnings = %v, want %d", tt.raw, warnings, tt.wantWarns)
		}
		for _, w := range warnings {
			if !errors.Is(w, ErrUnparseableStyle) {
				t.Errorf("New(style=%q) warning = %v, want ErrUnparseableStyle", tt.raw, w)
			}
		}
	}
}

func TestNewExtraArguments(t *testing.T) {
	cfg, warnings, err := New([]string{"prog", "q", "f", "3", "extra", "more"}, emptyEnv)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if cfg.Style != 3 {
		t.Errorf("Style = %d, want 3", cfg.Style)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrExtraArguments) {
		t.Errorf("warnings = %v, want one ErrExtraArguments", warnings)
	}

	_, warnings, _ = New([]string{"prog", "q", "f", "bad", "extra"}, emptyEnv)
	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want 2", warnings)
	}
	if !errors.Is(warnings[0], ErrUnparseableStyle) || !errors.Is(warnings[1], ErrExtraArguments) {
		t.Errorf("warnings out of order: %v", warnings)
	}
}

func TestNewCaseSensitivity(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want bool
	}{
		{nil, true},
		{map[string]string{"OTHER": "1"}, true},
		{map[string]string{CaseInsensitiveEnv: "1"}, false},
		{map[string]string{CaseInsensitiveEnv: ""}, false},
		{map[string]string{CaseInsensitiveEnv: "false"}, false},
	}
	for _, tt := range tests {
		cfg, _, err := New([]string{"prog", "q", "f"}, lookupFrom(tt.env))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if cfg.CaseSensitive != tt.want {
			t.Errorf("env %v: CaseSensitive = %v, want %v", tt.env, cfg.CaseSensitive, tt.want)
		}
	}
}

func TestNewDeterministic(t *testing.T) {
	args := []string{"prog", "q", "f", "x", "y"}
	env := lookupFrom(map[string]string{CaseInsensitiveEnv: "yes"})
	a, wa, _ := New(args, env)
	b, wb, _ := New(args, env)
	if a != b || len(wa) != len(wb) {
		t.Errorf("New() not deterministic: %+v/%v vs %+v/%v", a, wa, b, wb)
	}
}
