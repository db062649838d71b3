package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CaseInsensitiveEnv switches the search to case-insensitive mode when it is
// present in the environment, whatever its value.
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	// ErrMissingArgument is matched by every *MissingArgumentError.
	ErrMissingArgument = errors.New("missing argument")
	// ErrUnparseableStyle is wrapped by the warning emitted for a bad style.
	ErrUnparseableStyle = errors.New("could not parse the third argument (style) as an integer between 0 and 255")
	// ErrExtraArguments is wrapped by the warning emitted for surplus arguments.
	ErrExtraArguments = errors.New("too many arguments")
)

// Config represents a single search run.
type Config struct {
	Query         string
	Filename      string
	Style         uint8
	CaseSensitive bool
}

// EnvLookup reports whether an environment variable is set, like os.LookupEnv.
type EnvLookup func(key string) (string, bool)

// OSLookup reads the process environment.
var OSLookup EnvLookup = os.LookupEnv

// MissingArgumentError reports a required positional argument that was not
// supplied.
type MissingArgumentError struct {
	Position int
	Name     string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing the %s argument (%s)", ordinal(e.Position), e.Name)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// New builds a Config from raw arguments. args[0] is the program name and is
// skipped. Non-fatal problems are returned as warnings in the order they were
// found; the returned error is fatal.
func New(args []string, lookup EnvLookup) (Config, []error, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return Config{}, nil, &MissingArgumentError{Position: 1, Name: "query"}
	}
	if len(args) < 2 {
		return Config{}, nil, &MissingArgumentError{Position: 2, Name: "filename"}
	}

	cfg := Config{
		Query:    args[0],
		Filename: args[1],
	}

	var warnings []error
	if len(args) > 2 {
		s, err := ParseStyle(args[2])
		if err != nil {
			warnings = append(warnings, err)
		}
		cfg.Style = s
	}
	if len(args) > 3 {
		warnings = append(warnings, fmt.Errorf("%w; the 4th one and up will be discarded", ErrExtraArguments))
	}

	if lookup == nil {
		lookup = OSLookup
	}
	_, insensitive := lookup(CaseInsensitiveEnv)
	cfg.CaseSensitive = !insensitive

	return cfg, warnings, nil
}

// ParseStyle parses a style code in the range 0-255. On failure it returns 0
// together with an error wrapping ErrUnparseableStyle.
func ParseStyle(raw string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableStyle, raw)
	}
	return uint8(v), nil
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return strconv.Itoa(n) + "th"
	}
}
