package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrFileUnreadable is matched by every *FileUnreadableError.
	ErrFileUnreadable = errors.New("could not open the file")
	// ErrNotText is the reason given for content that is not valid UTF-8.
	ErrNotText = errors.New("file content is not valid UTF-8 text")
)

// FileUnreadableError wraps the reason a file could not be loaded.
type FileUnreadableError struct {
	Filename string
	Err      error
}

func (e *FileUnreadableError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrFileUnreadable, e.Filename, e.Err)
}

func (e *FileUnreadableError) Unwrap() error { return e.Err }

func (e *FileUnreadableError) Is(target error) bool {
	return target == ErrFileUnreadable
}

// ReadLines reads the whole file and splits it into lines. The file is closed
// before ReadLines returns.
func ReadLines(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &FileUnreadableError{Filename: filename, Err: unwrapPathError(err)}
	}
	if !utf8.Valid(data) {
		return nil, &FileUnreadableError{Filename: filename, Err: ErrNotText}
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits content on '\n' only. Carriage returns stay in the line
// and an empty string yields a single empty line.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// unwrapPathError drops the *fs.PathError layer, whose message repeats the
// filename already carried by FileUnreadableError.
func unwrapPathError(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
