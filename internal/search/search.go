// Package search selects the lines of a file that contain a query and prints
// them, optionally highlighting each occurrence of the query.
package search

import (
	"io"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/fileutil"
	"github.com/seabearDEV/minigrep-go/internal/style"
)

// Run loads cfg.Filename and writes every matching line to w, in file order.
func Run(cfg config.Config, w io.Writer) error {
	lines, err := fileutil.ReadLines(cfg.Filename)
	if err != nil {
		return err
	}

	for _, i := range Match(cfg.Query, lines, cfg.CaseSensitive) {
		line := lines[i]
		if cfg.Style > 0 {
			line = Format(line, cfg.Query, cfg.Style)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Match dispatches to Search or SearchCaseInsensitive.
func Match(query string, lines []string, caseSensitive bool) []int {
	if caseSensitive {
		return Search(query, lines)
	}
	return SearchCaseInsensitive(query, lines)
}

// Search returns the indices of the lines containing query.
func Search(query string, lines []string) []int {
	var res []int
	for i, line := range lines {
		if strings.Contains(line, query) {
			res = append(res, i)
		}
	}
	return res
}

// SearchCaseInsensitive returns the indices of the lines containing query,
// comparing lowercased copies.
func SearchCaseInsensitive(query string, lines []string) []int {
	query = strings.ToLower(query)
	var res []int
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), query) {
			res = append(res, i)
		}
	}
	return res
}

// Format wraps every exact-case occurrence of query in line with the marker
// for code and a reset. Code 0 and codes above style.MaxCode return line
// unchanged.
//
// Occurrences that differ from query only by case are left alone, even when
// the line was selected by SearchCaseInsensitive.
func Format(line, query string, code uint8) string {
	if code == 0 || code > style.MaxCode {
		return line
	}
	return strings.ReplaceAll(line, query, style.AddStyle(query, code))
}
