// Package style wraps text in ANSI SGR escape sequences. Every marker is
// available both as a string (Fg, AddStyle, ...) and as a direct write to an
// io.Writer (WriteFg, WriteStyle, ...).
package style

import (
	"fmt"
	"io"
)

// Reset clears every attribute set by a previous marker.
const Reset = "\x1b[0m"

// Text attribute codes accepted by Code and AddStyle.
const (
	Bold          uint8 = 1
	Dim           uint8 = 2
	Italic        uint8 = 3
	Underline     uint8 = 4
	Blink         uint8 = 5
	Reversed      uint8 = 7
	Hidden        uint8 = 8
	Strikethrough uint8 = 9
)

// MaxCode is the largest attribute code AddStyle will apply.
const MaxCode uint8 = 9

// Fg returns the marker for a 24-bit foreground colour.
func Fg(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%d;1m", r, g, b)
}

// Bg returns the marker for a 24-bit background colour.
func Bg(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%d;1m", r, g, b)
}

// Code returns the marker for a raw attribute code.
func Code(code uint8) string {
	return fmt.Sprintf("\x1b[%d;1m", code)
}

// AddFg wraps s in a foreground colour and a reset.
func AddFg(s string, r, g, b uint8) string {
	return Fg(r, g, b) + s + Reset
}

// AddBg wraps s in a background colour and a reset.
func AddBg(s string, r, g, b uint8) string {
	return Bg(r, g, b) + s + Reset
}

// AddStyle wraps s in the attribute code and a reset. Codes above MaxCode
// leave s unchanged.
func AddStyle(s string, code uint8) string {
	if code > MaxCode {
		return s
	}
	return Code(code) + s + Reset
}

// WriteFg writes the foreground colour marker to w.
func WriteFg(w io.Writer, r, g, b uint8) error {
	_, err := io.WriteString(w, Fg(r, g, b))
	return err
}

// WriteBg writes the background colour marker to w.
func WriteBg(w io.Writer, r, g, b uint8) error {
	_, err := io.WriteString(w, Bg(r, g, b))
	return err
}

// WriteStyle writes the attribute marker to w.
func WriteStyle(w io.Writer, code uint8) error {
	_, err := io.WriteString(w, Code(code))
	return err
}

// WriteReset writes the reset marker to w.
func WriteReset(w io.Writer) error {
	_, err := io.WriteString(w, Reset)
	return err
}
