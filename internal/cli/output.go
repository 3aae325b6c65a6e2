// Package cli provides terminal output, prompts and error types for pz.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/width"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// ConfigureColor applies a color mode ("auto", "always" or "never") for
// output written to w.
func ConfigureColor(mode string, w io.Writer) error {
	switch mode {
	case "auto", "":
		SetColorEnabled(IsTerminal(w))
	case "always":
		SetColorEnabled(true)
	case "never":
		SetColorEnabled(false)
	default:
		return &ValidationError{Field: "color", Message: fmt.Sprintf("unknown mode %q (want auto, always or never)", mode)}
	}
	return nil
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Bold returns s in bold if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxPrizeWidth is the default maximum visible width for prize columns.
const DefaultMaxPrizeWidth = 60

// Table formats columnar output with automatic column width calculation.
// Widths are measured in terminal cells, so CJK prize labels line up.
type Table struct {
	rows       [][]string
	colWidths  []int
	maxWidths  map[int]int  // optional per-column max visible width
	alignRight map[int]bool // columns padded on the left
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// SetAlignRight right-aligns a column, for numbering.
func (t *Table) SetAlignRight(col int) {
	if t.alignRight == nil {
		t.alignRight = make(map[int]bool)
	}
	t.alignRight[col] = true
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	for i, col := range cols {
		w := VisibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && w > maxW {
			w = maxW
		}
		if w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}

	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			padding := strings.Repeat(" ", t.colWidths[i]-VisibleWidth(col))
			switch {
			case t.alignRight[i]:
				parts = append(parts, padding+col)
			case i < len(row)-1:
				parts = append(parts, col+padding)
			default:
				// Last column doesn't need padding
				parts = append(parts, col)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible cells. If s exceeds maxWidth,
// it is cut and "..." is appended (counted within the limit). ANSI escape
// codes are preserved up to the cut with a reset appended.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}

	ellipsis := "..."
	limit := maxWidth - len(ellipsis)
	if limit < 0 {
		// No room for the ellipsis, hard cut instead
		limit = maxWidth
		ellipsis = ""
	}

	var result strings.Builder
	visible := 0
	inEscape := false
	hasAnsi := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			hasAnsi = true
			result.WriteRune(r)
			continue
		}
		if inEscape {
			result.WriteRune(r)
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		rw := runeWidth(r)
		if visible+rw > limit {
			break
		}
		result.WriteRune(r)
		visible += rw
	}

	result.WriteString(ellipsis)
	if hasAnsi {
		result.WriteString(colorReset)
	}
	return result.String()
}

// VisibleWidth returns the number of terminal cells s occupies, excluding
// ANSI escape codes. Wide and fullwidth runes count as two cells.
func VisibleWidth(s string) int {
	total := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		total += runeWidth(r)
	}

	return total
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
