// Package render prints departures as a bordered fixed-width text table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dkovalov/traindb/internal/store"
)

// Column widths of the departure table.
const (
	indexWidth = 4
	punktWidth = 30
	nomerWidth = 20
	timeWidth  = 20
)

// Table writes departures to w as a bordered table. Empty input produces
// no output at all.
//
// Each record line carries a right-aligned 1-based index, the left-aligned
// destination and train number, and the departure time behind a two-space
// gutter. Widths count runes so Cyrillic text lines up. Values longer than
// their column are written whole rather than truncated.
func Table(w io.Writer, departures []store.Departure) {
	if len(departures) == 0 {
		return
	}

	line := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+",
		strings.Repeat("-", indexWidth),
		strings.Repeat("-", punktWidth),
		strings.Repeat("-", nomerWidth),
		strings.Repeat("-", timeWidth),
	)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
		center("№", indexWidth),
		center("Пункт назначения", punktWidth),
		center("Номер поезда", nomerWidth),
		center("Время отправления", timeWidth),
	)
	fmt.Fprintln(w, line)

	for i, d := range departures {
		fmt.Fprintf(w, "| %s | %s | %s |  %s |\n",
			padLeft(strconv.Itoa(i+1), indexWidth),
			padRight(d.Punkt, punktWidth),
			padRight(d.Nomer, nomerWidth),
			padRight(d.Time, timeWidth-1),
		)
	}

	fmt.Fprintln(w, line)
}

// padRight left-aligns s in a field of width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft right-aligns s in a field of width runes.
func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// center pads s on both sides to width runes, the odd space going to the
// right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
