package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cell is a closed union of the value kinds a results row can hold:
// either text or a number. Dispatch happens on the kind; there is no
// open interface to implement.
type cellKind int

const (
	cellText cellKind = iota
	cellNumber
)

type Cell struct {
	kind cellKind
	text string
	num  float64
}

// Text wraps a string cell.
func Text(s string) Cell {
	return Cell{kind: cellText, text: s}
}

// Number wraps a numeric cell.
func Number(v float64) Cell {
	return Cell{kind: cellNumber, num: v}
}

var printer = message.NewPrinter(language.English)

func (c Cell) String() string {
	switch c.kind {
	case cellNumber:
		return printer.Sprintf("%.6f", c.num)
	default:
		return c.text
	}
}
