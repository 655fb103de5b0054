package braille

import "fmt"

// Symbol is the meaning of a cell: either a literal character or a marker.
// Literal characters are represented by their rune, markers by negative
// values.
type Symbol rune

// Markers, i.e. symbols which do not stand for a character but modify the
// interpretation of subsequent cells.
const (
	Capital Symbol = -1 - iota // next letter is upper case
	Number                     // following cells are digits, up to a space
	Decimal                    // decimal point
)

// Space is the blank between words. It terminates a run of digits.
const Space Symbol = ' '

// IsMarker is true for Capital, Number and Decimal.
func (s Symbol) IsMarker() bool {
	return s < 0
}

// Rune returns the character of a literal symbol. For markers it returns -1.
func (s Symbol) Rune() rune {
	if s.IsMarker() {
		return -1
	}
	return rune(s)
}

func (s Symbol) String() string {
	switch s {
	case Capital:
		return "capital"
	case Number:
		return "number"
	case Decimal:
		return "decimal"
	case Space:
		return "space"
	}
	if s.IsMarker() {
		return fmt.Sprintf("??? (%d)", s)
	}
	return string(rune(s))
}
