/*
Package encode translates English text to Braille cells.

Every character of the text results in one cell, with three exceptions:
an upper case letter is preceded by a capital marker, the first digit of
a run of consecutive digits is preceded by a number marker, and a period
is written as the decimal marker.

Input is expected to have passed package classify as text. Characters
without a cell in the table are reported as a *braille.InputError.
*/
package encode

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return braille.CT()
}

// state is the digit-run state of a single encoding run.
type state struct {
	digitActive bool
	lower       cases.Caser
	out         strings.Builder
}

func newState() braille.Resetter {
	return &state{lower: cases.Lower(language.English)}
}

// Reset is part of interface braille.Resetter.
func (st *state) Reset() {
	st.digitActive = false
	st.out.Reset()
}

var states = braille.NewStatePool(newState)

// String encodes a text as a string of Braille cells.
//
//	String("abc")  ⇒  "O.....O.O...OO...."
func String(text string) (string, error) {
	st := states.Borrow().(*state)
	defer states.Release(st)
	if err := st.encode(text); err != nil {
		return "", err
	}
	return st.out.String(), nil
}

// Encode encodes a text and writes the cells to w. Nothing is written if
// the text cannot be encoded.
func Encode(w io.Writer, text string) error {
	st := states.Borrow().(*state)
	defer states.Release(st)
	if err := st.encode(text); err != nil {
		return err
	}
	_, err := io.WriteString(w, st.out.String())
	return err
}

func (st *state) encode(text string) error {
	for i, r := range text {
		digit, isDigit := braille.DigitCellFor(r)
		if !isDigit {
			st.digitActive = false
		}
		switch {
		case isDigit:
			if !st.digitActive {
				st.put(braille.Number)
				st.digitActive = true
			}
			st.out.WriteString(string(digit))
		case unicode.IsUpper(r):
			lc := []rune(st.lower.String(string(r)))
			if len(lc) != 1 {
				return unmapped(text, r, i)
			}
			cell, ok := braille.CellFor(braille.Symbol(lc[0]))
			if !ok {
				return unmapped(text, r, i)
			}
			st.put(braille.Capital)
			st.out.WriteString(string(cell))
		case r == '.':
			st.put(braille.Decimal)
		default:
			cell, ok := braille.CellFor(braille.Symbol(r))
			if !ok {
				return unmapped(text, r, i)
			}
			st.out.WriteString(string(cell))
		}
	}
	T().Debugf("encode: %d characters → %d cells", len(text), st.out.Len()/braille.CellSize)
	return nil
}

func (st *state) put(marker braille.Symbol) {
	cell, _ := braille.CellFor(marker)
	st.out.WriteString(string(cell))
}

func unmapped(text string, r rune, pos int) error {
	err := fmt.Errorf("no Braille cell for %q at offset %d: %w", r, pos, &braille.InputError{Input: text})
	T().Infof("encode: %v", err)
	return err
}
