/*
Package decode translates Braille cells to English text.

The decoder reads cells one after the other and keeps track of two
modifiers:

  capital   set by a capital marker; the next literal decoded outside of a
            number is upper-cased, which clears the modifier
  number    set by a number marker; every following cell is read as a digit
            until a space is decoded

A decimal marker is recognized, but produces no output. Consequently a text
like "3.5" encodes fine, but decodes to "35".

Modifiers never outlive a call to String or Decode.
*/
package decode

import (
	"io"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/cellseg"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return braille.CT()
}

// state is the modifier state of a single decoding run.
type state struct {
	capitalPending bool
	numberActive   bool
	seg            *cellseg.Segmenter
	upper          cases.Caser
	out            strings.Builder
}

func newState() braille.Resetter {
	return &state{
		seg:   cellseg.NewSegmenter(),
		upper: cases.Upper(language.English),
	}
}

// Reset is part of interface braille.Resetter.
func (st *state) Reset() {
	st.capitalPending = false
	st.numberActive = false
	st.seg.Init(nil)
	st.out.Reset()
}

var states = braille.NewStatePool(newState)

// String decodes a string of Braille cells.
//
//	String("O.....O.O...OO....")  ⇒  "abc"
//
// Unknown cells, including a short remainder at the end of the input,
// result in a *braille.CellError.
func String(input string) (string, error) {
	return Decode(strings.NewReader(input))
}

// Decode decodes Braille cells read from r.
func Decode(r io.RuneReader) (string, error) {
	st := states.Borrow().(*state)
	defer states.Release(st)
	st.seg.Init(r)
	for st.seg.Next() {
		if err := st.step(st.seg.Cell(), st.seg.Index()); err != nil {
			T().Infof("decode: %v", err)
			return "", err
		}
	}
	if err := st.seg.Err(); err != nil {
		return "", err
	}
	return st.out.String(), nil
}

func (st *state) step(cell braille.Cell, inx int) error {
	sym, ok := braille.SymbolFor(cell)
	if !ok {
		return &braille.CellError{Chunk: string(cell), Index: inx}
	}
	T().Debugf("decode: cell #%d '%s' = %v", inx, cell, sym)
	switch sym {
	case braille.Capital:
		st.capitalPending = true
	case braille.Number:
		st.numberActive = true
	case braille.Decimal:
		// recognized, but not rendered
	default:
		if sym == braille.Space {
			st.numberActive = false
		}
		if st.numberActive {
			digit, ok := braille.DigitFor(cell)
			if !ok {
				return &braille.CellError{Chunk: string(cell), Index: inx}
			}
			st.out.WriteRune(digit)
		} else if st.capitalPending {
			st.out.WriteString(st.upper.String(string(sym.Rune())))
			st.capitalPending = false
		} else {
			st.out.WriteRune(sym.Rune())
		}
	}
	return nil
}
