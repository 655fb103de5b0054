/*
Package classify decides whether an input string is Braille or text.

Classification looks at the whole input. A string is Braille if it consists
of cell characters ('.' and 'O') only. Otherwise it is text if it consists
of ASCII letters, digits and a small set of punctuation only. Everything
else is rejected; mixed content is never partially translated.

The Braille check comes first. The empty string thus is Braille, and so is
a string like "OOO", even though it would be valid text as well.
*/
package classify

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/rangetable"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return braille.CT()
}

// Kind is the category of an input string.
type Kind int8

// Input categories
const (
	Invalid Kind = iota // neither Braille nor text
	Braille             // cell characters only
	Text                // printable English text
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Braille:
		return "braille"
	case Text:
		return "text"
	}
	return fmt.Sprintf("??? (%d)", k)
}

// BrailleAlphabet holds the characters cell tokens are made of.
var BrailleAlphabet = rangetable.New(braille.Flat, braille.Raised)

// Punctuation allowed in text, in addition to letters and digits.
const Punctuation = " ,.?!;()-"

var asciiAlnum = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0030, 0x0039, 1}, // 0…9
		{0x0041, 0x005a, 1}, // A…Z
		{0x0061, 0x007a, 1}, // a…z
	},
	LatinOffset: 3,
}

// TextAlphabet holds the characters allowed in text input.
var TextAlphabet = rangetable.Merge(asciiAlnum, rangetable.New([]rune(Punctuation)...))

// Classify returns the category of an input string. Inputs which are
// neither Braille nor text result in a *braille.InputError.
func Classify(input string) (Kind, error) {
	if consistsOf(input, BrailleAlphabet) {
		T().Debugf("classify: input of length %d is Braille", len(input))
		return Braille, nil
	}
	if consistsOf(input, TextAlphabet) {
		T().Debugf("classify: input of length %d is text", len(input))
		return Text, nil
	}
	return Invalid, &braille.InputError{Input: input}
}

// IsBraille is true if input consists of cell characters only.
func IsBraille(input string) bool {
	return consistsOf(input, BrailleAlphabet)
}

// IsText is true if input consists of characters allowed in text only.
func IsText(input string) bool {
	return consistsOf(input, TextAlphabet)
}

func consistsOf(input string, table *unicode.RangeTable) bool {
	for _, r := range input {
		if !unicode.Is(table, r) {
			return false
		}
	}
	return true
}
