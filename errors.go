package braille

import (
	"errors"
	"fmt"
)

// Error kinds of the translation process. Concrete errors returned by the
// packages of this module wrap one of them, so clients may check with
// errors.Is.
var (
	InvalidInput = errors.New("invalid input")
	InvalidCell  = errors.New("invalid Braille cell")
)

// InputError flags an input which is neither a Braille nor a text string.
type InputError struct {
	Input string // the complete offending input
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input string '%s' is not a valid Braille or text string", e.Input)
}

// Unwrap returns InvalidInput.
func (e *InputError) Unwrap() error {
	return InvalidInput
}

// CellError flags a chunk of Braille input which is not a known cell.
type CellError struct {
	Chunk string // the offending chunk, may be shorter than CellSize
	Index int    // position of the chunk in units of cells, or -1
}

func (e *CellError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid Braille character '%s'", e.Chunk)
	}
	return fmt.Sprintf("invalid Braille character '%s' at cell %d", e.Chunk, e.Index)
}

// Unwrap returns InvalidCell.
func (e *CellError) Unwrap() error {
	return InvalidCell
}
