package braille

import (
	"fmt"
	"sort"
	"strings"
)

// CellSize is the number of characters of a cell token.
const CellSize = 6

// Characters a cell token is made of.
const (
	Raised = 'O'
	Flat   = '.'
)

// Cell is a single Braille cell, written as a token of CellSize
// characters, each either Raised or Flat.
//
// Token positions are row-major: position 0 is dot 1, position 1 is dot 4,
// position 2 is dot 2, and so on.
type Cell string

// dotAt maps token positions to dot numbers.
var dotAt = [CellSize]int{1, 4, 2, 5, 3, 6}

// Valid is true if c has length CellSize and consists of Raised and Flat
// characters only.
func (c Cell) Valid() bool {
	if len(c) != CellSize {
		return false
	}
	for i := 0; i < CellSize; i++ {
		if c[i] != Raised && c[i] != Flat {
			return false
		}
	}
	return true
}

// Dots returns the numbers of the raised dots of c, in ascending order.
// For invalid cells, Dots returns nil.
func (c Cell) Dots() []int {
	if !c.Valid() {
		return nil
	}
	var dots []int
	for i := 0; i < CellSize; i++ {
		if c[i] == Raised {
			dots = append(dots, dotAt[i])
		}
	}
	sort.Ints(dots)
	return dots
}

// String returns the token of c. Part of interface fmt.Stringer.
func (c Cell) String() string {
	return string(c)
}

// ParseCell checks a token and returns it as a cell.
// Malformed tokens result in a *CellError.
func ParseCell(token string) (Cell, error) {
	c := Cell(token)
	if !c.Valid() {
		return "", &CellError{Chunk: token, Index: -1}
	}
	return c, nil
}

// CellFromDots creates a cell from a set of raised dots, each in 1…6.
//
//	CellFromDots(1, 2)  ⇒  "O.O..."  (letter 'b')
func CellFromDots(dots ...int) (Cell, error) {
	token := []byte(strings.Repeat(string(Flat), CellSize))
	for _, d := range dots {
		if d < 1 || d > CellSize {
			return "", fmt.Errorf("dot number %d out of range 1…%d: %w", d, CellSize, InvalidCell)
		}
		for pos, dot := range dotAt {
			if dot == d {
				token[pos] = Raised
			}
		}
	}
	return Cell(token), nil
}
