package braille

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// The English grade 1 table. Order matters: if two symbols share a cell,
// the first one wins when decoding. This is the case for '(' and ')'.
var englishTable = [...]struct {
	sym  Symbol
	cell Cell
}{
	{'a', "O....."}, {'b', "O.O..."}, {'c', "OO...."}, {'d', "OO.O.."}, {'e', "O..O.."},
	{'f', "OOO..."}, {'g', "OOOO.."}, {'h', "O.OO.."}, {'i', ".OO..."}, {'j', ".OOO.."},
	{'k', "O...O."}, {'l', "O.O.O."}, {'m', "OO..O."}, {'n', "OO.OO."}, {'o', "O..OO."},
	{'p', "OOO.O."}, {'q', "OOOOO."}, {'r', "O.OOO."}, {'s', ".OO.O."}, {'t', ".OOOO."},
	{'u', "O...OO"}, {'v', "O.O.OO"}, {'w', ".OOO.O"}, {'x', "OO..OO"}, {'y', "OO.OOO"},
	{'z', "O..OOO"}, {',', "..O..."}, {';', "..O.O."}, {':', "..OO.."}, {'.', "..OO.O"},
	{'!', "..OOO."}, {'?', "..O..O"}, {'(', "..O.OO"}, {')', "..O.OO"}, {'/', ".O.O.."},
	{'-', "....O."}, {Space, "......"},
	{Capital, ".....O"}, {Number, ".O.OOO"}, {Decimal, ".O...O"},
}

// Digits borrow the cells of the letters 'a' to 'j'.
var digitLetters = [...]struct {
	digit  rune
	letter Symbol
}{
	{'1', 'a'}, {'2', 'b'}, {'3', 'c'}, {'4', 'd'}, {'5', 'e'},
	{'6', 'f'}, {'7', 'g'}, {'8', 'h'}, {'9', 'i'}, {'0', 'j'},
}

// Tables are filled once in init() and are read-only afterwards.
var (
	symbolToCell *linkedhashmap.Map // Symbol → Cell, in table order
	cellToSymbol map[Cell]Symbol
	digitToCell  map[rune]Cell
	cellToDigit  map[Cell]rune
)

func init() {
	symbolToCell = linkedhashmap.New()
	for _, e := range englishTable {
		symbolToCell.Put(e.sym, e.cell)
	}
	cellToSymbol = make(map[Cell]Symbol, len(englishTable))
	it := symbolToCell.Iterator()
	for it.Next() {
		cell := it.Value().(Cell)
		if _, taken := cellToSymbol[cell]; taken {
			continue
		}
		cellToSymbol[cell] = it.Key().(Symbol)
	}
	digitToCell = make(map[rune]Cell, len(digitLetters))
	cellToDigit = make(map[Cell]rune, len(digitLetters))
	for _, d := range digitLetters {
		c, _ := CellFor(d.letter)
		digitToCell[d.digit] = c
		cellToDigit[c] = d.digit
	}
}

// CellFor returns the cell for a literal symbol or a marker.
// Upper case letters have no cell of their own; clients have to prepend
// a Capital marker to the cell of the lower case letter.
func CellFor(sym Symbol) (Cell, bool) {
	c, ok := symbolToCell.Get(sym)
	if !ok {
		return "", false
	}
	return c.(Cell), true
}

// SymbolFor returns the symbol a cell stands for. The cell shared by '('
// and ')' always decodes to '('.
func SymbolFor(c Cell) (Symbol, bool) {
	sym, ok := cellToSymbol[c]
	return sym, ok
}

// DigitCellFor returns the cell for a digit '0'…'9'.
func DigitCellFor(digit rune) (Cell, bool) {
	c, ok := digitToCell[digit]
	return c, ok
}

// DigitFor returns the digit a cell stands for while a number marker is
// in effect.
func DigitFor(c Cell) (rune, bool) {
	d, ok := cellToDigit[c]
	return d, ok
}

// Symbols returns all symbols of the table, in table order.
// The result is a fresh copy.
func Symbols() []Symbol {
	syms := make([]Symbol, 0, symbolToCell.Size())
	for _, k := range symbolToCell.Keys() {
		syms = append(syms, k.(Symbol))
	}
	return syms
}
