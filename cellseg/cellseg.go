/*
Package cellseg splits a stream of Braille characters into cells.

Typical Usage

Segmenter provides an interface similar to bufio.Scanner. Successive calls
to a segmenter's Next() method step through the cells of the input.

  seg := cellseg.NewSegmenter()
  seg.Init(strings.NewReader("O.....O.O..."))
  for seg.Next() {
    // do something with seg.Cell(), seg.Text() or seg.Bytes()
  }
  if err := seg.Err(); err != nil {
    ...
  }

Every cell consists of braille.CellSize characters. If the input ends with
fewer characters, this remainder is returned as a last, short segment.
The segmenter does not check the characters it reads; recognizing cells is
up to the client.
*/
package cellseg

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return braille.CT()
}

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("cell segmenter not initialized; must call Init(...) first")

// A Segmenter receives a sequence of code-points from an io.RuneReader and
// groups them into cells.
type Segmenter struct {
	reader io.RuneReader
	buffer []byte // holds the active segment
	runes  int    // runes in the active segment
	index  int    // index of the active segment, in units of cells
	err    error
	atEOF  bool
}

// NewSegmenter creates a new Segmenter. Before using it, clients have to
// call Init(...).
func NewSegmenter() *Segmenter {
	return &Segmenter{
		buffer: make([]byte, 0, braille.CellSize*utf8.UTFMax),
		index:  -1,
	}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter or a segmenter already in use.
// A nil reader is treated as empty input.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	s.buffer = s.buffer[:0]
	s.runes = 0
	s.index = -1
	s.err = nil
	s.atEOF = false
}

// Next advances the Segmenter to the next cell, which will then be
// available through the Cell(), Bytes() or Text() method. It returns false
// when segmenting stops, either by reaching the end of the input or an
// error. After Next() returns false, the Err() method will return any error
// that occurred during reading, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.err = ErrNotInitialized
		return false
	}
	s.buffer = s.buffer[:0]
	s.runes = 0
	if s.atEOF || s.err != nil {
		return false
	}
	for s.runes < braille.CellSize {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			if err != io.EOF {
				s.err = err
				return false
			}
			s.atEOF = true
			break
		}
		s.buffer = utf8.AppendRune(s.buffer, r)
		s.runes++
	}
	if s.runes == 0 {
		return false
	}
	s.index++
	if s.runes < braille.CellSize {
		T().Debugf("cellseg: short segment '%s' at end of input", s.buffer)
	}
	return true
}

// Bytes returns the most recent segment generated by a call to Next().
// The underlying array may point to data that will be overwritten by a
// subsequent call to Next().
func (s *Segmenter) Bytes() []byte {
	return s.buffer
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string.
func (s *Segmenter) Text() string {
	return string(s.buffer)
}

// Cell returns the most recent segment as a cell. The cell may be invalid,
// especially if it is a short segment at the end of the input.
func (s *Segmenter) Cell() braille.Cell {
	return braille.Cell(s.buffer)
}

// Index returns the position of the most recent segment, in units of cells,
// starting at 0. Before the first call to Next() it is -1.
func (s *Segmenter) Index() int {
	return s.index
}

// Short is true if the most recent segment has fewer than braille.CellSize
// characters.
func (s *Segmenter) Short() bool {
	return s.runes < braille.CellSize
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	return s.err
}

// Cells splits a string into cells. Unlike a Segmenter it does not stream,
// but collects all the segments, including a short remainder.
func Cells(input string) []braille.Cell {
	seg := NewSegmenter()
	seg.Init(strings.NewReader(input))
	cells := make([]braille.Cell, 0, len(input)/braille.CellSize+1)
	for seg.Next() {
		cells = append(cells, seg.Cell())
	}
	return cells
}
