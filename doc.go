/*
Package braille is about translating between six-dot Braille cells and
English text.

Description

A Braille cell is a rectangle of six dot positions, arranged in three rows
of two columns. Dots are numbered 1-2-3 top to bottom in the left column and
4-5-6 in the right column. Every dot is either raised or flat.

In this module a cell is written as a token of exactly six characters, where
'O' denotes a raised dot and '.' a flat one. The characters are read row by
row, left to right, i.e. the positions of a token correspond to the dots

   1 4
   2 5
   3 6

An 'a' (dot 1 only) therefore is "O.....", a 'c' (dots 1 and 4) is "OO....".

Braille has fewer cells than print has characters. A small set of cells
does not represent a character of its own, but changes the meaning of the
cells following it. We call these cells markers:

  capital   the next letter is upper case
  number    the following cells are digits, up to the next space
  decimal   a decimal point

Digits re-use the cells of the letters 'a' to 'j', which is why the number
marker is needed at all.

BSD License

Copyright (c) 2024–26, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package braille holds the cell type, the symbol tables and the error
kinds shared by the sub-packages. Translation itself is done in the
sub-packages:

  classify    decides whether an input is Braille or text
  cellseg     splits a stream of Braille characters into cells
  decode      Braille cells → English text
  encode      English text → Braille cells
  translate   ties it all together, as used by the command line tool

Only grade 1 Braille (no contractions) with the fixed English table of this
package is supported. Unicode Braille patterns (U+2800 ff.) are not.
*/
package braille

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var tracerSetup sync.Once

// CT traces to the core-tracer.
// If no core-tracer has been configured, a Go log tracer reporting errors
// only is installed.
func CT() tracing.Trace {
	tracerSetup.Do(func() {
		if gtrace.CoreTracer == nil {
			t := gologadapter.New()
			t.SetTraceLevel(tracing.LevelError)
			gtrace.CoreTracer = t
		}
	})
	return gtrace.CoreTracer
}
