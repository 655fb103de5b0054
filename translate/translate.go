/*
Package translate auto-detects the direction of a translation and performs
it.

Input arrives as a list of arguments, which are joined by single spaces,
classified and then handed to either the decoder or the encoder:

  res, err := translate.Translate("Hello world")
  // res.Kind == classify.Text, res.Output is a string of cells

Run is what the command line tool uses. It never fails because of a bad
input: translation errors are reported as a message line, followed by an
empty result line.
*/
package translate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/classify"
	"github.com/npillmayer/braille/decode"
	"github.com/npillmayer/braille/encode"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return braille.CT()
}

// ErrorPrefix starts every message about a failed translation.
const ErrorPrefix = "Error occurred while translating input: "

// Result is the outcome of a translation.
type Result struct {
	Kind   classify.Kind // category of the input
	Output string        // text for Braille input, cells for text input
}

// Join joins arguments with single spaces.
func Join(args []string) string {
	return strings.Join(args, " ")
}

// Translate classifies an input and translates it.
// Errors are of kind braille.InvalidInput or braille.InvalidCell.
func Translate(input string) (Result, error) {
	kind, err := classify.Classify(input)
	if err != nil {
		return Result{Kind: kind}, err
	}
	T().Infof("translating %v input", kind)
	var out string
	switch kind {
	case classify.Braille:
		out, err = decode.String(input)
	case classify.Text:
		out, err = encode.String(input)
	default:
		panic(fmt.Sprintf("unexpected input kind %v", kind))
	}
	if err != nil {
		return Result{Kind: kind}, err
	}
	return Result{Kind: kind, Output: out}, nil
}

// Line translates a list of arguments. If translation fails, msg holds an
// error message and out is empty. Otherwise msg is empty.
func Line(args []string) (msg string, out string) {
	res, err := Translate(Join(args))
	if err != nil {
		switch {
		case errors.Is(err, braille.InvalidInput):
			T().Infof("input rejected: %v", err)
		case errors.Is(err, braille.InvalidCell):
			T().Infof("Braille input not decodable: %v", err)
		default:
			T().Errorf("translation failed: %v", err)
		}
		return ErrorPrefix + err.Error(), ""
	}
	return "", res.Output
}

// Run translates a list of arguments and prints the result to w, as a
// single line. If translation fails, an error message line is printed
// first, and the result line is empty. Only errors writing to w are
// returned.
func Run(w io.Writer, args []string) error {
	msg, out := Line(args)
	if msg != "" {
		if _, err := fmt.Fprintln(w, msg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
