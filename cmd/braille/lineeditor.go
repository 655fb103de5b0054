package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"github.com/npillmayer/braille/translate"
	"golang.org/x/term"
)

const prompt = "braille> "

// lineEditor reads input lines, either with a line editor on a terminal or
// with a plain scanner for pipes and files.
type lineEditor struct {
	rl      *readline.Instance
	scanner *bufio.Scanner
}

func newLineEditor(in io.Reader) *lineEditor {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rl, err := readline.NewFromConfig(&readline.Config{
			Prompt:       prompt,
			HistoryLimit: 500,
		})
		if err == nil {
			return &lineEditor{rl: rl}
		}
	}
	return &lineEditor{scanner: bufio.NewScanner(in)}
}

// readLine returns the next line, without line terminator.
// At the end of the input, or on Ctrl-C, it returns io.EOF.
func (le *lineEditor) readLine() (string, error) {
	if le.rl != nil {
		line, err := le.rl.Readline()
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return line, err
	}
	if le.scanner.Scan() {
		return le.scanner.Text(), nil
	}
	if err := le.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (le *lineEditor) close() {
	if le.rl != nil {
		le.rl.Close()
	}
}

// repl translates input lines one by one. Empty lines are skipped.
func repl(in io.Reader, out io.Writer) error {
	le := newLineEditor(in)
	defer le.close()
	for {
		line, err := le.readLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if err := translate.Run(out, args); err != nil {
			return err
		}
	}
}
