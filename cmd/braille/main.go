/*
Command braille translates between Braille cells and English text.

Usage:

  braille [flags] [input...]

The inputs are joined by single spaces. If the result consists of '.' and
'O' only, it is read as Braille and translated to text; otherwise it is
translated to Braille. Exactly one line is printed. If the input cannot be
translated, a message line is printed first and the result line is empty.
The exit status is 0 in this case as well.

Without inputs, braille reads lines from standard input and translates each
of them. On a terminal it offers a line editor.

Inputs starting with '-' are taken for flags; separate them with "--":

  braille -- -abc

The Braille table is the English one. If the user's locale is of another
language, a note saying so is printed to standard error.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/braille/translate"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var level string
	cmd := &cobra.Command{
		Use:   "braille [input...]",
		Short: "translates between Braille cells and English text",
		Long: `Braille translates an input of Braille cells ('O' raised, '.' flat,
six characters per cell) to English text, or English text to Braille cells.
The direction is detected from the input.
`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupTracing(level); err != nil {
				return err
			}
			localeNotice(cmd.ErrOrStderr(), translate.ContextFromEnvironment())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return repl(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			return translate.Run(cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringVarP(&level, "trace", "t", "error", "trace level: debug, info or error")
	return cmd
}

// localeNotice tells users that the Braille table does not fit their language.
func localeNotice(w io.Writer, ctx *translate.Context) {
	if ctx.Matches {
		return
	}
	fmt.Fprintf(w, "braille: note: Braille table is %v, user locale is %s\n",
		translate.TableLanguage, ctx.Locale)
}

func setupTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "d", "debug":
		l = tracing.LevelDebug
	case "i", "info":
		l = tracing.LevelInfo
	case "e", "error":
		l = tracing.LevelError
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(l)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "braille: %v\n", err)
		os.Exit(1)
	}
}
