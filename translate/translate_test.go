package translate

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/braille"
	"github.com/npillmayer/braille/classify"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTranslate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		input  string
		kind   classify.Kind
		output string
	}{
		{"abc", classify.Text, "O.....O.O...OO...."},
		{"O.....O.O...OO....", classify.Braille, "abc"},
		{"", classify.Braille, ""},
		{".O.OOOO.....O.O...OO....", classify.Braille, "123"},
	}
	for _, c := range cases {
		res, err := Translate(c.input)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.input, err)
			continue
		}
		if res.Kind != c.kind || res.Output != c.output {
			t.Errorf("expected %q to be %v → %q, is %v → %q", c.input, c.kind, c.output, res.Kind, res.Output)
		}
	}
}

func TestTranslateErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if _, err := Translate("a\tb"); !errors.Is(err, braille.InvalidInput) {
		t.Errorf("expected InvalidInput for tab, have %v", err)
	}
	if _, err := Translate("OOOOOO"); !errors.Is(err, braille.InvalidCell) {
		t.Errorf("expected InvalidCell for unused cell, have %v", err)
	}
	if _, err := Translate("O.....O"); !errors.Is(err, braille.InvalidCell) {
		t.Errorf("expected InvalidCell for short remainder, have %v", err)
	}
}

func TestJoin(t *testing.T) {
	if s := Join([]string{"Hello", "world"}); s != "Hello world" {
		t.Errorf("expected 'Hello world', is '%s'", s)
	}
	if s := Join(nil); s != "" {
		t.Errorf("expected empty string, is '%s'", s)
	}
}

func TestLine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	msg, out := Line([]string{"Hello", "world"})
	if msg != "" {
		t.Errorf("unexpected message: %s", msg)
	}
	expected := ".....OO.OO..O..O..O.O.O.O.O.O.O..OO........OOO.OO..OO.O.OOO.O.O.O.OO.O.."
	if out != expected {
		t.Errorf("expected '%s', have '%s'", expected, out)
	}
	msg, out = Line([]string{"smile", "😀"})
	if !strings.HasPrefix(msg, ErrorPrefix) || out != "" {
		t.Errorf("expected error message and empty output, have '%s' / '%s'", msg, out)
	}
	if !strings.Contains(msg, "smile 😀") {
		t.Errorf("expected message to quote the joined input, is '%s'", msg)
	}
}

func TestRun(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Run(&buf, []string{"O.....O.O...OO...."}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "abc\n" {
		t.Errorf("expected 'abc\\n', have %q", buf.String())
	}
	buf.Reset()
	if err := Run(&buf, []string{"a\tb"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 3 || lines[1] != "" || lines[2] != "" {
		t.Fatalf("expected error line and empty line, have %q", buf.String())
	}
	if lines[0] != ErrorPrefix+"input string 'a\tb' is not a valid Braille or text string" {
		t.Errorf("unexpected error line %q", lines[0])
	}
}

func TestContextForLocale(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, locale := range []string{"en-US", "en-GB", "en"} {
		if ctx := ContextForLocale(locale); !ctx.Matches {
			t.Errorf("expected table to match locale %s", locale)
		}
	}
	for _, locale := range []string{"de-DE", "ja-JP", "zh-Hant"} {
		if ctx := ContextForLocale(locale); ctx.Matches {
			t.Errorf("expected table not to match locale %s", locale)
		}
	}
}

func TestEnvContext(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	ctx := ContextFromEnvironment()
	if ctx == nil {
		t.Fatalf("context from environment is nil, should not")
	}
	t.Logf("user environment has locale '%s'", ctx.Locale)
}
