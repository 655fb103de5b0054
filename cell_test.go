package braille

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCellValid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	valid := []string{"O.....", "......", "OOOOOO"}
	invalid := []string{"", "O....", "O......", "XXXXXX", "o.....", "O.. ..", "⠁....."}
	for _, s := range valid {
		if !Cell(s).Valid() {
			t.Errorf("expected %q to be a valid cell", s)
		}
	}
	for _, s := range invalid {
		if Cell(s).Valid() {
			t.Errorf("expected %q to be an invalid cell", s)
		}
	}
}

func TestCellDots(t *testing.T) {
	cases := []struct {
		cell Cell
		dots []int
	}{
		{"O.....", []int{1}},
		{"O.O...", []int{1, 2}},
		{"OO....", []int{1, 4}},
		{".OOO..", []int{2, 4, 5}},
		{".....O", []int{6}},
		{"......", nil},
	}
	for _, c := range cases {
		if d := c.cell.Dots(); !reflect.DeepEqual(d, c.dots) {
			t.Errorf("expected dots of %q to be %v, are %v", c.cell, c.dots, d)
		}
	}
}

func TestCellFromDots(t *testing.T) {
	c, err := CellFromDots(1, 2)
	if err != nil || c != "O.O..." {
		t.Errorf("expected dots 1,2 to be %q, is %q (%v)", "O.O...", c, err)
	}
	c, err = CellFromDots(2, 4, 5)
	if err != nil || c != ".OOO.." {
		t.Errorf("expected dots 2,4,5 to be %q, is %q (%v)", ".OOO..", c, err)
	}
	if _, err = CellFromDots(7); !errors.Is(err, InvalidCell) {
		t.Errorf("expected dot 7 to be rejected, err = %v", err)
	}
}

func TestParseCell(t *testing.T) {
	if c, err := ParseCell("OO.O.."); err != nil || c != "OO.O.." {
		t.Errorf("expected to parse 'd', have %q, %v", c, err)
	}
	_, err := ParseCell("OO.O")
	var cerr *CellError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a *CellError, have %v", err)
	}
	if cerr.Chunk != "OO.O" {
		t.Errorf("expected chunk to be reported, is %q", cerr.Chunk)
	}
}

func ExampleCellFromDots() {
	c, _ := CellFromDots(1, 2)
	fmt.Println(c)
	// Output: O.O...
}
