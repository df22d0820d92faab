package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestTableAlignment(t *testing.T) {
	lines, headerLines := Table(
		[]string{"name", "description"},
		[][]string{
			{"commit", "Write a commit message"},
			{"review", "Review code"},
		},
		40,
	)

	want := []string{
		"name    description",
		"------  ----------------------",
		"commit  Write a commit message",
		"review  Review code",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Table() =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
	if headerLines != 1 {
		t.Errorf("headerLines = %d, want 1", headerLines)
	}
}

func TestTableWrapsLongCells(t *testing.T) {
	lines, _ := Table(
		[]string{"name", "description"},
		[][]string{
			{"a", "one two three four"},
		},
		11,
	)

	want := []string{
		"name  description",
		"----  -----------",
		"a     one two",
		"      three four",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Table() =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestTableMissingCells(t *testing.T) {
	lines, _ := Table(
		[]string{"name", "mode"},
		[][]string{
			{"a"},
			{"b", "agent"},
		},
		40,
	)

	want := []string{
		"name  mode",
		"----  -----",
		"a",
		"b     agent",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Table() =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestTableMultibyteNames(t *testing.T) {
	lines, _ := Table(
		[]string{"name", "description"},
		[][]string{
			{"héllo", "x"},
			{"ab", "y"},
		},
		40,
	)

	// Columns align on display width, not byte length.
	want := []string{
		"name   description",
		"-----  -----------",
		"héllo  x",
		"ab     y",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Table() =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestWrapCellHardBreaks(t *testing.T) {
	got := wrapCell("abcdefghij", 4)
	want := []string{"abcd", "efgh", "ij"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapCell() = %v, want %v", got, want)
	}
}

func TestWrapCellKeepsRunesWhole(t *testing.T) {
	// Five cells wide despite six bytes, so no break.
	got := wrapCell("héllo", 5)
	if want := []string{"héllo"}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrapCell() = %v, want %v", got, want)
	}

	// Wide runes fill a two-cell budget one at a time.
	got = wrapCell("日本語", 2)
	if want := []string{"日", "本", "語"}; !reflect.DeepEqual(got, want) {
		t.Errorf("wrapCell() = %v, want %v", got, want)
	}
}

func TestWrapCellEmpty(t *testing.T) {
	got := wrapCell("", 10)
	if !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("wrapCell(\"\") = %v, want one empty line", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten..", 13, "exactly ten.."},
		{"this one is too long", 10, "this on..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WrapText() = %v, want %v", got, want)
	}

	if got := WrapText("", 10); got != nil {
		t.Errorf("WrapText(\"\") = %v, want nil", got)
	}
}
