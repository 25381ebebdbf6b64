package pretty

import (
	"testing"

	"biolab-core/align"
)

var gattaca = align.Result{Aligned1: "G-ATTACA", Aligned2: "GCA-TGCU", End1: 7, End2: 7}

func TestBars(t *testing.T) {
	if got := Bars("G-ATTACA", "GCA-TGCU", DefaultOptions); got != "| | |.|." {
		t.Fatalf("bars = %q", got)
	}
}

func TestRenderSingleBlock(t *testing.T) {
	const want = "" +
		"# s1 1 G-ATTACA 7\n" +
		"#      | | |.|.\n" +
		"# s2 1 GCA-TGCU 7\n"
	if got := Render(gattaca, "s1", "s2", DefaultOptions); got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWrapped(t *testing.T) {
	opt := DefaultOptions
	opt.Width = 4
	const want = "" +
		"# s1 1 G-AT 3\n" +
		"#      | |\n" +
		"# s2 1 GCA- 3\n" +
		"#\n" +
		"# s1 4 TACA 7\n" +
		"#      |.|.\n" +
		"# s2 4 TGCU 7\n"
	if got := Render(gattaca, "s1", "s2", opt); got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderLocalOffsets(t *testing.T) {
	r := align.Result{Aligned1: "ACG", Aligned2: "ACG", Start1: 2, End1: 5, Start2: 8, End2: 11}
	const want = "" +
		"# query   3 ACG 5\n" +
		"#           |||\n" +
		"# target  9 ACG 11\n"
	if got := Render(r, "query", "target", DefaultOptions); got != want {
		t.Fatalf("render:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(align.Result{}, "a", "b", DefaultOptions); got != "" {
		t.Fatalf("want empty, got %q", got)
	}
}

func TestDefaultOptions_Stable(t *testing.T) {
	if DefaultOptions.Width != 60 || DefaultOptions.MatchGlyph != "|" ||
		DefaultOptions.MismatchGlyph != "." || DefaultOptions.GapGlyph != " " {
		t.Fatalf("DefaultOptions changed: %+v", DefaultOptions)
	}
}
