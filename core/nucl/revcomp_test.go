package nucl

import "testing"

func TestRevComp(t *testing.T) {
	cases := []struct{ in, want string }{
		{"AGTC", "GACT"},
		{"", ""},
		{"acgtN", "Nacgt"},
		{"AC-GT", "AC-GT"},
		{"AUG", "CAT"},
		{"A*x", "nNT"},
	}
	for _, c := range cases {
		if got := RevComp(c.in); got != c.want {
			t.Errorf("RevComp(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

// The full ambiguity alphabet plus ACGT.
func TestComplementTable_Snapshot(t *testing.T) {
	in := "RYSWKMBDHVNACGT"
	want := "ACGTNBDHVKMWSRY"
	if got := RevComp(in); got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
	if got := RevComp(RevComp(in)); got != in {
		t.Fatalf("double reverse complement = %s", got)
	}
}
