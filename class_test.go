package sigil

import "testing"

func TestBuildClass(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base, suffix string
		raw          bool
		want         string
	}{
		{"", "", false, ""},
		{"", "", true, ""},
		{"", "x", false, ` class="x"`},
		{"", "x", true, "x"},
		{"b", "x", false, ` class="b__x"`},
		{"b", "x", true, "b__x"},
		{"b__y", "x", false, ` class="b__y-x"`},
		{"b__y", "x", true, "b__y-x"},
		{"b", "", false, ` class="b"`},
		{"b", "", true, "b"},
		{"b", "  x ", true, "b__x"},
		{"b-y", "x", true, "b-y__x"},
	}
	for _, tc := range tests {
		if got := BuildClass(tc.base, tc.suffix, tc.raw); got != tc.want {
			t.Fatalf("BuildClass(%q, %q, %v)=%q want %q", tc.base, tc.suffix, tc.raw, got, tc.want)
		}
	}
}

func TestClassAttrOmittedWithoutBase(t *testing.T) {
	if got := classAttr("", "title"); got != "" {
		t.Fatalf("expected no attribute, got %q", got)
	}
	if got := classAttr("doc", "title"); got != ` class="doc__title"` {
		t.Fatalf("unexpected attribute %q", got)
	}
}
