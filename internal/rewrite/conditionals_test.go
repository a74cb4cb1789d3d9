package rewrite

import "testing"

func TestSplitConditionals(t *testing.T) {
	split := SplitConditionals(DefaultIndent)
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"return", "  if (x) return y;", "  if (x)\n    return y;"},
		{"throw", "if (!ok) throw new Error('bad');", "if (!ok)\n  throw new Error('bad');"},
		{"tab indent", "\tif (x) return;", "\tif (x)\n\t  return;"},
		{"nested parens", "    if (f(a, b)) return cb(err);", "    if (f(a, b))\n      return cb(err);"},
		{"already split", "  if (x)\n    return y;", "  if (x)\n    return y;"},
		{"not at line start", "x; if (y) return z;", "x; if (y) return z;"},
		{"else branch untouched", "} else if (x) return y;", "} else if (x) return y;"},
		{"blank line before", "a();\n\n  if (x) return;\n", "a();\n\n  if (x)\n    return;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := split(tt.in); got != tt.want {
				t.Fatalf("want %q\ngot  %q", tt.want, got)
			}
		})
	}
}

func TestSplitConditionalsIndentUnit(t *testing.T) {
	split := SplitConditionals("    ")
	in := "  if (x) return y;"
	want := "  if (x)\n      return y;"
	if got := split(in); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
