package rewrite

import "testing"

func TestSpaceKeywordParens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"var f = function(a, b) {};", "var f = function (a, b) {};"},
		{"} catch(e) {", "} catch (e) {"},
		{"if (typeof(x) === 'string')", "if (typeof (x) === 'string')"},
		{"function (a) {}", "function (a) {}"},
		{"function(){ function(){} }", "function (){ function (){} }"},
		{"s = 'function(';", "s = 'function (';"},
		{"myfunction(x)", "myfunction (x)"},
		{"catcher(x)", "catcher(x)"},
	}
	for _, tt := range tests {
		if got := SpaceKeywordParens(tt.in); got != tt.want {
			t.Errorf("SpaceKeywordParens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
