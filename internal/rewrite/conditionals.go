package rewrite

import (
	"regexp"
	"strings"
)

// The test is matched non-greedily up to the first ") return" (or ") throw"),
// so `if (f(x)) return` splits correctly while `if (a) g(); return` does not.
var (
	ifReturnRE = regexp.MustCompile(`(?m)^([ \t]*)(if \(.*?\)) return`)
	ifThrowRE  = regexp.MustCompile(`(?m)^([ \t]*)(if \(.*?\)) throw`)
)

// SplitConditionals returns a transform that turns `if (test) return x;` into
// `if (test)` followed by `return x;` on the next line, indented by one more
// indent unit. `if (test) throw ...` is split the same way.
func SplitConditionals(indent string) func(string) string {
	indent = strings.ReplaceAll(indent, "$", "$$")
	returnRepl := "${1}${2}\n${1}" + indent + "return"
	throwRepl := "${1}${2}\n${1}" + indent + "throw"
	return func(text string) string {
		text = ifReturnRE.ReplaceAllString(text, returnRepl)
		return ifThrowRE.ReplaceAllString(text, throwRepl)
	}
}
