package rewrite

import "regexp"

type substitution struct {
	re   *regexp.Regexp
	repl string
}

// Each pass is anchored at line start and only looks at the first quoted
// segments of a line. Passes run in this order over the whole text.
var quotePasses = []substitution{
	// "foo" ... "bar" -> 'foo' ... 'bar'
	{
		re:   regexp.MustCompile(`(?m)^([^'"\n]*?)"([^'\n]*?)"([^'"\n]*?)"([^'\n]*?)"`),
		repl: `${1}'${2}'${3}'${4}'`,
	},
	// "foo" -> 'foo'
	{
		re:   regexp.MustCompile(`(?m)^([^'"\n]*?)"([^'\n]*?)"`),
		repl: `${1}'${2}'`,
	},
	// "foo'd" -> 'foo\'d'
	{
		re:   regexp.MustCompile(`(?m)^([^'"\n]*?)"([^'\n]*?)'([^'\n]*?)"`),
		repl: `${1}'${2}\'${3}'`,
	},
	// "foo 'bar' baz" -> 'foo "bar" baz'
	{
		re:   regexp.MustCompile(`(?m)^([^'"\n]*?)"([^'\n]*?)'([^'\n]*?)'([^'\n]*?)"`),
		repl: `${1}'${2}"${3}"${4}'`,
	},
	// "foo 'bar' baz 'blah'" -> 'foo "bar" baz "blah"'
	{
		re:   regexp.MustCompile(`(?m)^([^'"\n]*?)"([^'\n]*?)'([^'\n]*?)'([^'\n]*?)'([^'\n]*?)'([^'\n]*?)"`),
		repl: `${1}'${2}"${3}"${4}"${5}"${6}'`,
	},
}

// NormalizeQuotes rewrites double-quoted string literals to single quotes.
// It works line by line with no knowledge of comments, escapes or strings
// that span lines, so text that merely looks like code is rewritten too.
func NormalizeQuotes(text string) string {
	for _, pass := range quotePasses {
		text = pass.re.ReplaceAllString(text, pass.repl)
	}
	return text
}
