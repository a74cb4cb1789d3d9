package rewrite

import "strings"

// keywordParens holds the keywords that take a space before "(".
var keywordParens = strings.NewReplacer(
	"function(", "function (",
	"catch(", "catch (",
	"typeof(", "typeof (",
)

// SpaceKeywordParens inserts a space between function, catch or typeof and an
// immediately following "(" anywhere in text, string literals included.
func SpaceKeywordParens(text string) string {
	return keywordParens.Replace(text)
}
