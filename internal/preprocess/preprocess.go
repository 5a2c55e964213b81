// Package preprocess applies light punctuation cleanup to raw text before it is
// split into sentences.
package preprocess

import (
	"strings"
)

// clauseBreaks turns semicolons and colons into sentence terminators so the
// splitter treats each clause as its own sentence.
var clauseBreaks = strings.NewReplacer(";", ".", ":", ".")

// Normalize replaces semicolons and colons with a period and then collapses
// every run of exactly three periods into one.
//
// The ellipsis pass runs after the clause pass, so "a:.." becomes "a." as well.
func Normalize(text string) string {
	if text == "" {
		return text
	}
	text = clauseBreaks.Replace(text)
	return strings.ReplaceAll(text, "...", ".")
}
