// Package token implements the engine's tokenizer: the single deterministic
// function from raw text to the token sequence used as index keys.
package token

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Token is a non-empty, lowercase string produced by Tokenize.
type Token = string

var (
	nonWordRe    = regexp.MustCompile(`[^a-z0-9_]`)
	apostropheRe = regexp.MustCompile(`([a-z0-9_]+) ' ([a-z0-9_]+)`)
	ellipsisRe   = regexp.MustCompile(`\.\s+\.\s+\.`)
)

// Tokenize turns text into an ordered sequence of tokens. It is pure and
// deterministic: the same text always produces the same tokens, which is
// what lets tokens double as index keys.
//
// The algorithm, in order:
//  1. Unicode-normalize to NFC, then lowercase.
//  2. Surround every non-word character (anything outside [a-z0-9_],
//     including whitespace) with a space on each side.
//  3. Re-merge apostrophe-within-word runs ("isn ' t" -> "isn't").
//  4. Collapse a ". . ." run (periods separated by whitespace) into the
//     single token "...".
//  5. Split on whitespace, dropping empties.
func Tokenize(text string) []Token {
	s := norm.NFC.String(text)
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, " $0 ")
	s = apostropheRe.ReplaceAllString(s, "$1'$2")
	s = ellipsisRe.ReplaceAllString(s, " ...")

	fields := strings.Fields(s)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
