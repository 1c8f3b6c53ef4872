// Package textproc provides the tokenizer and stopword filtering that sit
// between the crawl engine's text stream and the frequency engine.
package textproc

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// tokenPattern matches runs of letters, digits, and apostrophes so that
// contractions like "isn't" survive as single tokens. Everything else,
// underscores and newlines included, delineates tokens and is discarded.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}']+`)

// Tokenize splits r into lowercase alphanumeric tokens in order of
// occurrence. Tokens never span lines.
func Tokenize(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return TokenizeString(string(data)), nil
}

// TokenizeString is Tokenize over an in-memory string.
func TokenizeString(s string) []string {
	var tokens []string
	for _, match := range tokenPattern.FindAllString(s, -1) {
		tokens = append(tokens, strings.ToLower(match))
	}
	return tokens
}
