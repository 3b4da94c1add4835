package key

import "strings"

// Separator joins the tokens of a key combination.
const Separator = "+"

// SplitCombination splits a combination string on '+' and trims each token.
// A string without a separator yields a single-token list.
func SplitCombination(s string) []string {
	parts := strings.Split(s, Separator)
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// JoinCombination joins tokens back into a combination string.
// Splitting then rejoining trimmed tokens is idempotent.
func JoinCombination(tokens []string) string {
	return strings.Join(tokens, Separator)
}

// CanonicalCombination returns the canonical form of a combination string,
// with every token trimmed and upper-cased. Used for comparing combinations
// across macro sets, where "ctrl+s" and "Ctrl+S" denote the same chord.
func CanonicalCombination(s string) string {
	tokens := SplitCombination(s)
	for i, t := range tokens {
		tokens[i] = Canonical(t)
	}
	return JoinCombination(tokens)
}
