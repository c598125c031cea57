package polarity

import "strings"

// Combinations returns the distinct 2- and 3-token combinations of tokens,
// in order of first appearance. Every token anchors one window of at most
// size tokens; combinations always start with the anchor.
func Combinations(tokens []string, size int) [][]string {
	seen := make(map[string]bool)
	var out [][]string

	add := func(c []string) {
		key := combinationKey(c)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	for _, w := range windows(tokens, size) {
		pairs, triples := windowCombinations(w)
		for _, c := range pairs {
			add(c)
		}
		for _, c := range triples {
			add(c)
		}
	}

	return out
}

// windows slides over tokens one step at a time. Windows near the end are
// shorter than size.
func windows(tokens []string, size int) [][]string {
	var out [][]string
	for i := range tokens {
		end := min(i+size, len(tokens))
		out = append(out, tokens[i:end])
	}
	return out
}

// windowCombinations anchors pairs and triples at the first token of w.
func windowCombinations(w []string) (pairs, triples [][]string) {
	if len(w) < 2 {
		return nil, nil
	}
	first := w[0]
	for i := 1; i < len(w); i++ {
		pairs = append(pairs, []string{first, w[i]})
	}
	for j := 1; j < len(w); j++ {
		for k := j + 1; k < len(w); k++ {
			triples = append(triples, []string{first, w[j], w[k]})
		}
	}
	return pairs, triples
}

func combinationKey(tokens []string) string {
	return strings.Join(tokens, " ")
}
