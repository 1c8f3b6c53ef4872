package freq

import "sort"

// ComputeWordFreq counts occurrences of each distinct token. The input slice
// is never mutated. A nil or empty input produces an empty result. The output
// is sorted by descending count with ties broken lexicographically.
func ComputeWordFreq(tokens []string) []Frequency {
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[Word]int, len(tokens))
	for _, token := range tokens {
		counts[Word(token)]++
	}

	freqs := make([]Frequency, 0, len(counts))
	for word, count := range counts {
		freqs = append(freqs, Frequency{Token: word, Count: count})
	}
	sortFrequencies(freqs)
	return freqs
}

// ComputeTwoGramFreq slides a window of two over consecutive tokens and
// counts occurrences of each distinct pair. A list of n tokens produces
// exactly n-1 two-grams (with repeats), zero when n < 2. Adjacency is over
// the flat token list; no boundary resets. The input slice is never mutated
// and the output ordering matches ComputeWordFreq.
func ComputeTwoGramFreq(tokens []string) []Frequency {
	if len(tokens) < 2 {
		return nil
	}

	counts := make(map[TwoGram]int, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		counts[NewTwoGram(tokens[i], tokens[i+1])]++
	}

	freqs := make([]Frequency, 0, len(counts))
	for gram, count := range counts {
		freqs = append(freqs, Frequency{Token: gram, Count: count})
	}
	sortFrequencies(freqs)
	return freqs
}

func sortFrequencies(freqs []Frequency) {
	sort.Slice(freqs, func(i, j int) bool {
		return Less(freqs[i], freqs[j])
	})
}
