package textproc

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed stopwords/*.txt
var stopwordFS embed.FS

// stopwordFiles maps accepted language names to embedded word lists. Both
// the full language name and the ISO 639-1 code are accepted.
var stopwordFiles = map[string]string{
	"english": "stopwords/english.txt",
	"en":      "stopwords/english.txt",
	"spanish": "stopwords/spanish.txt",
	"es":      "stopwords/spanish.txt",
	"french":  "stopwords/french.txt",
	"fr":      "stopwords/french.txt",
}

var (
	stopwordMu    sync.Mutex
	stopwordCache = make(map[string]map[string]struct{})
)

// Stopwords returns the stopword set for lang, or an error for an unknown
// language. Lookups are cached.
func Stopwords(lang string) (map[string]struct{}, error) {
	key := strings.ToLower(strings.TrimSpace(lang))
	file, ok := stopwordFiles[key]
	if !ok {
		return nil, fmt.Errorf("unsupported stopword language %q", lang)
	}

	stopwordMu.Lock()
	defer stopwordMu.Unlock()
	if set, ok := stopwordCache[file]; ok {
		return set, nil
	}

	data, err := stopwordFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read stopword list %s: %w", file, err)
	}
	set := make(map[string]struct{})
	for _, line := range strings.Split(string(data), "\n") {
		word := strings.TrimSpace(line)
		if word != "" {
			set[word] = struct{}{}
		}
	}
	stopwordCache[file] = set
	return set, nil
}

// RemoveStopwords returns a new slice holding the tokens that are not
// stopwords of lang. The input slice is never mutated.
func RemoveStopwords(tokens []string, lang string) ([]string, error) {
	set, err := Stopwords(lang)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, stop := set[token]; !stop {
			kept = append(kept, token)
		}
	}
	return kept, nil
}
