package fuzzy

import (
	"strings"

	"github.com/Ruhan116/CLIR/pkg/tokenizer"

	lru "github.com/hashicorp/golang-lru/v2"
)

type ngramKey struct {
	text string
	n    int
}

// Matcher implements the similarity primitives: rune-level Levenshtein
// distance, Jaccard similarity over n-gram sets, and the n-gram generators.
// Character n-grams are memoized in a bounded LRU so repeated scans over the
// same corpus text don't recompute them; the cache lives and dies with the
// Matcher, which is rebuilt on corpus reload.
type Matcher struct {
	ngramCache *lru.Cache[ngramKey, map[string]struct{}]
}

func NewMatcher() (*Matcher, error) {
	cache, err := lru.New[ngramKey, map[string]struct{}](NGRAM_CACHE_SIZE)
	if err != nil {
		return nil, err
	}
	return &Matcher{ngramCache: cache}, nil
}

// levenshtein computes edit distance over runes, so a Bangla code point
// counts as one unit, not several bytes.
func levenshtein(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	previousRow := make([]int, len(b)+1)
	currentRow := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		previousRow[j] = j
	}

	for i := 1; i <= len(a); i++ {
		currentRow[0] = i
		for j := 1; j <= len(b); j++ {
			insertions := previousRow[j] + 1
			deletions := currentRow[j-1] + 1
			substitutions := previousRow[j-1]
			if a[i-1] != b[j-1] {
				substitutions++
			}
			currentRow[j] = minInt(insertions, minInt(deletions, substitutions))
		}
		previousRow, currentRow = currentRow, previousRow
	}
	return previousRow[len(b)]
}

// EditDistanceScore returns 1 - distance/max(len), in [0,1]. Two empty
// strings are identical by definition and score 1.0.
func (m *Matcher) EditDistanceScore(s1, s2 string) float64 {
	r1 := []rune(tokenizer.Normalize(s1))
	r2 := []rune(tokenizer.Normalize(s2))

	maxLen := len(r1)
	if len(r2) > maxLen {
		maxLen = len(r2)
	}
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshtein(r1, r2)
	return 1.0 - float64(distance)/float64(maxLen)
}

// JaccardSimilarity returns |intersection| / |union|. Two empty sets score 0
// so degenerate inputs never rank everything as a perfect match.
func (m *Matcher) JaccardSimilarity(set1, set2 map[string]struct{}) float64 {
	if len(set1) == 0 || len(set2) == 0 {
		return 0.0
	}

	small, large := set1, set2
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for gram := range small {
		if _, ok := large[gram]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection

	return float64(intersection) / float64(union)
}

// CharacterNgrams returns the set of contiguous rune n-grams of the
// normalized text (lowercased, spaces stripped). Text shorter than n yields
// a singleton set holding the whole string, so short queries still match
// instead of degenerating to an empty set.
func (m *Matcher) CharacterNgrams(text string, n int) map[string]struct{} {
	text = strings.ReplaceAll(tokenizer.Normalize(text), " ", "")

	key := ngramKey{text: text, n: n}
	if cached, ok := m.ngramCache.Get(key); ok {
		return cached
	}

	runes := []rune(text)
	ngrams := make(map[string]struct{})
	if len(runes) < n {
		ngrams[text] = struct{}{}
	} else {
		for i := 0; i+n <= len(runes); i++ {
			ngrams[string(runes[i:i+n])] = struct{}{}
		}
	}

	m.ngramCache.Add(key, ngrams)
	return ngrams
}

// WordNgrams returns the set of n-token windows joined by a single space.
func (m *Matcher) WordNgrams(tokens []string, n int) map[string]struct{} {
	ngrams := make(map[string]struct{})
	for i := 0; i+n <= len(tokens); i++ {
		ngrams[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}
	return ngrams
}

// ClearCache drops all memoized n-gram sets.
func (m *Matcher) ClearCache() {
	m.ngramCache.Purge()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
