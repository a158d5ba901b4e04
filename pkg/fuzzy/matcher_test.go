package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	matcher, err := NewMatcher()
	require.NoError(t, err)
	return matcher
}

func TestEditDistanceScore(t *testing.T) {
	matcher := newTestMatcher(t)

	tests := []struct {
		name string
		s1   string
		s2   string
		want float64
	}{
		{name: "identical", s1: "dhaka", s2: "dhaka", want: 1.0},
		{name: "case insensitive", s1: "Dhaka", s2: "dhaka", want: 1.0},
		{name: "both empty", s1: "", s2: "", want: 1.0},
		{name: "one empty", s1: "", s2: "abc", want: 0.0},
		{name: "single substitution", s1: "dhaka", s2: "dhoka", want: 0.8},
		{name: "completely different", s1: "ab", s2: "xy", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, matcher.EditDistanceScore(tt.s1, tt.s2), 1e-9)
		})
	}

	t.Run("symmetry", func(t *testing.T) {
		assert.Equal(t, matcher.EditDistanceScore("bangladesh", "bangaldesh"),
			matcher.EditDistanceScore("bangaldesh", "bangladesh"))
	})

	t.Run("bangla code points count as single units", func(t *testing.T) {
		// one rune substituted out of four
		score := matcher.EditDistanceScore("ঢাকা", "ঢাকি")
		assert.InDelta(t, 0.75, score, 1e-9)
	})

	t.Run("transposition typo stays above default threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, matcher.EditDistanceScore("bangladesh", "bangaldesh"),
			DEFAULT_EDIT_THRESHOLD)
	})
}

func TestJaccardSimilarity(t *testing.T) {
	matcher := newTestMatcher(t)

	set := func(grams ...string) map[string]struct{} {
		s := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			s[g] = struct{}{}
		}
		return s
	}

	tests := []struct {
		name string
		set1 map[string]struct{}
		set2 map[string]struct{}
		want float64
	}{
		{name: "identical sets", set1: set("ab", "bc"), set2: set("ab", "bc"), want: 1.0},
		{name: "disjoint sets", set1: set("ab"), set2: set("cd"), want: 0.0},
		{name: "half overlap", set1: set("ab", "bc"), set2: set("bc", "cd"), want: 1.0 / 3.0},
		{name: "both empty", set1: set(), set2: set(), want: 0.0},
		{name: "one empty", set1: set("ab"), set2: set(), want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, matcher.JaccardSimilarity(tt.set1, tt.set2), 1e-9)
		})
	}
}

func TestCharacterNgrams(t *testing.T) {
	matcher := newTestMatcher(t)

	t.Run("trigrams strip spaces and lowercase", func(t *testing.T) {
		ngrams := matcher.CharacterNgrams("Ab cd", 3)
		assert.Equal(t, map[string]struct{}{"abc": {}, "bcd": {}}, ngrams)
	})

	t.Run("text shorter than n yields singleton", func(t *testing.T) {
		ngrams := matcher.CharacterNgrams("ab", 3)
		assert.Equal(t, map[string]struct{}{"ab": {}}, ngrams)
	})

	t.Run("bangla runes window correctly", func(t *testing.T) {
		ngrams := matcher.CharacterNgrams("ঢাকা", 3)
		// 4 runes -> 2 trigrams
		assert.Len(t, ngrams, 2)
	})

	t.Run("memoized result survives cache round trip", func(t *testing.T) {
		first := matcher.CharacterNgrams("dhaka", 3)
		second := matcher.CharacterNgrams("dhaka", 3)
		assert.Equal(t, first, second)
		matcher.ClearCache()
		third := matcher.CharacterNgrams("dhaka", 3)
		assert.Equal(t, first, third)
	})
}

func TestWordNgrams(t *testing.T) {
	matcher := newTestMatcher(t)

	t.Run("bigrams", func(t *testing.T) {
		ngrams := matcher.WordNgrams([]string{"dhaka", "weather", "today"}, 2)
		assert.Equal(t, map[string]struct{}{"dhaka weather": {}, "weather today": {}}, ngrams)
	})

	t.Run("fewer tokens than n yields empty set", func(t *testing.T) {
		assert.Empty(t, matcher.WordNgrams([]string{"dhaka"}, 2))
	})
}
