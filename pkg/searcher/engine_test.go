package searcher

import (
	"errors"
	"sort"
	"testing"

	"github.com/Ruhan116/CLIR/pkg/datastructure"
	"github.com/Ruhan116/CLIR/pkg/fuzzy"
	"github.com/Ruhan116/CLIR/pkg/translit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLexicalRanker struct {
	scores map[int]float64
	err    error
}

func (f *fakeLexicalRanker) Search(query string, topK int) ([]datastructure.DocScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	results := []datastructure.DocScore{}
	for docID, score := range f.scores {
		results = append(results, datastructure.NewDocScore(docID, score))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func newsCorpus() []datastructure.Document {
	return []datastructure.Document{
		datastructure.NewDocument(0, "daily-star", "Cricket win for the tigers",
			"Bangladesh beat Sri Lanka in the second test match in Chattogram.",
			"https://example.com/0", "2024-05-01", "en"),
		datastructure.NewDocument(1, "daily-star", "Bangladesh economy outlook",
			"The Bangladesh economy grew faster than expected this quarter.",
			"https://example.com/1", "2024-05-02", "en"),
		datastructure.NewDocument(2, "prothom-alo", "ঢাকায় বৃষ্টি",
			"ঢাকা আজ বৃষ্টি",
			"https://example.com/2", "2024-05-03", "bn"),
	}
}

func newTestSearcher(t *testing.T, lexical LexicalRanker) *Searcher {
	t.Helper()
	matcher, err := fuzzy.NewMatcher()
	require.NoError(t, err)

	translitMap := translit.NewMap()
	translitMap.Add("ঢাকা", "Dhaka", "Dacca")

	return New(newsCorpus(), matcher, translitMap, lexical, zap.NewNop())
}

func TestSearchMethod(t *testing.T) {
	s := newTestSearcher(t, &fakeLexicalRanker{scores: map[int]float64{1: 3.5, 0: 1.2}})

	t.Run("edit method handles typos", func(t *testing.T) {
		results, err := s.SearchMethod(MethodEdit, "Bangaldesh econmy", 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, 1, results[0].DocID)
	})

	t.Run("lexical method hydrates docs from the corpus", func(t *testing.T) {
		results, err := s.SearchMethod(MethodLexical, "bangladesh economy", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 1, results[0].DocID)
		assert.Equal(t, "Bangladesh economy outlook", results[0].Title)
	})

	t.Run("translit method crosses scripts", func(t *testing.T) {
		results, err := s.SearchMethod(MethodTranslit, "Dhaka weather", 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		docIDs := []int{}
		for _, result := range results {
			docIDs = append(docIDs, result.DocID)
		}
		assert.Contains(t, docIDs, 2)
		for _, result := range results {
			assert.Greater(t, result.Score, 0.0)
		}
	})

	t.Run("unknown method errors", func(t *testing.T) {
		_, err := s.SearchMethod("semantic", "dhaka", 10)
		assert.Error(t, err)
	})
}

func TestHybridSearch(t *testing.T) {
	t.Run("fused scores stay in unit interval with breakdown", func(t *testing.T) {
		s := newTestSearcher(t, &fakeLexicalRanker{scores: map[int]float64{0: 1.0, 1: 4.0}})

		results, err := s.HybridSearch("bangladesh economy", nil, 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, 1, results[0].DocID)
		for _, result := range results {
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
			assert.Contains(t, result.Breakdown, MethodLexical)
		}
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("failing lexical ranker degrades to fuzzy methods", func(t *testing.T) {
		s := newTestSearcher(t, &fakeLexicalRanker{err: errors.New("index corrupted")})

		results, err := s.HybridSearch("bangladesh economy", nil, 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, 1, results[0].DocID)
		for _, result := range results {
			assert.NotContains(t, result.Breakdown, MethodLexical)
		}
	})

	t.Run("nil lexical ranker degrades the default weights", func(t *testing.T) {
		s := newTestSearcher(t, nil)

		results, err := s.HybridSearch("bangladesh economy", nil, 10)
		require.NoError(t, err)
		assert.NotEmpty(t, results)
	})

	t.Run("invalid weights rejected", func(t *testing.T) {
		s := newTestSearcher(t, nil)
		_, err := s.HybridSearch("dhaka", map[string]float64{MethodEdit: -1.0}, 10)
		assert.Error(t, err)
	})

	t.Run("custom weights steer the ranking", func(t *testing.T) {
		s := newTestSearcher(t, &fakeLexicalRanker{scores: map[int]float64{0: 10.0}})

		results, err := s.HybridSearch("bangladesh economy",
			map[string]float64{MethodLexical: 1.0}, 10)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, 0, results[0].DocID)
	})
}

func TestCompareMethods(t *testing.T) {
	s := newTestSearcher(t, &fakeLexicalRanker{scores: map[int]float64{1: 2.0}})

	comparison, err := s.CompareMethods("bangladesh economy", 5)
	require.NoError(t, err)

	assert.Contains(t, comparison, MethodLexical)
	assert.Contains(t, comparison, MethodEdit)
	assert.Contains(t, comparison, MethodJaccard)
	assert.Contains(t, comparison, MethodTranslit)
}

func TestCompareMethodsWithoutLexical(t *testing.T) {
	s := newTestSearcher(t, nil)

	comparison, err := s.CompareMethods("bangladesh", 5)
	require.NoError(t, err)
	assert.NotContains(t, comparison, MethodLexical)
	assert.Contains(t, comparison, MethodEdit)
}

func TestGetDocument(t *testing.T) {
	s := newTestSearcher(t, nil)

	doc, err := s.GetDocument(2)
	require.NoError(t, err)
	assert.Equal(t, "bn", doc.Language)

	_, err = s.GetDocument(99)
	assert.Error(t, err)
}

func TestAddTransliterationAtRuntime(t *testing.T) {
	s := newTestSearcher(t, nil)

	before := s.ExpandToken("sylhet")
	assert.Equal(t, []string{"sylhet"}, before)

	s.AddTransliteration("সিলেট", []string{"Sylhet"})
	after := s.ExpandToken("sylhet")
	assert.ElementsMatch(t, []string{"sylhet", "সিলেট"}, after)
}
