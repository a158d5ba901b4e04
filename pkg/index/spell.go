package index

import (
	"bytes"
	"errors"

	"github.com/Ruhan116/CLIR/pkg/fuzzy"

	"github.com/blevesearch/vellum"
	"github.com/blevesearch/vellum/levenshtein"
)

// SpellCorrector maps out-of-vocabulary query tokens to corpus terms. The
// sorted vocabulary is compiled into a finite state transducer; candidate
// terms within a bounded edit distance come from intersecting the FST with a
// Levenshtein automaton, and the best candidate is picked by normalized
// edit-distance similarity.
type SpellCorrector struct {
	CorpusTermsFST *vellum.FST
	matcher        *fuzzy.Matcher
}

func NewSpellCorrector(matcher *fuzzy.Matcher) *SpellCorrector {
	return &SpellCorrector{matcher: matcher}
}

func (sc *SpellCorrector) BuildFiniteStateTransducerSortedTerms(sortedTerms []string) error {
	var buf bytes.Buffer
	fstBuilder, err := vellum.New(&buf, nil)
	if err != nil {
		return err
	}

	for _, term := range sortedTerms {
		if err := fstBuilder.Insert([]byte(term), 0); err != nil {
			return err
		}
	}
	if err := fstBuilder.Close(); err != nil {
		return err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return err
	}
	sc.CorpusTermsFST = fst
	return nil
}

func (sc *SpellCorrector) GetWordCandidates(misspelledWord string, editDistance int) ([]string, error) {
	lv, err := levenshtein.NewLevenshteinAutomatonBuilder(uint8(editDistance), false)
	if err != nil {
		return []string{}, err
	}
	dfa, err := lv.BuildDfa(misspelledWord, uint8(editDistance))
	if err != nil {
		return []string{}, err
	}

	fstIt, err := sc.CorpusTermsFST.Search(dfa, nil, nil)

	candidates := []string{}
	for err == nil {
		key, _ := fstIt.Current()
		candidates = append(candidates, string(key))

		err = fstIt.Next()
		if err != nil {
			if errors.Is(err, vellum.ErrIteratorDone) {
				break
			}
			return []string{}, err
		}
	}
	return candidates, nil
}

// CorrectToken returns the vocabulary term closest to token, widening the
// automaton from edit distance 1 to 2 before giving up. The boolean reports
// whether any candidate was found.
func (sc *SpellCorrector) CorrectToken(token string) (string, bool) {
	if sc.CorpusTermsFST == nil {
		return token, false
	}

	for _, editDistance := range []int{1, 2} {
		candidates, err := sc.GetWordCandidates(token, editDistance)
		if err != nil || len(candidates) == 0 {
			continue
		}

		bestCandidate := ""
		bestScore := -1.0
		for _, candidate := range candidates {
			score := sc.matcher.EditDistanceScore(token, candidate)
			if score > bestScore {
				bestScore = score
				bestCandidate = candidate
			}
		}
		return bestCandidate, true
	}
	return token, false
}
