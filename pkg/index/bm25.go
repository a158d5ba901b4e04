package index

import (
	"math"
	"sort"

	"github.com/Ruhan116/CLIR/pkg/datastructure"
	"github.com/Ruhan116/CLIR/pkg/tokenizer"
)

const (
	K1    = 1.2
	B     = 0.75
	DELTA = 1.0
)

// LexicalSearcher ranks documents with BM25+ over the title and body field
// indexes. Query tokens missing from the corpus vocabulary are routed through
// the spell corrector before lookup, so a typo still reaches the postings of
// its intended term.
type LexicalSearcher struct {
	idx        *Indexer
	titleIndex *InvertedIndex
	bodyIndex  *InvertedIndex
	spell      SpellCorrectorI
}

func NewLexicalSearcher(idx *Indexer, spell SpellCorrectorI) *LexicalSearcher {
	return &LexicalSearcher{
		idx:        idx,
		titleIndex: NewInvertedIndex(TITLE_FIELD_INDEX, idx.GetOutputDir(), idx.GetWorkingDir()),
		bodyIndex:  NewInvertedIndex(BODY_FIELD_INDEX, idx.GetOutputDir(), idx.GetWorkingDir()),
		spell:      spell,
	}
}

func (ls *LexicalSearcher) LoadIndex() error {
	if err := ls.titleIndex.OpenReader(); err != nil {
		return err
	}
	if err := ls.bodyIndex.OpenReader(); err != nil {
		return err
	}
	ls.idx.BuildVocabulary()
	return ls.spell.BuildFiniteStateTransducerSortedTerms(ls.idx.GetTermIDMap().GetSortedTerms())
}

func (ls *LexicalSearcher) Close() error {
	if err := ls.titleIndex.Close(); err != nil {
		return err
	}
	return ls.bodyIndex.Close()
}

// Search returns the topK documents ranked by the summed BM25+ score of the
// title and body fields. topK <= 0 returns every scored document. An empty
// query returns an empty slice, not an error.
func (ls *LexicalSearcher) Search(query string, topK int) ([]datastructure.DocScore, error) {
	queryTokens := tokenizer.Tokenize(query)
	if len(queryTokens) == 0 {
		return []datastructure.DocScore{}, nil
	}

	termIDMap := ls.idx.GetTermIDMap()
	docScores := make(map[int]float64)

	for _, token := range queryTokens {
		if !termIDMap.IsInVocabulary(token) {
			corrected, ok := ls.spell.CorrectToken(token)
			if !ok {
				continue
			}
			token = corrected
		}
		termID := termIDMap.GetID(token)

		for _, fieldIndex := range []*InvertedIndex{ls.titleIndex, ls.bodyIndex} {
			if err := ls.scoreField(termID, fieldIndex, docScores); err != nil {
				return nil, err
			}
		}
	}

	results := make([]datastructure.DocScore, 0, len(docScores))
	for docID, score := range docScores {
		results = append(results, datastructure.NewDocScore(docID, score))
	}
	// sort by docID first so equal scores keep corpus order after the stable
	// score sort.
	sort.Slice(results, func(i, j int) bool {
		return results[i].DocID < results[j].DocID
	})
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// scoreField adds the BM25+ contribution of one term in one field to every
// document in the term's posting list. Postings repeat a docID once per
// occurrence, so term frequency is the run length.
func (ls *LexicalSearcher) scoreField(termID int, fieldIndex *InvertedIndex,
	docScores map[int]float64) error {

	postings, err := fieldIndex.GetPostingList(termID)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		return nil
	}

	termFrequency := make(map[int]int)
	for _, docID := range postings {
		termFrequency[docID]++
	}

	docsCount := float64(ls.idx.GetDocsCount())
	documentFrequency := float64(len(termFrequency))
	idf := math.Log10(docsCount+1) - math.Log10(documentFrequency)

	lenFieldInDoc := fieldIndex.GetLenFieldInDoc()
	averageFieldLength := fieldIndex.GetAverageFieldLength()

	for docID, tf := range termFrequency {
		fieldLength := float64(lenFieldInDoc[docID])
		normalizedTF := float64(tf) / (1 - B + B*(fieldLength/averageFieldLength))
		docScores[docID] += idf * (((K1 + 1) * normalizedTF / (K1 + normalizedTF)) + DELTA)
	}
	return nil
}
