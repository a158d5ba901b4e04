package searcher

import (
	"github.com/Ruhan116/CLIR/pkg"
	"github.com/Ruhan116/CLIR/pkg/datastructure"
	"github.com/Ruhan116/CLIR/pkg/fuzzy"
	"github.com/Ruhan116/CLIR/pkg/tokenizer"
	"github.com/Ruhan116/CLIR/pkg/translit"

	"go.uber.org/zap"
)

// Searcher is the query-time engine. It owns the in-memory corpus, the fuzzy
// matcher, the transliteration map, and an optional lexical ranker backed by
// the inverted index. The fuzzy methods scan the corpus directly; the lexical
// method delegates to the ranker and hydrates its docIDs from the corpus.
type Searcher struct {
	docs        []datastructure.Document
	docsByID    map[int]datastructure.Document
	corpusOrder []int
	matcher     *fuzzy.Matcher
	translitMap *translit.Map
	lexical     LexicalRanker
	log         *zap.Logger
}

func New(docs []datastructure.Document, matcher *fuzzy.Matcher,
	translitMap *translit.Map, lexical LexicalRanker, log *zap.Logger) *Searcher {

	docsByID := make(map[int]datastructure.Document, len(docs))
	corpusOrder := make([]int, 0, len(docs))
	for _, doc := range docs {
		docsByID[doc.ID] = doc
		corpusOrder = append(corpusOrder, doc.ID)
	}
	return &Searcher{
		docs:        docs,
		docsByID:    docsByID,
		corpusOrder: corpusOrder,
		matcher:     matcher,
		translitMap: translitMap,
		lexical:     lexical,
		log:         log,
	}
}

func (s *Searcher) DocsCount() int {
	return len(s.docs)
}

func (s *Searcher) SearchEditDistance(query string, threshold float64, topK int) []datastructure.SearchResult {
	return s.matcher.SearchEditDistance(query, s.docs, fuzzy.DefaultFields(), threshold, topK)
}

func (s *Searcher) SearchJaccard(query string, level fuzzy.NgramLevel, ngramSize int,
	threshold float64, topK int) []datastructure.SearchResult {
	return s.matcher.SearchJaccard(query, s.docs, fuzzy.DefaultFields(), level, ngramSize, threshold, topK)
}

func (s *Searcher) SearchTransliteration(query string, threshold float64, topK int) []datastructure.SearchResult {
	return s.matcher.SearchTransliteration(query, s.docs, s.translitMap, fuzzy.DefaultFields(), threshold, topK)
}

// SearchLexical ranks with BM25+ over the inverted index. Scores are raw
// BM25+ values, not normalized, since there is nothing to fuse against.
func (s *Searcher) SearchLexical(query string, topK int) ([]datastructure.SearchResult, error) {
	if s.lexical == nil {
		return nil, pkg.WrapErrorf(nil, pkg.ErrCollaboratorUnavailable, "lexical index not loaded")
	}
	docScores, err := s.lexical.Search(query, topK)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrCollaboratorUnavailable, "lexical search failed")
	}
	return s.hydrate(docScores, nil), nil
}

// SearchMethod dispatches a single-method search by name using the default
// thresholds.
func (s *Searcher) SearchMethod(method, query string, topK int) ([]datastructure.SearchResult, error) {
	switch method {
	case MethodLexical:
		return s.SearchLexical(query, topK)
	case MethodEdit:
		return s.SearchEditDistance(query, fuzzy.DEFAULT_EDIT_THRESHOLD, topK), nil
	case MethodJaccard:
		return s.SearchJaccard(query, fuzzy.CharLevel, fuzzy.DEFAULT_CHAR_NGRAM,
			fuzzy.DEFAULT_JACCARD_THRESHOLD, topK), nil
	case MethodTranslit:
		return s.SearchTransliteration(query, fuzzy.DEFAULT_EDIT_THRESHOLD, topK), nil
	}
	return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown search method %q", method)
}

// HybridSearch fuses the weighted methods into one ranking. Per-method raw
// scores are min-max normalized per query before weighting, so BM25+ values
// and similarity ratios become comparable. A failing lexical collaborator
// drops out of the fusion: its weight is redistributed over the remaining
// methods and the failure is logged, not returned.
func (s *Searcher) HybridSearch(query string, weights map[string]float64,
	topK int) ([]datastructure.SearchResult, error) {

	if len(weights) == 0 {
		weights = DefaultWeights()
	}
	weights, err := NormalizeWeights(weights, s.log)
	if err != nil {
		return nil, err
	}
	s.log.Debug("hybrid search",
		zap.String("query", query),
		zap.String("queryLanguage", tokenizer.DetectLanguage(query)))

	methodScores := make(map[string]map[int]float64, len(weights))
	for method, weight := range weights {
		if weight == 0 {
			continue
		}
		scores, err := s.rawMethodScores(method, query)
		if err != nil {
			s.log.Warn("search method unavailable, excluding from fusion",
				zap.String("method", method), zap.Error(err))
			delete(weights, method)
			continue
		}
		methodScores[method] = minMaxNormalize(scores)
	}
	if len(methodScores) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrCollaboratorUnavailable,
			"no search method available for hybrid fusion")
	}
	weights, err = NormalizeWeights(weights, nil)
	if err != nil {
		return nil, err
	}

	fused := fuseScores(methodScores, weights)
	topDocs := selectTopK(fused, s.corpusOrder, topK)

	breakdown := func(docID int) map[string]float64 {
		perMethod := make(map[string]float64, len(methodScores))
		for method, scores := range methodScores {
			perMethod[method] = scores[docID] // missing method contributes 0
		}
		return perMethod
	}
	return s.hydrate(topDocs, breakdown), nil
}

// CompareMethods runs every available method side by side for one query,
// returning each method's own ranking under its own scoring scale.
func (s *Searcher) CompareMethods(query string, topK int) (map[string][]datastructure.SearchResult, error) {
	comparison := make(map[string][]datastructure.SearchResult, len(KnownMethods()))
	for _, method := range KnownMethods() {
		results, err := s.SearchMethod(method, query, topK)
		if err != nil {
			if method == MethodLexical {
				s.log.Warn("lexical method unavailable, skipping in comparison", zap.Error(err))
				continue
			}
			return nil, err
		}
		comparison[method] = results
	}
	return comparison, nil
}

// AddTransliteration registers an entity spelling group at runtime.
func (s *Searcher) AddTransliteration(canonical string, variants []string) {
	s.translitMap.Add(canonical, variants...)
}

// ExpandToken reports the transliteration expansion of one token.
func (s *Searcher) ExpandToken(token string) []string {
	return s.translitMap.Expand(token)
}

// GetDocument returns one stored article by docID.
func (s *Searcher) GetDocument(id int) (datastructure.Document, error) {
	doc, ok := s.docsByID[id]
	if !ok {
		return datastructure.Document{}, pkg.WrapErrorf(nil, pkg.ErrNotFound, "document %d not found", id)
	}
	return doc, nil
}

func (s *Searcher) rawMethodScores(method, query string) (map[int]float64, error) {
	scores := make(map[int]float64)
	switch method {
	case MethodLexical:
		if s.lexical == nil {
			return nil, pkg.WrapErrorf(nil, pkg.ErrCollaboratorUnavailable, "lexical index not loaded")
		}
		docScores, err := s.lexical.Search(query, 0)
		if err != nil {
			return nil, err
		}
		for _, docScore := range docScores {
			scores[docScore.DocID] = docScore.Score
		}
	case MethodEdit:
		for _, result := range s.SearchEditDistance(query, fuzzy.DEFAULT_EDIT_THRESHOLD, 0) {
			scores[result.DocID] = result.Score
		}
	case MethodJaccard:
		for _, result := range s.SearchJaccard(query, fuzzy.CharLevel, fuzzy.DEFAULT_CHAR_NGRAM,
			fuzzy.DEFAULT_JACCARD_THRESHOLD, 0) {
			scores[result.DocID] = result.Score
		}
	case MethodTranslit:
		for _, result := range s.SearchTransliteration(query, fuzzy.DEFAULT_EDIT_THRESHOLD, 0) {
			scores[result.DocID] = result.Score
		}
	default:
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown search method %q", method)
	}
	return scores, nil
}

// hydrate turns (docID, score) pairs into full results using the in-memory
// corpus. Unknown docIDs are skipped rather than failing the whole response.
func (s *Searcher) hydrate(docScores []datastructure.DocScore,
	breakdown func(docID int) map[string]float64) []datastructure.SearchResult {

	results := make([]datastructure.SearchResult, 0, len(docScores))
	for _, docScore := range docScores {
		doc, ok := s.docsByID[docScore.DocID]
		if !ok {
			s.log.Warn("ranked docID missing from corpus", zap.Int("docID", docScore.DocID))
			continue
		}
		result := datastructure.SearchResult{
			DocID:    doc.ID,
			Title:    doc.Title,
			URL:      doc.URL,
			Language: doc.Language,
			Snippet:  fuzzy.Snippet(doc),
			Score:    docScore.Score,
		}
		if breakdown != nil {
			result.Breakdown = breakdown(doc.ID)
		}
		results = append(results, result)
	}
	return results
}
