package fuzzy

import (
	"sort"
	"strings"

	"github.com/Ruhan116/CLIR/pkg/datastructure"
	"github.com/Ruhan116/CLIR/pkg/tokenizer"
	"github.com/Ruhan116/CLIR/pkg/translit"
)

func fieldText(doc datastructure.Document, field Field) string {
	switch field {
	case TitleField:
		return doc.Title
	case BodyField:
		return doc.Body
	}
	return ""
}

func Snippet(doc datastructure.Document) string {
	body := []rune(doc.Body)
	if len(body) <= SNIPPET_LENGTH {
		return string(body)
	}
	return string(body[:SNIPPET_LENGTH]) + "..."
}

// rankAndTrim finalizes a scan: stable descending sort (ties keep corpus
// order, which keeps results deterministic) and the top-k cap.
func rankAndTrim(results []datastructure.SearchResult, topK int) []datastructure.SearchResult {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results
}

// SearchEditDistance linearly scans the corpus scoring every document token
// against every query token with normalized Levenshtein similarity. A query
// token contributes its best-matching document token per field; the document
// score is the mean over all matched query tokens. Documents scoring strictly
// below threshold are dropped. An empty query returns an empty list, not an
// error.
func (m *Matcher) SearchEditDistance(query string, docs []datastructure.Document,
	fields []Field, threshold float64, topK int) []datastructure.SearchResult {

	queryTokens := tokenizer.Tokenize(query)
	if len(queryTokens) == 0 {
		return []datastructure.SearchResult{}
	}

	results := []datastructure.SearchResult{}

	for _, doc := range docs {
		bestMatches := []datastructure.MatchedTerm{}

		for _, queryToken := range queryTokens {
			for _, field := range fields {
				docTokens := tokenizer.Tokenize(fieldText(doc, field))

				bestFieldScore := 0.0
				bestDocToken := ""
				for _, docToken := range docTokens {
					score := m.EditDistanceScore(queryToken, docToken)
					if score > bestFieldScore {
						bestFieldScore = score
						bestDocToken = docToken
					}
				}

				if bestFieldScore >= threshold {
					bestMatches = append(bestMatches,
						datastructure.NewMatchedTerm(queryToken, bestDocToken, bestFieldScore))
				}
			}
		}

		if len(bestMatches) == 0 {
			continue
		}

		sum := 0.0
		for _, match := range bestMatches {
			sum += match.Score
		}

		results = append(results, datastructure.SearchResult{
			DocID:        doc.ID,
			Title:        doc.Title,
			URL:          doc.URL,
			Language:     doc.Language,
			Snippet:      Snippet(doc),
			Score:        sum / float64(len(bestMatches)),
			MatchedTerms: bestMatches,
		})
	}

	return rankAndTrim(results, topK)
}

// SearchJaccard scans the corpus comparing n-gram sets of the query against
// each field, keeping the best field score per document.
func (m *Matcher) SearchJaccard(query string, docs []datastructure.Document,
	fields []Field, level NgramLevel, ngramSize int,
	threshold float64, topK int) []datastructure.SearchResult {

	if len(tokenizer.Tokenize(query)) == 0 {
		return []datastructure.SearchResult{}
	}

	var queryNgrams map[string]struct{}
	if level == CharLevel {
		queryNgrams = m.CharacterNgrams(query, ngramSize)
	} else {
		queryNgrams = m.WordNgrams(tokenizer.Tokenize(query), ngramSize)
	}

	results := []datastructure.SearchResult{}

	for _, doc := range docs {
		maxJaccard := 0.0
		var commonNgrams map[string]struct{}

		for _, field := range fields {
			var docNgrams map[string]struct{}
			if level == CharLevel {
				docNgrams = m.CharacterNgrams(fieldText(doc, field), ngramSize)
			} else {
				docNgrams = m.WordNgrams(tokenizer.Tokenize(fieldText(doc, field)), ngramSize)
			}

			jaccard := m.JaccardSimilarity(queryNgrams, docNgrams)
			if jaccard > maxJaccard {
				maxJaccard = jaccard
				commonNgrams = intersect(queryNgrams, docNgrams)
			}
		}

		if maxJaccard < threshold {
			continue
		}

		results = append(results, datastructure.SearchResult{
			DocID:        doc.ID,
			Title:        doc.Title,
			URL:          doc.URL,
			Language:     doc.Language,
			Snippet:      Snippet(doc),
			Score:        maxJaccard,
			CommonNgrams: topCommonNgrams(commonNgrams),
		})
	}

	return rankAndTrim(results, topK)
}

// SearchTransliteration expands query tokens through the transliteration map
// (a token hit pulls in the canonical form plus every sibling spelling) and
// runs the edit-distance scan per expanded variant. A document is ranked by
// its best variant, not the average, and the threshold applies after that
// max, so one well-matching spelling is enough to keep a document.
func (m *Matcher) SearchTransliteration(query string, docs []datastructure.Document,
	translitMap *translit.Map, fields []Field,
	threshold float64, topK int) []datastructure.SearchResult {

	queryTokens := tokenizer.Tokenize(query)
	if len(queryTokens) == 0 {
		return []datastructure.SearchResult{}
	}

	variantQueries := []string{strings.Join(queryTokens, " ")}
	if translitMap != nil {
		for _, token := range queryTokens {
			expansion := translitMap.Expand(token)
			if len(expansion) > 1 {
				variantQueries = append(variantQueries, strings.Join(expansion, " "))
			}
		}
	}

	bestByDoc := make(map[int]datastructure.SearchResult)

	for _, variantQuery := range variantQueries {
		// per-match filtering stays inside each variant scan, so a variant's
		// document score only averages its strong matches. The result-level
		// threshold applies after the max across variants.
		variantResults := m.SearchEditDistance(variantQuery, docs, fields, threshold, 0)

		for _, result := range variantResults {
			prev, seen := bestByDoc[result.DocID]
			if !seen || result.Score > prev.Score {
				bestByDoc[result.DocID] = result
			}
		}
	}

	// walk the corpus, not the map, so equal scores keep corpus order.
	results := []datastructure.SearchResult{}
	for _, doc := range docs {
		best, ok := bestByDoc[doc.ID]
		if !ok || best.Score < threshold {
			continue
		}
		results = append(results, best)
	}

	return rankAndTrim(results, topK)
}

func intersect(set1, set2 map[string]struct{}) map[string]struct{} {
	common := make(map[string]struct{})
	for gram := range set1 {
		if _, ok := set2[gram]; ok {
			common[gram] = struct{}{}
		}
	}
	return common
}

func topCommonNgrams(common map[string]struct{}) []string {
	grams := make([]string, 0, len(common))
	for gram := range common {
		grams = append(grams, gram)
	}
	sort.Strings(grams)
	if len(grams) > MAX_COMMON_NGRAMS {
		grams = grams[:MAX_COMMON_NGRAMS]
	}
	return grams
}
