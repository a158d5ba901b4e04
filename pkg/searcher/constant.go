package searcher

const (
	MethodLexical  = "bm25"
	MethodEdit     = "edit"
	MethodJaccard  = "jaccard"
	MethodTranslit = "translit"
)

// DefaultWeights favors the lexical ranker, with the two fuzzy methods
// splitting the rest. Transliteration is opt-in for hybrid fusion because it
// subsumes the edit-distance scan when the query has no mapped entities.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		MethodLexical: 0.5,
		MethodEdit:    0.25,
		MethodJaccard: 0.25,
	}
}

func KnownMethods() []string {
	return []string{MethodLexical, MethodEdit, MethodJaccard, MethodTranslit}
}
