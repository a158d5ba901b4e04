package searcher

import (
	"github.com/Ruhan116/CLIR/pkg/datastructure"
)

// LexicalRanker is the scoring collaborator backed by the inverted index.
// The engine treats it as optional: when it is nil or fails at query time,
// hybrid fusion falls back to the fuzzy methods alone.
type LexicalRanker interface {
	Search(query string, topK int) ([]datastructure.DocScore, error)
}
