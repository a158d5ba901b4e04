package index

import (
	"github.com/Ruhan116/CLIR/pkg/datastructure"
)

type SpellCorrectorI interface {
	BuildFiniteStateTransducerSortedTerms(sortedTerms []string) error
	GetWordCandidates(misspelledWord string, editDistance int) ([]string, error)
	CorrectToken(token string) (string, bool)
}

type DocumentStoreI interface {
	SaveDocs(docs []datastructure.Document) error
}
