package fuzzy

// default parameters, taken over from the coursework evaluation runs.
const (
	DEFAULT_EDIT_THRESHOLD    = 0.75
	DEFAULT_JACCARD_THRESHOLD = 0.3
	DEFAULT_CHAR_NGRAM        = 3
	DEFAULT_WORD_NGRAM        = 2
	DEFAULT_TOP_K             = 10

	SNIPPET_LENGTH    = 200
	MAX_COMMON_NGRAMS = 10

	NGRAM_CACHE_SIZE = 8192
)

// NgramLevel selects character or word n-grams for Jaccard search.
type NgramLevel int

const (
	CharLevel NgramLevel = iota
	WordLevel
)

// Field designates which document fields a scan scores against.
type Field int

const (
	TitleField Field = iota
	BodyField
)

// DefaultFields matches the source system: title and body, scored
// independently per field.
func DefaultFields() []Field {
	return []Field{TitleField, BodyField}
}
