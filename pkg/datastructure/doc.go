package datastructure

// Document model info
// @Description news article indexed in the CLIR engine. loaded once from the
// document store and immutable afterwards.
type Document struct {
	ID       int    `json:"id"`       // ID of the article inside the corpus
	Source   string `json:"source"`   // publisher label (prothom-alo, daily-star, ...)
	Title    string `json:"title"`    // article headline
	Body     string `json:"body"`     // full article text
	URL      string `json:"url"`      // canonical article url
	Date     string `json:"date"`     // publication date as stored by the crawler
	Language string `json:"language"` // "en" or "bn"
}

func NewDocument(id int, source, title, body, url, date, language string) Document {
	return Document{
		ID:       id,
		Source:   source,
		Title:    title,
		Body:     body,
		URL:      url,
		Date:     date,
		Language: language,
	}
}

// MatchedTerm records which document token a query token matched and how well.
type MatchedTerm struct {
	QueryTerm string  `json:"query_term"`
	DocTerm   string  `json:"doc_term"`
	Score     float64 `json:"score"`
}

func NewMatchedTerm(queryTerm, docTerm string, score float64) MatchedTerm {
	return MatchedTerm{
		QueryTerm: queryTerm,
		DocTerm:   docTerm,
		Score:     score,
	}
}

// SearchResult is one ranked hit. Score is the governing score of whatever
// method produced the result; Breakdown carries the per-method normalized
// components when the result came out of hybrid fusion.
type SearchResult struct {
	DocID        int                `json:"doc_id"`
	Title        string             `json:"title"`
	URL          string             `json:"url"`
	Language     string             `json:"language"`
	Snippet      string             `json:"snippet,omitempty"`
	Score        float64            `json:"score"`
	Breakdown    map[string]float64 `json:"scores_breakdown,omitempty"`
	MatchedTerms []MatchedTerm      `json:"matched_terms,omitempty"`
	CommonNgrams []string           `json:"common_ngrams,omitempty"`
}

// DocScore is the minimal (document, score) pair exchanged with ranking
// collaborators such as the BM25 index.
type DocScore struct {
	DocID int
	Score float64
}

func NewDocScore(docID int, score float64) DocScore {
	return DocScore{DocID: docID, Score: score}
}
