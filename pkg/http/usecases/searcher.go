package usecases

import (
	"github.com/Ruhan116/CLIR/pkg/datastructure"

	"go.uber.org/zap"
)

type SearcherService struct {
	log      *zap.Logger
	searcher Searcher
}

func New(log *zap.Logger, searcher Searcher) *SearcherService {
	return &SearcherService{
		log:      log,
		searcher: searcher,
	}
}

func (s *SearcherService) Search(query string, weights map[string]float64,
	topK int) ([]datastructure.SearchResult, error) {
	return s.searcher.HybridSearch(query, weights, topK)
}

func (s *SearcherService) SearchMethod(method, query string, topK int) ([]datastructure.SearchResult, error) {
	return s.searcher.SearchMethod(method, query, topK)
}

func (s *SearcherService) CompareMethods(query string, topK int) (map[string][]datastructure.SearchResult, error) {
	return s.searcher.CompareMethods(query, topK)
}

func (s *SearcherService) AddTransliteration(canonical string, variants []string) {
	s.log.Info("transliteration entry added", zap.String("canonical", canonical),
		zap.Strings("variants", variants))
	s.searcher.AddTransliteration(canonical, variants)
}

func (s *SearcherService) ExpandToken(token string) []string {
	return s.searcher.ExpandToken(token)
}

func (s *SearcherService) GetDocument(id int) (datastructure.Document, error) {
	return s.searcher.GetDocument(id)
}
