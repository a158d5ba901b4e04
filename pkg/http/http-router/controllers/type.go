package controllers

import "github.com/Ruhan116/CLIR/pkg/datastructure"

type SearchService interface {
	Search(query string, weights map[string]float64, topK int) ([]datastructure.SearchResult, error)
	SearchMethod(method, query string, topK int) ([]datastructure.SearchResult, error)
	CompareMethods(query string, topK int) (map[string][]datastructure.SearchResult, error)
	AddTransliteration(canonical string, variants []string)
	ExpandToken(token string) []string
	GetDocument(id int) (datastructure.Document, error)
}
