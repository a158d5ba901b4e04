package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Ruhan116/CLIR/pkg/fuzzy"
	"github.com/Ruhan116/CLIR/pkg/index"
	"github.com/Ruhan116/CLIR/pkg/kvdb"
	"github.com/Ruhan116/CLIR/pkg/searcher"
	"github.com/Ruhan116/CLIR/pkg/translit"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	outputDir = flag.String("o", "clir_index", "directory holding the inverted indexes and metadata")
	storePath = flag.String("store", "docs_store.db", "bbolt document store path")
)

func main() {
	flag.Parse()

	db, err := bolt.Open(*storePath, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		log.Fatal(err)
	}

	docs, err := bboltKV.AllDocs()
	if err != nil {
		log.Fatal(err)
	}

	matcher, err := fuzzy.NewMatcher()
	if err != nil {
		log.Fatal(err)
	}

	idx, err := index.NewIndexer(*outputDir, true, bboltKV)
	if err != nil {
		log.Fatal(err)
	}
	spellCorrector := index.NewSpellCorrector(matcher)
	lexical := index.NewLexicalSearcher(idx, spellCorrector)
	if err := lexical.LoadIndex(); err != nil {
		log.Fatal(err)
	}
	defer lexical.Close()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	clir := searcher.New(docs, matcher, translit.NewDefaultMap(), lexical, logger)

	// typo'd English, cross-script, and Bangla queries against the same corpus.
	queries := []string{
		"Bangaldesh econmy",
		"Dhaka weather",
		"ঢাকা",
		"cricket Shakib",
	}
	for _, query := range queries {
		results, err := clir.HybridSearch(query, nil, 5)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("query: %q\n", query)
		for _, result := range results {
			fmt.Printf("  %.4f  [%s] %s\n", result.Score, result.Language, result.Title)
			for method, score := range result.Breakdown {
				fmt.Printf("          %-8s %.4f\n", method, score)
			}
		}
		fmt.Println("")
	}
}
