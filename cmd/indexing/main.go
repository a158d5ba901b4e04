package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Ruhan116/CLIR/pkg/index"
	"github.com/Ruhan116/CLIR/pkg/ingest"
	"github.com/Ruhan116/CLIR/pkg/kvdb"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	bolt "go.etcd.io/bbolt"
)

var (
	articleDB = flag.String("db", "articles.db", "sqlite database produced by the news scraper")
	outputDir = flag.String("o", "clir_index", "output directory for the inverted indexes and metadata")
	storePath = flag.String("store", "docs_store.db", "bbolt document store path")
)

func main() {
	flag.Parse()

	fmt.Println("")
	bar := progressbar.NewOptions(2,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Loading article corpus..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	fmt.Println("")
	bar.Add(1)

	docs, err := ingest.LoadArticles(*articleDB)
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)
	fmt.Println("")

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatal(err)
	}

	db, err := bolt.Open(*storePath, 0600, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(kvdb.BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		log.Fatal(err)
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		log.Fatal(err)
	}

	indexer, err := index.NewIndexer(*outputDir, false, bboltKV)
	if err != nil {
		log.Fatal(err)
	}
	if err := indexer.BuildIndex(docs); err != nil {
		log.Fatal(err)
	}
	if err := indexer.Close(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("indexed %d articles into %s\n", indexer.GetDocsCount(), *outputDir)
}
