package searcher_di

import (
	"context"

	"github.com/Ruhan116/CLIR/pkg/fuzzy"
	"github.com/Ruhan116/CLIR/pkg/http/usecases"
	"github.com/Ruhan116/CLIR/pkg/index"
	"github.com/Ruhan116/CLIR/pkg/kvdb"
	"github.com/Ruhan116/CLIR/pkg/searcher"
	"github.com/Ruhan116/CLIR/pkg/translit"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New assembles the query-time engine: corpus from the document store, fuzzy
// matcher, transliteration map, and the BM25+ lexical ranker over the
// on-disk index. A missing index is fatal at startup; a corpus that loads is
// the minimum the engine needs.
func New(ctx context.Context, db *kvdb.KVDB, log *zap.Logger) (usecases.Searcher, error) {
	viper.SetDefault("INDEX_OUTPUT_DIR", "clir_index")
	viper.SetDefault("TRANSLIT_MAP_PATH", "")

	docs, err := db.AllDocs()
	if err != nil {
		return nil, err
	}

	matcher, err := fuzzy.NewMatcher()
	if err != nil {
		return nil, err
	}

	translitMap := translit.NewDefaultMap()
	if path := viper.GetString("TRANSLIT_MAP_PATH"); path != "" {
		if err := translitMap.LoadJSON(path); err != nil {
			return nil, err
		}
	}

	idx, err := index.NewIndexer(viper.GetString("INDEX_OUTPUT_DIR"), true, db)
	if err != nil {
		return nil, err
	}
	spellCorrector := index.NewSpellCorrector(matcher)
	lexical := index.NewLexicalSearcher(idx, spellCorrector)
	if err := lexical.LoadIndex(); err != nil {
		return nil, err
	}

	clirSearcher := searcher.New(docs, matcher, translitMap, lexical, log)

	cleanup := func() {
		_ = lexical.Close()
	}

	go func() {
		<-ctx.Done()
		cleanup()
	}()

	return clirSearcher, nil
}
