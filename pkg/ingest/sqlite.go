package ingest

import (
	"database/sql"
	"os"

	"github.com/Ruhan116/CLIR/pkg"
	"github.com/Ruhan116/CLIR/pkg/datastructure"

	_ "modernc.org/sqlite"
)

// LoadArticles reads the whole article corpus out of a SQLite database. The
// scraper writes one row per article into the articles table; docIDs are the
// row ids and stay stable across reindexing runs.
func LoadArticles(dbPath string) ([]datastructure.Document, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrDataAccess, "article database %s not found", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrDataAccess, "error when opening article database %s", dbPath)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT id, source, title, body, url, date, language FROM articles ORDER BY id`)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrDataAccess, "error when querying articles")
	}
	defer rows.Close()

	docs := []datastructure.Document{}
	for rows.Next() {
		var (
			id                                      int
			source, title, body, url, date, language string
		)
		if err := rows.Scan(&id, &source, &title, &body, &url, &date, &language); err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrDataAccess, "error when scanning article row")
		}
		docs = append(docs, datastructure.NewDocument(id, source, title, body, url, date, language))
	}
	if err := rows.Err(); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrDataAccess, "error when iterating article rows")
	}
	return docs, nil
}
