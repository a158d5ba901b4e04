package ingest

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Ruhan116/CLIR/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE articles (
		id INTEGER PRIMARY KEY,
		source TEXT, title TEXT, body TEXT, url TEXT, date TEXT, language TEXT
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO articles (id, source, title, body, url, date, language) VALUES
		(2, 'daily-star', 'Bangladesh economy outlook', 'The economy grew.', 'u2', '2024-05-02', 'en'),
		(1, 'prothom-alo', 'ঢাকায় বৃষ্টি', 'ঢাকা আজ বৃষ্টি', 'u1', '2024-05-03', 'bn')`)
	require.NoError(t, err)
	return path
}

func TestLoadArticles(t *testing.T) {
	path := writeTestDB(t)

	docs, err := LoadArticles(path)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// ordered by id regardless of insertion order
	assert.Equal(t, 1, docs[0].ID)
	assert.Equal(t, "bn", docs[0].Language)
	assert.Equal(t, "ঢাকায় বৃষ্টি", docs[0].Title)
	assert.Equal(t, 2, docs[1].ID)
	assert.Equal(t, "daily-star", docs[1].Source)
}

func TestLoadArticlesMissingFile(t *testing.T) {
	_, err := LoadArticles(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)

	var appErr *pkg.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, pkg.ErrDataAccess, appErr.Code())
}
