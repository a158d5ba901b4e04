package index

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Ruhan116/CLIR/pkg"
	"github.com/Ruhan116/CLIR/pkg/datastructure"
	"github.com/Ruhan116/CLIR/pkg/tokenizer"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	TITLE_FIELD_INDEX = "title_index"
	BODY_FIELD_INDEX  = "body_index"
)

// Indexer builds one inverted index per searchable field (title and body)
// from the article corpus. A news corpus fits in memory, so the whole build
// is a single pass: tokenize every field, accumulate postings per term,
// append each posting list once in ascending term order.
type Indexer struct {
	TermIDMap     *pkg.IDMap
	workingDir    string
	outputDir     string
	docWordCount  map[int]int
	docsCount     int
	documentStore DocumentStoreI
}

func NewIndexer(outputDir string, server bool, documentStore DocumentStoreI) (*Indexer, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	idx := &Indexer{
		TermIDMap:     pkg.NewIDMap(),
		workingDir:    pwd,
		outputDir:     outputDir,
		docWordCount:  make(map[int]int),
		documentStore: documentStore,
	}
	if server {
		if err := idx.LoadMeta(); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

// BuildIndex indexes the corpus and persists both field indexes plus the
// document store. Posting lists carry one entry per term occurrence, so the
// reader recovers term frequency by counting repeats.
func (idx *Indexer) BuildIndex(docs []datastructure.Document) error {
	fmt.Println("")
	bar := progressbar.NewOptions(len(docs)+2,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2]Indexing articles..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	fmt.Println("")

	titlePostings := make(map[int][]int)
	bodyPostings := make(map[int][]int)
	titleLen := make(map[int]int)
	bodyLen := make(map[int]int)

	invertField := func(docID int, text string, postings map[int][]int, lenFieldInDoc map[int]int) {
		tokens := tokenizer.Tokenize(text)
		lenFieldInDoc[docID] = len(tokens)
		for _, token := range tokens {
			termID := idx.TermIDMap.GetID(token)
			postings[termID] = append(postings[termID], docID)
		}
	}

	for _, doc := range docs {
		invertField(doc.ID, doc.Title, titlePostings, titleLen)
		invertField(doc.ID, doc.Body, bodyPostings, bodyLen)
		idx.docWordCount[doc.ID] = titleLen[doc.ID] + bodyLen[doc.ID]
		bar.Add(1)
	}
	idx.docsCount = len(docs)

	if idx.documentStore != nil {
		if err := idx.documentStore.SaveDocs(docs); err != nil {
			return fmt.Errorf("error when saving docs to document store: %w", err)
		}
	}
	bar.Add(1)

	if err := idx.writeFieldIndex(TITLE_FIELD_INDEX, titlePostings, titleLen); err != nil {
		return err
	}
	if err := idx.writeFieldIndex(BODY_FIELD_INDEX, bodyPostings, bodyLen); err != nil {
		return err
	}
	bar.Add(1)
	fmt.Println("")
	return nil
}

func (idx *Indexer) writeFieldIndex(indexName string, postings map[int][]int,
	lenFieldInDoc map[int]int) error {

	fieldIndex := NewInvertedIndex(indexName, idx.outputDir, idx.workingDir)
	if err := fieldIndex.OpenWriter(); err != nil {
		return err
	}
	fieldIndex.SetLenFieldInDoc(lenFieldInDoc)

	terms := make([]int, 0, len(postings))
	for termID := range postings {
		terms = append(terms, termID)
	}
	sort.Ints(terms)

	for _, termID := range terms {
		// postings were appended in corpus order, so docIDs are already
		// ascending.
		if err := fieldIndex.AppendPostingList(termID, postings[termID]); err != nil {
			return err
		}
	}
	return fieldIndex.Close()
}

type indexerMetadata struct {
	TermIDMap    *pkg.IDMap
	DocWordCount map[int]int
	DocsCount    int
}

func (idx *Indexer) Close() error {
	return idx.SaveMeta()
}

func (idx *Indexer) SaveMeta() error {
	meta := indexerMetadata{
		TermIDMap:    idx.TermIDMap,
		DocWordCount: idx.docWordCount,
		DocsCount:    idx.docsCount,
	}
	buf, err := msgpack.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("error when marshalling index metadata: %w", err)
	}
	return os.WriteFile(idx.metaFilePath(), buf, 0666)
}

func (idx *Indexer) LoadMeta() error {
	buf, err := os.ReadFile(idx.metaFilePath())
	if err != nil {
		return fmt.Errorf("error when reading index metadata: %w", err)
	}
	var meta indexerMetadata
	if err := msgpack.Unmarshal(buf, &meta); err != nil {
		return fmt.Errorf("error when unmarshalling index metadata: %w", err)
	}
	idx.TermIDMap = meta.TermIDMap
	idx.docWordCount = meta.DocWordCount
	idx.docsCount = meta.DocsCount
	return nil
}

func (idx *Indexer) metaFilePath() string {
	if idx.workingDir != "/" && !strings.HasPrefix(idx.outputDir, "/") {
		return idx.workingDir + "/" + idx.outputDir + "/" + "meta.metadata"
	}
	return idx.outputDir + "/" + "meta.metadata"
}

func (idx *Indexer) GetOutputDir() string {
	return idx.outputDir
}

func (idx *Indexer) GetWorkingDir() string {
	return idx.workingDir
}

func (idx *Indexer) GetDocWordCount() map[int]int {
	return idx.docWordCount
}

func (idx *Indexer) GetDocsCount() int {
	return idx.docsCount
}

func (idx *Indexer) GetTermIDMap() *pkg.IDMap {
	return idx.TermIDMap
}

func (idx *Indexer) BuildVocabulary() {
	idx.TermIDMap.BuildVocabulary()
}
