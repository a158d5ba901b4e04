package index

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ruhan116/CLIR/pkg/compress"

	"github.com/vmihailenco/msgpack/v5"
)

// InvertedIndex is the file-backed posting store for one document field.
// Postings live varint-encoded in a .index file; per-term offsets and field
// statistics live msgpack-encoded in a .metadata sidecar.
type InvertedIndex struct {
	indexName          string
	dirName            string
	postingMetadata    map[int][3]int // termID -> [startPosition, len(postingList), lengthInBytes]
	indexFilePath      string
	metadataFilePath   string
	terms              []int
	indexFile          *os.File
	lenFieldInDoc      map[int]int // docID -> term count of this field in the doc
	averageFieldLength float64
}

type invertedIndexMetadata struct {
	Terms              []int
	PostingMetadata    map[int][3]int
	LenFieldInDoc      map[int]int
	AverageFieldLength float64
}

func NewInvertedIndex(indexName, directoryName, workingDir string) *InvertedIndex {
	indexFilePath := directoryName + "/" + indexName + ".index"
	metadataFilePath := directoryName + "/" + indexName + ".metadata"
	if workingDir != "/" && !strings.HasPrefix(directoryName, "/") {
		indexFilePath = workingDir + "/" + indexFilePath
		metadataFilePath = workingDir + "/" + metadataFilePath
	}

	return &InvertedIndex{
		indexName:        indexName,
		dirName:          directoryName,
		postingMetadata:  make(map[int][3]int),
		indexFilePath:    indexFilePath,
		metadataFilePath: metadataFilePath,
		terms:            []int{},
		lenFieldInDoc:    make(map[int]int),
	}
}

func (idx *InvertedIndex) SetLenFieldInDoc(lenFieldInDoc map[int]int) {
	idx.lenFieldInDoc = lenFieldInDoc
}

func (idx *InvertedIndex) GetLenFieldInDoc() map[int]int {
	return idx.lenFieldInDoc
}

func (idx *InvertedIndex) GetAverageFieldLength() float64 {
	return idx.averageFieldLength
}

func (idx *InvertedIndex) OpenWriter() error {
	file, err := os.OpenFile(idx.indexFilePath, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		return err
	}
	idx.indexFile = file
	return nil
}

func (idx *InvertedIndex) OpenReader() error {
	file, err := os.OpenFile(idx.indexFilePath, os.O_RDONLY, 0666)
	if err != nil {
		return fmt.Errorf("error when opening index file %s: %w", idx.indexFilePath, err)
	}
	idx.indexFile = file

	buf, err := os.ReadFile(idx.metadataFilePath)
	if err != nil {
		return fmt.Errorf("error when reading index metadata %s: %w", idx.metadataFilePath, err)
	}

	var meta invertedIndexMetadata
	if err := msgpack.Unmarshal(buf, &meta); err != nil {
		return fmt.Errorf("error when unmarshalling index metadata: %w", err)
	}
	idx.terms = meta.Terms
	idx.postingMetadata = meta.PostingMetadata
	idx.lenFieldInDoc = meta.LenFieldInDoc
	idx.averageFieldLength = meta.AverageFieldLength

	return nil
}

// Close flushes the metadata sidecar. Average field length is computed here
// once, when the writer finishes.
func (idx *InvertedIndex) Close() error {
	if idx.indexFile == nil {
		return nil
	}
	if err := idx.indexFile.Close(); err != nil {
		return err
	}

	if len(idx.lenFieldInDoc) > 0 && idx.averageFieldLength == 0 {
		total := 0
		for _, termCount := range idx.lenFieldInDoc {
			total += termCount
		}
		idx.averageFieldLength = float64(total) / float64(len(idx.lenFieldInDoc))
	}

	meta := invertedIndexMetadata{
		Terms:              idx.terms,
		PostingMetadata:    idx.postingMetadata,
		LenFieldInDoc:      idx.lenFieldInDoc,
		AverageFieldLength: idx.averageFieldLength,
	}
	buf, err := msgpack.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("error when marshalling index metadata: %w", err)
	}
	return os.WriteFile(idx.metadataFilePath, buf, 0666)
}

func (idx *InvertedIndex) GetPostingList(termID int) ([]int, error) {
	postingMetadata, ok := idx.postingMetadata[termID]
	if !ok {
		return []int{}, nil // term not present in this field
	}
	buf := make([]byte, postingMetadata[2])
	if _, err := idx.indexFile.ReadAt(buf, int64(postingMetadata[0])); err != nil {
		return []int{}, err
	}
	return compress.DecodePostingList(buf), nil
}

func (idx *InvertedIndex) AppendPostingList(termID int, postingList []int) error {
	encoded := compress.EncodePostingList(postingList)
	startPosition, err := idx.indexFile.Seek(0, 2)
	if err != nil {
		return err
	}
	lengthInBytes, err := idx.indexFile.Write(encoded)
	if err != nil {
		return err
	}

	idx.terms = append(idx.terms, termID)
	idx.postingMetadata[termID] = [3]int{int(startPosition), len(postingList), lengthInBytes}
	return nil
}
