package kvdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/Ruhan116/CLIR/pkg/datastructure"

	"github.com/klauspost/compress/zstd"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_BUCKET = "clirArticles"
)

// KVDB persists the article corpus in bbolt, keyed by docID. Article bodies
// dominate the on-disk size, so the body field is zstd-compressed; the other
// fields are stored with length-prefixed binary encoding.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db, encoder: encoder, decoder: decoder}, nil
}

// SaveDocs saves the articles to boltDB. batching
func (db *KVDB) SaveDocs(docs []datastructure.Document) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		for _, doc := range docs {
			err := db.set(doc, tx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) set(doc datastructure.Document, tx *bbolt.Tx) error {
	docBytes, err := db.serializeDoc(doc)
	if err != nil {
		return err
	}
	b := tx.Bucket([]byte(BBOLTDB_BUCKET))
	err = b.Put([]byte(strconv.Itoa(doc.ID)), docBytes)
	if err != nil {
		return err
	}
	return nil
}

func (db *KVDB) GetDoc(id int) (doc datastructure.Document, err error) {
	db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		docBytes := b.Get([]byte(strconv.Itoa(id)))
		if docBytes == nil {
			err = fmt.Errorf("document with docID: %d not found", id)
			return nil
		}
		doc, err = db.deserializeDoc(docBytes)
		return nil
	})
	return
}

// AllDocs returns the whole corpus in ascending docID order. Bolt cursors
// iterate keys lexicographically and the keys are decimal strings, so the
// scan re-sorts by the decoded ID.
func (db *KVDB) AllDocs() ([]datastructure.Document, error) {
	docs := []datastructure.Document{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BBOLTDB_BUCKET)
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			doc, err := db.deserializeDoc(v)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

func PutInt(bb *bytes.Buffer, offset int, val int) {
	binary.LittleEndian.PutUint32(bb.Bytes()[offset:], uint32(val))
}

func GetInt(bb *bytes.Buffer, offset int) int {
	return int(binary.LittleEndian.Uint32(bb.Bytes()[offset:]))
}

// GetBytes returns the length-prefixed byte array at offset.
func GetBytes(bb *bytes.Buffer, offset int) []byte {
	length := GetInt(bb, offset)
	b := make([]byte, length)
	copy(b, bb.Bytes()[offset+4:offset+4+length])
	return b
}

func PutBytes(bb *bytes.Buffer, offset int, b []byte) {
	PutInt(bb, offset, len(b))
	copy(bb.Bytes()[offset+4:], b)
}

func GetString(bb *bytes.Buffer, offset int) string {
	return string(GetBytes(bb, offset))
}

func PutString(bb *bytes.Buffer, offset int, s string) int {
	PutBytes(bb, offset, []byte(s))
	return len([]byte(s))
}

func getDocSize(doc datastructure.Document, compressedBody []byte) int {
	return 4 +
		4 + len([]byte(doc.Source)) +
		4 + len([]byte(doc.Title)) +
		4 + len(compressedBody) +
		4 + len([]byte(doc.URL)) +
		4 + len([]byte(doc.Date)) +
		4 + len([]byte(doc.Language))
}

func (db *KVDB) serializeDoc(doc datastructure.Document) ([]byte, error) {
	compressedBody := db.encoder.EncodeAll([]byte(doc.Body), nil)

	bb := bytes.NewBuffer(make([]byte, getDocSize(doc, compressedBody)))

	leftPos := 0

	PutInt(bb, leftPos, doc.ID)
	leftPos += 4

	stringLen := PutString(bb, leftPos, doc.Source)
	leftPos += stringLen + 4

	stringLen = PutString(bb, leftPos, doc.Title)
	leftPos += stringLen + 4

	PutBytes(bb, leftPos, compressedBody)
	leftPos += len(compressedBody) + 4

	stringLen = PutString(bb, leftPos, doc.URL)
	leftPos += stringLen + 4

	stringLen = PutString(bb, leftPos, doc.Date)
	leftPos += stringLen + 4

	stringLen = PutString(bb, leftPos, doc.Language)
	leftPos += stringLen + 4

	return bb.Bytes(), nil
}

func (db *KVDB) deserializeDoc(buf []byte) (datastructure.Document, error) {
	bb := bytes.NewBuffer(buf)
	doc := datastructure.Document{}
	leftPos := 0

	doc.ID = GetInt(bb, leftPos)
	leftPos += 4

	doc.Source = GetString(bb, leftPos)
	leftPos += len([]byte(doc.Source)) + 4

	doc.Title = GetString(bb, leftPos)
	leftPos += len([]byte(doc.Title)) + 4

	compressedBody := GetBytes(bb, leftPos)
	leftPos += len(compressedBody) + 4

	body, err := db.decoder.DecodeAll(compressedBody, nil)
	if err != nil {
		return datastructure.Document{}, fmt.Errorf("error when decompressing document body: %w", err)
	}
	doc.Body = string(body)

	doc.URL = GetString(bb, leftPos)
	leftPos += len([]byte(doc.URL)) + 4

	doc.Date = GetString(bb, leftPos)
	leftPos += len([]byte(doc.Date)) + 4

	doc.Language = GetString(bb, leftPos)
	leftPos += len([]byte(doc.Language)) + 4

	return doc, nil
}
