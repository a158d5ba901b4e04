package compress

import (
	"encoding/binary"
)

// EncodePostingList encodes a posting list as a sequence of unsigned
// varints. DocIDs in a posting list are small and ascending, so varint
// encoding keeps the on-disk index compact.
func EncodePostingList(postings []int) []byte {
	buf := make([]byte, 0, len(postings))
	for _, docID := range postings {
		buf = binary.AppendUvarint(buf, uint64(docID))
	}
	return buf
}

func DecodePostingList(buf []byte) []int {
	var postings []int
	for len(buf) > 0 {
		v, n := binary.Uvarint(buf)
		if n <= 0 {
			break
		}
		postings = append(postings, int(v))
		buf = buf[n:]
	}
	return postings
}
