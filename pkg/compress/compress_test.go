package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostingListRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		postings []int
	}{
		{name: "single byte varints", postings: []int{0, 1, 5, 127}},
		{name: "multi byte varints", postings: []int{128, 300, 100000, 1 << 30}},
		{name: "repeated docIDs carry term frequency", postings: []int{3, 3, 3, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.postings, DecodePostingList(EncodePostingList(tt.postings)))
		})
	}
}

func TestDecodeEmptyBuffer(t *testing.T) {
	assert.Empty(t, DecodePostingList(nil))
}
