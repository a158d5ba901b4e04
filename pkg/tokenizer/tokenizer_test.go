package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "english with punctuation",
			text: "Bangladesh's economy grew, again!",
			want: []string{"bangladesh", "s", "economy", "grew", "again"},
		},
		{
			name: "bangla whitespace separated",
			text: "ঢাকা আজ বৃষ্টি",
			want: []string{"ঢাকা", "আজ", "বৃষ্টি"},
		},
		{
			name: "mixed script",
			text: "Dhaka ঢাকা 2024",
			want: []string{"dhaka", "ঢাকা", "2024"},
		},
		{
			name: "empty",
			text: "   ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestNormalizeLowercases(t *testing.T) {
	assert.Equal(t, "dhaka", Normalize("DHAKA"))
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english", text: "Dhaka weather today", want: "en"},
		{name: "bangla", text: "ঢাকা আজ বৃষ্টি", want: "bn"},
		{name: "mixed mostly bangla", text: "ঢাকা বৃষ্টি ok", want: "bn"},
		{name: "empty defaults to english", text: "", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

func TestContainsBangla(t *testing.T) {
	assert.True(t, ContainsBangla("dhaka ঢাকা"))
	assert.False(t, ContainsBangla("dhaka"))
}
