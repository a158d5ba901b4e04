package translit

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Ruhan116/CLIR/pkg/tokenizer"
)

// Map holds the bidirectional transliteration dictionary: a canonical entity
// surface form (commonly Bangla) mapped to its alternate spellings in the
// other script. The map is constructor-injected into the search engine, never
// process-global, and supports runtime insertion without a corpus rebuild.
type Map struct {
	mu       sync.RWMutex
	variants map[string][]string // canonical -> spelling variants
	reverse  map[string]string   // variant -> canonical
}

func NewMap() *Map {
	return &Map{
		variants: make(map[string][]string),
		reverse:  make(map[string]string),
	}
}

// NewDefaultMap returns a map pre-seeded with the built-in Bangla/English
// named-entity dictionary.
func NewDefaultMap() *Map {
	m := NewMap()
	for canonical, variants := range defaultEntities {
		m.Add(canonical, variants...)
	}
	return m
}

// Add registers variants for a canonical form. Keys are lowercased and
// NFC-normalized so lookups are case- and composition-insensitive. Adding to
// an existing canonical appends the new variants.
func (m *Map) Add(canonical string, variants ...string) {
	canonical = tokenizer.Normalize(canonical)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, variant := range variants {
		variant = tokenizer.Normalize(variant)
		if variant == "" || variant == canonical {
			continue
		}
		if m.reverse[variant] == canonical {
			continue
		}
		m.variants[canonical] = append(m.variants[canonical], variant)
		m.reverse[variant] = canonical
	}
}

// LoadJSON merges a canonical -> ["variant", ...] dictionary from a JSON file.
func (m *Map) LoadJSON(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error when reading transliteration file %s: %w", path, err)
	}

	entries := make(map[string][]string)
	if err := json.Unmarshal(buf, &entries); err != nil {
		return fmt.Errorf("error when parsing transliteration file %s: %w", path, err)
	}

	for canonical, variants := range entries {
		m.Add(canonical, variants...)
	}
	return nil
}

// Lookup resolves a token to its canonical form and variant set. The token
// may be the canonical form itself or any registered variant.
func (m *Map) Lookup(token string) (string, []string, bool) {
	token = tokenizer.Normalize(token)

	m.mu.RLock()
	defer m.mu.RUnlock()

	canonical := token
	if c, ok := m.reverse[token]; ok {
		canonical = c
	}
	variants, ok := m.variants[canonical]
	if !ok {
		return "", nil, false
	}
	out := make([]string, len(variants))
	copy(out, variants)
	return canonical, out, true
}

// Expand returns the token's expansion set: the token itself, its canonical
// form, and every sibling variant. Unknown tokens expand to just themselves.
func (m *Map) Expand(token string) []string {
	token = tokenizer.Normalize(token)

	canonical, variants, ok := m.Lookup(token)
	if !ok {
		return []string{token}
	}

	seen := map[string]struct{}{token: {}}
	expansion := []string{token}
	for _, candidate := range append([]string{canonical}, variants...) {
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		expansion = append(expansion, candidate)
	}
	return expansion
}

func (m *Map) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.variants)
}
