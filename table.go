package gondi

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// MaxKeyLength is the maximum length of a romanized key, in runes.
const MaxKeyLength = 3

// Table maps romanized keys to glyphs.
//
// A table is filled while its scheme is loaded and frozen afterwards. A frozen
// table is read-only and may be shared between goroutines.
type Table struct {
	name   string
	keys   *trie.Trie
	count  int
	frozen bool
}

// TableStats reports size metrics for a table.
type TableStats struct {
	Name     string
	Keys     int
	ByLength [MaxKeyLength + 1]int // ByLength[n] counts keys of n runes
}

func (s TableStats) String() string {
	return fmt.Sprintf("%s: %d keys (1:%d 2:%d 3:%d)", s.Name, s.Keys,
		s.ByLength[1], s.ByLength[2], s.ByLength[3])
}

func newTable(name string) *Table {
	return &Table{
		name: name,
		keys: trie.New(),
	}
}

// Name returns the name of the table, e.g. "consonants".
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// put adds or replaces an entry. Keys have to be checked by the caller.
func (t *Table) put(key, glyph string) {
	assert(!t.frozen, "attempt to modify frozen table "+t.name)
	if _, exists := t.keys.Find(key); !exists {
		t.count++
	}
	t.keys.Add(key, glyph)
}

func (t *Table) freeze() {
	t.frozen = true
}

// Lookup returns the glyph for key.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil || key == "" {
		return "", false
	}
	node, ok := t.keys.Find(key)
	if !ok {
		return "", false
	}
	glyph, ok := node.Meta().(string)
	return glyph, ok
}

// Match finds the longest key starting at word[pos], trying lengths 3, 2
// and 1. It returns the glyph and the number of runes matched, or ("", 0).
func (t *Table) Match(word []rune, pos int) (string, int) {
	return t.matchUpTo(word, pos, MaxKeyLength)
}

func (t *Table) matchUpTo(word []rune, pos int, maxlen int) (string, int) {
	if t == nil || pos < 0 || pos >= len(word) {
		return "", 0
	}
	for l := maxlen; l >= 1; l-- {
		if pos+l > len(word) {
			continue
		}
		if glyph, ok := t.Lookup(string(word[pos : pos+l])); ok {
			return glyph, l
		}
	}
	return "", 0
}

// Keys returns all keys of the table in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := t.keys.Keys()
	sort.Strings(keys)
	return keys
}

// Stats counts the keys of the table by length.
func (t *Table) Stats() TableStats {
	stats := TableStats{Name: t.Name(), Keys: t.Len()}
	for _, key := range t.Keys() {
		if n := utf8.RuneCountInString(key); n <= MaxKeyLength {
			stats.ByLength[n]++
		}
	}
	return stats
}
