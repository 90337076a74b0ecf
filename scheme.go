package gondi

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SymbolClass selects one of the five symbol tables of a scheme.
type SymbolClass int8

// Symbol classes, in the order they are listed in scheme files.
const (
	IndependentVowels SymbolClass = iota
	VowelSigns
	Consonants
	NuktaConsonants
	Numerals
	numberOfClasses
)

var classNames = [...]string{"vowels", "signs", "consonants", "nukta", "numerals"}

func (c SymbolClass) String() string {
	if c < 0 || c >= numberOfClasses {
		return fmt.Sprintf("SymbolClass(%d)", int(c))
	}
	return classNames[c]
}

// ParseSymbolClass returns the class for a name as produced by String.
func ParseSymbolClass(name string) (SymbolClass, bool) {
	for i, n := range classNames {
		if n == name {
			return SymbolClass(i), true
		}
	}
	return -1, false
}

// SymbolReader yields scheme entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type SymbolReader interface {
	Next() (class SymbolClass, key string, glyph string, err error)
}

// Scheme is a complete, frozen romanization scheme.
//
// A scheme contains five symbol tables. Keys of different tables are
// independent from each other; which table is probed is decided by the
// position of a rule within the transliteration procedure.
type Scheme struct {
	tables     [numberOfClasses]*Table
	Identifier string // Identifies the scheme
}

// LoadScheme compiles a scheme from a streaming, format-agnostic source.
//
// File format parsing is outside the base package. Use adapters like package
// schemefile to parse concrete formats and feed this API.
// Entries for a key already present in a table replace the earlier entry.
func LoadScheme(name string, reader SymbolReader) (*Scheme, error) {
	scheme := &Scheme{
		Identifier: fmt.Sprintf("scheme: %s", name),
	}
	for c := SymbolClass(0); c < numberOfClasses; c++ {
		scheme.tables[c] = newTable(c.String())
	}
	n := 0
	for {
		class, key, glyph, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		n++
		if err = checkEntry(class, key, glyph); err != nil {
			return nil, fmt.Errorf("scheme %s, entry #%d: %w", name, n, err)
		}
		scheme.tables[class].put(key, glyph)
	}
	for _, t := range scheme.tables {
		t.freeze()
	}
	for _, stats := range scheme.Stats() {
		tracer().Infof("%s %s", scheme.Identifier, stats)
	}
	return scheme, nil
}

func checkEntry(class SymbolClass, key, glyph string) error {
	if class < 0 || class >= numberOfClasses {
		return fmt.Errorf("unknown symbol class %d", int(class))
	}
	if !utf8.ValidString(key) || strings.ContainsRune(key, utf8.RuneError) {
		return fmt.Errorf("key %q is not valid UTF-8", key)
	}
	if n := utf8.RuneCountInString(key); n < 1 || n > MaxKeyLength {
		return fmt.Errorf("key %q has %d runes, must have 1 to %d", key, n, MaxKeyLength)
	}
	if strings.ContainsFunc(key, isSpace) {
		return fmt.Errorf("key %q contains white space", key)
	}
	if glyph == "" {
		return fmt.Errorf("empty glyph for key %q", key)
	}
	if class == Numerals && utf8.RuneCountInString(key) != 1 {
		return fmt.Errorf("numeral key %q must be a single rune", key)
	}
	if class == NuktaConsonants && utf8.RuneCountInString(key) > maxNuktaKeyLength {
		return fmt.Errorf("nukta key %q is longer than %d runes", key, maxNuktaKeyLength)
	}
	return nil
}

// Table returns one of the symbol tables of the scheme.
func (s *Scheme) Table(class SymbolClass) *Table {
	if s == nil || class < 0 || class >= numberOfClasses {
		return nil
	}
	return s.tables[class]
}

// Stats reports key counts for all tables of the scheme.
func (s *Scheme) Stats() []TableStats {
	stats := make([]TableStats, 0, numberOfClasses)
	for _, t := range s.tables {
		stats = append(stats, t.Stats())
	}
	return stats
}

// IsVowel reports whether r is a romanized vowel letter, in plain or
// diacritic form.
func IsVowel(r rune) bool {
	return strings.ContainsRune(vowelLetters, r)
}

// --- Default scheme --------------------------------------------------------

var defaultScheme = mustLoadDefault()

// Default returns the built-in scheme.
func Default() *Scheme {
	return defaultScheme
}

func mustLoadDefault() *Scheme {
	scheme, err := LoadScheme("Masaram Gondi ITRANS", &entryReader{entries: defaultEntries()})
	assert(err == nil, fmt.Sprintf("built-in scheme is broken: %v", err))
	return scheme
}

// Entry is one record of a scheme.
type Entry struct {
	Class SymbolClass
	Key   string
	Glyph string
}

// entryReader streams entries from a slice.
type entryReader struct {
	entries []Entry
	index   int
}

func (r *entryReader) Next() (SymbolClass, string, string, error) {
	if r.index >= len(r.entries) {
		return 0, "", "", io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Class, e.Key, e.Glyph, nil
}

// LoadEntries compiles a scheme from an in-memory list of entries.
func LoadEntries(name string, entries []Entry) (*Scheme, error) {
	return LoadScheme(name, &entryReader{entries: entries})
}

// Entries lists the entries of the scheme, table by table and in key order.
// Loading the result with LoadEntries yields an equivalent scheme.
func (s *Scheme) Entries() []Entry {
	var entries []Entry
	for c, t := range s.tables {
		for _, key := range t.Keys() {
			glyph, _ := t.Lookup(key)
			entries = append(entries, Entry{Class: SymbolClass(c), Key: key, Glyph: glyph})
		}
	}
	return entries
}
