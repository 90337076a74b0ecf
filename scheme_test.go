package gondi

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sliceSymbolReader struct {
	entries []Entry
	index   int
	err     error // returned after the entries
}

func (r *sliceSymbolReader) Next() (SymbolClass, string, string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return 0, "", "", r.err
		}
		return 0, "", "", io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Class, e.Key, e.Glyph, nil
}

func TestSymbolReaderAPI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gondi")
	defer teardown()
	//
	scheme, err := LoadScheme("stream", &sliceSymbolReader{
		entries: []Entry{
			{Consonants, "k", "K"},
			{Consonants, "kh", "X"},
			{VowelSigns, "i", "+i"},
			{IndependentVowels, "a", "A"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := scheme.Transliterate("ki kh a"), "K+i X"+Halanta+" A"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if scheme.Identifier != "scheme: stream" {
		t.Fatalf("unexpected identifier %q", scheme.Identifier)
	}
}

func TestSymbolReaderError(t *testing.T) {
	failure := errors.New("broken stream")
	_, err := LoadScheme("broken", &sliceSymbolReader{err: failure})
	if !errors.Is(err, failure) {
		t.Fatalf("expected reader error to be passed through, got %v", err)
	}
}

func TestInvalidEntries(t *testing.T) {
	tests := []struct {
		entry Entry
		msg   string
	}{
		{Entry{Consonants, "", "x"}, "runes"},
		{Entry{Consonants, "kkkk", "x"}, "runes"},
		{Entry{Consonants, "k k", "x"}, "white space"},
		{Entry{Consonants, "k", ""}, "empty glyph"},
		{Entry{Numerals, "10", "x"}, "single rune"},
		{Entry{NuktaConsonants, "qqq", "x"}, "longer than 2 runes"},
		{Entry{SymbolClass(9), "k", "x"}, "unknown symbol class"},
		{Entry{Consonants, "\xff", "x"}, "UTF-8"},
	}
	for _, tt := range tests {
		_, err := LoadEntries("invalid", []Entry{tt.entry})
		if err == nil {
			t.Fatalf("expected error for entry %v", tt.entry)
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Fatalf("error for %v should mention %q, is %q", tt.entry, tt.msg, err)
		}
	}
}

func TestLaterEntriesReplaceEarlierOnes(t *testing.T) {
	scheme, err := LoadEntries("replace", []Entry{
		{Consonants, "k", "1"},
		{Consonants, "k", "2"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if scheme.Table(Consonants).Len() != 1 {
		t.Fatalf("expected 1 key, have %d", scheme.Table(Consonants).Len())
	}
	if g, _ := scheme.Table(Consonants).Lookup("k"); g != "2" {
		t.Fatalf("expected replaced glyph, got %q", g)
	}
}

func TestDefaultSchemeStats(t *testing.T) {
	want := map[SymbolClass]int{
		IndependentVowels: 24,
		VowelSigns:        26,
		Consonants:        60,
		NuktaConsonants:   3,
		Numerals:          10,
	}
	for _, stats := range Default().Stats() {
		class, ok := ParseSymbolClass(stats.Name)
		if !ok {
			t.Fatalf("unknown table name %q", stats.Name)
		}
		if stats.Keys != want[class] {
			t.Fatalf("table %s: expected %d keys, have %d", stats.Name, want[class], stats.Keys)
		}
		sum := stats.ByLength[1] + stats.ByLength[2] + stats.ByLength[3]
		if sum != stats.Keys {
			t.Fatalf("table %s: lengths add up to %d, expected %d", stats.Name, sum, stats.Keys)
		}
	}
}

func TestEntriesRoundTrip(t *testing.T) {
	entries := Default().Entries()
	scheme, err := LoadEntries("copy", entries)
	if err != nil {
		t.Fatal(err)
	}
	input := "namaste bhaarat karma kraa zindagii 1.2..."
	if got, want := scheme.Transliterate(input), Transliterate(input); got != want {
		t.Fatalf("copied scheme differs: got %q, want %q", got, want)
	}
}

func TestTableMatch(t *testing.T) {
	table := Default().Table(Consonants)
	tests := []struct {
		word string
		pos  int
		n    int
	}{
		{"chha", 0, 3},
		{"cha", 0, 2},
		{"ca", 0, 1},
		{"ach", 1, 2},
		{"a", 0, 0},
		{"k", 1, 0},
		{"k", -1, 0},
	}
	for _, tt := range tests {
		if _, n := table.Match([]rune(tt.word), tt.pos); n != tt.n {
			t.Fatalf("Match(%q, %d): matched %d runes, want %d", tt.word, tt.pos, n, tt.n)
		}
	}
}

func TestTableOfUnknownClass(t *testing.T) {
	table := Default().Table(SymbolClass(9))
	if table != nil {
		t.Fatalf("expected no table for unknown class")
	}
	if name := table.Name(); name != "" {
		t.Fatalf("expected empty name, got %q", name)
	}
	if stats := table.Stats(); stats.Keys != 0 || stats.Name != "" {
		t.Fatalf("expected empty stats, got %v", stats)
	}
}

func TestFrozenTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when modifying a frozen table")
		}
	}()
	Default().Table(Numerals).put("x", "y")
}

func TestSymbolClassNames(t *testing.T) {
	for c := SymbolClass(0); c < numberOfClasses; c++ {
		parsed, ok := ParseSymbolClass(c.String())
		if !ok || parsed != c {
			t.Fatalf("class %d does not survive its name %q", c, c.String())
		}
	}
	if _, ok := ParseSymbolClass("matras"); ok {
		t.Fatalf("unexpected class for unknown name")
	}
}
