package schemefile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/gondi"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// Write serializes a scheme in scheme file format. Glyphs are written as
// code points, keys as literal text. Reading the output with Load yields an
// equivalent scheme.
//
// Keys containing a '%', starting with '[' or '\', or not in NFC cannot be
// expressed in the format. Write fails with an *UnwritableKeyError for them
// and writes nothing.
func Write(w io.Writer, name string, scheme *gondi.Scheme) error {
	entries := scheme.Entries()
	if e, found := lo.Find(entries, func(e gondi.Entry) bool {
		return !writableKey(e.Key)
	}); found {
		return &UnwritableKeyError{Class: e.Class, Key: e.Key}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\\scheme{%s}\n", name)
	byClass := lo.GroupBy(entries, func(e gondi.Entry) gondi.SymbolClass {
		return e.Class
	})
	for c := gondi.IndependentVowels; c <= gondi.Numerals; c++ {
		entries := byClass[c]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n[%s]\n", c)
		for _, e := range entries {
			fmt.Fprintf(bw, "%-4s %s\n", e.Key, CodePoints(e.Glyph))
		}
	}
	return bw.Flush()
}

// UnwritableKeyError is returned by Write for keys which would be read back
// differently: as a comment, a section header, a directive or a normalized key.
type UnwritableKeyError struct {
	Class gondi.SymbolClass
	Key   string
}

func (e *UnwritableKeyError) Error() string {
	return fmt.Sprintf("%s key %q cannot be written to a scheme file", e.Class, e.Key)
}

func writableKey(key string) bool {
	return !strings.ContainsRune(key, '%') &&
		!strings.HasPrefix(key, "[") && !strings.HasPrefix(key, "\\") &&
		norm.NFC.IsNormalString(key)
}

// CodePoints renders s as a sequence of U+XXXX tokens.
func CodePoints(s string) string {
	return strings.Join(lo.Map([]rune(s), func(r rune, _ int) string {
		return fmt.Sprintf("U+%04X", r)
	}), " ")
}
