/*
Package schemefile reads and writes romanization schemes in a line-oriented
text format.

A scheme file looks like this:

	% comment
	\scheme{Masaram Gondi ITRANS}
	[consonants]
	k   U+11D0C
	kh  𑴍
	q   U+11D0C U+11D42   % ka + nukta

Section headers name the symbol table the following entries belong to:
[vowels], [signs], [consonants], [nukta] and [numerals]. Every entry is a
key followed by one or more glyph tokens. A token is either a code point in
U+XXXX notation or literal text; the tokens are concatenated to form the
glyph. Keys are normalized to NFC.
*/
package schemefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/gondi"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'gondi.scheme'
func tracer() tracing.Trace {
	return tracing.Select("gondi.scheme")
}

// SyntaxError is returned for malformed lines of a scheme file.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Reader streams scheme entries from a scheme file.
// It implements gondi.SymbolReader.
type Reader struct {
	scanner    *bufio.Scanner
	line       int
	class      gondi.SymbolClass
	inSection  bool
	identifier string
}

var _ gondi.SymbolReader = (*Reader)(nil)

// Load parses a scheme file and returns a ready-to-use scheme.
//
// If name is empty, the name given by a \scheme{...} directive is used.
func Load(name string, reader io.Reader) (*gondi.Scheme, error) {
	r := NewReader(reader)
	scheme, err := gondi.LoadScheme(name, r)
	if err != nil {
		return nil, err
	}
	if name == "" && r.Identifier() != "" {
		scheme.Identifier = "scheme: " + r.Identifier()
	}
	tracer().Debugf("loaded %s from %d lines", scheme.Identifier, r.line)
	return scheme, nil
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier is the scheme name of the last \scheme{...} directive read.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (class, key, glyph).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (gondi.SymbolClass, string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := stripComment(r.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\scheme{") {
			if !strings.HasSuffix(line, "}") {
				return r.fail("unterminated \\scheme directive")
			}
			r.identifier = strings.TrimSpace(line[8 : len(line)-1])
			continue
		}
		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return r.fail("unterminated section header %q", line)
			}
			class, ok := gondi.ParseSymbolClass(strings.TrimSpace(line[1 : len(line)-1]))
			if !ok {
				return r.fail("unknown section %s", line)
			}
			r.class, r.inSection = class, true
			continue
		}
		if !r.inSection {
			return r.fail("entry outside of a section")
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return r.fail("entry %q has no glyph", fields[0])
		}
		glyph, err := decodeGlyph(fields[1:])
		if err != nil {
			return r.fail("%s", err.Error())
		}
		return r.class, norm.NFC.String(fields[0]), glyph, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", "", err
	}
	return 0, "", "", io.EOF
}

func (r *Reader) fail(format string, args ...interface{}) (gondi.SymbolClass, string, string, error) {
	err := &SyntaxError{Line: r.line, Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf("scheme file, %v", err)
	return 0, "", "", err
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func decodeGlyph(tokens []string) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, "U+") {
			b.WriteString(tok)
			continue
		}
		cp, err := strconv.ParseUint(tok[2:], 16, 32)
		if err != nil || cp > utf8.MaxRune || !utf8.ValidRune(rune(cp)) {
			return "", fmt.Errorf("malformed code point %s", tok)
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), nil
}
