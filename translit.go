package gondi

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// whitespace matches runs of white space, using the same character class as
// \s in ECMAScript patterns (which is wider than \s in Go's RE2 syntax).
var whitespace = regexp.MustCompile(
	`[\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]+`)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x00A0, 0x1680,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// Segment is either a run of white space or a word.
type Segment struct {
	Text  string
	Space bool
}

// Segments splits text into alternating words and white space runs.
// Concatenating the segments reproduces text.
func Segments(text string) []Segment {
	var segs []Segment
	last := 0
	for _, loc := range whitespace.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Text: text[last:loc[0]]})
		}
		segs = append(segs, Segment{Text: text[loc[0]:loc[1]], Space: true})
		last = loc[1]
	}
	if last < len(text) {
		segs = append(segs, Segment{Text: text[last:]})
	}
	return segs
}

// Transliterate converts romanized text to Masaram Gondi, using the built-in
// scheme. White space is preserved; every word is transliterated on its own.
func Transliterate(text string) string {
	return defaultScheme.Transliterate(text)
}

// Transliterate converts romanized text to Masaram Gondi.
// White space is preserved; every word is transliterated on its own.
func (s *Scheme) Transliterate(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(4 * len(text))
	for _, seg := range Segments(text) {
		if seg.Space {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(s.transliterateBytes(seg.Text))
	}
	return b.String()
}

// transliterateBytes copies invalid UTF-8 bytes unchanged. An unknown
// character closes the current syllable, therefore the valid stretches in
// between can be treated as separate words.
func (s *Scheme) transliterateBytes(word string) string {
	if utf8.ValidString(word) {
		return s.TransliterateWord(word)
	}
	var b strings.Builder
	for len(word) > 0 {
		i := invalidByte(word)
		b.WriteString(s.TransliterateWord(word[:i]))
		if i == len(word) {
			break
		}
		b.WriteByte(word[i])
		word = word[i+1:]
	}
	return b.String()
}

// invalidByte returns the offset of the first byte which does not start a
// valid UTF-8 sequence, or len(s).
func invalidByte(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return len(s)
}

// Copy transliterates src line by line and writes the result to dst.
// It returns the number of bytes written.
func (s *Scheme) Copy(dst io.Writer, src io.Reader) (int64, error) {
	reader := bufio.NewReader(src)
	var written int64
	lines := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			n, werr := io.WriteString(dst, s.Transliterate(line))
			written += int64(n)
			if werr != nil {
				return written, werr
			}
			lines++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}
	}
	tracer().Debugf("%s: transliterated %d lines, %d bytes", s.Identifier, lines, written)
	return written, nil
}
