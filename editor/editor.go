/*
Package editor keeps a romanized text and its Masaram Gondi rendering in sync.

A Buffer models the input field of an interactive front end: text is inserted
at the cursor (replacing a selection, if any), deleted with backspace, or
replaced as a whole. After every edit the output is recomputed from the
complete input.

Offsets are counted in runes.
*/
package editor

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/gondi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gondi.editor'
func tracer() tracing.Trace {
	return tracing.Select("gondi.editor")
}

var (
	ErrNothingToCopy = errors.New("nothing to copy, please type something first")
	ErrNothingToSave = errors.New("nothing to save, please type something first")
)

// Buffer holds romanized input, a selection and the transliterated output.
type Buffer struct {
	scheme     *gondi.Scheme
	input      []rune
	start, end int // selection; start == end is a plain cursor
	output     string
}

// New creates an empty buffer. If scheme is nil, the built-in scheme is used.
func New(scheme *gondi.Scheme) *Buffer {
	if scheme == nil {
		scheme = gondi.Default()
	}
	return &Buffer{scheme: scheme}
}

// Input returns the romanized text.
func (b *Buffer) Input() string {
	return string(b.input)
}

// Output returns the transliteration of the current input.
func (b *Buffer) Output() string {
	return b.output
}

// Selection returns the current selection. Both offsets are equal if nothing
// is selected.
func (b *Buffer) Selection() (start, end int) {
	return b.start, b.end
}

// Len is the length of the input in runes.
func (b *Buffer) Len() int {
	return len(b.input)
}

// Select sets the selection, clamping both offsets to the input.
func (b *Buffer) Select(start, end int) {
	start, end = b.clamp(start), b.clamp(end)
	if start > end {
		start, end = end, start
	}
	b.start, b.end = start, end
}

// Insert replaces the selection by s and places the cursor after it.
func (b *Buffer) Insert(s string) {
	ins := []rune(s)
	text := make([]rune, 0, len(b.input)-(b.end-b.start)+len(ins))
	text = append(text, b.input[:b.start]...)
	text = append(text, ins...)
	text = append(text, b.input[b.end:]...)
	b.input = text
	b.start += len(ins)
	b.end = b.start
	b.update()
}

// Backspace deletes the selection or, without a selection, the rune before
// the cursor. It reports whether anything has been deleted.
func (b *Buffer) Backspace() bool {
	if b.start == b.end {
		if b.start == 0 {
			return false
		}
		b.start--
	}
	b.input = append(b.input[:b.start], b.input[b.end:]...)
	b.end = b.start
	b.update()
	return true
}

// SetText replaces the whole input, e.g. by a sample text, and places the
// cursor at the end.
func (b *Buffer) SetText(text string) {
	b.input = []rune(text)
	b.start = len(b.input)
	b.end = b.start
	b.update()
}

// Clear empties input and output.
func (b *Buffer) Clear() {
	b.input = b.input[:0]
	b.start, b.end = 0, 0
	b.output = ""
}

// Copy returns the output for transfer to a clipboard.
func (b *Buffer) Copy() (string, error) {
	if b.output == "" {
		return "", ErrNothingToCopy
	}
	return b.output, nil
}

// Save writes the output to w.
func (b *Buffer) Save(w io.Writer) (int, error) {
	if b.output == "" {
		return 0, ErrNothingToSave
	}
	n, err := io.WriteString(w, b.output)
	if err != nil {
		return n, fmt.Errorf("saving output: %w", err)
	}
	tracer().Debugf("saved %d bytes", n)
	return n, nil
}

// FileName proposes a file name for saving the output at time t.
func FileName(t time.Time) string {
	return fmt.Sprintf("gondi-text-%d.txt", t.UnixMilli())
}

func (b *Buffer) update() {
	b.output = b.scheme.Transliterate(string(b.input))
	tracer().Debugf("editor: %q -> %q", string(b.input), b.output)
}

func (b *Buffer) clamp(pos int) int {
	return max(0, min(pos, len(b.input)))
}
