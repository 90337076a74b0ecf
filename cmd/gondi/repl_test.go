package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/gondi"
	"github.com/npillmayer/gondi/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntp() (*Intp, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Intp{
		buf: editor.New(nil),
		out: out,
		now: func() time.Time { return time.UnixMilli(42) },
	}, out
}

func TestLinesAreAppended(t *testing.T) {
	intp, out := newTestIntp()
	require.NoError(t, intp.execute("ka"))
	require.NoError(t, intp.execute("kha"))
	assert.Equal(t, "ka\nkha", intp.buf.Input())
	assert.True(t, strings.HasSuffix(out.String(), gondi.Transliterate("ka\nkha")+"\n"))
}

func TestBackspaceCommand(t *testing.T) {
	intp, _ := newTestIntp()
	require.NoError(t, intp.execute("kaa"))
	require.NoError(t, intp.execute(":bs"))
	assert.Equal(t, "ka", intp.buf.Input())
	require.NoError(t, intp.execute(":bs 5"))
	assert.Equal(t, "", intp.buf.Input())
	assert.Error(t, intp.execute(":bs x"))
	assert.Error(t, intp.execute(":bs 0"))
}

func TestSampleAndClear(t *testing.T) {
	intp, _ := newTestIntp()
	require.NoError(t, intp.execute(":sample"))
	assert.Equal(t, defaultSample, intp.buf.Input())
	require.NoError(t, intp.execute(":sample  kaa "))
	assert.Equal(t, "kaa", intp.buf.Input())
	require.NoError(t, intp.execute(":clear"))
	assert.Equal(t, "", intp.buf.Output())
}

func TestCopyCommand(t *testing.T) {
	var clip string
	saved := writeClipboard
	t.Cleanup(func() { writeClipboard = saved })
	writeClipboard = func(s string) error { clip = s; return nil }
	intp, _ := newTestIntp()
	assert.ErrorIs(t, intp.execute(":copy"), editor.ErrNothingToCopy)
	require.NoError(t, intp.execute("namaste"))
	require.NoError(t, intp.execute(":copy"))
	assert.Equal(t, gondi.Transliterate("namaste"), clip)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	assert.Error(t, intp.execute(":copy"))
}

func TestSaveCommand(t *testing.T) {
	intp, _ := newTestIntp()
	name := filepath.Join(t.TempDir(), "out.txt")
	assert.ErrorIs(t, intp.execute(":save "+name), editor.ErrNothingToSave)
	require.NoError(t, intp.execute("namaste"))
	require.NoError(t, intp.execute(":save "+name))
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, gondi.Transliterate("namaste"), string(data))
}

func TestNamesCommand(t *testing.T) {
	intp, out := newTestIntp()
	require.NoError(t, intp.execute("k."))
	out.Reset()
	require.NoError(t, intp.execute(":names"))
	assert.Contains(t, out.String(), "U+11D0C  MASARAM GONDI LETTER KA")
	assert.Contains(t, out.String(), "U+0964  DEVANAGARI DANDA")
}

func TestQuitAndUnknownCommands(t *testing.T) {
	intp, _ := newTestIntp()
	assert.ErrorIs(t, intp.execute(":quit"), errQuit)
	assert.Error(t, intp.execute(":frobnicate"))
	require.NoError(t, intp.execute(":help"))
}

func TestTransliterateNFC(t *testing.T) {
	var out bytes.Buffer
	// a + combining macron
	in := strings.NewReader("ka\u0304\n")
	require.NoError(t, transliterate(gondi.Default(), &out, in, true))
	assert.Equal(t, gondi.Transliterate("kā\n"), out.String())
}
