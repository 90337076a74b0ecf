package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/chzyer/readline"
	"github.com/npillmayer/gondi"
	"github.com/npillmayer/gondi/editor"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/norm"
)

const defaultSample = "namaste bhaarat"

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Intp is our interpreter object
type Intp struct {
	buf *editor.Buffer
	out io.Writer
	nfc bool
	now func() time.Time
}

func runREPL(scheme *gondi.Scheme, nfc bool) error {
	repl, err := readline.New("gondi > ")
	if err != nil {
		return fmt.Errorf("starting interactive mode: %w", err)
	}
	defer repl.Close()
	intp := &Intp{buf: editor.New(scheme), out: os.Stdout, nfc: nfc, now: time.Now}
	pterm.Info.Println("Using " + scheme.Identifier)
	pterm.Info.Println("Quit with <ctrl>D or :quit")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err = intp.execute(line); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			pterm.Error.Println(err.Error())
		}
	}
	pterm.Info.Println("Good bye!")
	return nil
}

// execute runs a single line of input. Lines starting with a colon are
// commands, everything else is appended to the edit buffer.
func (intp *Intp) execute(line string) error {
	if !strings.HasPrefix(line, ":") {
		if intp.nfc {
			line = norm.NFC.String(line)
		}
		intp.buf.Select(intp.buf.Len(), intp.buf.Len())
		if intp.buf.Len() > 0 {
			intp.buf.Insert("\n")
		}
		intp.buf.Insert(line)
		intp.show()
		return nil
	}
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line[1:]), " ")
	arg = strings.TrimSpace(arg)
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch cmd {
	case "quit", "q":
		return errQuit
	case "help", "h":
		help(intp.out)
	case "bs":
		n := 1
		if arg != "" {
			var err error
			if n, err = strconv.Atoi(arg); err != nil || n < 1 {
				return fmt.Errorf("not a positive count: %q", arg)
			}
		}
		for i := 0; i < n; i++ {
			if !intp.buf.Backspace() {
				break
			}
		}
		intp.show()
	case "clear":
		intp.buf.Clear()
	case "sample":
		if arg == "" {
			arg = defaultSample
		}
		intp.buf.SetText(arg)
		intp.show()
	case "copy":
		text, err := intp.buf.Copy()
		if err != nil {
			return err
		}
		if err = writeClipboard(text); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(intp.out, "Copied!")
	case "save":
		return intp.save(arg)
	case "names":
		printNames(intp.out, intp.buf.Output())
	default:
		return fmt.Errorf("unknown command :%s, try :help", cmd)
	}
	return nil
}

func (intp *Intp) save(name string) error {
	if name == "" {
		name = editor.FileName(intp.now())
	}
	if _, err := intp.buf.Copy(); err != nil {
		return editor.ErrNothingToSave
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err = intp.buf.Save(f); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(intp.out, "Saved to %s\n", name)
	return nil
}

func (intp *Intp) show() {
	fmt.Fprintln(intp.out, intp.buf.Output())
}

func help(w io.Writer) {
	fmt.Fprint(w, `Lines not starting with a colon are appended to the text.
Commands:
  :bs [n]         delete the last n characters (default 1)
  :clear          clear the text
  :sample [text]  replace the text by a sample
  :copy           copy the output to the clipboard
  :save [file]    save the output (default gondi-text-<millis>.txt)
  :names          list the Unicode names of the output characters
  :help           this message
  :quit           leave
`)
}
