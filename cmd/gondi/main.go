/*
Command gondi transliterates romanized text to Masaram Gondi.

Batch mode reads the files named as arguments (or stdin) and writes the
transliteration to stdout or to the file given by --output:

	gondi --nfc notes.txt > notes.gondi.txt
	echo "namaste" | gondi

Interactive mode (--repl) keeps an edit buffer; lines typed at the prompt are
appended to it and the complete output is echoed. Type :help for a list of
commands.

Flags may also be set by environment variables GONDI_<FLAG>, e.g.
GONDI_SCHEME=/path/to/my.scheme; a .env file in the working directory is
honored.
*/
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/npillmayer/gondi"
	"github.com/npillmayer/gondi/schemefile"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'gondi'
func tracer() tracing.Trace {
	return tracing.Select("gondi")
}

func main() {
	if err := mainE(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("gondi")
	var (
		schemePath = fs.StringLong("scheme", "", "Scheme file to use instead of the built-in scheme")
		outputPath = fs.StringLong("output", "", "Write output to this file instead of stdout")
		nfc        = fs.BoolLong("nfc", "Normalize input to NFC before transliteration")
		interact   = fs.BoolLong("repl", "Start interactive mode")
		tables     = fs.BoolLong("tables", "Print the symbol tables of the scheme and exit")
		names      = fs.BoolLong("names", "List the Unicode names of all output characters")
		tlevel     = fs.StringEnumLong("trace", "Trace level", "Error", "Info", "Debug")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("GONDI")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}
	if err := setupTracing(*tlevel); err != nil {
		return err
	}
	initDisplay()

	scheme, err := loadScheme(*schemePath)
	if err != nil {
		return err
	}
	if *tables {
		return printTables(scheme)
	}
	if *interact {
		return runREPL(scheme, *nfc)
	}

	return runBatch(scheme, fs.GetArgs(), batchOptions{
		outputPath: *outputPath,
		nfc:        *nfc,
		names:      *names,
	}, os.Stdout, os.Stderr)
}

type batchOptions struct {
	outputPath string // empty for stdout
	nfc        bool
	names      bool
}

// runBatch transliterates files (or stdin) to stdout or to an output file.
// Character names go to stderr.
func runBatch(scheme *gondi.Scheme, files []string, opts batchOptions, stdout, stderr io.Writer) (err error) {
	out := stdout
	if opts.outputPath != "" {
		f, ferr := os.Create(opts.outputPath)
		if ferr != nil {
			return fmt.Errorf("creating output file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", cerr)
			}
		}()
		out = f
	}
	var collected bytes.Buffer
	if opts.names {
		out = io.MultiWriter(out, &collected)
	}
	if err = transliterateFiles(scheme, out, files, opts.nfc); err != nil {
		return err
	}
	if opts.names {
		printNames(stderr, collected.String())
	}
	return nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.gondi":        level,
		"trace.gondi.scheme": level,
		"trace.gondi.editor": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadScheme(path string) (*gondi.Scheme, error) {
	if path == "" {
		return gondi.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scheme: %w", err)
	}
	defer f.Close()
	scheme, err := schemefile.Load("", f)
	if err != nil {
		return nil, fmt.Errorf("loading scheme %s: %w", path, err)
	}
	return scheme, nil
}

func transliterateFiles(scheme *gondi.Scheme, out io.Writer, files []string, nfc bool) error {
	if len(files) == 0 {
		return transliterate(scheme, out, os.Stdin, nfc)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		err = transliterate(scheme, out, f, nfc)
		f.Close()
		if err != nil {
			return fmt.Errorf("transliterating %s: %w", name, err)
		}
	}
	return nil
}

func transliterate(scheme *gondi.Scheme, out io.Writer, in io.Reader, nfc bool) error {
	if nfc {
		in = norm.NFC.Reader(in)
	}
	n, err := scheme.Copy(out, in)
	tracer().Debugf("wrote %d bytes", n)
	return err
}

func printTables(scheme *gondi.Scheme) error {
	for _, stats := range scheme.Stats() {
		pterm.Info.Println(stats.String())
	}
	data := pterm.TableData{{"table", "key", "glyph", "code points"}}
	data = append(data, lo.Map(scheme.Entries(), func(e gondi.Entry, _ int) []string {
		return []string{e.Class.String(), e.Key, e.Glyph, schemefile.CodePoints(e.Glyph)}
	})...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// printNames lists every distinct non-ASCII character of text together with
// its Unicode name.
func printNames(w io.Writer, text string) {
	runes := lo.Uniq(lo.Filter([]rune(text), func(r rune, _ int) bool {
		return r > 0x7f && r != utf8.RuneError
	}))
	for _, r := range runes {
		fmt.Fprintf(w, "%s  U+%04X  %s\n", string(r), r, runenames.Name(r))
	}
}

var errQuit = errors.New("quit")
