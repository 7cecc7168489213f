package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/yaml2json"
	"github.com/arnodel/yaml2json/split"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// stdout is the destination for JSON output.  It is set up once in main and
// shared with the error printer, which may also write to it in json mode.
var stdout *bufio.Writer

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling in
	// writeDocuments).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	// Parse the command line arguments
	var (
		pretty      bool
		errorMode   string
		forceColors bool
		noColors    bool
	)

	flags := pflag.NewFlagSet("yaml2json", pflag.ExitOnError)
	flags.BoolVarP(&pretty, "pretty", "p", false, "output JSON on multiple lines, with indentation")
	flags.StringVarP(&errorMode, "error", "e", "stderr", "error reporting mode: silent|stderr|json")
	flags.BoolVar(&forceColors, "colors", false, "force using colors")
	flags.BoolVar(&noColors, "no-colors", false, "disable colors")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: yaml2json [flags] [file ...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "    yaml2json file1.yaml file2.yaml")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "    cat file1.yaml | yaml2json")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "    yaml2json --error=json file1.yaml | jq")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "If no file is given, input is read from stdin.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	errorStyle, err := parseErrorStyle(errorMode)
	if err != nil {
		fatalError("error: %s", err)
	}

	// Set up stdout for handling colors
	useColors := isatty.IsTerminal(os.Stdout.Fd())
	if forceColors {
		useColors = true
	}
	if noColors {
		useColors = false
	}

	var stdoutWriter io.Writer = os.Stdout
	var colorizer *yaml2json.Colorizer
	if useColors {
		stdoutWriter = colorable.NewColorableStdout()
		colorizer = &defaultColorizer
	}
	stdout = bufio.NewWriter(stdoutWriter)

	style := yaml2json.Compact
	if pretty {
		style = yaml2json.Pretty
	}
	converter := yaml2json.NewConverter(style)
	converter.Colorizer = colorizer

	errPrinter := newErrorPrinter(errorStyle, pretty)

	// If files are provided as arguments, read those; otherwise use stdin
	// for input.
	files := flags.Args()
	if len(files) == 0 {
		writeDocuments(converter, errPrinter, os.Stdin)
		exit(0)
	}
	for _, name := range files {
		info, err := os.Stat(name)
		switch {
		case errors.Is(err, os.ErrNotExist):
			errPrinter.Print(fmt.Sprintf("file %s does not exist", name))
		case err != nil:
			errPrinter.Print(err)
		case info.IsDir():
			errPrinter.Print(fmt.Sprintf("%s is a directory", name))
		default:
			f, err := os.Open(name)
			if err != nil {
				errPrinter.Print(err)
				continue
			}
			writeDocuments(converter, errPrinter, f)
			f.Close()
		}
	}
	exit(0)
}

// writeDocuments splits the input into YAML documents and writes each one to
// stdout as JSON, with a blank line between consecutive outputs.  Documents
// that fail to convert go through the error printer; a failure of the input
// stream itself ends the program.
func writeDocuments(converter *yaml2json.Converter, errPrinter *ErrorPrinter, input io.Reader) {
	splitter := split.NewDocumentSplitter(input)
	printedLast := false
	for splitter.Advance() {
		// print a newline between regular output lines
		if printedLast {
			writeOrExit(stdout, "\n")
		}
		printedLast = false

		err := converter.DocumentToWriter(splitter.Document(), stdout)
		var printerError *yaml2json.PrinterError
		switch {
		case err == nil:
			printedLast = true
		case errors.Is(err, syscall.EPIPE):
			// stdout is a pipe and something closed it (e.g. 'head'
			// or 'less').  In this case we don't want to complain.
			os.Exit(0)
		case errors.As(err, &printerError):
			// Some other failure to write to stdout: this program's
			// entire purpose is to write data there, so just leave
			// with an error code.
			os.Exit(1)
		default:
			errPrinter.Print(err)
		}
		stdout.Flush()
	}
	if splitter.Err() != nil {
		exit(1)
	}
	if printedLast {
		// Add final newline
		writeOrExit(stdout, "\n")
	}
}

// exit flushes any buffered output before leaving.
func exit(code int) {
	if stdout != nil {
		stdout.Flush()
	}
	os.Exit(code)
}

func writeOrExit(w io.Writer, s string) {
	if _, err := io.WriteString(w, s); err != nil {
		os.Exit(1)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow = []byte("\033[33m")
	Green  = []byte("\033[32m")
	White  = []byte("\033[37m")

	DimWhite = []byte("\033[37;2m")

	BrightBlue = []byte("\033[34;1m")
)

// The colors used when stdout is a terminal: keys in bright blue, then one
// color per scalar kind (null, boolean, number, string).
var defaultColorizer = yaml2json.Colorizer{
	ScalarColorCodes: [4][]byte{DimWhite, Yellow, White, Green},
	KeyColorCode:     BrightBlue,
	ResetCode:        Reset,
}
