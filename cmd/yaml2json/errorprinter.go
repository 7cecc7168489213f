package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ErrorStyle selects how conversion errors are reported.
type ErrorStyle int

const (
	// ErrorStyleSilent drops errors.
	ErrorStyleSilent ErrorStyle = iota
	// ErrorStyleStderr writes errors to stderr.
	ErrorStyleStderr
	// ErrorStyleJSON writes errors to stdout as JSON objects of the form
	// {"yaml-error": "..."}, so the output stream stays valid JSON when
	// piped into another tool.
	ErrorStyleJSON
)

func parseErrorStyle(s string) (ErrorStyle, error) {
	switch s {
	case "silent":
		return ErrorStyleSilent, nil
	case "stderr":
		return ErrorStyleStderr, nil
	case "json":
		return ErrorStyleJSON, nil
	}
	return 0, fmt.Errorf("invalid error reporting mode %q (want silent, stderr or json)", s)
}

// An ErrorPrinter reports errors in the configured style.  In json mode the
// pretty flag selects multi-line output, mirroring the main JSON output.
type ErrorPrinter struct {
	style    ErrorStyle
	pretty   bool
	errColor *color.Color
}

func newErrorPrinter(style ErrorStyle, pretty bool) *ErrorPrinter {
	return &ErrorPrinter{
		style:    style,
		pretty:   pretty,
		errColor: color.New(color.FgRed),
	}
}

// Print reports the given message or error.  Failing to report it is dealt
// with like any other output failure: there is no point carrying on, so the
// program exits with an error code.
func (p *ErrorPrinter) Print(v interface{}) {
	switch p.style {
	case ErrorStyleSilent:
	case ErrorStyleStderr:
		if _, err := p.errColor.Fprintln(os.Stderr, v); err != nil {
			os.Exit(1)
		}
	case ErrorStyleJSON:
		var s string
		if p.pretty {
			s = fmt.Sprintf("{\n  \"yaml-error\": \"%v\"\n}\n", v)
		} else {
			s = fmt.Sprintf("{\"yaml-error\":\"%v\"}\n", v)
		}
		writeOrExit(stdout, s)
	}
}
