package yaml2json

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Style defines the JSON output format of a Converter.
type Style int

const (
	// Compact outputs JSON on a single line, e.g.
	//
	//	{"hello":"world","spec":{"items":["a","b"]}}
	Compact Style = iota

	// Pretty outputs JSON on multiple lines, indented by two spaces, e.g.
	//
	//	{
	//	  "hello": "world",
	//	  "spec": {
	//	    "items": [
	//	      "a",
	//	      "b"
	//	    ]
	//	  }
	//	}
	Pretty
)

// A Converter converts individual YAML documents into JSON.  Each instance
// can be configured to have a different style of output.
//
// A Converter expects one document at a time: to process input that may
// contain several concatenated documents, cut it up with a
// split.DocumentSplitter first and feed each document to the converter.
type Converter struct {
	// Colorizer is used to color the JSON output.  Leave it nil for
	// plain output.
	Colorizer *Colorizer

	style Style
}

// NewConverter returns a Converter producing output in the given style.
func NewConverter(style Style) *Converter {
	return &Converter{style: style}
}

// DocumentToString converts a YAML document to a JSON string.
func (c *Converter) DocumentToString(document string) (string, error) {
	var sb strings.Builder
	if err := c.DocumentToWriter(document, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DocumentToWriter converts a YAML document and writes the JSON output to w.
//
// No output at all is written if the document is not valid YAML, as the
// document is decoded in full before encoding starts.  If writing to w
// fails, the error returned wraps the writer's error.
func (c *Converter) DocumentToWriter(document string, w io.Writer) error {
	var value any
	if err := yaml.Unmarshal([]byte(document), &value); err != nil {
		// FormatError keeps the message on one line; the default
		// rendering includes a multi-line source snippet, which the
		// CLI cannot fit in a {"yaml-error": ...} object.
		return fmt.Errorf("converting YAML document: %s", yaml.FormatError(err, false, false))
	}
	encoder := &JSONEncoder{
		Printer:   &DefaultPrinter{Writer: w, IndentSize: c.indentSize()},
		Colorizer: c.Colorizer,
		Compact:   c.style == Compact,
	}
	return encoder.Encode(value)
}

func (c *Converter) indentSize() int {
	if c.style == Compact {
		return -1
	}
	return 2
}
