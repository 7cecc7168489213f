// Package split cuts a stream of concatenated YAML documents into the
// individual documents it is made of.
package split

import (
	"bufio"
	"io"
	"strings"

	"github.com/arnodel/yaml2json/internal/debug"
)

// A DocumentSplitter reads YAML input and produces the individual documents
// it contains, one at a time.  For example, the following input contains two
// separate documents:
//
//	hello: world
//	---
//	hello: go
//
// The first document produced will be:
//
//	hello: world
//
// The second one will be (the directives end marker "---" is considered part
// of the document):
//
//	---
//	hello: go
//
// Each document is the verbatim text of the input it was cut from, so it is
// suitable for passing to a YAML parser that only accepts one document at a
// time.  Directives, header comments and document end markers are handled,
// so e.g. a %YAML directive ends up in the document it belongs to.
//
// Documents are found by looking at the start of each line: a line whose
// first three bytes are "---" or "..." counts as a marker even if more
// content follows on the same line.  This is a little more lenient than the
// YAML spec, which requires the marker to be followed by a space or the end
// of the line.
//
// A DocumentSplitter is a single-use forward iterator in the usual style:
//
//	splitter := split.NewDocumentSplitter(input)
//	for splitter.Advance() {
//	    doSomethingWith(splitter.Document())
//	}
//	if err := splitter.Err(); err != nil {
//	    // the input failed, the documents seen so far are still valid
//	}
type DocumentSplitter struct {
	reader *bufio.Reader

	// Whether it is known yet if the current position is in a directives
	// header or in document content.  This is only unknown at the very
	// start of the input: a document end marker tells us the next
	// document may open with a header, and a "---" boundary line tells
	// us it doesn't.
	disambiguated bool

	// Whether the current position is inside a directives header, i.e. a
	// "---" line ends the header of the current document rather than
	// starting a new one.
	inHeader bool

	// A line already read from the reader but belonging to the next
	// document (a "---" boundary line).  It is consumed at the start of
	// the next Advance call.
	pendingLine string
	hasPending  bool

	document string
	err      error
	done     bool
}

// NewDocumentSplitter returns a DocumentSplitter cutting up the contents of
// the given reader.  The reader is buffered internally and must not be read
// from elsewhere while the splitter is in use.
func NewDocumentSplitter(r io.Reader) *DocumentSplitter {
	return &DocumentSplitter{reader: bufio.NewReader(r)}
}

// Advance reads input until the next document has been recognized, returning
// true if there is one.  It returns false when the input is exhausted or
// failed, and keeps returning false from then on.
func (s *DocumentSplitter) Advance() bool {
	if s.done {
		return false
	}
	document, ok, err := s.next()
	if err != nil {
		s.err = err
		s.done = true
		return false
	}
	if !ok {
		s.done = true
		return false
	}
	s.document = document
	return true
}

// Document returns the document found by the last successful call to
// Advance.  Its text is exactly as it appeared in the input, each line
// including its trailing newline except possibly the last line of the
// input.
func (s *DocumentSplitter) Document() string {
	return s.document
}

// Err returns the error that stopped iteration, or nil if the input simply
// ran out.  It is only meaningful after Advance has returned false.
func (s *DocumentSplitter) Err() error {
	return s.err
}

// next assembles the next document.  It returns ok == false when the
// remaining input contains no further document.
func (s *DocumentSplitter) next() (document string, ok bool, err error) {
	var buf strings.Builder
	if s.hasPending {
		buf.WriteString(s.pendingLine)
		s.pendingLine = ""
		s.hasPending = false
	}

	// First, disambiguate between a bare document and a directive at the
	// top of the input (before any "---" marker has been seen).  To do
	// this, look for the first non-whitespace character at the start of a
	// line:
	//
	// - '#' means the line is a comment, which tells us nothing
	// - '%' means the line is a directive, so we are in a header ('%' is
	//   not a valid character at the start of a content line before a
	//   "---" is seen)
	// - anything else means we are looking at a bare document's content
	//
	// The lines scanned here accumulate into buf, which the boundary scan
	// below keeps adding to.
	for !s.disambiguated {
		line, err := s.readLine()
		if err == io.EOF {
			// EOF and it's still not clear: the input contained
			// only whitespace and comments, or nothing at all.
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		for _, c := range line {
			if c == ' ' || c == '\t' || c == '\r' {
				continue
			}
			if c != '#' && c != '\n' {
				s.disambiguated = true
				s.inHeader = c == '%'
				debug.Printf("split: disambiguated, inHeader=%v", s.inHeader)
			}
			break
		}
		buf.WriteString(line)
	}

	// Now that it is known whether we start off in a header or in document
	// content, scan for the start and end of documents.
	for {
		line, err := s.readLine()
		hitEOF := err == io.EOF
		if err != nil && !hitEOF {
			return "", false, err
		}

		// Nothing accumulated and nothing left to read.
		if hitEOF && buf.Len() == 0 {
			return "", false, nil
		}

		endOfDocument := strings.HasPrefix(line, "...")
		directivesEnd := strings.HasPrefix(line, "---")

		switch {
		case directivesEnd && !s.inHeader:
			// A new document has started already.  To not lose the
			// current line, it is carried over to the next call.
			s.pendingLine = line
			s.hasPending = true
			debug.Printf("split: boundary line, document of %d bytes", buf.Len())
			return buf.String(), true, nil
		case endOfDocument:
			// This document has ended and the marker line is not
			// part of any document.  What follows may be a header,
			// or another "---".
			s.inHeader = true
			debug.Printf("split: end marker, document of %d bytes", buf.Len())
			return buf.String(), true, nil
		case hitEOF:
			// This document has ended and nothing will follow.
			return buf.String(), true, nil
		case directivesEnd:
			// The header of the current document is over.
			s.inHeader = false
		}

		buf.WriteString(line)
	}
}

// readLine returns the next line of input, including its trailing newline.
// The final line of the input may lack the newline; it is returned as-is,
// and the subsequent call reports io.EOF.
func (s *DocumentSplitter) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		return line, nil
	}
	return line, err
}
