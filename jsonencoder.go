package yaml2json

import (
	"encoding/json"
	"fmt"
	"sort"
)

// A JSONEncoder writes a decoded YAML value as JSON text, using the given
// Printer instance for formatting and the Colorizer (which may be nil) for
// coloring scalars.
//
// Object keys are sorted, which makes the output deterministic regardless
// of the map iteration order of the decoded value.
type JSONEncoder struct {
	Printer
	*Colorizer

	// Compact removes the spaces that normally follow key and item
	// separators.  It should be set when the Printer puts all output on a
	// single line.
	Compact bool
}

// Encode writes the JSON encoding of value using the instance's Printer.
//
// An error can be returned if the value contains something not
// representable in JSON (e.g. a NaN float or a mapping with non-string
// keys), or if the Printer could not perform some writing operation.  A
// typical example of the latter is an attempt to write to a closed pipe.
func (sw *JSONEncoder) Encode(value any) (err error) {
	defer CatchPrinterError(&err)
	defer catchEncodeError(&err)
	sw.writeValue(value)
	return nil
}

func (sw *JSONEncoder) writeValue(value any) {
	switch v := value.(type) {
	case map[string]any:
		sw.writeObject(v)
	case map[any]any:
		panic(&encodeError{fmt.Errorf("cannot encode mapping with non-string keys")})
	case []any:
		sw.writeArray(v)
	default:
		sw.Colorizer.PrintScalar(sw.Printer, scalarKind(v), sw.scalarBytes(v))
	}
}

func (sw *JSONEncoder) writeObject(obj map[string]any) {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sw.PrintBytes(openObjectBytes)
	firstItem := true
	for _, key := range keys {
		if !firstItem {
			sw.PrintBytes(itemSeparatorBytes)
			sw.NewLine()
		} else {
			sw.Indent()
			firstItem = false
		}
		sw.Colorizer.PrintKey(sw.Printer, sw.scalarBytes(key))
		sw.PrintBytes(sw.keyValueSeparator())
		sw.writeValue(obj[key])
	}
	if !firstItem {
		sw.Dedent()
	}
	sw.PrintBytes(closeObjectBytes)
}

func (sw *JSONEncoder) writeArray(arr []any) {
	sw.PrintBytes(openArrayBytes)
	firstItem := true
	for _, value := range arr {
		if !firstItem {
			sw.PrintBytes(itemSeparatorBytes)
			sw.NewLine()
		} else {
			sw.Indent()
			firstItem = false
		}
		sw.writeValue(value)
	}
	if !firstItem {
		sw.Dedent()
	}
	sw.PrintBytes(closeArrayBytes)
}

// scalarBytes returns the literal JSON representation of a scalar value.
// The standard library encoder takes care of string escaping and number
// formatting, and rejects values JSON cannot represent.
func (sw *JSONEncoder) scalarBytes(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(&encodeError{fmt.Errorf("encoding JSON value: %w", err)})
	}
	return b
}

func (sw *JSONEncoder) keyValueSeparator() []byte {
	if sw.Compact {
		return compactKeyValueSeparatorBytes
	}
	return keyValueSeparatorBytes
}

func scalarKind(v any) ScalarKind {
	switch v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Number
	default:
		// Anything else is rendered as a JSON string (e.g. YAML
		// timestamps decoded to time.Time).
		return String
	}
}

type encodeError struct {
	err error
}

func catchEncodeError(err *error) {
	if r := recover(); r != nil {
		eerr, ok := r.(*encodeError)
		if ok {
			*err = eerr.err
		} else {
			panic(r)
		}
	}
}

var (
	openObjectBytes               = []byte("{")
	closeObjectBytes              = []byte("}")
	openArrayBytes                = []byte("[")
	closeArrayBytes               = []byte("]")
	itemSeparatorBytes            = []byte(",")
	keyValueSeparatorBytes        = []byte(": ")
	compactKeyValueSeparatorBytes = []byte(":")
)
