package yaml2json

import (
	"math"
	"strings"
	"testing"
)

var testColorizer = Colorizer{
	ScalarColorCodes: [4][]byte{
		[]byte("<null>"),
		[]byte("<bool>"),
		[]byte("<num>"),
		[]byte("<str>"),
	},
	KeyColorCode: []byte("<key>"),
	ResetCode:    []byte("<reset>"),
}

func encodeToString(t *testing.T, value any, colorizer *Colorizer) string {
	t.Helper()
	var sb strings.Builder
	encoder := &JSONEncoder{
		Printer:   &DefaultPrinter{Writer: &sb, IndentSize: -1},
		Colorizer: colorizer,
		Compact:   true,
	}
	if err := encoder.Encode(value); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return sb.String()
}

func TestJSONEncoderColors(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{
			name:  "object with scalar kinds",
			value: map[string]any{"a": true, "b": nil},
			want:  `{<key>"a"<reset>:<bool>true<reset>,<key>"b"<reset>:<null>null<reset>}`,
		},
		{
			name:  "array",
			value: []any{int64(1), "x"},
			want:  `[<num>1<reset>,<str>"x"<reset>]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeToString(t, tt.value, &testColorizer); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONEncoderNilColorizer(t *testing.T) {
	got := encodeToString(t, map[string]any{"a": []any{false}}, nil)
	if want := `{"a":[false]}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONEncoderUnrepresentableValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "NaN", value: math.NaN()},
		{name: "non-string mapping keys", value: map[any]any{1: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			encoder := &JSONEncoder{
				Printer: &DefaultPrinter{Writer: &sb, IndentSize: -1},
				Compact: true,
			}
			if err := encoder.Encode(tt.value); err == nil {
				t.Fatalf("expected an error, got output %q", sb.String())
			}
		})
	}
}
