package yaml2json

// ScalarKind classifies a JSON scalar value for colorizing purposes.
type ScalarKind uint8

const (
	Null    ScalarKind = iota // JSON null
	Boolean                   // a JSON boolean
	Number                    // a JSON number
	String                    // a JSON string
)

// A Colorizer holds the ANSI color codes used when printing JSON output.
// A nil *Colorizer is valid and prints without any color codes, so the
// encoder doesn't have to special-case uncolored output.
type Colorizer struct {
	KeyColorCode     []byte
	ScalarColorCodes [4][]byte
	ResetCode        []byte
}

// PrintScalar prints the literal JSON representation of a scalar value,
// wrapped in the color codes for its kind.
func (c *Colorizer) PrintScalar(p Printer, kind ScalarKind, literal []byte) {
	if c != nil {
		p.PrintBytes(c.ScalarColorCodes[kind])
	}
	p.PrintBytes(literal)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}

// PrintKey prints the literal JSON representation of an object key, wrapped
// in the key color codes.
func (c *Colorizer) PrintKey(p Printer, literal []byte) {
	if c != nil {
		p.PrintBytes(c.KeyColorCode)
	}
	p.PrintBytes(literal)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}
