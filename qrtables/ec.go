package qrtables

// ECLevel is the error correction level of a QR Code symbol: one of four
// ordinal values, each tolerating a different fraction of erroneous
// codewords.
type ECLevel int

const (
	// L tolerates about 7% erroneous codewords.
	L ECLevel = iota
	// M tolerates about 15% erroneous codewords.
	M
	// Q tolerates about 25% erroneous codewords.
	Q
	// H tolerates about 30% erroneous codewords.
	H
)

// Ordinal returns the table index for this level, in [0,3], matching the
// {L,M,Q,H} -> {0,1,2,3} mapping used throughout the reference tables.
func (e ECLevel) Ordinal() int {
	switch e {
	case L, M, Q, H:
		return int(e)
	default:
		panic("qrtables: unknown error correction level")
	}
}

// FormatBits returns the 2-bit pattern used in the format information
// region. Note this differs from Ordinal: the wire encoding is
// L=01, M=00, Q=11, H=10.
func (e ECLevel) FormatBits() uint8 {
	switch e {
	case L:
		return 1
	case M:
		return 0
	case Q:
		return 3
	case H:
		return 2
	default:
		panic("qrtables: unknown error correction level")
	}
}

// String returns the single-letter name of this level.
func (e ECLevel) String() string {
	switch e {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "?"
	}
}

// ParseECLevel parses a single-letter level name (as produced by String),
// for CLI and config-file callers that name a level as text.
func ParseECLevel(s string) (ECLevel, bool) {
	switch s {
	case "L":
		return L, true
	case "M":
		return M, true
	case "Q":
		return Q, true
	case "H":
		return H, true
	default:
		return 0, false
	}
}
