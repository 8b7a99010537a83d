package segment

import "github.com/barcodeforge/symcode/qrtables"

// Mode tags how a DataSegment's bits are to be interpreted.
type Mode int

const (
	// Numeric segments hold digits 0-9 only.
	Numeric Mode = iota
	// AlphaNumeric segments hold 0-9, A-Z, space, and $%*+-./:.
	AlphaNumeric
	// Byte8Bit segments hold arbitrary bytes.
	Byte8Bit
	// Kanji segments hold 13-bit-packed double-byte units.
	Kanji
	// ECI segments carry an Extended Channel Interpretation designator
	// rather than character data; they have no character-count field (see
	// CharCountBits) and are not part of the four-mode version-capacity
	// switch the other modes use.
	ECI
)

// Indicator returns the 4-bit mode indicator written ahead of every segment.
func (m Mode) Indicator() uint32 {
	switch m {
	case Numeric:
		return 0x1
	case AlphaNumeric:
		return 0x2
	case Byte8Bit:
		return 0x4
	case Kanji:
		return 0x8
	case ECI:
		return 0x7
	default:
		panic("segment: unknown mode")
	}
}

func (m Mode) tableOrdinal() qrtables.ModeOrdinal {
	switch m {
	case Numeric:
		return qrtables.ModeNumeric
	case AlphaNumeric:
		return qrtables.ModeAlphaNumeric
	case Byte8Bit:
		return qrtables.ModeByte8Bit
	case Kanji:
		return qrtables.ModeKanji
	default:
		panic("segment: unknown mode")
	}
}

// CharCountBits returns the character-count-indicator width, in bits, for
// this mode at the given QR Code version. ECI segments carry no
// character-count field: the width is always 0.
func (m Mode) CharCountBits(v qrtables.Version) int {
	if m == ECI {
		return 0
	}
	return qrtables.CharCountBits(m.tableOrdinal(), v)
}

// String returns a short display name for the mode.
func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case AlphaNumeric:
		return "AlphaNumeric"
	case Byte8Bit:
		return "Byte8Bit"
	case Kanji:
		return "Kanji"
	case ECI:
		return "ECI"
	default:
		return "Unknown"
	}
}
