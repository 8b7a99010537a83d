// Package segment implements the four QR data-segment encodings: Numeric,
// AlphaNumeric, Byte8Bit, and Kanji. Each is an immutable tagged chunk
// carrying a mode, a logical length, and a write-into-bit-buffer contract,
// grounded on nayuki/qrcodegen's qrsegment package and generalized to the
// BitBuffer type in this module.
package segment

import (
	"github.com/barcodeforge/symcode/barcodeerr"
	"github.com/barcodeforge/symcode/bitbuffer"
)

// Segment is an input chunk ready to be written into a QR Code's bit stream.
// Instances are immutable and are consumed once by the encoder.
type Segment struct {
	mode          Mode
	logicalLength int
	payload       bitbuffer.BitBuffer
}

// Mode returns the segment's mode.
func (s Segment) Mode() Mode { return s.mode }

// LogicalLength returns the count of source characters/bytes the segment was
// built from (digits, characters, bytes, or double-byte units, depending on
// mode) — not the same as the encoded bit length.
func (s Segment) LogicalLength() int { return s.logicalLength }

// PayloadBits returns the number of bits Write will append, excluding the
// mode indicator and character-count-indicator header the encoder adds.
func (s Segment) PayloadBits() int { return s.payload.Len() }

// Write appends this segment's bit-encoded payload to buf.
func (s Segment) Write(buf *bitbuffer.BitBuffer) {
	buf.AppendBuffer(&s.payload)
}

// alphanumericCharset assigns each of the 45 legal alphanumeric characters
// its index, per spec.md §4.4.
var alphanumericCharset = map[rune]int{}

func init() {
	const chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
	for i, c := range chars {
		alphanumericCharset[c] = i
	}
}

// NewNumeric builds a Numeric segment from a decimal-digit string. Groups of
// 3 digits are packed as 10 bits, a final pair as 7 bits, a final lone digit
// as 4 bits.
func NewNumeric(digits string) (Segment, error) {
	var payload bitbuffer.BitBuffer
	var accum uint32
	var count int
	for i, c := range digits {
		if c < '0' || c > '9' {
			return Segment{}, barcodeerr.NewInvalidDigits(i, c)
		}
		accum = accum*10 + uint32(c-'0')
		count++
		if count == 3 {
			payload.Put(accum, 10)
			accum, count = 0, 0
		}
	}
	switch count {
	case 1:
		payload.Put(accum, 4)
	case 2:
		payload.Put(accum, 7)
	}
	return Segment{mode: Numeric, logicalLength: len(digits), payload: payload}, nil
}

// NewAlphaNumeric builds an AlphaNumeric segment. Pairs of characters are
// packed as 45*a+b in 11 bits; a final lone character is packed in 6 bits.
func NewAlphaNumeric(text string) (Segment, error) {
	runes := []rune(text)
	var payload bitbuffer.BitBuffer
	var accum uint32
	var count int
	for _, c := range runes {
		idx, ok := alphanumericCharset[c]
		if !ok {
			return Segment{}, barcodeerr.NewInvalidCharacter(byte(c), "qr-alphanumeric-segment")
		}
		accum = accum*45 + uint32(idx)
		count++
		if count == 2 {
			payload.Put(accum, 11)
			accum, count = 0, 0
		}
	}
	if count == 1 {
		payload.Put(accum, 6)
	}
	return Segment{mode: AlphaNumeric, logicalLength: len(runes), payload: payload}, nil
}

// NewBytes builds a Byte8Bit segment from raw bytes, 8 bits each.
func NewBytes(data []byte) Segment {
	var payload bitbuffer.BitBuffer
	for _, b := range data {
		payload.Put(uint32(b), 8)
	}
	return Segment{mode: Byte8Bit, logicalLength: len(data), payload: payload}
}

// NewKanjiFromShiftJIS builds a Kanji segment from pre-derived 13-bit
// double-byte units (the Shift-JIS codepoint with its high byte's 0xC0/0x80
// offset already folded in, as ISO/IEC 18004 defines). Transcoding arbitrary
// text to Shift-JIS is the named extension point that is left to callers —
// transcode first (e.g. with golang.org/x/text/encoding/japanese) and pass
// the resulting 13-bit units here; this function does not vendor a
// transcoder itself.
func NewKanjiFromShiftJIS(units []uint16) Segment {
	var payload bitbuffer.BitBuffer
	for _, u := range units {
		payload.Put(uint32(u), 13)
	}
	return Segment{mode: Kanji, logicalLength: len(units), payload: payload}
}

// NewECI builds an Extended Channel Interpretation designator segment for
// assignVal, the ECI assignment number registered with AIM International.
// Encoded per ISO/IEC 18004 Annex F: values below 2^7 fit in a single
// 8-bit codeword, values below 2^14 are prefixed with "10", and values below
// 1,000,000 are prefixed with "110". Panics if assignVal is out of range:
// an out-of-range ECI designator is a programmer error, not a recoverable
// condition.
func NewECI(assignVal uint32) Segment {
	var payload bitbuffer.BitBuffer
	switch {
	case assignVal < 1<<7:
		payload.Put(assignVal, 8)
	case assignVal < 1<<14:
		payload.Put(2, 2)
		payload.Put(assignVal, 14)
	case assignVal < 1000000:
		payload.Put(6, 3)
		payload.Put(assignVal, 21)
	default:
		panic("segment: ECI assignment value out of range")
	}
	return Segment{mode: ECI, logicalLength: 0, payload: payload}
}

// IsNumeric reports whether every character of text is a decimal digit.
func IsNumeric(text string) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAlphaNumeric reports whether every character of text is in the legal
// alphanumeric charset.
func IsAlphaNumeric(text string) bool {
	for _, c := range text {
		if _, ok := alphanumericCharset[c]; !ok {
			return false
		}
	}
	return true
}

// MakeSegments chooses the most compact single-segment encoding for text:
// Numeric if possible, else AlphaNumeric, else Byte8Bit (UTF-8 bytes).
func MakeSegments(text string) ([]Segment, error) {
	if len(text) == 0 {
		return nil, nil
	}
	var seg Segment
	var err error
	switch {
	case IsNumeric(text):
		seg, err = NewNumeric(text)
	case IsAlphaNumeric(text):
		seg, err = NewAlphaNumeric(text)
	default:
		seg = NewBytes([]byte(text))
	}
	if err != nil {
		return nil, err
	}
	return []Segment{seg}, nil
}
