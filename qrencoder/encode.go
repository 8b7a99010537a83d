package qrencoder

import (
	"github.com/barcodeforge/symcode/qrtables"
	"github.com/barcodeforge/symcode/segment"
)

// EncodeText encodes a Unicode string at the given error correction level,
// automatically choosing the smallest version and the most compact segment
// mode for the text (see segment.MakeSegments). The ECC level used may be
// higher than requested, if that costs no extra version.
func EncodeText(text string, ecl qrtables.ECLevel) (*QRCode, error) {
	segs, err := segment.MakeSegments(text)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Build(segs, ecl)
}

// EncodeBinary encodes raw bytes as a single Byte8Bit segment at the given
// error correction level.
func EncodeBinary(data []byte, ecl qrtables.ECLevel) (*QRCode, error) {
	return NewBuilder().Build([]segment.Segment{segment.NewBytes(data)}, ecl)
}
