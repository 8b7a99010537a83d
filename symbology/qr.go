package symbology

import (
	"github.com/barcodeforge/symcode/geometry"
	"github.com/barcodeforge/symcode/qrencoder"
)

// qrSymbology renders QR Code Model 2 symbols, delegating the entire
// encoding pipeline to package qrencoder. Its render walks the module grid
// and yields one Bar per filled module, per spec.md §4.9.
type qrSymbology struct{}

func (qrSymbology) Name() string { return QR.String() }

// MaxLength is 2953, the byte-mode capacity of a version-40 symbol at level
// L. At stronger levels a shorter payload can already be too long; then
// qrencoder.Build reports barcodeerr.ErrInputTooLong because no version fits.
func (qrSymbology) MinLength() int { return 0 }
func (qrSymbology) MaxLength() int { return 2953 }

func (qrSymbology) IsAcceptedByte(b byte) bool { return true }

// Render encodes data as a QR Code at params.ECLevel (boosted when free)
// and emits one Bar per dark module, sized to fit params.Width x
// params.Height (module width = usable size / module count, per spec.md
// §4.9).
func (qrSymbology) Render(data []byte, params RenderParams) ([]geometry.BarcodeElement, error) {
	q, err := qrencoder.EncodeBinary(data, params.ECLevel)
	if err != nil {
		return nil, err
	}

	width, height := params.Width, params.Height
	if width <= 0 {
		width = float64(q.Size())
	}
	if height <= 0 {
		height = float64(q.Size())
	}
	moduleW := width / float64(q.Size())
	moduleH := height / float64(q.Size())

	var elems []geometry.BarcodeElement
	for y := 0; y < q.Size(); y++ {
		for x := 0; x < q.Size(); x++ {
			if !q.GetModule(x, y) {
				continue
			}
			elems = append(elems, geometry.Bar{
				Left:   float64(x) * moduleW,
				Top:    float64(y) * moduleH,
				Width:  moduleW,
				Height: moduleH,
				Filled: q.GetModule(x, y),
			})
		}
	}
	return elems, nil
}
