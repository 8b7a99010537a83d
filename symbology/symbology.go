// Package symbology is the closed registry of barcode families the engine
// knows about. Every Tag exposes the shared validate/render contract
// spec.md §4.8 calls for; every tag other than QR and Code39 is a named
// external collaborator whose encoding tables are out of scope for this
// engine and whose render returns barcodeerr.ErrSymbologyNotImplemented.
package symbology

import (
	"github.com/barcodeforge/symcode/barcodeerr"
	"github.com/barcodeforge/symcode/geometry"
	"github.com/barcodeforge/symcode/qrtables"
	"github.com/barcodeforge/symcode/vectorsvg"
)

// Tag identifies one member of the closed symbology enumeration.
type Tag int

const (
	QR Tag = iota
	Code128
	Code39
	Code93
	EAN13
	EAN8
	EAN5
	EAN2
	ISBN
	UPCA
	UPCE
	ITF
	ITF14
	ITF16
	Codabar
	Telepen
	PDF417
	DataMatrix
	Aztec
	RM4SCC
)

var names = map[Tag]string{
	QR:         "QR",
	Code128:    "Code128",
	Code39:     "Code39",
	Code93:     "Code93",
	EAN13:      "EAN-13",
	EAN8:       "EAN-8",
	EAN5:       "EAN-5",
	EAN2:       "EAN-2",
	ISBN:       "ISBN",
	UPCA:       "UPC-A",
	UPCE:       "UPC-E",
	ITF:        "ITF",
	ITF14:      "ITF-14",
	ITF16:      "ITF-16",
	Codabar:    "Codabar",
	Telepen:    "Telepen",
	PDF417:     "PDF417",
	DataMatrix: "DataMatrix",
	Aztec:      "Aztec",
	RM4SCC:     "RM4SCC",
}

// String returns the symbology's display name.
func (t Tag) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "Unknown"
}

// RenderParams bundles the optional layout knobs render() accepts. Zero
// values mean "omit" (no text band, use the symbology's natural module
// sizing for width/height).
type RenderParams struct {
	Width, Height float64
	DrawText      bool
	FontHeight    float64
	TextPadding   float64
	// ECLevel is honored only by the QR symbology; other symbologies ignore
	// it. The zero value is qrtables.L.
	ECLevel qrtables.ECLevel
}

// Symbology is the shared contract every registered Tag satisfies.
type Symbology interface {
	Name() string
	MinLength() int
	MaxLength() int
	// IsAcceptedByte reports whether b is a legal input byte.
	IsAcceptedByte(b byte) bool
	// Render produces the geometry stream for data, already validated.
	Render(data []byte, params RenderParams) ([]geometry.BarcodeElement, error)
}

// ParseTag looks up a Tag by its display name (case-sensitive, matching
// String()), for CLI and config-file callers that name a symbology as text.
func ParseTag(name string) (Tag, bool) {
	for t, n := range names {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Of returns the Symbology implementation for tag. Panics on an unknown tag
// (a programmer error, per barcodeerr.ErrInvalidArgument's scope).
func Of(tag Tag) Symbology {
	switch tag {
	case QR:
		return qrSymbology{}
	case Code39:
		return code39Symbology{}
	default:
		if params, ok := stubParams[tag]; ok {
			return unimplementedSymbology{tag: tag, params: params}
		}
		panic("symbology: unknown tag")
	}
}

// Validate checks data's length and byte content against sym's bounds,
// returning a barcodeerr.InvalidLength or barcodeerr.InvalidCharacter on
// failure.
func Validate(sym Symbology, data []byte) error {
	if len(data) < sym.MinLength() || len(data) > sym.MaxLength() {
		return barcodeerr.NewInvalidLength(len(data), sym.MinLength(), sym.MaxLength(), sym.Name())
	}
	for _, b := range data {
		if !sym.IsAcceptedByte(b) {
			return barcodeerr.NewInvalidCharacter(b, sym.Name())
		}
	}
	return nil
}

// IsValid is the non-throwing variant of Validate.
func IsValid(sym Symbology, data []byte) bool {
	return Validate(sym, data) == nil
}

// SVGParams bundles to_svg's layout and document knobs, per spec.md §6's
// symbology.to_svg(bytes, x, y, width, height, draw_text?, font_family?,
// font_height?, text_padding?, color, full_svg?, baseline?) external
// interface.
type SVGParams struct {
	X, Y          float64
	Width, Height float64
	DrawText      bool
	FontFamily    string
	FontHeight    float64
	TextPadding   float64
	Color         uint32
	FullSVG       bool
	Baseline      float64
	ECLevel       qrtables.ECLevel
}

// ToSVG validates data against sym, renders it, and serializes the result as
// an SVG document (or fragment, if !params.FullSVG): the single call spec.md
// §6 names as the symbology package's top-level convenience entry point,
// composing Validate, Symbology.Render, and vectorsvg.Render so callers don't
// have to wire the three together themselves. A zero Width or Height uses
// the rendered geometry's own bounding box, matching each Render
// implementation's "natural size" convention.
func ToSVG(sym Symbology, data []byte, params SVGParams) (string, error) {
	if err := Validate(sym, data); err != nil {
		return "", err
	}
	elems, err := sym.Render(data, RenderParams{
		Width:       params.Width,
		Height:      params.Height,
		DrawText:    params.DrawText,
		FontHeight:  params.FontHeight,
		TextPadding: params.TextPadding,
		ECLevel:     params.ECLevel,
	})
	if err != nil {
		return "", err
	}

	width, height := params.Width, params.Height
	if width <= 0 || height <= 0 {
		naturalW, naturalH := elementBounds(elems)
		if width <= 0 {
			width = naturalW
		}
		if height <= 0 {
			height = naturalH
		}
	}

	return vectorsvg.Render(elems, vectorsvg.Options{
		X:          params.X,
		Y:          params.Y,
		FullSVG:    params.FullSVG,
		Width:      width,
		Height:     height,
		Color:      params.Color,
		Baseline:   params.Baseline,
		FontFamily: params.FontFamily,
	}), nil
}

// elementBounds returns the smallest width/height that encloses every
// emitted element, for ToSVG callers that left Width/Height at 0.
func elementBounds(elems []geometry.BarcodeElement) (width, height float64) {
	for _, el := range elems {
		var right, bottom float64
		switch e := el.(type) {
		case geometry.Bar:
			right, bottom = e.Left+e.Width, e.Top+e.Height
		case geometry.Text:
			right, bottom = e.Left+e.Width, e.Top+e.Height
		default:
			continue
		}
		if right > width {
			width = right
		}
		if bottom > height {
			height = bottom
		}
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return width, height
}

// stubBounds describes the validation contract of a symbology this engine
// does not carry render tables for: real-world length bounds and an
// accepted-codepoints predicate, sourced from each format's public
// specification, so validate()/is_valid() behave correctly even though
// Render is not implemented.
type stubBounds struct {
	min, max int
	accept   func(b byte) bool
}

func digitsOnly(b byte) bool { return b >= '0' && b <= '9' }

func codabarChars(b byte) bool {
	return digitsOnly(b) || (b >= 'A' && b <= 'D') || strchr("-$:/.+", b)
}

func strchr(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

func printableASCII(b byte) bool { return b >= 0x20 && b < 0x7F }

var stubParams = map[Tag]stubBounds{
	Code128:    {1, 80, printableASCII},
	Code93:     {1, 80, printableASCII},
	EAN13:      {12, 13, digitsOnly},
	EAN8:       {7, 8, digitsOnly},
	EAN5:       {5, 5, digitsOnly},
	EAN2:       {2, 2, digitsOnly},
	ISBN:       {10, 13, digitsOnly},
	UPCA:       {11, 12, digitsOnly},
	UPCE:       {6, 8, digitsOnly},
	ITF:        {2, 80, digitsOnly},
	ITF14:      {13, 14, digitsOnly},
	ITF16:      {15, 16, digitsOnly},
	Codabar:    {1, 80, codabarChars},
	Telepen:    {1, 80, printableASCII},
	PDF417:     {1, 2710, func(byte) bool { return true }},
	DataMatrix: {1, 3116, func(byte) bool { return true }},
	Aztec:      {1, 3832, func(byte) bool { return true }},
	RM4SCC:     {1, 50, func(b byte) bool { return digitsOnly(b) || (b >= 'A' && b <= 'Z') }},
}

// unimplementedSymbology is the stub used for every tag outside the
// external-collaborator boundary spec.md §1 draws: validation still works
// against each format's real bounds, but Render reports
// barcodeerr.ErrSymbologyNotImplemented since this engine carries no
// encoding tables for it.
type unimplementedSymbology struct {
	tag    Tag
	params stubBounds
}

func (s unimplementedSymbology) Name() string   { return s.tag.String() }
func (s unimplementedSymbology) MinLength() int { return s.params.min }
func (s unimplementedSymbology) MaxLength() int { return s.params.max }
func (s unimplementedSymbology) IsAcceptedByte(b byte) bool { return s.params.accept(b) }
func (s unimplementedSymbology) Render(data []byte, params RenderParams) ([]geometry.BarcodeElement, error) {
	return nil, barcodeerr.NewSymbologyNotImplemented(s.tag.String())
}
