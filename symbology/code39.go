package symbology

import (
	"strings"

	"github.com/barcodeforge/symcode/geometry"
)

// code39Patterns maps each Code 39 character to its 9-element bar/space
// pattern (5 bars, 4 spaces, alternating starting with a bar), 'N' for a
// narrow element and 'W' for a wide one. This is the published ISO/IEC
// 16388 reference table; '*' is the reserved start/stop character and is
// never accepted as payload input.
var code39Patterns = map[byte]string{
	'0': "NNNWWNWNN", '1': "WNNWNNNNW", '2': "NNWWNNNNW", '3': "WNWWNNNNN",
	'4': "NNNWWNNNW", '5': "WNNWWNNNN", '6': "NNWWWNNNN", '7': "NNNWNNWNW",
	'8': "WNNWNNWNN", '9': "NNWWNNWNN",
	'A': "WNNNNWNNW", 'B': "NNWNNWNNW", 'C': "WNWNNWNNN", 'D': "NNNNWWNNW",
	'E': "WNNNWWNNN", 'F': "NNWNWWNNN", 'G': "NNNNNWWNW", 'H': "WNNNNWWNN",
	'I': "NNWNNWWNN", 'J': "NNNNWWWNN", 'K': "WNNNNNNWW", 'L': "NNWNNNNWW",
	'M': "WNWNNNNWN", 'N': "NNNNWNNWW", 'O': "WNNNWNNWN", 'P': "NNWNWNNWN",
	'Q': "NNNNNNWWW", 'R': "WNNNNNWWN", 'S': "NNWNNNWWN", 'T': "NNNNNWWWN",
	'U': "WWNNNNNNW", 'V': "NWWNNNNNW", 'W': "WWWNNNNNN", 'X': "NWNNWNNNW",
	'Y': "WWNNWNNNN", 'Z': "NWWNWNNNN",
	'-': "NWNNNNWNW", '.': "WWNNNNWNN", ' ': "NWWNNNWNN", '$': "NWNWNWNNN",
	'/': "NWNWNNNWN", '+': "NWNNNWNWN", '%': "NNNWNWNWN",
	'*': "NWNNWNWNN",
}

// code39WideRatio is the width, in narrow-element units, of a wide element.
const code39WideRatio = 3

// code39InterCharGap is the narrow-element width of the gap between
// characters.
const code39InterCharGap = 1

type code39Symbology struct{}

func (code39Symbology) Name() string   { return Code39.String() }
func (code39Symbology) MinLength() int { return 1 }
func (code39Symbology) MaxLength() int { return 80 }

func (code39Symbology) IsAcceptedByte(b byte) bool {
	_, ok := code39Patterns[b]
	return ok && b != '*'
}

// Render brackets data with the start/stop '*' character and lays out a
// left-to-right sequence of Bar elements, one per pattern element, with
// wide elements code39WideRatio times a narrow element's width. An optional
// human-readable Text caption is appended below the bars when
// params.DrawText is set.
func (code39Symbology) Render(data []byte, params RenderParams) ([]geometry.BarcodeElement, error) {
	chars := append([]byte{'*'}, data...)
	chars = append(chars, '*')

	totalUnits := 0
	for i, c := range chars {
		for _, e := range code39Patterns[c] {
			if e == 'W' {
				totalUnits += code39WideRatio
			} else {
				totalUnits++
			}
		}
		if i != len(chars)-1 {
			totalUnits += code39InterCharGap
		}
	}

	width, height := params.Width, params.Height
	if width <= 0 {
		width = float64(totalUnits)
	}
	if height <= 0 {
		height = 1
	}
	barHeight := height
	if params.DrawText {
		barHeight = height - params.FontHeight - params.TextPadding
		if barHeight <= 0 {
			barHeight = height
		}
	}
	unitWidth := width / float64(totalUnits)

	var elems []geometry.BarcodeElement
	left := 0.0
	for i, c := range chars {
		pattern := code39Patterns[c]
		for j, e := range pattern {
			w := unitWidth
			if e == 'W' {
				w = unitWidth * code39WideRatio
			}
			elems = append(elems, geometry.Bar{
				Left:   left,
				Top:    0,
				Width:  w,
				Height: barHeight,
				Filled: j%2 == 0, // elements alternate starting with a bar
			})
			left += w
		}
		if i != len(chars)-1 {
			left += unitWidth * code39InterCharGap
		}
	}

	if params.DrawText {
		elems = append(elems, geometry.Text{
			Left:   0,
			Top:    barHeight + params.TextPadding,
			Width:  width,
			Height: params.FontHeight,
			Value:  "*" + strings.ToUpper(string(data)) + "*",
			Align:  geometry.AlignCenter,
		})
	}

	return elems, nil
}
