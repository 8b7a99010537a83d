// Package vectorsvg serializes a geometry.BarcodeElement stream into an SVG
// document, grounded on nayuki/qrcodegen's examples/demo.go toSvgString and
// generalized to the full geometry stream (bars and text, any symbology).
package vectorsvg

import (
	"fmt"
	"strings"

	"github.com/barcodeforge/symcode/geometry"
)

// defaultBaseline is the fraction of a Text element's height used to
// position its baseline when Options.Baseline is left at its zero value.
const defaultBaseline = 0.75

// Options configures serialization.
type Options struct {
	// X, Y offset the whole drawing within the document.
	X, Y float64
	// FullSVG wraps the path/text content in a root <svg> element with a
	// viewBox sized to Width x Height. If false, only the inner content
	// (path and text elements) is emitted.
	FullSVG       bool
	Width, Height float64
	// Color is the fill color for dark bars and text, as 0xRRGGBB; only its
	// low 24 bits are used.
	Color uint32
	// Baseline is the fraction of a Text element's height added to its Top
	// to place the text baseline. Zero means defaultBaseline (0.75).
	Baseline float64
	// FontFamily, if non-empty, is emitted as the font-family attribute on
	// text elements.
	FontFamily string
}

func (o Options) baseline() float64 {
	if o.Baseline == 0 {
		return defaultBaseline
	}
	return o.Baseline
}

func (o Options) hexColor() string {
	return fmt.Sprintf("#%06X", o.Color&0xFFFFFF)
}

// Render serializes elems into an SVG document (or fragment, if
// !opts.FullSVG) per the rules: all filled bars become one concatenated
// path, text elements become anchored <text> spans, coordinates use 5
// fractional digits.
func Render(elems []geometry.BarcodeElement, opts Options) string {
	var path strings.Builder
	var texts []geometry.Text

	first := true
	for _, el := range elems {
		switch e := el.(type) {
		case geometry.Bar:
			if !e.Filled {
				continue
			}
			if !first {
				path.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&path, "M%s,%sh%sv%sh-%sz",
				num(opts.X+e.Left), num(opts.Y+e.Top), num(e.Width), num(e.Height), num(e.Width))
		case geometry.Text:
			texts = append(texts, e)
		}
	}

	var body strings.Builder
	if path.Len() > 0 {
		fmt.Fprintf(&body, "<path d=\"%s\" fill=\"%s\"/>\n", path.String(), opts.hexColor())
	}
	for _, t := range texts {
		x := opts.X + t.Left
		switch t.Align {
		case geometry.AlignCenter:
			x += t.Width / 2
		case geometry.AlignRight:
			x += t.Width
		}
		y := opts.Y + t.Top + t.Height*opts.baseline()
		fontAttr := ""
		if opts.FontFamily != "" {
			fontAttr = fmt.Sprintf(" font-family=\"%s\"", escapeAttr(opts.FontFamily))
		}
		fmt.Fprintf(&body, "<text x=\"%s\" y=\"%s\" text-anchor=\"%s\" font-size=\"%s\"%s fill=\"%s\">%s</text>\n",
			num(x), num(y), t.Align.SVGAnchor(), num(t.Height), fontAttr, opts.hexColor(), escapeText(t.Value))
	}

	if !opts.FullSVG {
		return strings.TrimRight(body.String(), "\n")
	}

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %s %s\" stroke=\"none\">\n",
		num(opts.Width), num(opts.Height))
	sb.WriteString("<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString(body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func num(f float64) string {
	return fmt.Sprintf("%.5f", f)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "\"", "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
