package vectorsvg

import (
	"strings"
	"testing"

	"github.com/barcodeforge/symcode/geometry"
)

func sampleElements() []geometry.BarcodeElement {
	return []geometry.BarcodeElement{
		geometry.Bar{Left: 0, Top: 0, Width: 1, Height: 1, Filled: true},
		geometry.Bar{Left: 1, Top: 0, Width: 1, Height: 1, Filled: false},
		geometry.Bar{Left: 2, Top: 0, Width: 1, Height: 1, Filled: true},
		geometry.Text{Left: 0, Top: 1, Width: 3, Height: 1, Value: "123", Align: geometry.AlignCenter},
	}
}

// Property 9: identical inputs produce byte-identical SVG output.
func TestSVGPathDeterminism(t *testing.T) {
	opts := Options{FullSVG: true, Width: 10, Height: 10, Color: 0x000000}
	a := Render(sampleElements(), opts)
	b := Render(sampleElements(), opts)
	if a != b {
		t.Fatal("identical inputs produced different SVG output")
	}
}

func TestRenderSkipsUnfilledBars(t *testing.T) {
	out := Render(sampleElements(), Options{Color: 0xFF0000})
	if !strings.Contains(out, "M0.00000,0.00000") {
		t.Errorf("expected first filled bar's path command, got: %s", out)
	}
	if strings.Contains(out, "M1.00000,0.00000") {
		t.Errorf("unfilled bar should not appear in path, got: %s", out)
	}
}

func TestFullSVGWrapsRoot(t *testing.T) {
	out := Render(sampleElements(), Options{FullSVG: true, Width: 3, Height: 2})
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "viewBox=\"0 0 3.00000 2.00000\"") {
		t.Errorf("expected wrapped svg root with viewBox, got: %s", out)
	}
}

func TestFragmentOmitsRoot(t *testing.T) {
	out := Render(sampleElements(), Options{FullSVG: false})
	if strings.Contains(out, "<svg") {
		t.Errorf("fragment mode should omit <svg> root, got: %s", out)
	}
}

func TestColorUsesLow24Bits(t *testing.T) {
	out := Render(sampleElements(), Options{Color: 0xFFFF0000})
	if !strings.Contains(out, "#FF0000") {
		t.Errorf("expected color truncated to low 24 bits (#FF0000), got: %s", out)
	}
}

func TestTextAnchorsMatchAlign(t *testing.T) {
	out := Render([]geometry.BarcodeElement{
		geometry.Text{Left: 0, Top: 0, Width: 1, Height: 1, Value: "x", Align: geometry.AlignLeft},
	}, Options{})
	if !strings.Contains(out, "text-anchor=\"start\"") {
		t.Errorf("expected text-anchor=start, got: %s", out)
	}
}
