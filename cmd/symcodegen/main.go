// Command symcodegen renders one or more barcodes to SVG from the command
// line or from a YAML batch manifest.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/barcodeforge/symcode/barcodeerr"
	"github.com/barcodeforge/symcode/qrtables"
	"github.com/barcodeforge/symcode/symbology"
)

// job describes one render: either a single CLI invocation's worth of
// flags, or one entry of a batch manifest.
type job struct {
	Symbology string  `yaml:"symbology"`
	Payload   string  `yaml:"payload"`
	ECLevel   string  `yaml:"ec_level"`
	Out       string  `yaml:"out"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	DrawText  bool    `yaml:"draw_text"`
}

// manifest is the decoded shape of a --batch YAML file: a flat list of jobs.
type manifest struct {
	Jobs []job `yaml:"jobs"`
}

var logger = log.New(os.Stderr)

func main() {
	var (
		payload   = pflag.StringP("payload", "p", "", "Data to encode.")
		symName   = pflag.StringP("symbology", "s", "QR", "Symbology name (QR, Code39, EAN-13, ...).")
		ecName    = pflag.StringP("ec-level", "e", "M", "QR error-correction level: L, M, Q, or H.")
		out       = pflag.StringP("out", "o", "", "Output SVG path. Empty writes to stdout.")
		width     = pflag.Float64P("width", "w", 0, "Rendered width. 0 uses the symbology's natural size.")
		height    = pflag.Float64P("height", "H", 0, "Rendered height. 0 uses the symbology's natural size.")
		drawText  = pflag.Bool("draw-text", false, "Draw a human-readable caption beneath the bars.")
		batchFile = pflag.StringP("batch", "b", "", "YAML manifest of {symbology, payload, ec_level, out} jobs to render in one run.")
		help      = pflag.Bool("help", false, "Display help text.")
	)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: symcodegen [flags]\n\nRenders a barcode as SVG.\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	if *batchFile != "" {
		runBatch(*batchFile)
		return
	}

	j := job{
		Symbology: *symName,
		Payload:   *payload,
		ECLevel:   *ecName,
		Out:       *out,
		Width:     *width,
		Height:    *height,
		DrawText:  *drawText,
	}
	if err := runJob(j); err != nil {
		logger.Fatal("render failed", "symbology", j.Symbology, "err", err)
	}
	logger.Info("rendered", "symbology", j.Symbology, "out", orStdout(j.Out))
}

func runBatch(path string) {
	jobs, err := loadManifest(path)
	if err != nil {
		logger.Fatal("failed to load batch manifest", "file", path, "err", err)
	}
	for i, j := range jobs {
		if err := runJob(j); err != nil {
			logger.Error("job failed", "index", i, "symbology", j.Symbology, "err", err)
			continue
		}
		logger.Info("rendered", "index", i, "symbology", j.Symbology, "out", orStdout(j.Out))
	}
}

func loadManifest(path string) ([]job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("symcodegen: open manifest: %w", err)
	}
	defer f.Close()

	var m manifest
	if err := yaml.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("symcodegen: decode manifest: %w", err)
	}
	return m.Jobs, nil
}

// runJob validates and renders one job, writing SVG to j.Out (or stdout when
// j.Out is empty).
func runJob(j job) error {
	tag, ok := symbology.ParseTag(j.Symbology)
	if !ok {
		return fmt.Errorf("symcodegen: unknown symbology %q", j.Symbology)
	}
	sym := symbology.Of(tag)
	payload := []byte(j.Payload)

	ecLevel, ok := qrtables.ParseECLevel(j.ECLevel)
	if !ok {
		ecLevel = qrtables.M
	}

	out, err := symbology.ToSVG(sym, payload, symbology.SVGParams{
		Width:       j.Width,
		Height:      j.Height,
		DrawText:    j.DrawText,
		FontHeight:  j.Height * 0.15,
		TextPadding: j.Height * 0.05,
		ECLevel:     ecLevel,
		FullSVG:     true,
	})
	if err != nil {
		if errors.Is(err, barcodeerr.ErrSymbologyNotImplemented) {
			return fmt.Errorf("symcodegen: %s has no render table yet: %w", j.Symbology, err)
		}
		return fmt.Errorf("symcodegen: %w", err)
	}

	if j.Out == "" {
		fmt.Println(out)
		return nil
	}
	return os.WriteFile(j.Out, []byte(out), 0o644)
}

func orStdout(path string) string {
	if path == "" {
		return "<stdout>"
	}
	return path
}
