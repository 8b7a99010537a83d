// Package qrencoder is the centerpiece of the barcode synthesis engine: it
// turns a sequence of segment.Segment values into a fully masked QR Code
// module grid, per ISO/IEC 18004 (QR Code Model 2).
//
// A QRCode is built through Builder, which follows a build-then-freeze
// pattern: callers configure version range, ECC boosting, and an optional
// forced mask, then call Build to get back an immutable QRCode whose module
// grid never changes again.
package qrencoder

import (
	"math"

	"github.com/barcodeforge/symcode/barcodeerr"
	"github.com/barcodeforge/symcode/bitbuffer"
	"github.com/barcodeforge/symcode/gf256"
	"github.com/barcodeforge/symcode/polynomial"
	"github.com/barcodeforge/symcode/qrtables"
	"github.com/barcodeforge/symcode/segment"
)

// QRCode is an immutable QR Code Model 2 symbol: a square grid of dark and
// light modules, plus the scalar parameters that produced it.
type QRCode struct {
	version qrtables.Version
	size    int
	ecLevel qrtables.ECLevel
	mask    Mask

	modules    []bool
	isFunction []bool

	// dataCodewords is the final interleaved data+ECC codeword stream this
	// symbol's modules were drawn from (spec.md §6's data_codewords()).
	// Computed once in encodeCodewords and never recomputed, per the
	// builder-then-freeze pattern: there is no mutator to invalidate it.
	dataCodewords []byte
}

// DataCodewords returns the final interleaved data+ECC codeword stream this
// symbol was built from: data, augmented with Reed-Solomon ECC blocks, and
// interleaved column-major across blocks per spec.md §4.7.4. Its length is
// always the sum of RSBlocks(Version(), ECLevel())'s Total fields.
func (q *QRCode) DataCodewords() []byte {
	out := make([]byte, len(q.dataCodewords))
	copy(out, q.dataCodewords)
	return out
}

// Version returns the QR Code's version, in [1,40].
func (q *QRCode) Version() qrtables.Version { return q.version }

// Size returns the QR Code's width and height in modules, in [21,177].
func (q *QRCode) Size() int { return q.size }

// ECLevel returns the error correction level actually used (which may be
// higher than requested, if ECC boosting was enabled).
func (q *QRCode) ECLevel() qrtables.ECLevel { return q.ecLevel }

// Mask returns the mask pattern index used, in [0,7].
func (q *QRCode) Mask() Mask { return q.mask }

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0,Size()) report light (false).
func (q *QRCode) GetModule(x, y int) bool {
	if x < 0 || x >= q.size || y < 0 || y >= q.size {
		return false
	}
	return q.modules[y*q.size+x]
}

func (q *QRCode) module(x, y int) bool { return q.modules[y*q.size+x] }

func (q *QRCode) setModule(x, y int, dark bool) { q.modules[y*q.size+x] = dark }

// Builder configures and constructs QR Code symbols. The zero value is a
// ready-to-use builder with the full version range, ECC boosting disabled,
// and forced mask unset (automatic mask selection); NewBuilder enables
// boosting.
type Builder struct {
	minVersion qrtables.Version
	maxVersion qrtables.Version
	boostECC   bool
	forceMask  *Mask
	versionSet bool
}

// NewBuilder returns a Builder with the default configuration: version range
// [1,40], ECC boosting on, automatic mask selection.
func NewBuilder() *Builder {
	return &Builder{boostECC: true}
}

// WithVersionRange restricts the version search to [min, max], inclusive.
// Panics if the range is invalid.
func (b *Builder) WithVersionRange(min, max qrtables.Version) *Builder {
	if min < qrtables.MinVersion || max > qrtables.MaxVersion || min > max {
		panic("qrencoder: invalid version range")
	}
	b.minVersion, b.maxVersion, b.versionSet = min, max, true
	return b
}

// WithForcedMask pins the mask pattern to m instead of searching for the
// lowest-penalty choice. Panics if m is outside [0,7].
func (b *Builder) WithForcedMask(m Mask) *Builder {
	m.validate()
	b.forceMask = &m
	return b
}

// SetBoostECC toggles whether the error correction level may be raised
// above the requested level when doing so costs no extra version.
func (b *Builder) SetBoostECC(enabled bool) *Builder {
	b.boostECC = enabled
	return b
}

func (b *Builder) versionRange() (qrtables.Version, qrtables.Version) {
	if b.versionSet {
		return b.minVersion, b.maxVersion
	}
	return qrtables.MinVersion, qrtables.MaxVersion
}

// Build encodes segs at error correction level ecl into a QRCode, choosing
// the smallest version in the builder's range that fits. Returns a wrapped
// barcodeerr.ErrInputTooLong if no version in range fits the data.
func (b *Builder) Build(segs []segment.Segment, ecl qrtables.ECLevel) (*QRCode, error) {
	minV, maxV := b.versionRange()

	var ver qrtables.Version
	var usedBits int
	found := false
	for v := minV; v <= maxV; v++ {
		capacityBits := qrtables.NumDataCodewords(v, ecl) * 8
		used, ok := totalBits(segs, v)
		if ok && used <= capacityBits {
			ver, usedBits, found = v, used, true
			break
		}
	}
	if !found {
		capacityBits := qrtables.NumDataCodewords(maxV, ecl) * 8
		used, _ := totalBits(segs, maxV)
		return nil, barcodeerr.NewInputTooLong(used, capacityBits)
	}

	if b.boostECC {
		for _, candidate := range []qrtables.ECLevel{qrtables.M, qrtables.Q, qrtables.H} {
			if usedBits <= qrtables.NumDataCodewords(ver, candidate)*8 {
				ecl = candidate
			}
		}
	}

	var buf bitbuffer.BitBuffer
	for _, seg := range segs {
		buf.Put(seg.Mode().Indicator(), 4)
		if bits := seg.Mode().CharCountBits(ver); bits > 0 {
			buf.Put(uint32(seg.LogicalLength()), bits)
		}
		seg.Write(&buf)
	}

	capacityBits := qrtables.NumDataCodewords(ver, ecl) * 8
	terminatorBits := capacityBits - buf.Len()
	if terminatorBits > 4 {
		terminatorBits = 4
	}
	padBitsWithZero(&buf, terminatorBits)
	padBitsWithZero(&buf, (8-buf.Len()%8)%8)

	for i := 0; buf.Len() < capacityBits; i++ {
		if i%2 == 0 {
			buf.Put(0xEC, 8)
		} else {
			buf.Put(0x11, 8)
		}
	}

	dataCodewords := buf.Bytes()

	return encodeCodewords(ver, ecl, dataCodewords, b.forceMask)
}

func padBitsWithZero(buf *bitbuffer.BitBuffer, n int) {
	for i := 0; i < n; i++ {
		buf.PutBit(false)
	}
}

// totalBits returns the number of bits segs would occupy (headers + payload)
// at version v, and whether that total fits in a uint-style count-indicator
// (it always does for valid segments; the bool mirrors the teacher's
// map_or-style "does this version even admit the mode" check).
func totalBits(segs []segment.Segment, v qrtables.Version) (int, bool) {
	total := 0
	for _, seg := range segs {
		total += 4 + seg.Mode().CharCountBits(v) + seg.PayloadBits()
	}
	return total, true
}

// encodeCodewords is the low-level constructor: given final data codewords
// (headers, terminator, and padding already applied), it computes Reed-
// Solomon ECC, interleaves, draws every module, and applies masking.
func encodeCodewords(ver qrtables.Version, ecl qrtables.ECLevel, dataCodewords []byte, forceMask *Mask) (*QRCode, error) {
	size := ver.Size()
	q := &QRCode{
		version:    ver,
		size:       size,
		ecLevel:    ecl,
		modules:    make([]bool, size*size),
		isFunction: make([]bool, size*size),
	}

	q.drawFunctionPatterns()
	allCodewords := addECCAndInterleave(ver, ecl, dataCodewords)
	q.dataCodewords = allCodewords
	q.drawCodewords(allCodewords)

	var chosen Mask
	if forceMask != nil {
		chosen = *forceMask
	} else {
		minPenalty := int32(math.MaxInt32)
		for i := 0; i < 8; i++ {
			m := Mask(i)
			q.applyMask(m)
			q.drawFormatBits(m)
			penalty := q.penaltyScore()
			if penalty < minPenalty {
				chosen = m
				minPenalty = penalty
			}
			q.applyMask(m) // undo
		}
	}
	q.mask = chosen
	q.applyMask(chosen)
	q.drawFormatBits(chosen)

	q.isFunction = nil
	return q, nil
}

// addECCAndInterleave expands dataCodewords into the full codeword sequence
// (data + Reed-Solomon ECC per block, interleaved across blocks), using
// gf256/polynomial for the field and generator-polynomial arithmetic. The
// interleave order (short blocks' data, then long blocks' extra byte, then
// every block's ECC in lockstep) matches ISO/IEC 18004's requirement that a
// decoder can reassemble blocks from a single raw codeword stream.
func addECCAndInterleave(ver qrtables.Version, ecl qrtables.ECLevel, data []byte) []byte {
	blocks := qrtables.RSBlocks(ver, ecl)
	if len(data) != qrtables.NumDataCodewords(ver, ecl) {
		panic("qrencoder: data codeword count mismatch")
	}

	numBlocks := len(blocks)
	eccLen := blocks[0].Total - blocks[0].Data
	numShortBlocks := 0
	shortBlockTotal := blocks[0].Total
	for _, b := range blocks {
		if b.Total == shortBlockTotal {
			numShortBlocks++
		}
	}
	generator := generatorPolynomial(eccLen)

	built := make([][]byte, numBlocks)
	k := 0
	for i, b := range blocks {
		datLen := b.Data
		dat := append([]byte(nil), data[k:k+datLen]...)
		k += datLen
		ecc := computeRemainder(dat, generator)
		if i < numShortBlocks {
			dat = append(dat, 0)
		}
		dat = append(dat, ecc...)
		built[i] = dat
	}

	rawCodewords := 0
	for _, b := range blocks {
		rawCodewords += b.Total
	}
	shortBlockLen := shortBlockTotal

	result := make([]byte, 0, rawCodewords)
	for i := 0; i <= shortBlockLen; i++ {
		for j, blk := range built {
			if i != shortBlockLen-eccLen || j >= numShortBlocks {
				result = append(result, blk[i])
			}
		}
	}
	return result
}

// generatorPolynomial returns the Reed-Solomon generator polynomial of the
// given degree, (x - g^0)(x - g^1)...(x - g^{degree-1}) over GF(256), with
// g = gf256.Primitive.
func generatorPolynomial(degree int) polynomial.Polynomial {
	// Start with the monomial 1 (degree 0), multiply by (x - root) for
	// root = g^0, g^1, ..., g^{degree-1}.
	gen := polynomial.New([]uint8{1}, 0)
	root := uint8(1)
	for i := 0; i < degree; i++ {
		factor := polynomial.New([]uint8{1, root}, 0)
		gen = gen.Multiply(factor)
		root = gf256.Mul(root, gf256.Primitive)
	}
	return gen
}

// computeRemainder divides data (as a polynomial, high-degree-first) by
// generator, padded with eccLen trailing zero terms, and returns the
// eccLen-byte remainder.
func computeRemainder(data []byte, generator polynomial.Polynomial) []byte {
	eccLen := generator.Length() - 1
	padded := polynomial.New(data, eccLen)
	return padded.Mod(generator).PadTo(eccLen)
}
