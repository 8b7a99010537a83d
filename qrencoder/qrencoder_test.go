package qrencoder

import (
	"errors"
	"testing"

	"github.com/barcodeforge/symcode/barcodeerr"
	"github.com/barcodeforge/symcode/qrtables"
	"github.com/barcodeforge/symcode/segment"
)

// S1: from_text("HELLO WORLD", ec=M) selects version=1, module_count=21,
// and the first data codeword is 0x20.
func TestScenarioS1HelloWorld(t *testing.T) {
	q, err := EncodeText("HELLO WORLD", qrtables.M)
	if err != nil {
		t.Fatal(err)
	}
	if q.Version() != 1 {
		t.Fatalf("version=%d, want 1", q.Version())
	}
	if q.Size() != 21 {
		t.Fatalf("size=%d, want 21", q.Size())
	}
	data := q.DataCodewords()
	if len(data) == 0 || data[0] != 0x20 {
		t.Fatalf("first data codeword = 0x%02X, want 0x20", data[0])
	}
}

// property 2: codeword length - DataCodewords()'s length equals the sum of
// RSBlocks(version, ec)'s Total fields.
func TestCodewordLengthMatchesRSBlockTotal(t *testing.T) {
	q, err := EncodeText("HELLO WORLD", qrtables.M)
	if err != nil {
		t.Fatal(err)
	}
	want := 0
	for _, b := range qrtables.RSBlocks(q.Version(), q.ECLevel()) {
		want += b.Total
	}
	if got := len(q.DataCodewords()); got != want {
		t.Fatalf("len(DataCodewords())=%d, want %d", got, want)
	}
}

// DataCodewords returns a defensive copy: mutating the result must not
// affect subsequent reads.
func TestDataCodewordsReturnsCopy(t *testing.T) {
	q, err := EncodeText("HELLO WORLD", qrtables.M)
	if err != nil {
		t.Fatal(err)
	}
	data := q.DataCodewords()
	data[0] = 0xFF
	if q.DataCodewords()[0] == 0xFF {
		t.Fatal("mutating the returned slice affected the QRCode's internal state")
	}
}

// S2: a QRCode pinned to version 10, ec=H, built from 20 zero bytes has a
// DataCodewords() stream of 346 codewords, the sum of RSBlocks(10, H)'s
// Total fields.
func TestScenarioS2Version10High(t *testing.T) {
	segs := []segment.Segment{segment.NewBytes(make([]byte, 20))}
	q, err := NewBuilder().WithVersionRange(10, 10).SetBoostECC(false).Build(segs, qrtables.H)
	if err != nil {
		t.Fatal(err)
	}
	if q.Version() != 10 {
		t.Fatalf("version=%d, want 10", q.Version())
	}
	if got := len(q.DataCodewords()); got != 346 {
		t.Fatalf("len(DataCodewords())=%d, want 346", got)
	}
	total := 0
	for _, b := range qrtables.RSBlocks(10, qrtables.H) {
		total += b.Total
	}
	if total != 346 {
		t.Fatalf("total codewords = %d, want 346", total)
	}
}

// S5: a 2953-byte payload at ec=L fits version 40; 2954 bytes overflows.
func TestScenarioS5MaxCapacityBoundary(t *testing.T) {
	ok := make([]byte, 2953)
	q, err := EncodeBinary(ok, qrtables.L)
	if err != nil {
		t.Fatalf("2953 bytes should fit: %v", err)
	}
	if q.Version() != 40 {
		t.Fatalf("version=%d, want 40", q.Version())
	}

	tooBig := make([]byte, 2954)
	_, err = EncodeBinary(tooBig, qrtables.L)
	if err == nil {
		t.Fatal("expected InputTooLong for 2954 bytes")
	}
	if !errors.Is(err, barcodeerr.ErrInputTooLong) {
		t.Fatalf("expected InputTooLong, got %v", err)
	}
}

// property 1: version monotonicity - the chosen version is the smallest
// that fits the segment's bit cost.
func TestVersionMonotonicity(t *testing.T) {
	segs, err := segment.MakeSegments("THE QUICK BROWN FOX JUMPS 0123456789")
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewBuilder().Build(segs, qrtables.L)
	if err != nil {
		t.Fatal(err)
	}
	used, _ := totalBits(segs, q.Version())
	for v := qrtables.MinVersion; v < q.Version(); v++ {
		capacityBits := qrtables.NumDataCodewords(v, q.ECLevel())*8
		bits, _ := totalBits(segs, v)
		if bits <= capacityBits {
			t.Fatalf("version %d would have fit (%d <= %d) but %d was chosen", v, bits, capacityBits, q.Version())
		}
	}
	_ = used
}

// property 7: idempotence - two independent encodings of the same input
// produce an identical module grid.
func TestIdempotence(t *testing.T) {
	q1, err := EncodeText("AC-42", qrtables.Q)
	if err != nil {
		t.Fatal(err)
	}
	q2, err := EncodeText("AC-42", qrtables.Q)
	if err != nil {
		t.Fatal(err)
	}
	if q1.Size() != q2.Size() || q1.Mask() != q2.Mask() {
		t.Fatal("repeated encodings diverged in size/mask")
	}
	for y := 0; y < q1.Size(); y++ {
		for x := 0; x < q1.Size(); x++ {
			if q1.GetModule(x, y) != q2.GetModule(x, y) {
				t.Fatalf("module (%d,%d) differs between identical encodings", x, y)
			}
		}
	}
}

func TestForcedMaskIsHonored(t *testing.T) {
	segs, err := segment.MakeSegments("12345")
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewBuilder().WithForcedMask(3).SetBoostECC(false).Build(segs, qrtables.L)
	if err != nil {
		t.Fatal(err)
	}
	if q.Mask() != 3 {
		t.Fatalf("mask=%d, want 3", q.Mask())
	}
}

func TestWithVersionRangeRestrictsSearch(t *testing.T) {
	segs, err := segment.MakeSegments("1")
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewBuilder().WithVersionRange(5, 40).Build(segs, qrtables.L)
	if err != nil {
		t.Fatal(err)
	}
	if q.Version() < 5 {
		t.Fatalf("version=%d, want >= 5", q.Version())
	}
}

func TestBoostECCRaisesLevelWhenFree(t *testing.T) {
	segs, err := segment.MakeSegments("1")
	if err != nil {
		t.Fatal(err)
	}
	q, err := NewBuilder().Build(segs, qrtables.L)
	if err != nil {
		t.Fatal(err)
	}
	// "1" needs 18 bits; version 1 holds 72 data bits even at H.
	if q.ECLevel() != qrtables.H {
		t.Fatalf("ECLevel()=%v, want H (boosted from L at no version cost)", q.ECLevel())
	}
}

func TestGetModuleOutOfBoundsIsLight(t *testing.T) {
	q, err := EncodeText("X", qrtables.L)
	if err != nil {
		t.Fatal(err)
	}
	if q.GetModule(-1, 0) || q.GetModule(q.Size(), 0) {
		t.Fatal("expected out-of-bounds modules to read light")
	}
}
