package qrtables

import "testing"

func TestVersionSize(t *testing.T) {
	cases := map[Version]int{1: 21, 2: 25, 40: 177}
	for v, want := range cases {
		if got := v.Size(); got != want {
			t.Errorf("Version(%d).Size()=%d, want %d", v, got, want)
		}
	}
}

func TestNewPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(41) did not panic")
		}
	}()
	New(41)
}

func TestECLevelFormatBits(t *testing.T) {
	cases := map[ECLevel]uint8{L: 1, M: 0, Q: 3, H: 2}
	for lvl, want := range cases {
		if got := lvl.FormatBits(); got != want {
			t.Errorf("%v.FormatBits()=%d, want %d", lvl, got, want)
		}
	}
}

// RSBlocks must satisfy the table invariant from spec.md §3: the second
// block shape, if present, has exactly one more codeword per block than the
// first.
func TestRSBlocksShapeInvariant(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for _, ec := range []ECLevel{L, M, Q, H} {
			blocks := RSBlocks(v, ec)
			if len(blocks) == 0 {
				t.Fatalf("version %d ec %v: no blocks", v, ec)
			}
			first := blocks[0].Total
			for _, b := range blocks[1:] {
				if b.Total != first && b.Total != first+1 {
					t.Errorf("version %d ec %v: block total %d, want %d or %d", v, ec, b.Total, first, first+1)
				}
			}
		}
	}
}

// S2: the total codeword count (data + ECC) across RSBlocks(10, H) is 346,
// the length of a version-10 H symbol's data_codewords() stream.
func TestTotalCodewordsVersion10H(t *testing.T) {
	total := 0
	for _, b := range RSBlocks(10, H) {
		total += b.Total
	}
	if total != 346 {
		t.Fatalf("version 10 H total codewords = %d, want 346", total)
	}
}

func TestCharCountBitsTableFromSpec(t *testing.T) {
	cases := []struct {
		mode ModeOrdinal
		v    Version
		want int
	}{
		{ModeNumeric, 1, 10}, {ModeNumeric, 9, 10}, {ModeNumeric, 10, 12}, {ModeNumeric, 26, 12}, {ModeNumeric, 27, 14}, {ModeNumeric, 40, 14},
		{ModeAlphaNumeric, 1, 9}, {ModeAlphaNumeric, 10, 11}, {ModeAlphaNumeric, 27, 13},
		{ModeByte8Bit, 1, 8}, {ModeByte8Bit, 10, 16}, {ModeByte8Bit, 27, 16},
		{ModeKanji, 1, 8}, {ModeKanji, 10, 10}, {ModeKanji, 27, 12},
	}
	for _, c := range cases {
		if got := CharCountBits(c.mode, c.v); got != c.want {
			t.Errorf("CharCountBits(%v,%d)=%d, want %d", c.mode, c.v, got, c.want)
		}
	}
}
