package bitbuffer

import "testing"

func TestPutAndLen(t *testing.T) {
	var b BitBuffer
	b.Put(0b101, 3)
	if b.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", b.Len())
	}
}

func TestMSBFirstPacking(t *testing.T) {
	var b BitBuffer
	b.Put(0b1, 1)
	b.Put(0b0, 1)
	b.Put(0b1, 1)
	b.Put(0b00000, 5)
	got := b.GetByte(0)
	if got != 0b10100000 {
		t.Fatalf("GetByte(0)=%08b, want %08b", got, 0b10100000)
	}
}

func TestGetByteZeroPadsPastEnd(t *testing.T) {
	var b BitBuffer
	b.Put(0xFF, 8)
	if got := b.GetByte(1); got != 0 {
		t.Errorf("GetByte(1)=%d, want 0", got)
	}
	if got := b.GetByte(100); got != 0 {
		t.Errorf("GetByte(100)=%d, want 0", got)
	}
}

func TestPutBit(t *testing.T) {
	var b BitBuffer
	for _, bit := range []bool{true, true, false, true, false, false, false, false} {
		b.PutBit(bit)
	}
	if b.Len() != 8 {
		t.Fatalf("Len()=%d, want 8", b.Len())
	}
	if got := b.GetByte(0); got != 0b11010000 {
		t.Fatalf("GetByte(0)=%08b, want %08b", got, 0b11010000)
	}
}

func TestBytesMatchesGetByte(t *testing.T) {
	var b BitBuffer
	b.Put(0x12, 8)
	b.Put(0x3, 4)
	bs := b.Bytes()
	if len(bs) != 2 {
		t.Fatalf("len(Bytes())=%d, want 2", len(bs))
	}
	if bs[0] != b.GetByte(0) || bs[1] != b.GetByte(1) {
		t.Errorf("Bytes() disagrees with GetByte")
	}
}

func TestPutRejectsOutOfRangeLength(t *testing.T) {
	var b BitBuffer
	defer func() {
		if recover() == nil {
			t.Fatal("Put with n=0 did not panic")
		}
	}()
	b.Put(0, 0)
}

func TestPutRejectsValueTooLarge(t *testing.T) {
	var b BitBuffer
	defer func() {
		if recover() == nil {
			t.Fatal("Put with oversized value did not panic")
		}
	}()
	b.Put(8, 3) // 8 needs 4 bits, only 3 given
}

// S3: Numeric::from_string("01234567") group encoding, spelled out as raw
// bit-buffer writes: mode (0001), 10-bit count (0000001000), then the
// numeric groups 012=0000001100, 345=0101011001, 67=1000011.
func TestScenarioS3BitLayout(t *testing.T) {
	var b BitBuffer
	b.Put(0b0001, 4)
	b.Put(8, 10)
	b.Put(12, 10)  // "012"
	b.Put(345, 10) // "345"
	b.Put(67, 7)   // "67"

	want := []byte{
		0, 0, 0, 1, // mode
		0, 0, 0, 0, 0, 0, 1, 0, 0, 0, // count=8
		0, 0, 0, 0, 0, 0, 1, 1, 0, 0, // 012 -> 12
		0, 1, 0, 1, 0, 1, 1, 0, 0, 1, // 345
		1, 0, 0, 0, 0, 1, 1, // 67
	}
	if b.Len() != len(want) {
		t.Fatalf("Len()=%d, want %d", b.Len(), len(want))
	}
	for i, w := range want {
		byteIdx := i / 8
		bitInByte := i % 8
		got := (b.GetByte(byteIdx) >> uint(7-bitInByte)) & 1
		if got != w {
			t.Errorf("bit %d = %d, want %v", i, got, w)
		}
	}
}
