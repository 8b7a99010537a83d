package qrtables

// RSBlock records one Reed-Solomon block's shape: its total codeword count
// (data + ECC) and its data codeword count.
type RSBlock struct {
	Total int
	Data  int
}

// eccCodewordsPerBlock[ec][version] and numBlocks[ec][version] are the two
// reference parameters ISO/IEC 18004 specifies per (version, ecLevel) cell;
// together they are the terse (n1,t1,d1,n2,t2,d2) form described for
// RSBlocks: n1+n2 is numBlocks, and the n1/n2 split and block totals are
// derived in RSBlocks from the raw module count. Index 0 is unused padding.
var eccCodewordsPerBlock = [4][41]int{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var numBlocks = [4][41]int{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// RawDataModules returns the number of data bits available in a QR Code of
// the given version, after all function patterns are excluded. This
// includes remainder bits, so it may not be a multiple of 8.
func RawDataModules(v Version) int {
	ver := int(v)
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numalign := ver/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	return result
}

// RSBlocks expands the terse reference parameters for (version, ec) into the
// ordered list of RSBlock shapes: n1 blocks of one shape followed by n2
// blocks of a second shape whose total is exactly one codeword larger.
func RSBlocks(v Version, ec ECLevel) []RSBlock {
	blockECCLen := eccCodewordsPerBlock[ec.Ordinal()][v]
	nBlocks := numBlocks[ec.Ordinal()][v]
	rawCodewords := RawDataModules(v) / 8

	shortBlockLen := rawCodewords / nBlocks
	numShortBlocks := nBlocks - (rawCodewords % nBlocks)

	blocks := make([]RSBlock, nBlocks)
	for i := 0; i < nBlocks; i++ {
		total := shortBlockLen
		if i >= numShortBlocks {
			total++
		}
		blocks[i] = RSBlock{Total: total, Data: total - blockECCLen}
	}
	return blocks
}

// NumDataCodewords returns the total data-codeword capacity for (version,
// ec): the sum of Data across RSBlocks(version, ec).
func NumDataCodewords(v Version, ec ECLevel) int {
	total := 0
	for _, b := range RSBlocks(v, ec) {
		total += b.Data
	}
	return total
}

// charCountBits[mode][versionRange] where versionRange 0 = [1,9], 1 = [10,26], 2 = [27,40].
var charCountBits = [4][3]int{
	{10, 12, 14}, // Numeric
	{9, 11, 13},  // AlphaNumeric
	{8, 16, 16},  // Byte8Bit
	{8, 10, 12},  // Kanji
}

// ModeOrdinal indexes charCountBits; kept local to avoid an import cycle
// with the segment package, which imports qrtables for this lookup.
type ModeOrdinal int

const (
	ModeNumeric ModeOrdinal = iota
	ModeAlphaNumeric
	ModeByte8Bit
	ModeKanji
)

// CharCountBits returns the character-count-indicator width, in bits, for a
// segment of the given mode in a QR Code of the given version.
func CharCountBits(mode ModeOrdinal, v Version) int {
	var rangeIdx int
	switch {
	case v <= 9:
		rangeIdx = 0
	case v <= 26:
		rangeIdx = 1
	default:
		rangeIdx = 2
	}
	return charCountBits[mode][rangeIdx]
}
