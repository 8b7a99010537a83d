package qrencoder

// penaltyScore computes the mask-evaluation penalty (rules N1-N4) for this
// QR Code's current module grid, used by automatic mask selection to find
// the lowest-scoring mask.
func (q *QRCode) penaltyScore() int32 {
	var result int32
	size := q.size

	for y := 0; y < size; y++ {
		var runColor bool
		var runX int32
		fp := newFinderPenalty(int32(size))
		for x := 0; x < size; x++ {
			if q.module(x, y) == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				fp.addHistory(runX)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = q.module(x, y)
				runX = 1
			}
		}
		result += fp.terminateAndCount(runColor, runX) * penaltyN3
	}

	for x := 0; x < size; x++ {
		var runColor bool
		var runY int32
		fp := newFinderPenalty(int32(size))
		for y := 0; y < size; y++ {
			if q.module(x, y) == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				fp.addHistory(runY)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = q.module(x, y)
				runY = 1
			}
		}
		result += fp.terminateAndCount(runColor, runY) * penaltyN3
	}

	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			color := q.module(x, y)
			if color == q.module(x+1, y) && color == q.module(x, y+1) && color == q.module(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	var dark int32
	for _, m := range q.modules {
		if m {
			dark++
		}
	}
	total := int32(size * size)
	k := (abs32(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// finderPenalty tracks the last 7 run lengths of a row or column so
// countPatterns can detect finder-like (1:1:3:1:1) light/dark sequences,
// per ISO/IEC 18004's N3 penalty rule.
type finderPenalty struct {
	qrSize     int32
	runHistory [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{qrSize: size}
}

func (p *finderPenalty) addHistory(currentRunLength int32) {
	if p.runHistory[0] == 0 {
		currentRunLength += p.qrSize
	}
	for i := len(p.runHistory) - 2; i >= 0; i-- {
		p.runHistory[i+1] = p.runHistory[i]
	}
	p.runHistory[0] = currentRunLength
}

func (p *finderPenalty) countPatterns() int32 {
	rh := p.runHistory
	n := rh[1]
	core := n > 0 && rh[2] == n && rh[3] == n*3 && rh[4] == n && rh[5] == n
	var count int32
	if core && rh[0] >= n*4 && rh[6] >= n {
		count++
	}
	if core && rh[6] >= n*4 && rh[0] >= n {
		count++
	}
	return count
}

func (p *finderPenalty) terminateAndCount(currentRunColor bool, currentRunLength int32) int32 {
	if currentRunColor {
		p.addHistory(currentRunLength)
		currentRunLength = 0
	}
	currentRunLength += p.qrSize
	p.addHistory(currentRunLength)
	return p.countPatterns()
}
