package circular

import (
	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/log"
	bi "github.com/rotla/bio/interval"
)

// BitsPerWord is the number of bits per machine word.
const BitsPerWord = bitset.BitsPerWord

// CoverageBitmap is a set of positions on a circular reference, stored as one
// bit per position.  It is meant to be filled with the folded blocks of one
// read, drained with PopAndClear, and then reused for the next read.
type CoverageBitmap struct {
	// bits stores the raw bits; position p is bit p%BitsPerWord of
	// bits[p/BitsPerWord].
	bits []uintptr
	// nNonzeroWord is the number of nonzero words in bits.  This lets
	// PopAndClear visit only the touched words.
	nNonzeroWord int
	refLen       bi.PosType
}

// NewCoverageBitmap creates an empty CoverageBitmap for a reference of length
// refLen.
func NewCoverageBitmap(refLen bi.PosType) (b CoverageBitmap) {
	if refLen < 1 {
		log.Panicf("circular.NewCoverageBitmap: invalid reference length %d", refLen)
	}
	b.bits = make([]uintptr, (int(refLen)+BitsPerWord-1)/BitsPerWord)
	b.refLen = refLen
	return
}

// SetRange marks every position in the folded interval e.  (Nothing bad
// happens if some were already set.)  e must lie within [0, refLen).
func (b *CoverageBitmap) SetRange(e bi.Entry) {
	if e.Start0 < 0 || e.End > b.refLen {
		log.Panicf("circular.CoverageBitmap.SetRange: [%d, %d) outside [0, %d)", e.Start0, e.End, b.refLen)
	}
	for pos := int(e.Start0); pos < int(e.End); pos++ {
		wordIdx := pos / BitsPerWord
		curWord := b.bits[wordIdx]
		if curWord == 0 {
			b.nNonzeroWord++
		}
		b.bits[wordIdx] = curWord | (uintptr(1) << uint(pos%BitsPerWord))
	}
}

// PopAndClear returns the number of set positions, and leaves the bitmap
// empty.
func (b *CoverageBitmap) PopAndClear() int64 {
	if b.nNonzeroWord == 0 {
		return 0
	}
	var n int64
	// The scanner zeroes each word as it leaves it.
	for s, pos := bitset.NewNonzeroWordScanner(b.bits, b.nNonzeroWord); pos != -1; pos = s.Next() {
		n++
	}
	b.nNonzeroWord = 0
	return n
}
