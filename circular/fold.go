package circular

import (
	bi "github.com/rotla/bio/interval"
)

// Fold appends the canonical pieces of the 1-based closed block
// [start1, end1] to dst, and returns the extended slice.  The block is given
// in padded-reference coordinates; the pieces are 0-based half-open intervals
// within [0, refLen).
//
// With L = refLen:
//   start1 <= L, end1 <= L: the block is kept as is.
//   start1 <= L, end1 > L: the block straddles the origin and is split into
//     [start1, L] and [1, end1 - L].
//   start1 > L: the block lies in the padding and is shifted down by L.
// Blocks further out are reduced modulo L, and a block at least L long covers
// the whole reference.
//
// Fold requires 1 <= start1 <= end1 and refLen >= 1.
func Fold(start1, end1, refLen bi.PosType, dst []bi.Entry) []bi.Entry {
	length := end1 - start1 + 1
	if length >= refLen {
		return append(dst, bi.Entry{Start0: 0, End: refLen})
	}
	start0 := (start1 - 1) % refLen
	// start0+length may overflow PosType; compare against the room left instead.
	tail := refLen - start0
	if length <= tail {
		return append(dst, bi.Entry{Start0: start0, End: start0 + length})
	}
	return append(dst,
		bi.Entry{Start0: start0, End: refLen},
		bi.Entry{Start0: 0, End: length - tail})
}
