package alignedbases

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/rotla/bio/circular"
	bi "github.com/rotla/bio/interval"
)

// Method selects how the union of a read's folded blocks is measured.  Both
// methods return identical counts.
type Method int

const (
	// MethodMerge sorts the folded blocks and merges overlapping and touching
	// ones.  Memory is proportional to the number of blocks.
	MethodMerge Method = iota
	// MethodBitmap sets one bit per covered reference position in a bitmap
	// shared by all reads.  Memory is proportional to the reference length.
	MethodBitmap
)

var methodNames = map[string]Method{
	"merge":  MethodMerge,
	"bitmap": MethodBitmap,
}

// ParseMethod converts "merge" or "bitmap" to a Method.
func ParseMethod(name string) (Method, error) {
	m, ok := methodNames[name]
	if !ok {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("unknown method %q (want \"merge\" or \"bitmap\")", name))
	}
	return m, nil
}

// String implements fmt.Stringer.
func (m Method) String() string {
	for name, v := range methodNames {
		if v == m {
			return name
		}
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// CountAlignedBases returns the sum, over all reads in set, of the number of
// distinct reference positions covered by the read's blocks after folding
// them onto a circular reference of length refLen.
//
// Within a read, overlapping blocks count once, and a read never contributes
// more than refLen.  Across reads nothing is deduplicated, so the total may
// exceed refLen.  An empty set counts 0 whatever refLen is.  set is not
// modified.
func CountAlignedBases(set *ReadBlockSet, refLen int64, method Method) (int64, error) {
	if method != MethodMerge && method != MethodBitmap {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("unknown method %v", method))
	}
	if set.NReads() == 0 {
		// Nothing to fold, so even an empty reference is fine.
		return 0, nil
	}
	if refLen < 1 || refLen >= bi.PosTypeMax {
		return 0, errors.E(errors.Invalid, fmt.Sprintf("reference length %d out of range [1, %d)", refLen, bi.PosTypeMax))
	}
	var (
		l      = bi.PosType(refLen)
		total  int64
		folded []bi.Entry
		bitmap circular.CoverageBitmap
	)
	if method == MethodBitmap {
		bitmap = circular.NewCoverageBitmap(l)
	}
	// Sorted order, so that the first invalid block reported is the same on
	// every run.
	for _, readName := range set.ReadNames() {
		folded = folded[:0]
		for _, b := range set.Blocks(readName) {
			if b.Start < 1 || b.End < b.Start {
				return 0, errors.E(errors.Invalid, fmt.Sprintf("read %s: invalid block (%d, %d)", readName, b.Start, b.End))
			}
			folded = circular.Fold(b.Start, b.End, l, folded)
		}
		if method == MethodBitmap {
			for _, e := range folded {
				bitmap.SetRange(e)
			}
			total += bitmap.PopAndClear()
			continue
		}
		total += bi.CoveredBases(bi.NewUnion(folded))
	}
	return total, nil
}
