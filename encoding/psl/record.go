package psl

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/grailbio/base/errors"
	gunsafe "github.com/grailbio/base/unsafe"
	bi "github.com/rotla/bio/interval"
)

// Positions (0-based) of the columns a Record is built from.  A data line
// must have at least MinFields columns.
const (
	QNameField      = 9
	BlockSizesField = 18
	TStartsField    = 20
	MinFields       = 21
)

// Record holds the parts of a PSL alignment line that describe where the
// query landed on the target.
type Record struct {
	// QName is the query (read) name.
	QName string
	// BlockSizes[i] is the length of the i'th aligned block.
	BlockSizes []bi.PosType
	// TStarts[i] is the 0-based target position of the i'th block.
	TStarts []bi.PosType
}

// Blocks calls fn with the 1-based closed target interval of each block,
// i.e. (TStarts[i]+1, TStarts[i]+BlockSizes[i]).
func (r *Record) Blocks(fn func(start1, end1 bi.PosType)) {
	for i, size := range r.BlockSizes {
		start := r.TStarts[i]
		fn(start+1, start+size)
	}
}

// splitFields identifies up to the first len(tokens) tokens from line,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func splitFields(tokens [][]byte, line []byte) int {
	posEnd := 0
	lineLen := len(line)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if line[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if line[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = line[pos:posEnd]
	}
	return len(tokens)
}

// parseList appends the elements of a comma-terminated list such as
// "12,30,7," to dst.  Every element must be followed by a comma.
func parseList(field []byte, name string, minValue int64, dst []bi.PosType) ([]bi.PosType, error) {
	if len(field) == 0 || field[len(field)-1] != ',' {
		return dst, errors.E(errors.Invalid, name, "list", fmt.Sprintf("%q", field), "does not end with ','")
	}
	for _, elem := range bytes.Split(field[:len(field)-1], []byte{','}) {
		v, err := strconv.ParseInt(gunsafe.BytesToString(elem), 10, 32)
		if err != nil {
			return dst, errors.E(errors.Invalid, err, name, "element", fmt.Sprintf("%q", elem))
		}
		if v < minValue {
			return dst, errors.E(errors.Invalid, name, "element", fmt.Sprintf("%d", v), "out of range")
		}
		dst = append(dst, bi.PosType(v))
	}
	return dst, nil
}

// ParseRecord fills rec from one PSL data line.  rec's slices are reused.
// The line must have at least MinFields whitespace-separated columns, and the
// block size and target start lists must be comma-terminated, of equal
// length, and hold integers (sizes >= 1, starts >= 0) whose blocks end within
// PosType range.
func ParseRecord(line []byte, rec *Record) (err error) {
	var tokens [MinFields][]byte
	if n := splitFields(tokens[:], line); n < MinFields {
		return errors.E(errors.Invalid, fmt.Sprintf("found %d column(s), expected at least %d", n, MinFields))
	}
	if rec.BlockSizes, err = parseList(tokens[BlockSizesField], "blockSizes", 1, rec.BlockSizes[:0]); err != nil {
		return
	}
	if rec.TStarts, err = parseList(tokens[TStartsField], "tStarts", 0, rec.TStarts[:0]); err != nil {
		return
	}
	if len(rec.BlockSizes) != len(rec.TStarts) {
		return errors.E(errors.Invalid, fmt.Sprintf("%d block size(s) but %d target start(s)", len(rec.BlockSizes), len(rec.TStarts)))
	}
	for i, size := range rec.BlockSizes {
		if int64(rec.TStarts[i])+int64(size) >= bi.PosTypeMax {
			return errors.E(errors.Invalid, fmt.Sprintf("block %d ends past %d", i, bi.PosTypeMax))
		}
	}
	// Copy, since tokens point into a buffer that will be overwritten.
	rec.QName = string(tokens[QNameField])
	return nil
}
