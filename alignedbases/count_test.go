package alignedbases

import (
	"math/rand"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	bi "github.com/rotla/bio/interval"
)

type readBlock struct {
	read  string
	block Block
}

func newSet(blocks ...readBlock) *ReadBlockSet {
	set := NewReadBlockSet()
	for _, rb := range blocks {
		set.Add(rb.read, rb.block)
	}
	return set
}

var methods = []Method{MethodMerge, MethodBitmap}

func TestCountAlignedBases(t *testing.T) {
	tests := []struct {
		name   string
		set    *ReadBlockSet
		refLen int64
		want   int64
	}{
		{"empty", newSet(), 10, 0},
		{"in range", newSet(readBlock{"r", Block{1, 10}}), 10, 10},
		// (8,13) folds to (8,10) and (1,3).
		{"wrap split", newSet(readBlock{"r", Block{8, 13}}), 10, 6},
		// (12,15) folds to (2,5).
		{"padding shift", newSet(readBlock{"r", Block{12, 15}}), 10, 4},
		{"within-read overlap", newSet(readBlock{"r", Block{1, 5}}, readBlock{"r", Block{3, 8}}), 10, 8},
		{"within-read adjacent", newSet(readBlock{"r", Block{1, 5}}, readBlock{"r", Block{6, 8}}), 10, 8},
		// (2,5) and (12,15) are the same positions once folded.
		{"overlap after folding", newSet(readBlock{"r", Block{2, 5}}, readBlock{"r", Block{12, 15}}), 10, 4},
		{"cross-read not deduplicated", newSet(readBlock{"a", Block{1, 5}}, readBlock{"b", Block{1, 5}}), 10, 10},
		// A read covering the circle twice over still contributes L.
		{"per-read cap", newSet(readBlock{"r", Block{1, 10}}, readBlock{"r", Block{11, 20}}, readBlock{"r", Block{5, 14}}), 10, 10},
		{"total may exceed L", newSet(readBlock{"a", Block{1, 10}}, readBlock{"b", Block{3, 12}}), 10, 20},
	}
	for _, tt := range tests {
		for _, m := range methods {
			got, err := CountAlignedBases(tt.set, tt.refLen, m)
			assert.NoError(t, err)
			expect.EQ(t, got, tt.want, "%s (%v)", tt.name, m)
		}
	}
}

func TestCountAlignedBasesEmptyReference(t *testing.T) {
	// No reads: the reference length is never used.
	for _, m := range methods {
		got, err := CountAlignedBases(newSet(), 0, m)
		assert.NoError(t, err)
		expect.EQ(t, got, int64(0))
	}
	_, err := CountAlignedBases(newSet(readBlock{"r", Block{1, 1}}), 0, MethodMerge)
	expect.True(t, errors.Is(errors.Invalid, err))
}

func TestCountAlignedBasesDoesNotModifySet(t *testing.T) {
	set := newSet(readBlock{"r", Block{8, 13}}, readBlock{"r", Block{12, 15}})
	for _, m := range methods {
		_, err := CountAlignedBases(set, 10, m)
		assert.NoError(t, err)
	}
	expect.EQ(t, set.Blocks("r"), []Block{{8, 13}, {12, 15}})
	expect.EQ(t, set.NBlocks(), 2)
}

func TestCountAlignedBasesErrors(t *testing.T) {
	set := newSet(readBlock{"r", Block{1, 5}})
	for _, refLen := range []int64{0, -1, bi.PosTypeMax} {
		_, err := CountAlignedBases(set, refLen, MethodMerge)
		expect.True(t, errors.Is(errors.Invalid, err))
	}
	_, err := CountAlignedBases(set, 10, Method(99))
	expect.True(t, errors.Is(errors.Invalid, err))
	_, err = CountAlignedBases(newSet(), 10, Method(99))
	expect.True(t, errors.Is(errors.Invalid, err))

	_, err = CountAlignedBases(newSet(readBlock{"r", Block{5, 4}}), 10, MethodMerge)
	expect.True(t, errors.Is(errors.Invalid, err))
	_, err = CountAlignedBases(newSet(readBlock{"r", Block{0, 4}}), 10, MethodBitmap)
	expect.True(t, errors.Is(errors.Invalid, err))

	// Reads are checked in name order.
	_, err = CountAlignedBases(newSet(readBlock{"b", Block{0, 4}}, readBlock{"a", Block{3, 2}}), 10, MethodMerge)
	assert.True(t, err != nil)
	assert.HasSubstr(t, err.Error(), "read a:")
}

// bruteForce counts the union per read with an explicit position set, for
// blocks ending within 2*refLen.
func bruteForce(blocks []readBlock, refLen int64) int64 {
	covered := map[string]map[int64]bool{}
	for _, rb := range blocks {
		if covered[rb.read] == nil {
			covered[rb.read] = map[int64]bool{}
		}
		for pos := int64(rb.block.Start); pos <= int64(rb.block.End); pos++ {
			p := pos
			if p > refLen {
				p -= refLen
			}
			covered[rb.read][p] = true
		}
	}
	var total int64
	for _, positions := range covered {
		total += int64(len(positions))
	}
	return total
}

func TestCountAlignedBasesRandom(t *testing.T) {
	reads := []string{"r1", "r2", "r3", "r4"}
	for iter := 0; iter < 300; iter++ {
		refLen := int64(rand.Intn(100) + 1)
		var blocks []readBlock
		for i := rand.Intn(20); i > 0; i-- {
			start := rand.Int63n(2*refLen) + 1
			end := start + rand.Int63n(2*refLen-start+1)
			blocks = append(blocks, readBlock{reads[rand.Intn(len(reads))], Block{bi.PosType(start), bi.PosType(end)}})
		}
		want := bruteForce(blocks, refLen)

		// Insertion order must not matter.
		rand.Shuffle(len(blocks), func(i, j int) { blocks[i], blocks[j] = blocks[j], blocks[i] })
		set := newSet(blocks...)
		for _, m := range methods {
			got, err := CountAlignedBases(set, refLen, m)
			assert.NoError(t, err)
			expect.EQ(t, got, want, "refLen=%d method=%v blocks=%v", refLen, m, blocks)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range methods {
		parsed, err := ParseMethod(m.String())
		assert.NoError(t, err)
		expect.EQ(t, parsed, m)
	}
	_, err := ParseMethod("union")
	expect.True(t, errors.Is(errors.Invalid, err))
}
