// Package alignedbases counts, for one sample aligned against a padded
// circular reference, how many reference bases each read covers, and sums
// that over reads.
//
// Alignment blocks of both mates are pooled per read name into a
// ReadBlockSet, folded back onto the unpadded reference, merged per read so
// that overlapping blocks of the same read count once, and summed.  Coverage
// is deliberately not deduplicated across different reads.
package alignedbases

import (
	"sort"

	bi "github.com/rotla/bio/interval"
)

// Block is an alignment block in padded-reference coordinates, 1-based and
// closed: it covers positions Start..End inclusive, with Start <= End.
type Block struct {
	Start, End bi.PosType
}

// ReadBlockSet maps read names to their distinct alignment blocks.  Adding a
// block that a read already has is a no-op, so a block reported twice (for
// example once per mate file) counts once.
//
// Reads are keyed by exact name; the two mates of a pair must therefore carry
// the same name in both PSL files, and unrelated records that happen to share
// a name are merged.
type ReadBlockSet struct {
	reads   map[string]map[Block]struct{}
	nBlocks int
}

// NewReadBlockSet returns an empty ReadBlockSet.
func NewReadBlockSet() *ReadBlockSet {
	return &ReadBlockSet{reads: make(map[string]map[Block]struct{})}
}

// Add inserts b into readName's block set, creating the set on first use.  It
// returns false if the block was already present.
func (s *ReadBlockSet) Add(readName string, b Block) bool {
	blocks, ok := s.reads[readName]
	if !ok {
		blocks = make(map[Block]struct{})
		s.reads[readName] = blocks
	}
	if _, ok := blocks[b]; ok {
		return false
	}
	blocks[b] = struct{}{}
	s.nBlocks++
	return true
}

// NReads returns the number of distinct read names.
func (s *ReadBlockSet) NReads() int {
	return len(s.reads)
}

// NBlocks returns the number of distinct (read, block) pairs.
func (s *ReadBlockSet) NBlocks() int {
	return s.nBlocks
}

// ReadNames returns the read names in sorted order.
func (s *ReadBlockSet) ReadNames() []string {
	names := make([]string, 0, len(s.reads))
	for name := range s.reads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Blocks returns a sorted copy of readName's blocks, or nil if the read is
// unknown.
func (s *ReadBlockSet) Blocks(readName string) []Block {
	set, ok := s.reads[readName]
	if !ok {
		return nil
	}
	blocks := make([]Block, 0, len(set))
	for b := range set {
		blocks = append(blocks, b)
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Start != blocks[j].Start {
			return blocks[i].Start < blocks[j].Start
		}
		return blocks[i].End < blocks[j].End
	})
	return blocks
}
