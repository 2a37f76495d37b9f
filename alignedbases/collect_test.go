package alignedbases

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

const pslHeader = `psLayout version 3

match	mis- 	rep. 	N's	Q gap	Q gap	T gap	T gap	strand	Q        	Q   	Q    	Q  	T        	T   	T    	T  	block	blockSizes 	qStarts	 tStarts
     	match	match	   	count	bases	count	bases	      	name     	size	start	end	name     	size	start	end	count
---------------------------------------------------------------------------------------------------------------------------------------------------------------
`

// pslLine formats a PSL data line for qName whose blocks have the given sizes
// and 0-based target starts.
func pslLine(qName string, sizes, starts []int) string {
	var sizeList, startList, qStartList strings.Builder
	for i := range sizes {
		fmt.Fprintf(&sizeList, "%d,", sizes[i])
		fmt.Fprintf(&startList, "%d,", starts[i])
		qStartList.WriteString("0,")
	}
	return fmt.Sprintf("%d\t0\t0\t0\t0\t0\t0\t0\t+\t%s\t150\t0\t150\tchrM\t20\t%d\t%d\t%d\t%s\t%s\t%s\n",
		sizes[0], qName, starts[0], starts[0]+sizes[0], len(sizes),
		sizeList.String(), qStartList.String(), startList.String())
}

func TestCollectBlocksFrom(t *testing.T) {
	set := NewReadBlockSet()
	mate1 := pslHeader +
		pslLine("read1", []int{4}, []int{1}) + // (2,5)
		pslLine("read2", []int{3, 2}, []int{0, 9}) // (1,3), (10,11)
	mate2 := pslHeader +
		pslLine("read1", []int{4}, []int{1}) + // (2,5) again
		pslLine("read1", []int{5}, []int{11}) // (12,16)
	assert.NoError(t, CollectBlocksFrom(strings.NewReader(mate1), "mate1", set))
	assert.NoError(t, CollectBlocksFrom(strings.NewReader(mate2), "mate2", set))

	expect.EQ(t, set.ReadNames(), []string{"read1", "read2"})
	// The block reported by both mates is stored once.
	expect.EQ(t, set.Blocks("read1"), []Block{{2, 5}, {12, 16}})
	expect.EQ(t, set.Blocks("read2"), []Block{{1, 3}, {10, 11}})

	count, err := CountAlignedBases(set, 10, MethodMerge)
	assert.NoError(t, err)
	// read1: (2,5) U (2,6) = 5 positions; read2: (1,3) U (10,10) U (1,1) = 4.
	expect.EQ(t, count, int64(9))
}

// Records are merged by read name alone.  Two unrelated alignments that share
// a name are indistinguishable from the two mates of one pair, and their
// blocks are pooled; nothing checks that they really are mates.
func TestCollectBlocksMergesBySharedName(t *testing.T) {
	set := NewReadBlockSet()
	mate1 := pslHeader + pslLine("dup", []int{5}, []int{0})
	mate2 := pslHeader + pslLine("dup", []int{5}, []int{0})
	assert.NoError(t, CollectBlocksFrom(strings.NewReader(mate1), "mate1", set))
	assert.NoError(t, CollectBlocksFrom(strings.NewReader(mate2), "mate2", set))
	count, err := CountAlignedBases(set, 10, MethodMerge)
	assert.NoError(t, err)
	expect.EQ(t, count, int64(5))
}

func TestCollectBlocksErrors(t *testing.T) {
	ctx := vcontext.Background()
	tmpDir, cleanup := testutil.TempDir(t, "", "")
	defer testutil.NoCleanupOnError(t, cleanup, tmpDir)

	shortPath := filepath.Join(tmpDir, "short.psl")
	assert.NoError(t, ioutil.WriteFile(shortPath, []byte("psLayout version 3\n"), 0644))
	err := CollectBlocks(ctx, shortPath, NewReadBlockSet())
	expect.True(t, errors.Is(errors.Invalid, err))
	assert.HasSubstr(t, err.Error(), shortPath)
	assert.HasSubstr(t, err.Error(), "fewer than 5 header lines")

	badPath := filepath.Join(tmpDir, "bad.psl")
	assert.NoError(t, ioutil.WriteFile(badPath, []byte(pslHeader+"read1\t5,\t0,\n"), 0644))
	err = CollectBlocks(ctx, badPath, NewReadBlockSet())
	expect.True(t, errors.Is(errors.Invalid, err))
	assert.HasSubstr(t, err.Error(), badPath)
	assert.HasSubstr(t, err.Error(), "line 6")

	err = CollectBlocks(ctx, filepath.Join(tmpDir, "missing.psl"), NewReadBlockSet())
	expect.True(t, err != nil)
}
