package alignedbases

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/rotla/bio/encoding/psl"
	bi "github.com/rotla/bio/interval"
	"github.com/rotla/bio/util"
)

// CollectBlocks adds the target blocks of every alignment in the PSL file at
// path to set.  It is called once per mate file with the same set.  The first
// malformed line aborts collection; set may then hold the blocks of the
// records before it.
func CollectBlocks(ctx context.Context, path string, set *ReadBlockSet) (err error) {
	in, err := util.Open(ctx, path)
	if err != nil {
		return errors.E(err, "open", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	return CollectBlocksFrom(in, path, set)
}

// CollectBlocksFrom is CollectBlocks for an already open PSL stream.  name
// identifies the stream in errors and logs.
func CollectBlocksFrom(r io.Reader, name string, set *ReadBlockSet) error {
	var (
		scanner = psl.NewScanner(r)
		rec     psl.Record
		nRec    int
		nNew    int
	)
	add := func(start1, end1 bi.PosType) {
		if set.Add(rec.QName, Block{Start: start1, End: end1}) {
			nNew++
		}
	}
	for scanner.Scan(&rec) {
		nRec++
		rec.Blocks(add)
	}
	if err := scanner.Err(); err != nil {
		return errors.E(err, name)
	}
	log.Debug.Printf("%s: %d line(s), %d alignment(s), %d new block(s)", name, scanner.Line(), nRec, nNew)
	return nil
}
