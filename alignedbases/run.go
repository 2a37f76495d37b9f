package alignedbases

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/rotla/bio/encoding/fasta"
)

// referenceLength returns the length of the reference at refPath.  If
// indexPath is set, the length comes from that FASTA index, which is first
// generated from refPath if it does not exist yet.
func referenceLength(ctx context.Context, refPath, indexPath string) (int64, error) {
	if indexPath == "" {
		return fasta.CountBasesFromPath(ctx, refPath)
	}
	refLen, err := fasta.IndexTotalLength(ctx, indexPath)
	if err == nil || !errors.Is(errors.NotExist, err) {
		return refLen, err
	}
	if err = fasta.GenerateIndexFile(ctx, refPath, indexPath); err != nil {
		return 0, err
	}
	return fasta.IndexTotalLength(ctx, indexPath)
}

// Run computes the aligned base count of one sample and writes it out.
//
// The reference length comes from opts.ReferenceIndex if set (generating the
// index from refPath when it is missing), otherwise from the FASTA at
// refPath.  Blocks are collected from prefix+opts.Mate1Suffix and
// prefix+opts.Mate2Suffix into one ReadBlockSet, counted with opts.Method,
// and the line "<prefix>\t<count>" is written to opts.OutputPath (default
// OutputPath(prefix)).  The result file is written only if every earlier
// step succeeded.
func Run(ctx context.Context, prefix, refPath string, opts *Opts) (count int64, err error) {
	method, err := opts.validate()
	if err != nil {
		return 0, err
	}

	refLen, err := referenceLength(ctx, refPath, opts.ReferenceIndex)
	if err != nil {
		return 0, errors.E(err, "reference length")
	}
	log.Printf("%s: reference length %d", prefix, refLen)

	set := NewReadBlockSet()
	for _, suffix := range []string{opts.Mate1Suffix, opts.Mate2Suffix} {
		path := prefix + suffix
		if err = CollectBlocks(ctx, path, set); err != nil {
			return 0, err
		}
		log.Printf("%s: collected, %d read(s) and %d distinct block(s) so far", path, set.NReads(), set.NBlocks())
	}

	if count, err = CountAlignedBases(set, refLen, method); err != nil {
		return 0, errors.E(err, prefix)
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = OutputPath(prefix)
	}
	if err = WriteResult(ctx, outPath, prefix, count); err != nil {
		return 0, err
	}
	log.Printf("%s: %d aligned base(s) (%v), written to %s", prefix, count, method, outPath)
	return count, nil
}
