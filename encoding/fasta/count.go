// Package fasta measures FASTA references.  A FASTA file consists of a number
// of named sequences that may be interrupted by newlines.  For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Lines starting with '>' are headers; every other line contributes its
// bases.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/rotla/bio/util"
)

// CountBases returns the total number of bases in the FASTA data: the summed
// length of all non-header lines, with surrounding whitespace trimmed.  All
// sequences count toward the total.
func CountBases(in io.Reader) (int64, error) {
	var (
		r     = bufio.NewReaderSize(in, 64<<10)
		total int64
	)
	for eof := false; !eof; {
		line, err := r.ReadBytes('\n')
		if err == io.EOF {
			eof = true
		} else if err != nil {
			return 0, errors.Wrap(err, "couldn't read FASTA data")
		}
		if len(line) == 0 || line[0] == '>' {
			continue
		}
		total += int64(len(bytes.TrimSpace(line)))
	}
	return total, nil
}

// CountBasesFromPath is a wrapper for CountBases that takes a path instead of
// an io.Reader.  Gzipped FASTA is accepted.
func CountBasesFromPath(ctx context.Context, path string) (total int64, err error) {
	in, err := util.Open(ctx, path)
	if err != nil {
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.Wrapf(e, "close %s", path)
		}
	}()
	if total, err = CountBases(in); err != nil {
		return 0, errors.Wrap(err, path)
	}
	return total, nil
}
