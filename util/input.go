// Package util holds input helpers shared by the command-line tools and their
// libraries.
package util

import (
	"context"
	"io"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/klauspost/compress/gzip"
)

// Input is a text input opened through grailbio/base/file.  Gzipped paths
// (as classified by fileio.DetermineType) are decompressed transparently.
type Input struct {
	io.Reader
	f  file.File
	gz *gzip.Reader
}

// Open opens path for reading.  The caller must call Close.
func Open(ctx context.Context, path string) (*Input, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	in := &Input{Reader: f.Reader(ctx), f: f}
	if fileio.DetermineType(path) == fileio.Gzip {
		if in.gz, err = gzip.NewReader(in.Reader); err != nil {
			_ = f.Close(ctx)
			return nil, errors.E(errors.Invalid, err, "gzip", path)
		}
		in.Reader = in.gz
	}
	return in, nil
}

// Close releases the decompressor, if any, and the underlying file.
func (in *Input) Close(ctx context.Context) (err error) {
	if in.gz != nil {
		err = in.gz.Close()
	}
	if e := in.f.Close(ctx); e != nil && err == nil {
		err = e
	}
	return
}
