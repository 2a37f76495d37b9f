package alignedbases

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
)

// OutputSuffix is appended to the sample prefix to name the result file.
const OutputSuffix = ".aligned_bases.txt"

// OutputPath returns the default result path for a sample prefix.
func OutputPath(prefix string) string {
	return prefix + OutputSuffix
}

// WriteResult writes the single line "<sampleID>\t<count>\n" to path.
func WriteResult(ctx context.Context, path, sampleID string, count int64) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return errors.E(err, "create", path)
	}
	defer file.CloseAndReport(ctx, out, &err)

	w := tsv.NewWriter(out.Writer(ctx))
	w.WriteString(sampleID)
	w.WriteInt64(count)
	if err = w.EndLine(); err != nil {
		return errors.E(err, "write", path)
	}
	if err = w.Flush(); err != nil {
		return errors.E(err, "write", path)
	}
	return nil
}
