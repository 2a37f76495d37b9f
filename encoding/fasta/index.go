package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/rotla/bio/util"
)

// IndexEntry is one line of a FASTA index (*.fai).  The format is defined by
// "samtools faidx" (http://www.htslib.org/doc/faidx.html):
// "<sequence name>\t<length>\t<byte offset>\t<bases per line>\t<bytes per line>".
// For example: "chr3\t12345\t9000\t80\t81".
type IndexEntry struct {
	Name      string
	Length    int64
	Offset    int64
	LineBases int64
	LineWidth int64
}

func writeIndexEntry(w *tsv.Writer, ent IndexEntry) error {
	w.WriteString(ent.Name)
	w.WriteInt64(ent.Length)
	w.WriteInt64(ent.Offset)
	w.WriteInt64(ent.LineBases)
	w.WriteInt64(ent.LineWidth)
	return w.EndLine()
}

// GenerateIndex generates an index (*.fai) from FASTA.  Sequence names are the
// header text up to the first space.
func GenerateIndex(out io.Writer, in io.Reader) (err error) {
	var (
		tsvOut  = tsv.NewWriter(out)
		r       = bufio.NewReader(in)
		ent     IndexEntry
		cumByte int64
		eof     bool
	)

	setErr := func(e error) {
		if e != nil && err == nil {
			err = e
		}
	}
	for !eof && err == nil {
		fullLine, e := r.ReadBytes('\n')
		if e == io.EOF { // Process fullLine, then exit the loop
			eof = true
		} else if e != nil {
			setErr(e)
		}
		cumByte += int64(len(fullLine))
		line := bytes.TrimRight(fullLine, "\r\n")
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' { // Start a new sequence.
			if ent.LineWidth != 0 {
				if ent.Name == "" {
					setErr(errors.E(errors.Invalid, "malformed FASTA file"))
				}
				setErr(writeIndexEntry(tsvOut, ent))
			}
			ent = IndexEntry{
				Name:   strings.Split(string(line[1:]), " ")[0],
				Offset: cumByte,
			}
			continue
		}
		if ent.LineWidth == 0 {
			ent.LineWidth = int64(len(fullLine))
			ent.LineBases = int64(len(line))
		}
		ent.Length += int64(len(line))
	}
	setErr(writeIndexEntry(tsvOut, ent))
	setErr(tsvOut.Flush())
	if cumByte == 0 {
		setErr(errors.E(errors.Invalid, "empty FASTA file"))
	}
	return
}

// GenerateIndexFile writes the index of the FASTA at fastaPath (optionally
// gzipped) to indexPath.
func GenerateIndexFile(ctx context.Context, fastaPath, indexPath string) (err error) {
	in, err := util.Open(ctx, fastaPath)
	if err != nil {
		return errors.E(err, "open", fastaPath)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", fastaPath)
		}
	}()
	// Built in memory first so that a malformed FASTA leaves no index behind.
	var buf bytes.Buffer
	if err = GenerateIndex(&buf, in); err != nil {
		return errors.E(err, fastaPath)
	}
	out, err := file.Create(ctx, indexPath)
	if err != nil {
		return errors.E(err, "create", indexPath)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if _, err = out.Writer(ctx).Write(buf.Bytes()); err != nil {
		return errors.E(err, "write", indexPath)
	}
	log.Printf("%s: wrote index %s", fastaPath, indexPath)
	return nil
}

// ReadIndex parses a FASTA index, returning its entries in file order.
func ReadIndex(in io.Reader) ([]IndexEntry, error) {
	r := tsv.NewReader(in)
	var entries []IndexEntry
	for {
		var ent IndexEntry
		if err := r.Read(&ent); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(errors.Invalid, err, "read FASTA index")
		}
		if ent.Length < 0 {
			return nil, errors.E(errors.Invalid, "negative length for sequence", ent.Name)
		}
		entries = append(entries, ent)
	}
	return entries, nil
}

// IndexTotalLength returns the summed sequence length recorded in the FASTA
// index at path.  This is the same number CountBasesFromPath computes from
// the FASTA itself, without reading the sequence data.
func IndexTotalLength(ctx context.Context, path string) (total int64, err error) {
	in, err := util.Open(ctx, path)
	if err != nil {
		return 0, errors.E(err, "open", path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	entries, err := ReadIndex(in)
	if err != nil {
		return 0, errors.E(err, path)
	}
	for _, ent := range entries {
		total += ent.Length
	}
	log.Debug.Printf("%s: %d sequence(s), %d base(s)", path, len(entries), total)
	return total, nil
}
