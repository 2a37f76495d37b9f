// Package breakpoint merges per-sample breakpoint count tables into one
// matrix with a column per sample.
package breakpoint

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/rotla/bio/util"
)

// Sample names one breakpoint table and the column it fills.
type Sample struct {
	Path string
	ID   string
}

// ReadSampleList parses lines of the form "<path> <sample ID>".  Blank lines
// are skipped.
func ReadSampleList(r io.Reader) ([]Sample, error) {
	var (
		samples []Sample
		scanner = bufio.NewScanner(r)
		lineIdx = 0
	)
	for scanner.Scan() {
		lineIdx++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("sample list line %d: expected '<path> <sample ID>', found %d field(s)", lineIdx, len(fields)))
		}
		samples = append(samples, Sample{Path: fields[0], ID: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

type key struct {
	breakpoint0, breakpoint1 string
}

// Table accumulates breakpoint counts across samples.
type Table struct {
	sampleIDs []string
	// keys lists the distinct breakpoint pairs in order of first appearance.
	keys   []key
	counts map[key]map[string]int
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{counts: make(map[key]map[string]int)}
}

// row is one data line of a per-sample breakpoint table.  Count is kept as
// text since tsv.Reader would accept octal and hex integers.
type row struct {
	Breakpoint0 string
	Breakpoint1 string
	Count       string
}

// AddSample reads one breakpoint table (a header line, then
// "<breakpoint0>\t<breakpoint1>\t<count>" rows) into the column sampleID.  The
// header is not inspected; every row must have exactly three columns and a
// decimal count.  A repeated breakpoint pair overwrites the earlier count for
// this sample.
func (t *Table) AddSample(r io.Reader, sampleID string) error {
	t.sampleIDs = append(t.sampleIDs, sampleID)
	tr := tsv.NewReader(r)
	tr.HasHeaderRow = true
	tr.RequireParseAllColumns = true
	// Let the header have any number of columns.
	tr.FieldsPerRecord = -1
	for nRow := 1; ; nRow++ {
		var rw row
		if err := tr.Read(&rw); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.E(errors.Invalid, err, "sample", sampleID,
				fmt.Sprintf("row %d: want 3 columns (breakpoint0, breakpoint1, count)", nRow))
		}
		count, err := strconv.Atoi(strings.TrimSpace(rw.Count))
		if err != nil {
			return errors.E(errors.Invalid, err, "sample", sampleID, fmt.Sprintf("row %d: count", nRow))
		}
		k := key{rw.Breakpoint0, rw.Breakpoint1}
		byID, ok := t.counts[k]
		if !ok {
			byID = make(map[string]int)
			t.counts[k] = byID
			t.keys = append(t.keys, k)
		}
		byID[sampleID] = count
	}
}

// total sums the counts of k over distinct sample IDs.
func (t *Table) total(k key) int {
	n := 0
	for _, c := range t.counts[k] {
		n += c
	}
	return n
}

// Write emits the matrix: a header line of sample IDs (preceded by an empty
// cell), then one line per breakpoint pair with a count per sample (0 when
// the sample lacks the pair).  Rows are ordered by total count, largest
// first; ties keep their order of first appearance.
func (t *Table) Write(out io.Writer) error {
	keys := append([]key(nil), t.keys...)
	totals := make(map[key]int, len(keys))
	for _, k := range keys {
		totals[k] = t.total(k)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return totals[keys[i]] > totals[keys[j]]
	})

	w := tsv.NewWriter(out)
	w.WriteString("")
	for _, id := range t.sampleIDs {
		w.WriteString(id)
	}
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, k := range keys {
		w.WriteString(k.breakpoint0)
		w.WriteString(k.breakpoint1)
		for _, id := range t.sampleIDs {
			w.WriteInt64(int64(t.counts[k][id]))
		}
		if err := w.EndLine(); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (t *Table) addSampleFromPath(ctx context.Context, s Sample) (err error) {
	in, err := util.Open(ctx, s.Path)
	if err != nil {
		return errors.E(err, "open", s.Path)
	}
	defer func() {
		if e := in.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", s.Path)
		}
	}()
	if err = t.AddSample(in, s.ID); err != nil {
		return errors.E(err, s.Path)
	}
	return nil
}

// Compile reads the sample list at listPath, merges every listed breakpoint
// table, and writes the matrix to outPath.
func Compile(ctx context.Context, listPath, outPath string) (err error) {
	in, err := util.Open(ctx, listPath)
	if err != nil {
		return errors.E(err, "open", listPath)
	}
	samples, err := ReadSampleList(in)
	if e := in.Close(ctx); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return errors.E(err, listPath)
	}

	table := NewTable()
	for _, s := range samples {
		if err = table.addSampleFromPath(ctx, s); err != nil {
			return err
		}
	}
	log.Printf("%s: %d sample(s), %d breakpoint pair(s)", listPath, len(samples), len(table.keys))

	var out file.File
	if out, err = file.Create(ctx, outPath); err != nil {
		return errors.E(err, "create", outPath)
	}
	defer file.CloseAndReport(ctx, out, &err)
	if err = table.Write(out.Writer(ctx)); err != nil {
		return errors.E(err, "write", outPath)
	}
	return nil
}
