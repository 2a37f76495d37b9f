// Package psl reads alignment blocks from PSL files, as written by BLAT and
// pblat.  A PSL file starts with HeaderLines lines of header and is followed
// by one whitespace-separated line per alignment.  See
// https://genome.ucsc.edu/FAQ/FAQformat.html#format2.
package psl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/grailbio/base/errors"
)

// HeaderLines is the number of leading lines (psLayout banner, column names,
// separator) that are discarded before data lines start.
const HeaderLines = 5

const maxLineLen = 64 << 20

var (
	// ErrShortHeader is returned when the input ends before HeaderLines lines
	// were read.
	ErrShortHeader = errors.E(errors.Invalid, fmt.Sprintf("PSL input has fewer than %d header lines", HeaderLines))

	errEOF = errors.E("eof")
)

// Scanner provides a convenient interface for reading PSL records.  The Scan
// method returns the next record, returning a boolean indicating whether the
// read succeeded.  Scanners are not threadsafe.
//
// Header lines are skipped without inspection.  Every later line, blank ones
// included, must parse with ParseRecord.
type Scanner struct {
	b          *bufio.Scanner
	err        error
	line       int
	headerDone bool
}

// NewScanner constructs a new Scanner that reads PSL data from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineLen)
	return &Scanner{b: b}
}

func (s *Scanner) skipHeader() bool {
	for s.line < HeaderLines {
		if !s.b.Scan() {
			if s.err = s.b.Err(); s.err == nil {
				s.err = ErrShortHeader
			}
			return false
		}
		s.line++
	}
	s.headerDone = true
	return true
}

// Scan the next record into rec.  Scan returns a boolean indicating whether
// the scan succeeded.  Once Scan returns false, it never returns true again.
// Upon completion, the user should check the Err method to determine whether
// scanning stopped because of an error or because the end of the stream was
// reached.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	if !s.headerDone && !s.skipHeader() {
		return false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errEOF
		}
		return false
	}
	s.line++
	if err := ParseRecord(s.b.Bytes(), rec); err != nil {
		s.err = errors.E(errors.Invalid, fmt.Sprintf("line %d", s.line), err)
		return false
	}
	return true
}

// Line returns the 1-based number of the line last read, counting header
// lines.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the scanning error, if any.
func (s *Scanner) Err() error {
	if s.err == errEOF {
		return nil
	}
	return s.err
}
