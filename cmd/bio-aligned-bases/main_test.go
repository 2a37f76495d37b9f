package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	usage(&buf, "bio-aligned-bases")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expect.EQ(t, len(lines), 2)
	expect.EQ(t, lines[0], "Usage: bio-aligned-bases [OPTIONS] <PSL file prefix> <reference FASTA>")
	expect.True(t, strings.HasSuffix(lines[1], ".aligned_bases.txt with the sample's aligned base count"))
}
