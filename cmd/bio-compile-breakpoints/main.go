package main

// See doc.go for documentation

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/rotla/bio/breakpoint"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <list file> <output file>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Each list file line is '<breakpoint table> <sample ID>'\n")
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	ctx := vcontext.Background()
	if err := breakpoint.Compile(ctx, args[0], args[1]); err != nil {
		log.Fatalf("compile %s: %v", args[0], err)
	}
}
