package main

// See doc.go for documentation

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/rotla/bio/alignedbases"
)

var (
	faiPath     = flag.String("fai", alignedbases.DefaultOpts.ReferenceIndex, "Reference .fai index; when set, the reference length is read from it instead of the FASTA, generating it first if missing")
	method      = flag.String("method", alignedbases.DefaultOpts.Method, "Per-read union method, 'merge' or 'bitmap'")
	mate1Suffix = flag.String("mate1-suffix", alignedbases.DefaultOpts.Mate1Suffix, "Suffix of the first mate's PSL file")
	mate2Suffix = flag.String("mate2-suffix", alignedbases.DefaultOpts.Mate2Suffix, "Suffix of the second mate's PSL file")
	outPath     = flag.String("out", alignedbases.DefaultOpts.OutputPath, "Output path (default <prefix>"+alignedbases.OutputSuffix+")")
)

func usage(w io.Writer, cmd string) {
	fmt.Fprintf(w, "Usage: %s [OPTIONS] <PSL file prefix> <reference FASTA>\n", cmd)
	fmt.Fprintf(w, "Writes <PSL file prefix>%s with the sample's aligned base count\n", alignedbases.OutputSuffix)
}

func main() {
	flag.Usage = func() {
		usage(os.Stderr, os.Args[0])
		flag.PrintDefaults()
	}
	shutdown := grail.Init()
	defer shutdown()

	args := flag.Args()
	if len(args) < 2 {
		usage(os.Stderr, os.Args[0])
		os.Exit(1)
	}
	if len(args) > 2 {
		log.Printf("ignoring extra arguments %v", args[2:])
	}
	opts := alignedbases.Opts{
		ReferenceIndex: *faiPath,
		Method:         *method,
		Mate1Suffix:    *mate1Suffix,
		Mate2Suffix:    *mate2Suffix,
		OutputPath:     *outPath,
	}
	ctx := vcontext.Background()
	if _, err := alignedbases.Run(ctx, args[0], args[1], &opts); err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}
