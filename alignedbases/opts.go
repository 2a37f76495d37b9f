package alignedbases

import (
	"github.com/grailbio/base/errors"
)

// Opts configures Run.
type Opts struct {
	// ReferenceIndex is an optional samtools .fai for the reference.  When set,
	// the reference length is the sum of its lengths and the FASTA itself is
	// only read to generate the index if the file does not exist.
	ReferenceIndex string
	// Method is "merge" or "bitmap"; see Method.
	Method string
	// Mate1Suffix and Mate2Suffix are appended to the sample prefix to locate
	// the PSL files of the two mates.
	Mate1Suffix string
	Mate2Suffix string
	// OutputPath overrides OutputPath(prefix).
	OutputPath string
}

// DefaultOpts is the default Opts.
var DefaultOpts = Opts{
	Method:      "merge",
	Mate1Suffix: ".read_1.psl",
	Mate2Suffix: ".read_2.psl",
}

// validate checks o for errors and returns the parsed Method.
func (o *Opts) validate() (Method, error) {
	method, err := ParseMethod(o.Method)
	if err != nil {
		return method, err
	}
	if o.Mate1Suffix == "" || o.Mate2Suffix == "" {
		return method, errors.E(errors.Invalid, "mate PSL suffixes must be nonempty")
	}
	if o.Mate1Suffix == o.Mate2Suffix {
		return method, errors.E(errors.Invalid, "mate PSL suffixes must differ:", o.Mate1Suffix)
	}
	return method, nil
}
