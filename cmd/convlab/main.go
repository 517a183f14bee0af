// Package main provides the convlab CLI.
//
// It runs the reference convolution scenario through both algorithms and
// reports whether their outputs agree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/convlab/internal/backend/cpu"
	"github.com/born-ml/convlab/internal/fixture"
	"github.com/born-ml/convlab/internal/tensor"
)

const version = "v0.1.0-dev"

// options holds the parsed command line.
type options struct {
	cfg   cpu.Config
	dtype string
	dump  bool
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("convlab %s\n", version)
		return
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("convlab: %v", err)
	}

	var ok bool
	switch opts.dtype {
	case "int":
		ok, err = run[int](opts)
	case "float32":
		ok, err = run[float32](opts)
	case "float64":
		ok, err = run[float64](opts)
	default:
		log.Fatalf("convlab: unsupported dtype %q (want int, float32 or float64)", opts.dtype)
	}
	if err != nil {
		log.Fatalf("convlab: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("convlab", flag.ContinueOnError)
	strideH := fs.Int("stride-h", 2, "Vertical stride for the cross-check run")
	strideW := fs.Int("stride-w", 2, "Horizontal stride for the cross-check run")
	padH := fs.Int("pad-h", 2, "Vertical zero padding for the cross-check run")
	padW := fs.Int("pad-w", 2, "Horizontal zero padding for the cross-check run")
	dtype := fs.String("dtype", "int", "Element type: int, float32 or float64")
	printOut := fs.Bool("print", false, "Print the cross-check output tensor")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	cfg := cpu.DefaultConfig().WithStride(*strideH, *strideW).WithPadding(*padH, *padW)
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, dtype: *dtype, dump: *printOut}, nil
}

// run checks both algorithms against the reference output, then against each
// other with the configured stride and padding.
func run[T tensor.Numeric](opts options) (bool, error) {
	input := fixture.Input[T]()
	filters := fixture.Filters[T]()
	want := fixture.ReferenceOutput[T]()

	fmt.Printf("convlab %s: input %v, %d filters %v, dtype %s\n",
		version, input.Shape(), len(filters), filters[0].Shape(), tensor.DataTypeOf[T]())

	allOK := true
	for _, algo := range cpu.Algorithms {
		var out tensor.Tensor[T]
		if err := convolveInto(&out, input, filters, cpu.DefaultConfig(), algo); err != nil {
			return false, err
		}
		equal := out.Equal(want)
		allOK = allOK && equal
		fmt.Printf("%-7s stride [1 1] pad [0 0] vs reference: Tensors are equal: %t\n", algo, equal)
	}

	direct, err := cpu.Conv2D(input, filters, opts.cfg, cpu.AlgoDirect)
	if err != nil {
		return false, err
	}
	im2col, err := cpu.Conv2D(input, filters, opts.cfg, cpu.AlgoIm2col)
	if err != nil {
		return false, err
	}
	equal := direct.Equal(im2col)
	allOK = allOK && equal
	fmt.Printf("direct vs im2col, stride %v pad %v, output %v: Tensors are equal: %t\n",
		opts.cfg.Stride, opts.cfg.Padding, direct.Shape(), equal)

	if opts.dump {
		fmt.Print(im2col)
	}
	return allOK, nil
}

func convolveInto[T tensor.Numeric](out, input *tensor.Tensor[T], filters []*tensor.Tensor[T], cfg cpu.Config, algo cpu.Algorithm) error {
	if algo == cpu.AlgoDirect {
		return cpu.Conv2DDirectInto(out, input, filters, cfg)
	}
	return cpu.Conv2DIm2colInto(out, input, filters, cfg)
}
