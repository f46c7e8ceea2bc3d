package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

type flags struct {
	output         string
	batch          bool
	verbose        bool
	tocDepth       int
	tocDepthSet    bool
	config         string
	noInlineImages bool
	version        bool
}

// parseFlags parses args and returns the input files.
func parseFlags(args []string, stderr io.Writer) (*flags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &flags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (ignored with --batch)")
	fs.BoolVar(&f.batch, "batch", false, "write each output next to its input")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output with error details")
	fs.IntVarP(&f.tocDepth, "toc-depth", "d", 1, "deepest heading level in the sidebar (1-6)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.noInlineImages, "no-inline-images", false, "keep image paths instead of embedding")
	fs.BoolVar(&f.version, "version", false, "show version")

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.tocDepthSet = fs.Changed("toc-depth")
	return f, fs.Args(), nil
}
