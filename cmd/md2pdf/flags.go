package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// DefaultOutput is written when -o is not given.
const DefaultOutput = "output.pdf"

// documentFlags override the config file and front matter.
type documentFlags struct {
	title      string
	subtitle   string
	headerText string
	footerText string
	date       string
}

// layoutFlags hold page options; the set flags record which were given.
type layoutFlags struct {
	pageSize   string
	compact    bool
	compactSet bool
	tocPrefix  []string
}

type flags struct {
	output   string
	config   string
	verbose  bool
	version  bool
	document documentFlags
	layout   layoutFlags
}

func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (default: front matter, first H1, file name)")
	fs.StringVar(&f.subtitle, "subtitle", "", "document subtitle")
	fs.StringVar(&f.headerText, "header-text", "", "running header text (default: title)")
	fs.StringVar(&f.footerText, "footer-text", "", "footer text left of the page number")
	fs.StringVar(&f.date, "date", "", "title page date: literal, \"auto\" or \"auto:FORMAT\"")
}

func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.StringVar(&f.pageSize, "page-size", "", "page size: letter, a4, legal")
	fs.BoolVar(&f.compact, "compact", false, "keep title, contents and body on shared pages")
	fs.StringSliceVar(&f.tocPrefix, "toc-prefix", nil, "level-2 heading prefixes listed in the contents (repeatable)")
}

// parseFlags parses args and returns the positional arguments.
func parseFlags(args []string, stderr io.Writer) (*flags, []string, error) {
	fs := flag.NewFlagSet("md2pdf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &flags{}

	fs.StringVarP(&f.output, "output", "o", DefaultOutput, "output PDF file")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timings and error details")
	fs.BoolVar(&f.version, "version", false, "show version")
	addDocumentFlags(fs, &f.document)
	addLayoutFlags(fs, &f.layout)

	fs.Usage = func() { printUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.layout.compactSet = fs.Changed("compact")
	return f, fs.Args(), nil
}
