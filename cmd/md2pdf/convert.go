package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/signalsphere/mdreport"
	"github.com/signalsphere/mdreport/internal/cli"
	"github.com/signalsphere/mdreport/internal/config"
)

// run converts the single input and returns the exit code. Any failure
// aborts the run.
func run(ctx context.Context, args []string, env *cli.Environment) int {
	f, inputs, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return cli.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return cli.ExitUsage
	}
	if f.version {
		fmt.Fprintf(env.Stdout, "md2pdf %s\n", Version)
		return cli.ExitSuccess
	}

	env.SetVerbose(f.verbose)
	defer cli.SetMaxProcs(env.Logger)()

	input, err := singleInput(inputs)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		printUsage(env.Stderr)
		return cli.ExitCodeFor(err)
	}

	pages, err := convert(ctx, f, env, input)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %s%s\n", cli.FormatError(err, f.verbose), cli.Hint(err, input))
		return cli.ExitCodeFor(err)
	}

	fmt.Fprintf(env.Stdout, "Created %s (%d pages)\n", f.output, pages)
	return cli.ExitSuccess
}

func singleInput(inputs []string) (string, error) {
	switch len(inputs) {
	case 0:
		return "", cli.ErrNoInput
	case 1:
		return inputs[0], nil
	default:
		return "", fmt.Errorf("%w: expected one input file, got %d", cli.ErrUsage, len(inputs))
	}
}

// convert runs the whole pipeline and returns the page count.
func convert(ctx context.Context, f *flags, env *cli.Environment, input string) (int, error) {
	cfg, err := env.LoadConfig(f.config)
	if err != nil {
		return 0, err
	}

	conv, err := mdreport.NewPDFConverter(options(f, cfg, env)...)
	if err != nil {
		return 0, cli.Trace(err)
	}

	start := env.Now()
	markdown, err := mdreport.ReadMarkdown(input)
	if err != nil {
		return 0, cli.Trace(err)
	}

	res, err := conv.Convert(ctx, pdfInput(f, cfg, input, markdown))
	if err != nil {
		return 0, cli.Trace(err)
	}
	env.Logger.Debug("laid out",
		"input", input,
		"title", res.Title,
		"pages", res.Pages,
		"toc", len(res.TOC),
		"elapsed", env.Now().Sub(start).Round(time.Millisecond),
	)

	if err := mdreport.WriteOutput(f.output, res.PDF); err != nil {
		return 0, cli.Trace(err)
	}
	env.Logger.Debug("written", "output", f.output, "bytes", len(res.PDF))
	return res.Pages, nil
}

// options merges flags over the config file.
func options(f *flags, cfg *config.Config, env *cli.Environment) []mdreport.Option {
	pageSize := firstSet(f.layout.pageSize, cfg.PDF.PageSize, mdreport.DefaultPageSize)

	compact := cfg.PDF.Compact
	if f.layout.compactSet {
		compact = f.layout.compact
	}

	rule := mdreport.DefaultTOCRule()
	if toc := cfg.PDF.TOC; len(toc.Prefixes) > 0 || len(toc.Exact) > 0 || toc.AllLevel2 {
		rule = mdreport.TOCRule{Prefixes: toc.Prefixes, Exact: toc.Exact, AllLevel2: toc.AllLevel2}
	}
	if len(f.layout.tocPrefix) > 0 {
		rule.Prefixes = f.layout.tocPrefix
	}

	return []mdreport.Option{
		mdreport.WithPageSize(pageSize),
		mdreport.WithMargin(cfg.PDF.Margin),
		mdreport.WithCompact(compact),
		mdreport.WithTOCRule(rule),
		mdreport.WithTOCTitle(cfg.PDF.TOC.Title),
		mdreport.WithClock(env.Now),
	}
}

func pdfInput(f *flags, cfg *config.Config, input, markdown string) mdreport.PDFInput {
	d := f.document
	return mdreport.PDFInput{
		Markdown:   markdown,
		SourcePath: input,
		Title:      firstSet(d.title, cfg.Document.Title),
		Subtitle:   firstSet(d.subtitle, cfg.Document.Subtitle),
		Author:     cfg.Document.Author,
		Date:       firstSet(d.date, cfg.PDF.Date),
		HeaderText: firstSet(d.headerText, cfg.PDF.HeaderText),
		FooterText: firstSet(d.footerText, cfg.PDF.FooterText),
	}
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
