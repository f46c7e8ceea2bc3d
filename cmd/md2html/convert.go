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
	"github.com/signalsphere/mdreport/internal/fileutil"
)

// run converts every input and returns the exit code. Failures of one file
// are reported and the remaining files are still processed.
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
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return cli.ExitSuccess
	}

	env.SetVerbose(f.verbose)
	defer cli.SetMaxProcs(env.Logger)()

	if len(inputs) == 0 {
		fmt.Fprintf(env.Stderr, "Error: %v\n", cli.ErrNoInput)
		printUsage(env.Stderr)
		return cli.ExitUsage
	}

	cfg, err := env.LoadConfig(f.config)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return cli.ExitCodeFor(err)
	}

	conv, err := mdreport.NewHTMLConverter(options(f, cfg, env)...)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, cli.Hint(err, ""))
		return cli.ExitCodeFor(err)
	}

	failed := 0
	for _, input := range inputs {
		out, err := convertFile(ctx, conv, f, cfg, env, input)
		switch {
		case errors.Is(err, mdreport.ErrFileNotFound):
			fmt.Fprintf(env.Stderr, "Error: File '%s' not found\n", input)
			failed++
		case err != nil:
			fmt.Fprintf(env.Stderr, "Error converting '%s': %s%s\n", input, cli.FormatError(err, f.verbose), cli.Hint(err, input))
			failed++
		case f.verbose:
			fmt.Fprintf(env.Stdout, "✓ Converted: %s → %s\n", input, out)
		default:
			fmt.Fprintf(env.Stdout, "✓ %s\n", out)
		}
	}

	if failed > 0 {
		env.Logger.Debug("batch finished", "files", len(inputs), "failed", failed)
		return cli.ExitGeneral
	}
	return cli.ExitSuccess
}

// options merges flags over the config file. Front matter is applied by the
// converter, below both.
func options(f *flags, cfg *config.Config, env *cli.Environment) []mdreport.Option {
	depth := mdreport.DefaultTOCDepth
	if cfg.HTML.TOCDepth != 0 {
		depth = cfg.HTML.TOCDepth
	}
	if f.tocDepthSet {
		depth = f.tocDepth
	}

	inline := cfg.HTML.InlineImagesEnabled()
	if f.noInlineImages {
		inline = false
	}

	return []mdreport.Option{
		mdreport.WithTOCDepth(depth),
		mdreport.WithInlineImages(inline),
		mdreport.WithAssetPath(cfg.HTML.AssetsPath),
		mdreport.WithClock(env.Now),
	}
}

// convertFile converts one input and returns the path written.
func convertFile(ctx context.Context, conv *mdreport.HTMLConverter, f *flags, cfg *config.Config, env *cli.Environment, input string) (string, error) {
	start := env.Now()

	out, err := outputPath(f, input)
	if err != nil {
		return "", cli.Trace(err)
	}

	markdown, err := mdreport.ReadMarkdown(input)
	if err != nil {
		return "", cli.Trace(err)
	}

	res, err := conv.Convert(ctx, mdreport.HTMLInput{
		Markdown:   markdown,
		SourcePath: input,
		Title:      cfg.Document.Title,
		Subtitle:   cfg.Document.Subtitle,
		Author:     cfg.Document.Author,
	})
	if err != nil {
		return "", cli.Trace(err)
	}

	if err := mdreport.WriteOutput(out, res.HTML); err != nil {
		return "", cli.Trace(err)
	}

	env.Logger.Debug("converted",
		"input", input,
		"output", out,
		"title", res.Title,
		"headings", res.Headings,
		"bytes", len(res.HTML),
		"elapsed", env.Now().Sub(start).Round(time.Millisecond),
	)
	return out, nil
}

// outputPath is -o unless --batch is set, else the input with .html.
func outputPath(f *flags, input string) (string, error) {
	if f.output != "" && !f.batch {
		return f.output, nil
	}
	return fileutil.ReplaceExt(input, ".html")
}
