package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <input-file...> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown files to self-contained HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: input with .html)")
	fmt.Fprintln(w, "      --batch               Write each output next to its input")
	fmt.Fprintln(w, "  -d, --toc-depth <n>       Deepest heading level in the sidebar (1-6, default 1)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --no-inline-images    Keep image paths instead of data URIs")
	fmt.Fprintln(w, "  -v, --verbose             Show full paths, timings and error details")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  md2html report.md")
	fmt.Fprintln(w, "  md2html report.md -o site/index.html -d 2")
	fmt.Fprintln(w, "  md2html *.md --batch")
}
