package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2pdf <input-file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to a PDF report with a title page,")
	fmt.Fprintln(w, "a table of contents and numbered pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: output.pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Title (default: front matter, first H1, file name)")
	fmt.Fprintln(w, "      --subtitle <s>        Subtitle")
	fmt.Fprintln(w, "      --header-text <s>     Running header (default: title)")
	fmt.Fprintln(w, "      --footer-text <s>     Footer text")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --compact             Title, contents and body share pages")
	fmt.Fprintln(w, "      --toc-prefix <s>      Level-2 prefixes listed in the contents (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -v, --verbose             Show timings and error details")
	fmt.Fprintln(w, "      --version             Show version")
}
