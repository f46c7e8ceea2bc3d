// Package mdreport converts Markdown reports into a navigable HTML page or a
// paginated PDF.
//
// # HTML
//
//	conv, err := mdreport.NewHTMLConverter(mdreport.WithTOCDepth(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := conv.Convert(ctx, mdreport.HTMLInput{
//	    Markdown:   src,
//	    SourcePath: "report.md",
//	})
//
// The page is self-contained: stylesheet, highlight CSS and script are
// inlined, and local images are embedded as data URIs. Headings get anchors
// derived from their text, and mentions such as "Chapter 2: Growth Drivers"
// are linked to the matching heading.
//
// # PDF
//
//	conv, err := mdreport.NewPDFConverter(mdreport.WithPageSize("a4"))
//	res, err := conv.Convert(ctx, mdreport.PDFInput{Markdown: src})
//	// res.PDF, res.Pages, res.TOC
//
// Layout runs in two passes. The first places every block and records the
// page of each heading; the second draws the pages with the resolved table
// of contents and a "Page X of N" footer carrying the final count.
//
// # Errors
//
// Failures wrap the sentinel errors in this package (ErrFileNotFound,
// ErrParse, ErrWrite, ErrLayout and the option validation errors); test them
// with errors.Is.
package mdreport
