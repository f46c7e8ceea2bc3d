package mdreport_test

import (
	"context"
	"fmt"
	"log"

	"github.com/signalsphere/mdreport"
)

func ExamplePDFConverter_Convert() {
	conv, err := mdreport.NewPDFConverter(mdreport.WithCompact(true))
	if err != nil {
		log.Fatal(err)
	}

	res, err := conv.Convert(context.Background(), mdreport.PDFInput{
		Markdown: "# Summary\n\nRevenue grew in every region.\n",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Pages, "page")
	for _, line := range res.TOC {
		fmt.Printf("%s ... %d\n", line.Text, line.Page)
	}
	// Output:
	// 1 page
	// Summary ... 1
}

func ExampleHTMLConverter_Convert() {
	conv, err := mdreport.NewHTMLConverter(mdreport.WithTOCDepth(2))
	if err != nil {
		log.Fatal(err)
	}

	res, err := conv.Convert(context.Background(), mdreport.HTMLInput{
		Markdown: "# Summary\n\n## Revenue\n\n## Costs\n",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Title, res.Headings)
	// Output:
	// Summary 3
}
