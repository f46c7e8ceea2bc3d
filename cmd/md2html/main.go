// Command md2html converts Markdown files into self-contained HTML pages.
package main

import (
	"context"
	"os"

	"github.com/signalsphere/mdreport/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := cli.NotifyContext(context.Background())
	code := run(ctx, os.Args[1:], cli.DefaultEnv())
	stop()
	os.Exit(code)
}
