package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Build information, set via ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "glosa: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:        "glosa",
		Usage:       "parse, store and browse bilingual chapter files",
		Writer:      out,
		ErrWriter:   errOut,
		HideVersion: true,
		Commands: []*cli.Command{
			parseCommand(),
			importCommand(),
			lsCommand(),
			labelsCommand(),
			entryCommand(),
			searchCommand(),
			glossaryCommand(),
			statCommand(),
			exportCommand(),
			browseCommand(),
			versionCommand(),
		},
	}
}
