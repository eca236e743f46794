package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/glosa/file"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "parse all chapter files in a directory into a store",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Usage: "directory with .chapter files", Value: "."},
			storeFlag(),
			&cli.BoolFlag{Name: "skip-errors", Usage: "skip files that fail to parse instead of aborting"},
		},
		Action: func(ctx *cli.Context) error {
			from := ctx.String("from")
			paths, err := file.List(from)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no %s files in %s", file.Ext, from)
			}

			repo, release, err := newWritableRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			uiprogress.Start()
			bar := uiprogress.AddBar(len(paths))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, p := range paths {
				ch, err := file.ReadChapter(p)
				if err != nil {
					if ctx.Bool("skip-errors") {
						fmt.Fprintf(ctx.App.ErrWriter, "glosa: %v\n", err)
						bar.Incr()
						continue
					}
					uiprogress.Stop()
					return err
				}

				if err := repo.Write(file.Name(p), ch); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write chapter %s: %w", file.Name(p), err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(ctx.App.Writer, "Successfully imported %d chapters from %s to %s\n", count, from, ctx.String("store"))
			return nil
		},
	}
}
