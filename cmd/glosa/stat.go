package main

import (
	"fmt"

	"github.com/revelaction/glosa/stat"
	"github.com/urfave/cli/v2"
)

func statCommand() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print counts for a stored chapter",
		ArgsUsage: "<chapter>",
		Flags:     []cli.Flag{storeFlag()},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 1 {
				return fmt.Errorf("expected one chapter name")
			}

			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			ch, err := repo.ReadByName(ctx.Args().First())
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()
			hdl.Aggregate(ch)

			stats := hdl.Get()
			fmt.Fprintf(ctx.App.Writer, "Entries %d (%d labeled), annotations %d (%d per entry), translation lines %d\n",
				stats.NumEntries, stats.NumLabeled, stats.NumAnnotations, stats.AnnotationsPerEntryMean, stats.NumTranslationLines)
			return nil
		},
	}
}
