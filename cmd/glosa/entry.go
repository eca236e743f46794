package main

import (
	"fmt"

	"github.com/revelaction/glosa/render"
	"github.com/urfave/cli/v2"
)

func entryCommand() *cli.Command {
	return &cli.Command{
		Name:      "entry",
		Usage:     "look up one entry by label in a stored chapter",
		ArgsUsage: "<chapter> <label>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 2 {
				return fmt.Errorf("expected a chapter name and a label")
			}

			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			ch, err := repo.ReadByName(ctx.Args().Get(0))
			if err != nil {
				return err
			}

			e, err := ch.FindByLabel(ctx.Args().Get(1))
			if err != nil {
				return err
			}

			r := render.NewTextRenderer(ctx.App.Writer)
			r.HasColor = !ctx.Bool("no-color")
			r.HasGloss = true
			return r.Entry(e)
		},
	}
}
