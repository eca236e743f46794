package main

import (
	"fmt"
	"os"

	"github.com/revelaction/glosa/render"
	"github.com/urfave/cli/v2"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "export a stored chapter as JSON",
		ArgsUsage: "<chapter>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default stdout)"},
		},
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

			w := ctx.App.Writer
			if out := ctx.String("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			return render.NewJSONRenderer(w).Chapter(ch)
		},
	}
}
