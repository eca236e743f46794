package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/glosa/glossary"
	"github.com/urfave/cli/v2"
)

func glossaryCommand() *cli.Command {
	return &cli.Command{
		Name:      "glossary",
		Usage:     "print the phrase glossary of one chapter or the whole store",
		ArgsUsage: "[chapter]",
		Flags:     []cli.Flag{storeFlag()},
		Action: func(ctx *cli.Context) error {
			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			hdl := glossary.NewHandler()

			if name := ctx.Args().First(); name != "" {
				ch, err := repo.ReadByName(name)
				if err != nil {
					return err
				}
				hdl.Aggregate(ch)
			} else {
				metas, err := repo.List()
				if err != nil {
					return err
				}
				for _, m := range metas {
					ch, err := repo.Read(m.Id)
					if err != nil {
						return err
					}
					hdl.Aggregate(ch)
				}
			}

			for _, g := range hdl.Get() {
				line := fmt.Sprintf("%s = %s", g.Phrase, strings.Join(g.Meanings, "; "))
				if g.Count > 1 {
					line += fmt.Sprintf(" (%d)", g.Count)
				}
				fmt.Fprintln(ctx.App.Writer, line)
			}
			return nil
		},
	}
}
