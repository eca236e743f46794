package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "list stored chapters",
		Flags: []cli.Flag{storeFlag()},
		Action: func(ctx *cli.Context) error {
			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			metas, err := repo.List()
			if err != nil {
				return err
			}

			for _, m := range metas {
				fmt.Fprintf(ctx.App.Writer, "📖 %d %s (%d entries)\n", m.Id, m.Name, m.NumEntries)
			}
			return nil
		},
	}
}
