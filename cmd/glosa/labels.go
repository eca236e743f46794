package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

func labelsCommand() *cli.Command {
	return &cli.Command{
		Name:      "labels",
		Usage:     "list entry labels across all stored chapters",
		ArgsUsage: "[pattern]",
		Flags:     []cli.Flag{storeFlag()},
		Action: func(ctx *cli.Context) error {
			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			labels, err := repo.Labels(ctx.Args().First())
			if err != nil {
				return err
			}

			if len(labels) > 0 {
				fmt.Fprintln(ctx.App.Writer, strings.Join(labels, ", "))
			}
			return nil
		},
	}
}
