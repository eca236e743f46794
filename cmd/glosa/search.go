package main

import (
	"fmt"

	"github.com/revelaction/glosa/search"
	"github.com/urfave/cli/v2"
)

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "find entries containing a term",
		ArgsUsage: "<term>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.IntFlag{Name: "chapter", Aliases: []string{"c"}, Usage: "restrict to one chapter id", Value: -1},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 1 {
				return fmt.Errorf("expected one search term")
			}

			repo, release, err := newRepository(ctx.String("store"))
			if err != nil {
				return err
			}
			defer release()

			s := search.New(repo)
			if id := ctx.Int("chapter"); id >= 0 {
				s = s.WithChapterID(id)
			}

			return s.Entries(ctx.Args().First(), func(m *search.Match) error {
				label := m.Entry.Label
				if !m.Entry.Labeled() {
					label = fmt.Sprintf("#%d", m.Entry.Seq)
				}
				_, err := fmt.Fprintf(ctx.App.Writer, "📖 %s %s [%s] %s\n",
					m.ChapterName, label, m.Where, m.Entry.Original.Text)
				return err
			})
		},
	}
}
