package main

import (
	"fmt"

	"github.com/revelaction/glosa/file"
	"github.com/revelaction/glosa/render"
	"github.com/urfave/cli/v2"
)

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a chapter file and print it",
		ArgsUsage: "<file.chapter>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the parsed model as JSON"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
			&cli.BoolFlag{Name: "gloss", Aliases: []string{"g"}, Usage: "print phrase = meaning footnotes per entry"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 1 {
				return fmt.Errorf("expected one chapter file")
			}

			ch, err := file.ReadChapter(ctx.Args().First())
			if err != nil {
				return err
			}

			var r render.Renderer
			if ctx.Bool("json") {
				r = render.NewJSONRenderer(ctx.App.Writer)
			} else {
				tr := render.NewTextRenderer(ctx.App.Writer)
				tr.HasColor = !ctx.Bool("no-color")
				tr.HasGloss = ctx.Bool("gloss")
				r = tr
			}
			return r.Chapter(ch)
		},
	}
}
