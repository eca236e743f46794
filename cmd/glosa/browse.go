package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/revelaction/glosa/chapter"
	"github.com/revelaction/glosa/file"
	"github.com/revelaction/glosa/render"
	"github.com/urfave/cli/v2"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "interactively look up entries by label",
		ArgsUsage: "<chapter | file.chapter>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "disable ANSI colors"},
		},
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Len() != 1 {
				return fmt.Errorf("expected a chapter name or file")
			}
			arg := ctx.Args().First()

			var ch *chapter.Chapter
			if info, err := os.Stat(arg); err == nil && !info.IsDir() && strings.HasSuffix(arg, file.Ext) {
				ch, err = file.ReadChapter(arg)
				if err != nil {
					return err
				}
			} else {
				repo, release, err := newRepository(ctx.String("store"))
				if err != nil {
					return err
				}
				defer release()

				ch, err = repo.ReadByName(arg)
				if err != nil {
					return err
				}
			}

			r := render.NewTextRenderer(ctx.App.Writer)
			r.HasColor = !ctx.Bool("no-color")
			r.HasGloss = true
			r.HasLabel = false

			b := &browser{ch: ch, renderer: r, out: ctx.App.Writer}
			return b.Run()
		},
	}
}

type browser struct {
	ch       *chapter.Chapter
	renderer *render.TextRenderer
	out      io.Writer
}

func (b *browser) Run() error {
	fmt.Fprintln(b.out, "🔑 type a label, Tab completes, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", b.completer(),
			prompt.OptionTitle("glosa browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		in = strings.TrimSpace(in)
		if in == "" {
			continue
		}
		history = append(history, in)

		e, err := b.ch.FindByLabel(in)
		if err != nil {
			fmt.Fprintf(b.out, "❌ %s\n", err)
			continue
		}

		if err := b.renderer.Entry(e); err != nil {
			return err
		}
	}
}

func (b *browser) completer() prompt.Completer {
	var suggests []prompt.Suggest
	for _, e := range b.ch.Entries() {
		if !e.Labeled() {
			continue
		}
		suggests = append(suggests, prompt.Suggest{
			Text:        e.Label,
			Description: truncate(e.Original.Text, 40),
		})
	}

	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
