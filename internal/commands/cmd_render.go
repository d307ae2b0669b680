package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/guide/internal/tui"
)

const (
	defaultRenderWidth  = 100
	defaultRenderHeight = 30
)

type RenderCmd struct {
	flags *Flags

	// flags
	region string
	sub    int
	width  int
	height int
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Print one frame of the viewer",
		UsageText: "guide render [--region REF] [--sub K] [--width W] [--height H]",
		Description: `Renders a single page of the guide to stdout without starting the
interactive viewer. Transitions are skipped.

--region accepts a slug, number, or title; omit it for the introduction.
--sub selects a sub-entry by position, starting at 0. It is an error to
pass a non-zero --sub for a region without sub-entries.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "region",
				Aliases:     []string{"r"},
				Usage:       "region to render (slug, number, or title)",
				Destination: &cmd.region,
			},
			&cli.IntFlag{
				Name:        "sub",
				Usage:       "sub-entry index within the region",
				Destination: &cmd.sub,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "frame width in cells (defaults to the terminal width)",
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "frame height in cells",
				Value:       defaultRenderHeight,
				Destination: &cmd.height,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(_ context.Context, c *cli.Command) error {
	g, file, err := cmd.flags.LoadGuide()
	if err != nil {
		return fmt.Errorf("load guide: %w", err)
	}

	start, err := resolveRegion(g, cmd.region)
	if err != nil {
		return err
	}

	width := cmd.width
	if width <= 0 {
		width = terminalWidth()
	}
	if cmd.height <= 0 {
		return fmt.Errorf("--height must be positive")
	}

	frame, err := tui.Snapshot(tui.Options{
		Guide:     g,
		Config:    cmd.flags.Config,
		Images:    cmd.flags.ImageRenderer(g),
		GuideFile: file,
		Start:     start,
	}, cmd.sub, width, cmd.height)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.Root().Writer, frame)
	return err
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultRenderWidth
}
