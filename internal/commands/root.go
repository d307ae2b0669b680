package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRoot builds the root command with every subcommand registered and the
// viewer as the default action. Callers add Version and the Before/After
// hooks.
func NewRoot(flags *Flags) *cli.Command {
	root := &cli.Command{
		Name:      "guide",
		Usage:     "Browse a travel guide in the terminal",
		UsageText: "guide [global options] command [command options]",
		Description: `Guide shows a travel guide as a paginated book: an introduction page
followed by one page per region, with a table of contents, a side rail, and
Previous/Next navigation.

Run 'guide' with no arguments to open the viewer on the built-in guide.
Run 'guide -g my-guide.yaml' to open your own guide file.`,
		Flags: GlobalFlags(flags),
	}

	tuiCmd := NewTuiCmd(flags)

	root = NewTocCmd(flags).Register(root)
	root = NewRenderCmd(flags).Register(root)
	root = NewValidateCmd(flags).Register(root)

	// Register TUI flags on root command
	root.Flags = append(root.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'guide --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return root
}
