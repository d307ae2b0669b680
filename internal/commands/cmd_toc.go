package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/guide/pkg/iojson"
)

type TocCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTocCmd creates a new toc command
func NewTocCmd(flags *Flags) *TocCmd {
	return &TocCmd{flags: flags}
}

// Register adds the toc command to the application
func (cmd *TocCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "toc",
		Usage:     "Print the table of contents",
		UsageText: "guide toc [--json]",
		Description: `Lists every region of the guide with its number, slug, and sub-entries.

The slug or number can be passed to --start or render --region.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as a JSON document",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// tocDocument is the JSON output format for guide toc --json.
type tocDocument struct {
	Title   string     `json:"title"`
	Source  string     `json:"source"`
	Regions []tocEntry `json:"regions"`
}

type tocEntry struct {
	Index      int      `json:"index"`
	Number     string   `json:"number"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	SubEntries []string `json:"sub_entries,omitempty"`
}

func (cmd *TocCmd) run(_ context.Context, c *cli.Command) error {
	g, file, err := cmd.flags.LoadGuide()
	if err != nil {
		if cmd.jsonOutput {
			_ = iojson.WriteError(c.Root().ErrWriter, "load guide", map[string]any{"file": file, "error": err.Error()})
			return cli.Exit("", 1)
		}
		return fmt.Errorf("load guide: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		doc := tocDocument{Title: g.Title, Source: file, Regions: make([]tocEntry, 0, g.Len())}
		for i, r := range g.Regions {
			entry := tocEntry{Index: i, Number: r.Number, Title: r.Title, Slug: r.Slug}
			for _, s := range r.SubEntries() {
				entry.SubEntries = append(entry.SubEntries, s.Label())
			}
			doc.Regions = append(doc.Regions, entry)
		}
		return iojson.WriteWith(out, c.Root().ErrWriter, doc)
	}

	_, _ = fmt.Fprintln(out, g.Title)
	_, _ = fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NO\tTITLE\tSLUG")
	for _, r := range g.Regions {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.Number, r.Title, r.Slug)
		for _, s := range r.SubEntries() {
			_, _ = fmt.Fprintf(w, "\t  %s\t\n", s.Label())
		}
	}
	return w.Flush()
}
