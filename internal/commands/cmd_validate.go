package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/core/imgpreview"
	"github.com/colonyops/guide/internal/printer"
	"github.com/colonyops/guide/pkg/iojson"
)

type ValidateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewValidateCmd creates a new validate command.
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application.
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate guide files and configuration",
		UsageText: "guide validate [--json] [PATTERN...]",
		Description: `Loads each guide file matching the given glob patterns (e.g. "guides/**/*.yaml")
and reports structural errors by field. Images that cannot be previewed are
reported as warnings.

Without patterns, validates the config file and the guide it selects.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines, one per checked file",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// validationIssue is one field error or warning.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// validationResult is the JSON output format for guide validate --json.
type validationResult struct {
	File     string            `json:"file"`
	Valid    bool              `json:"valid"`
	Errors   []validationIssue `json:"errors,omitempty"`
	Warnings []validationIssue `json:"warnings,omitempty"`
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	var results []validationResult

	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		results = cmd.validateConfigured()
	} else {
		files, err := expandPatterns(patterns)
		if err != nil {
			if cmd.jsonOutput {
				_ = iojson.WriteError(c.Root().ErrWriter, "expand patterns", map[string]any{"error": err.Error()})
				return cli.Exit("", 1)
			}
			return err
		}
		for _, f := range files {
			results = append(results, cmd.validateFile(f))
		}
	}

	if cmd.jsonOutput {
		for _, r := range results {
			if err := iojson.WriteLine(c.Root().Writer, r); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
		}
	} else {
		printResults(printer.Ctx(ctx), results)
	}

	for _, r := range results {
		if !r.Valid {
			return cli.Exit("", 1)
		}
	}
	return nil
}

// expandPatterns resolves glob patterns to a sorted, de-duplicated file list.
// A pattern that matches nothing is an error so typos are not silently valid.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func (cmd *ValidateCmd) validateConfigured() []validationResult {
	results := make([]validationResult, 0, 2)

	if cmd.flags.Config != nil {
		res := validationResult{File: cmd.flags.ConfigPath, Valid: true}
		if err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath); err != nil {
			res.Valid = false
			res.Errors = issuesFrom(err)
		}
		results = append(results, res)
	}

	path := cmd.flags.GuideFile()
	if path == "" {
		g := guide.Default()
		res := validationResult{File: "built-in guide", Valid: true}
		res.Warnings = imageWarnings(cmd.flags.ImageRenderer(g), g)
		return append(results, res)
	}

	return append(results, cmd.validateFile(path))
}

func (cmd *ValidateCmd) validateFile(path string) validationResult {
	res := validationResult{File: path, Valid: true}

	g, err := guide.Load(path)
	if err != nil {
		res.Valid = false
		res.Errors = issuesFrom(err)
		return res
	}

	// Patterns name guides outside the config, so images resolve against
	// each guide's own directory.
	res.Warnings = imageWarnings(imgpreview.New(g.AssetsDir, true), g)
	return res
}

func imageWarnings(r *imgpreview.Renderer, g *guide.Guide) []validationIssue {
	var out []validationIssue
	for _, p := range g.Images() {
		if err := r.Check(p); err != nil {
			out = append(out, validationIssue{Field: p, Message: err.Error()})
		}
	}
	return out
}

func issuesFrom(err error) []validationIssue {
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		out := make([]validationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
		return out
	}
	return []validationIssue{{Message: err.Error()}}
}

func printResults(p *printer.Printer, results []validationResult) {
	invalid := 0
	for _, r := range results {
		if r.Valid {
			p.Successf("%s", r.File)
		} else {
			invalid++
			p.Errorf("%s", r.File)
		}

		for _, e := range r.Errors {
			if e.Field == "" {
				p.Printf("  %s", e.Message)
				continue
			}
			p.Printf("  %s: %s", e.Field, e.Message)
		}
		for _, w := range r.Warnings {
			p.Warnf("  image %s: %s", w.Field, w.Message)
		}
	}

	p.Printf("")
	if invalid == 0 {
		p.Successf("%d file(s) valid", len(results))
		return
	}
	p.Errorf("%d of %d file(s) invalid", invalid, len(results))
}
