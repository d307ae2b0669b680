package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/guide/internal/core/guide"
	"github.com/colonyops/guide/internal/tui"
	"github.com/colonyops/guide/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags

	// flags
	start string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "start",
			Usage:       "open a region by slug, number, or title instead of the introduction",
			Destination: &cmd.start,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("GUIDE_PROFILER_PORT"),
			Destination: &cmd.flags.ProfilerPort,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	g, file, err := cmd.flags.LoadGuide()
	if err != nil {
		return fmt.Errorf("load guide: %w", err)
	}

	start, err := resolveRegion(g, cmd.start)
	if err != nil {
		return err
	}

	// Start profiler server if enabled
	if cmd.flags.ProfilerPort > 0 {
		profServer := profiler.New(cmd.flags.ProfilerPort)
		if err := profServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start profiler: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := profServer.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown profiler server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", profServer.Addr())).
			Msg("profiler endpoint available")
	}

	log.Debug().
		Str("guide", file).
		Int("regions", g.Len()).
		Int("start", start).
		Msg("starting viewer")

	m := tui.New(tui.Options{
		Guide:     g,
		Config:    cmd.flags.Config,
		Images:    cmd.flags.ImageRenderer(g),
		GuideFile: file,
		Start:     start,
	})

	if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// resolveRegion maps a --start/--region reference to a region index. An
// empty reference selects the introduction.
func resolveRegion(g *guide.Guide, ref string) (int, error) {
	if ref == "" {
		return guide.IntroIndex, nil
	}
	i, ok := g.Find(ref)
	if !ok {
		return 0, fmt.Errorf("unknown region %q", ref)
	}
	return i, nil
}
