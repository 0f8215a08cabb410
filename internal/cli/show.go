package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/greenops"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/report"
	"github.com/rshade/carbonmeter/internal/surface"
	"github.com/rshade/carbonmeter/internal/tui"
)

type showFlags struct {
	summaryFlags
	plain   bool
	noColor bool
	noTUI   bool
}

// NewShowCmd creates the show command, which presents a summary in the
// terminal: animated when interactive, as styled or plain text otherwise.
func NewShowCmd() *cobra.Command {
	var flags showFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the carbon meter in the terminal",
		Long: `Presents an emissions summary in the terminal. On an interactive terminal the
needle animates toward the total next to a category table; press r to replay
and q to quit. Otherwise the meter, the category breakdown, the reduction
potential and the impact equivalents are printed once.`,
		Example: `  carbonmeter show --input summary.json
  carbonmeter show --category agricultura=3000 --category pecuaria=1000 --plain
  carbonmeter show --total 7400 --no-tui`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := flags.load(cmd)
			if err != nil {
				return err
			}
			mode := tui.DetectOutputMode(flags.plain, flags.noColor, flags.noTUI)
			return runShow(cmd, summary, mode)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "plain text output")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colors (implies --plain)")
	cmd.Flags().BoolVar(&flags.noTUI, "no-tui", false, "print once instead of running the interactive view")

	return cmd
}

func runShow(cmd *cobra.Command, summary *report.Summary, mode tui.OutputMode) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx).With().
		Str("component", "cli").
		Str("operation", "show").
		Logger()
	log.Debug().Stringer("mode", mode).Float64("total", summary.Total).Msg("showing summary")

	cfg := config.GetGlobalConfig()

	if mode == tui.OutputModeInteractive {
		m, err := tui.NewMeterModel(ctx, summary, tui.MeterOptions{
			Gauge:     cfg.Gauge,
			FPS:       cfg.Animation.FPS,
			Registry:  breakdown.DefaultRegistry(),
			Policy:    cfg.Policy(),
			Formatter: cfg.Formatter(),
		})
		if err != nil {
			return err
		}
		if _, err = tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
			return fmt.Errorf("running interactive view: %w", err)
		}
		return nil
	}

	state, err := snapshot(ctx, cfg, summary.Total)
	if err != nil {
		return err
	}
	return printSummary(ctx, cmd.OutOrStdout(), cfg, summary, state, mode)
}

// snapshot draws a gauge with the needle placed at total and returns its
// state.
func snapshot(ctx context.Context, cfg *config.Config, total float64) (gauge.State, error) {
	doc := surface.NewDocument(surface.Container{
		ID:     gaugeContainerID,
		Width:  cfg.Gauge.Width,
		Height: cfg.Gauge.Height,
	})
	g, err := gauge.New(doc, gaugeContainerID, cfg.Gauge, nil, gauge.WithFormatter(cfg.Formatter()))
	if err != nil {
		return gauge.State{}, err
	}
	if err = g.Init(ctx); err != nil {
		return gauge.State{}, err
	}
	g.Update(ctx, total, false)
	return g.State(), nil
}

func printSummary(
	ctx context.Context,
	w io.Writer,
	cfg *config.Config,
	summary *report.Summary,
	state gauge.State,
	mode tui.OutputMode,
) error {
	format := cfg.Formatter()
	res := breakdown.Compute(summary.Details, breakdown.DefaultRegistry(), cfg.Policy())
	bars := breakdown.Reductions(summary.Recommendations)
	impact, err := greenops.ImpactWith(ctx, format, greenops.CarbonInput{Value: summary.Total, Unit: "kg"})
	if err != nil {
		return fmt.Errorf("computing impact: %w", err)
	}

	if mode == tui.OutputModePlain {
		if err = tui.WriteMeterPlain(w, state, cfg.Gauge, format); err != nil {
			return err
		}
		fmt.Fprintln(w)
		if err = tui.WriteBreakdownPlain(w, res, format); err != nil {
			return err
		}
		if len(bars) > 0 {
			fmt.Fprintln(w)
			if err = tui.WriteReductionsPlain(w, bars, format); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
		return tui.WriteImpactPlain(w, impact)
	}

	width := tui.TerminalWidth()
	fmt.Fprintln(w, tui.RenderMeter(state, cfg.Gauge, format, width))
	fmt.Fprintln(w, tui.RenderBreakdown(res, format, width))
	if len(bars) > 0 {
		fmt.Fprintln(w, tui.RenderReductions(bars, format, width))
	}
	fmt.Fprintln(w, tui.RenderImpact(impact, width))
	return nil
}
