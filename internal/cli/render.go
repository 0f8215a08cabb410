package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/carbonmeter/internal/animation"
	"github.com/rshade/carbonmeter/internal/breakdown"
	"github.com/rshade/carbonmeter/internal/config"
	"github.com/rshade/carbonmeter/internal/gauge"
	"github.com/rshade/carbonmeter/internal/logging"
	"github.com/rshade/carbonmeter/internal/pdfreport"
	"github.com/rshade/carbonmeter/internal/report"
	"github.com/rshade/carbonmeter/internal/surface"
)

// Container ids of the rendered document.
const (
	gaugeContainerID     = "carbon-meter"
	breakdownContainerID = "category-breakdown"
)

type renderFlags struct {
	summaryFlags
	gaugeOut     string
	breakdownOut string
	pdfOut       string
	animate      bool
	fps          int
}

// NewRenderCmd creates the render command, which draws the gauge and the
// category breakdown of a summary and writes them as SVG files.
func NewRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the gauge and breakdown as SVG",
		Long: `Draws the carbon meter gauge and the category breakdown for an emissions
summary and writes each to its own SVG file. With --animate the needle eases
toward the total frame by frame before the files are written; otherwise it
is placed directly. An empty output path skips that file. --pdf-out also
writes a printable report with the breakdown, reductions and impact.`,
		Example: `  carbonmeter render --input summary.json
  carbonmeter render --total 7400 --gauge-out meter.svg --breakdown-out ""
  carbonmeter render --input summary.json --pdf-out report.pdf
  cat summary.json | carbonmeter render --input - --animate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := flags.load(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd, summary, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&flags.gaugeOut, "gauge-out", "carbon-meter.svg", "gauge SVG output path")
	cmd.Flags().StringVar(&flags.breakdownOut, "breakdown-out", "breakdown.svg", "breakdown SVG output path")
	cmd.Flags().StringVar(&flags.pdfOut, "pdf-out", "", "PDF report output path")
	cmd.Flags().BoolVar(&flags.animate, "animate", false, "play the needle animation before writing")
	cmd.Flags().IntVar(&flags.fps, "fps", 0, "animation frame rate (default from configuration)")

	return cmd
}

func runRender(cmd *cobra.Command, summary *report.Summary, flags renderFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx).With().
		Str("component", "cli").
		Str("operation", "render").
		Logger()

	if flags.gaugeOut == "" && flags.breakdownOut == "" && flags.pdfOut == "" {
		return errors.New("nothing to write: --gauge-out, --breakdown-out and --pdf-out are empty")
	}

	cfg := config.GetGlobalConfig()
	format := cfg.Formatter()

	doc := surface.NewDocument(
		surface.Container{ID: gaugeContainerID, Width: cfg.Gauge.Width, Height: cfg.Gauge.Height},
		surface.Container{
			ID:     breakdownContainerID,
			Width:  breakdown.PanelWidth(cfg.Breakdown.BarWidth),
			Height: max(breakdown.Height(len(summary.Details)), 1),
		},
	)
	panel := breakdown.NewPanel(doc, breakdownContainerID, breakdown.DefaultRegistry(),
		breakdown.WithPolicy(cfg.Policy()),
		breakdown.WithBarWidth(cfg.Breakdown.BarWidth),
		breakdown.WithFormatter(format),
	)

	queue := animation.NewFrameQueue()
	g, err := gauge.New(doc, gaugeContainerID, cfg.Gauge, queue, gauge.WithFormatter(format))
	if err != nil {
		return err
	}
	if err = g.Init(ctx); err != nil {
		return err
	}

	if flags.animate {
		fps := flags.fps
		if fps <= 0 {
			fps = cfg.Animation.FPS
		}
		g.Update(ctx, summary.Total, true)
		frames, runErr := animation.NewTicker(queue, fps).RunUntilIdle(ctx)
		if runErr != nil {
			return fmt.Errorf("animating gauge: %w", runErr)
		}
		if err = g.Wait(ctx); err != nil {
			return fmt.Errorf("animating gauge: %w", err)
		}
		log.Debug().Int("frames", frames).Int("fps", fps).Msg("gauge animation finished")
	} else {
		g.Update(ctx, summary.Total, false)
	}

	if err = panel.Update(ctx, summary.Details); err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return writeOutputs(egCtx, doc, map[string]string{
			gaugeContainerID:     flags.gaugeOut,
			breakdownContainerID: flags.breakdownOut,
		})
	})
	if flags.pdfOut != "" {
		eg.Go(func() error {
			return writePDFFile(egCtx, flags.pdfOut, summary, pdfreport.Options{
				Gauge:     cfg.Gauge,
				Registry:  breakdown.DefaultRegistry(),
				Policy:    cfg.Policy(),
				Formatter: format,
			})
		})
	}
	if err = eg.Wait(); err != nil {
		return err
	}

	if flags.gaugeOut != "" {
		cmd.Printf("Gauge written to %s (%s)\n", flags.gaugeOut, g.Label(summary.Total))
	}
	if flags.breakdownOut != "" {
		cmd.Printf("Breakdown written to %s (%d categories)\n", flags.breakdownOut, len(panel.Last().Rows))
	}
	if flags.pdfOut != "" {
		cmd.Printf("Report written to %s\n", flags.pdfOut)
	}
	return nil
}

// writeOutputs writes each container to its path concurrently. Empty paths
// are skipped.
func writeOutputs(ctx context.Context, doc *surface.Document, outputs map[string]string) error {
	eg, ctx := errgroup.WithContext(ctx)
	for containerID, path := range outputs {
		if path == "" {
			continue
		}
		eg.Go(func() error {
			return writeSVGFile(ctx, doc, containerID, path)
		})
	}
	return eg.Wait()
}

func writePDFFile(ctx context.Context, path string, summary *report.Summary, opts pdfreport.Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err = pdfreport.Write(ctx, f, summary, opts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeSVGFile(ctx context.Context, doc *surface.Document, containerID, path string) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err = doc.WriteSVG(f, containerID); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.FromContext(ctx).Debug().
		Str("component", "cli").
		Str("container", containerID).
		Str("path", path).
		Msg("svg written")
	return nil
}
