package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/achilleasa/spheretrace/renderer"
	"github.com/achilleasa/spheretrace/renderer/writer"
	"github.com/achilleasa/spheretrace/scene/reader"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene argument")
	}

	aspect, err := parseAspect(ctx.String("aspect"))
	if err != nil {
		return err
	}

	width := ctx.Int("width")
	if width < 2 {
		return fmt.Errorf("frame width must be at least 2; got %d", width)
	}
	height := int(float32(width) / aspect)
	if height < 2 {
		return fmt.Errorf("frame height must be at least 2; got %d (width %d, aspect %g)", height, width, aspect)
	}
	if ctx.Int("spp") < 1 {
		return errors.New("at least one sample per pixel is required")
	}
	if ctx.Int("depth") < 0 || ctx.Int("threads") < 0 {
		return errors.New("depth and threads must not be negative")
	}

	opts := renderer.Options{
		FrameW:          uint32(width),
		FrameH:          uint32(height),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		NumBounces:      uint32(ctx.Int("depth")),
		NumTracers:      uint32(ctx.Int("threads")),
		Jitter:          !ctx.Bool("no-jitter"),
		Seed:            ctx.Int64("seed"),
	}

	if opts.NumTracers == 0 {
		opts.NumTracers = autoTracerCount(opts.FrameH)
		logger.Infof("using %d tracers for a %d pixel high frame", opts.NumTracers, opts.FrameH)
	}

	// Load scene
	sc, err := reader.ReadScene(ctx.Args().First(), aspect, opts.Seed)
	if err != nil {
		return err
	}
	logger.Infof("scene information:\n%s", sc.Stats())

	// Create renderer
	r, err := renderer.NewDefault(sc, tracer.EvenScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frame (%d spp, %d bounces) using %d tracers", opts.FrameW, opts.FrameH, opts.SamplesPerPixel, opts.NumBounces, opts.NumTracers)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	if err = writer.WriteFrame(ctx.String("out"), frame); err != nil {
		return err
	}

	// Display stats
	stats := r.Stats()
	displayFrameStats(stats)
	if stats.DroppedBlocks != 0 {
		logger.Warningf("%d of %d blocks were dropped and left black", stats.DroppedBlocks, len(stats.Tracers))
	}

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block Y", "Block height", "% of frame", "Render time", "Dropped"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
			fmt.Sprintf("%t", stat.Dropped),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String(), fmt.Sprintf("%d", stats.DroppedBlocks)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
