package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/achilleasa/spheretrace/tracer/cpu"
	"github.com/achilleasa/spheretrace/types"
)

type defaultRenderer struct {
	sync.Mutex

	logger log.Logger

	// The scene to render. It is shared by all tracers and never modified.
	scene *scene.Scene

	// The block scheduler splits the frame between tracers.
	scheduler tracer.BlockScheduler

	// The list of attached tracers. Each one renders a single block per frame.
	tracers []tracer.Tracer

	// Renderer options.
	options Options

	// Statistics for the last rendered frame.
	stats FrameStats

	closed bool
}

// Create a renderer that splits the frame into opts.NumTracers bands and
// renders each band on a dedicated cpu tracer.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if opts.NumTracers == 0 {
		return nil, ErrNoTracers
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tracers := make([]tracer.Tracer, opts.NumTracers)
	for idx := range tracers {
		tracers[idx] = cpu.NewTracer(fmt.Sprintf("cpu-%d", idx), seed+int64(idx))
	}

	r, err := newRenderer(sc, scheduler, tracers, opts)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRenderer(sc *scene.Scene, scheduler tracer.BlockScheduler, tracers []tracer.Tracer, opts Options) (*defaultRenderer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if opts.FrameW < 2 || opts.FrameH < 2 {
		return nil, ErrInvalidFrameDims
	}
	if opts.SamplesPerPixel == 0 {
		return nil, ErrNoSamples
	}
	if len(tracers) == 0 {
		return nil, ErrNoTracers
	}

	// Reject invalid band layouts before any tracer is started
	if _, err := scheduler.Schedule(len(tracers), opts.FrameH); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:    log.New("renderer"),
		scene:     sc,
		scheduler: scheduler,
		options:   opts,
	}

	for _, tr := range tracers {
		if err := tr.Init(sc, opts.FrameW, opts.FrameH); err != nil {
			r.logger.Errorf("could not init tracer %s: %s", tr.Id(), err.Error())
			r.tracers = append(r.tracers, tr)
			r.Close()
			return nil, err
		}
		r.tracers = append(r.tracers, tr)
	}

	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	r.Lock()
	defer r.Unlock()

	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
	r.closed = true
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	r.Lock()
	defer r.Unlock()
	return r.stats
}

// Render frame. Each tracer renders one band of rows; the bands are
// reassembled by block index so the frame layout does not depend on the
// order in which tracers finish. A tracer that fails leaves its band black
// and is reported in the frame stats.
func (r *defaultRenderer) Render() (*Frame, error) {
	r.Lock()
	defer r.Unlock()

	if r.closed {
		return nil, ErrRendererClosed
	}

	start := time.Now()
	numBlocks := len(r.tracers)
	blockAssignment, err := r.scheduler.Schedule(numBlocks, r.options.FrameH)
	if err != nil {
		return nil, err
	}

	doneChan := make(chan tracer.BlockResult, numBlocks)
	errChan := make(chan tracer.BlockError, numBlocks)

	var blockY uint32 = 0
	blockStart := make([]uint32, numBlocks)
	for idx, tr := range r.tracers {
		blockStart[idx] = blockY
		tr.Enqueue(tracer.BlockRequest{
			BlockIndex:      uint32(idx),
			BlockY:          blockY,
			BlockH:          blockAssignment[idx],
			SamplesPerPixel: r.options.SamplesPerPixel,
			NumBounces:      r.options.NumBounces,
			Jitter:          r.options.Jitter,
			DoneChan:        doneChan,
			ErrChan:         errChan,
		})
		blockY += blockAssignment[idx]
	}

	// Wait for every tracer to report back
	blocks := make([][][]types.Pixel, numBlocks)
	for pending := numBlocks; pending > 0; pending-- {
		select {
		case res := <-doneChan:
			if int(res.BlockIndex) >= numBlocks || uint32(len(res.Rows)) != blockAssignment[res.BlockIndex] {
				r.logger.Warningf("discarding malformed result for block %d", res.BlockIndex)
				continue
			}
			blocks[res.BlockIndex] = res.Rows
			r.logger.Infof("block %d/%d complete (%d blocks remaining)", res.BlockIndex+1, numBlocks, pending-1)
		case blockErr := <-errChan:
			r.logger.Warningf("dropping block %d: %s", blockErr.BlockIndex, blockErr.Error())
		}
	}

	// Bands are stacked bottom-up so emit the last band first
	frame := NewFrame(r.options.FrameW, r.options.FrameH)
	var y uint32 = 0
	for idx := numBlocks - 1; idx >= 0; idx-- {
		if blocks[idx] == nil {
			y += blockAssignment[idx]
			continue
		}
		for _, row := range blocks[idx] {
			copy(frame.Row(y), row)
			y++
		}
	}

	r.updateStats(blockAssignment, blockStart, blocks, time.Since(start))
	return frame, nil
}

func (r *defaultRenderer) updateStats(blockAssignment, blockStart []uint32, blocks [][][]types.Pixel, renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, len(r.tracers)),
		RenderTime: renderTime,
	}

	for idx, tr := range r.tracers {
		stat := TracerStat{
			Id:           tr.Id(),
			BlockY:       blockStart[idx],
			BlockH:       blockAssignment[idx],
			FramePercent: 100.0 * float32(blockAssignment[idx]) / float32(r.options.FrameH),
			Dropped:      blocks[idx] == nil,
		}
		if !stat.Dropped {
			stat.RenderTime = tr.Stats().RenderTime
		} else {
			r.stats.DroppedBlocks++
		}
		r.stats.Tracers[idx] = stat
	}
}
