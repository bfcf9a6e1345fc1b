package cpu

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/achilleasa/spheretrace/types"
)

var (
	ErrNoSceneData     = errors.New("cpu tracer: no scene data")
	ErrNoCamera        = errors.New("cpu tracer: scene has no camera")
	ErrTracerBusy      = errors.New("cpu tracer: worker did not receive block request")
	ErrBlockOutOfRange = errors.New("cpu tracer: block exceeds frame bounds")
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// The random source used by this tracer. It is only accessed by the
	// worker go-routine.
	rng *rand.Rand

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered block.
	stats *tracer.Stats

	// The scene to render and the frame dimensions.
	sceneData *scene.Scene
	frameW    uint32
	frameH    uint32
}

// Create a new cpu tracer whose random number generator is seeded with seed.
func NewTracer(id string, seed int64) tracer.Tracer {
	return &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		rng:          rand.New(rand.NewSource(seed)),
		blockReqChan: make(chan tracer.BlockRequest, 1),
		stats:        &tracer.Stats{},
	}
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Initialize tracer and start its worker.
func (tr *cpuTracer) Init(sc *scene.Scene, frameW, frameH uint32) error {
	tr.Lock()
	defer tr.Unlock()

	if sc == nil {
		return ErrNoSceneData
	}
	if sc.Camera == nil {
		return ErrNoCamera
	}

	tr.sceneData = sc
	tr.frameW = frameW
	tr.frameH = frameH

	// Start worker
	if tr.closeChan == nil {
		tr.startWorker()
	}

	return nil
}

// Shutdown and cleanup tracer.
func (tr *cpuTracer) Close() {
	tr.Lock()
	defer tr.Unlock()

	// If the worker is running shut it down
	if tr.closeChan != nil {
		tr.closeChan <- struct{}{}

		// wait for worker to ack close and shutdown channel
		<-tr.closeChan
		close(tr.closeChan)
		tr.closeChan = nil
	}
	tr.wg.Wait()

	tr.sceneData = nil
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Errorf("request processor did not receive request for block %d", blockReq.BlockIndex)
		blockReq.ErrChan <- tracer.BlockError{BlockIndex: blockReq.BlockIndex, Err: ErrTracerBusy}
	}
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{}, 0)
	readyChan := make(chan struct{}, 0)
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		var blockReq tracer.BlockRequest
		close(readyChan)
		for {
			select {
			case blockReq = <-tr.blockReqChan:
				startTime := time.Now()
				rows, err := tr.renderBlock(&blockReq)

				// Update stats
				tr.stats.BlockY = blockReq.BlockY
				tr.stats.BlockH = blockReq.BlockH
				tr.stats.RenderTime = time.Since(startTime)

				if err != nil {
					blockReq.ErrChan <- tracer.BlockError{BlockIndex: blockReq.BlockIndex, Err: err}
					continue
				}

				tr.logger.Debugf("rendered block %d (rows %d-%d) in %s", blockReq.BlockIndex, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH-1, tr.stats.RenderTime)
				blockReq.DoneChan <- tracer.BlockResult{BlockIndex: blockReq.BlockIndex, Rows: rows}
			case <-tr.closeChan:
				// Ack close
				tr.closeChan <- struct{}{}
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Render block. The returned rows are ordered top to bottom. A panic while
// tracing is converted to an error so the worker survives.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) (rows [][]types.Pixel, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("cpu tracer (%s): panic while rendering block %d: %v", tr.id, blockReq.BlockIndex, r)
		}
	}()

	if tr.sceneData == nil {
		return nil, ErrNoSceneData
	}
	if blockReq.BlockY+blockReq.BlockH > tr.frameH {
		return nil, ErrBlockOutOfRange
	}

	tr.logger.Debugf("rendering block %d (rows %d-%d)", blockReq.BlockIndex, blockReq.BlockY, blockReq.BlockY+blockReq.BlockH-1)

	camera := tr.sceneData.Camera
	depth := int(blockReq.NumBounces)
	spp := blockReq.SamplesPerPixel
	maxX := float32(tr.frameW - 1)
	maxY := float32(tr.frameH - 1)

	rows = make([][]types.Pixel, 0, blockReq.BlockH)
	for j := int(blockReq.BlockY + blockReq.BlockH - 1); j >= int(blockReq.BlockY); j-- {
		row := make([]types.Pixel, tr.frameW)
		for i := range row {
			var sum types.Vec3
			for s := uint32(0); s < spp; s++ {
				var du, dv float32
				if blockReq.Jitter {
					du, dv = tr.rng.Float32(), tr.rng.Float32()
				}
				ray := camera.GetRay((float32(i)+du)/maxX, (float32(j)+dv)/maxY, tr.rng)
				sum = sum.Add(RayColor(ray, tr.sceneData, depth, tr.rng))
			}
			row[i] = types.ToneMap(sum, spp)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
