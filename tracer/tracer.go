package tracer

import (
	"time"

	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
)

// A unit of work that is processed by a tracer. A block is a contiguous band
// of image rows. Rows are indexed bottom-up: row 0 is the bottom image row.
type BlockRequest struct {
	// The index of the block in the frame.
	BlockIndex uint32

	// Block start row and height.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// The max number of ray bounces before a path is terminated.
	NumBounces uint32

	// Randomize the sample position inside each pixel. When disabled, all
	// samples go through the pixel's lower left corner.
	Jitter bool

	// A channel to signal on block completion.
	DoneChan chan<- BlockResult

	// A channel to signal if an error occurs.
	ErrChan chan<- BlockError
}

// The rendered pixels for a block. Rows are stored in output order: the
// topmost row of the block comes first.
type BlockResult struct {
	BlockIndex uint32
	Rows       [][]types.Pixel
}

// Reports a failure to render a block.
type BlockError struct {
	BlockIndex uint32
	Err        error
}

func (e BlockError) Error() string {
	return e.Err.Error()
}

// Tracer statistics.
type Stats struct {
	// The rendered block position and height.
	BlockY uint32
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Setup the tracer for rendering frames of the given dimensions.
	Init(sc *scene.Scene, frameW, frameH uint32) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Retrieve last frame statistics.
	Stats() *Stats
}
