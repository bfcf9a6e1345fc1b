package renderer

import "time"

type TracerStat struct {
	// The tracer id.
	Id string

	// The block position, its height and the percentage of total frame
	// area it represents.
	BlockY       uint32
	BlockH       uint32
	FramePercent float32

	// Render time for assigned block
	RenderTime time.Duration

	// True if the tracer failed to deliver its block.
	Dropped bool
}

type FrameStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Number of blocks missing from the frame.
	DroppedBlocks int

	// Total render time for entire frame.
	RenderTime time.Duration
}
